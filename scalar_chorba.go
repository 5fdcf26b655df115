// +build cksum_chorba

package cksum

const scalarKernel = ChorbaKernel
