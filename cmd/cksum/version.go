package main

const version = `
cksum 1.0.0
`
