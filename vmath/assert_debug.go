//go:build debug

package vmath

// debugChecks turns invariant violations into panics
const debugChecks = true
