//go:build !debug

package vmath

// debugChecks is off in release builds, invariant violations are clamped
const debugChecks = false
