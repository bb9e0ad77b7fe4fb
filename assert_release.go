//go:build !pageiodebug

package pageio

// debugAsserts is off in release builds; see assert_debug.go.
const debugAsserts = false
