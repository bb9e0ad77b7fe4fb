//go:build pageiodebug

package pageio

// debugAsserts enables post-write consistency checks. Build with
// -tags pageiodebug to turn invariant violations into panics; release
// builds compile the checks out entirely.
const debugAsserts = true
