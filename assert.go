//go:build !vectordebug

package vector

// debug enables internal invariant checks. Build with -tags vectordebug to
// turn them on.
const debug = false
