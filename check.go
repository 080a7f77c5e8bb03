//go:build !seqcheck

package seq

// checkEnabled gates the debug-only contract assertions. It is a
// compile-time constant so release builds carry no bounds checks on the
// hot paths; build with -tags seqcheck to turn them on.
const checkEnabled = false
