//go:build seqcheck

package seq

// checkEnabled is true under the seqcheck build tag: slot and position
// contracts panic instead of corrupting memory.
const checkEnabled = true
