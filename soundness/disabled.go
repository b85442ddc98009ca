//go:build !checksoundness

package soundness

// Enabled is true when the package is built with the checksoundness tag.
const Enabled = false
