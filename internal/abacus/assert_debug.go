//go:build sorobandebug

package abacus

// debugAsserts turns invariant violations into panics.
const debugAsserts = true
