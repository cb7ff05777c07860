//go:build !sorobandebug

package abacus

// debugAsserts is off in release builds; out-of-range input is clamped.
const debugAsserts = false
