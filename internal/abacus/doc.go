// Package abacus encodes decimal values as soroban bead positions and lays
// them out as rectangles.
//
// A value is split into MaxDigits decimal digits. Each digit becomes one
// column: a heaven bead worth five and MaxEarthBeads earth beads worth one.
// Beads that count toward the digit sit against the reckoning bar; the rest
// rest against the frame. The package is pure geometry; drawing goes through
// the Canvas interface supplied by the host.
package abacus
