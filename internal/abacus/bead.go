package abacus

// BeadState is the bead configuration of one column.
type BeadState struct {
	Heaven bool // heaven bead against the bar, worth five
	Earth  int  // earth beads against the bar, in [0, MaxEarthBeads]
}

// StateFor maps a digit to its bead configuration. The earth count is taken
// modulo MaxEarthPositions so that 4 and 9 keep all four earth beads up.
// Digits outside [0,9] are clamped into range.
func StateFor(d int) BeadState {
	assertRange("StateFor", d, 0, 9)
	d = min(max(d, 0), 9)
	return BeadState{
		Heaven: d >= MaxEarthBeads+1,
		Earth:  d % MaxEarthPositions,
	}
}

// Digit returns the digit the configuration represents.
func (s BeadState) Digit() int {
	d := s.Earth
	if s.Heaven {
		d += 5
	}
	return d
}

// Valid reports whether the earth count is within range.
func (s BeadState) Valid() bool {
	return s.Earth >= 0 && s.Earth <= MaxEarthBeads
}
