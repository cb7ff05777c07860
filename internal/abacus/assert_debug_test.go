//go:build sorobandebug

package abacus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// invariantPanic runs fn and returns the InvariantError it panicked with.
func invariantPanic(t *testing.T, fn func()) (ie *InvariantError) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		var ok bool
		ie, ok = r.(*InvariantError)
		require.True(t, ok, "panic value %T is not *InvariantError", r)
	}()
	fn()
	return nil
}

func TestInvariants_Panic(t *testing.T) {
	tests := []struct {
		name  string
		fn    func()
		op    string
		value int
		want  string
	}{
		{"StateFor negative", func() { StateFor(-1) }, "StateFor", -1, "abacus: StateFor: value -1 outside [0,9]"},
		{"StateFor above nine", func() { StateFor(12) }, "StateFor", 12, "abacus: StateFor: value 12 outside [0,9]"},
		{"Digits negative", func() { Digits(-5) }, "Digits", -5, ""},
		{"Pow10 negative", func() { Pow10(-1) }, "Pow10", -1, "abacus: Pow10: value -1 outside [0,18]"},
		{"Pow10 overflow", func() { Pow10(19) }, "Pow10", 19, "abacus: Pow10: value 19 outside [0,18]"},
		{"Layout too many earth beads", func() { Layout(testCell, BeadState{Earth: 7}) }, "Layout", 7, "abacus: Layout: value 7 outside [0,4]"},
		{"Layout negative earth beads", func() { Layout(testCell, BeadState{Earth: -1}) }, "Layout", -1, "abacus: Layout: value -1 outside [0,4]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ie := invariantPanic(t, tt.fn)
			assert.Equal(t, tt.op, ie.Op)
			assert.Equal(t, tt.value, ie.Value)
			if tt.want != "" {
				assert.EqualError(t, ie, tt.want)
			}
		})
	}
}

func TestInvariants_InRangeDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		for d := range 10 {
			Layout(testCell, StateFor(d))
		}
		Digits(9999)
		Digits(12345)
		Pow10(0)
		Pow10(18)
	})
}
