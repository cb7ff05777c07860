package display

import "github.com/zjrosen/soroban/internal/abacus"

// RecordingTarget is a Target backed by an abacus.Recorder that also keeps
// the regions it was asked to clear.
type RecordingTarget struct {
	abacus.Recorder
	Cleared []abacus.Rect
}

// Clear implements Target.
func (t *RecordingTarget) Clear(r abacus.Rect) {
	t.Cleared = append(t.Cleared, r)
}
