package display

import "github.com/zjrosen/soroban/internal/abacus"

// Target is a canvas whose regions can be wiped before a surface is redrawn.
type Target interface {
	abacus.Canvas
	Clear(r abacus.Rect)
}
