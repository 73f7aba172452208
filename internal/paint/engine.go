package paint

import (
	"math/rand"

	"github.com/vovakirdan/tui-sketch/internal/canvas"
	"github.com/vovakirdan/tui-sketch/internal/core"
)

// Mode selects how a newly- or re-painted cell's color is derived.
// Random and Darken are independent toggles; Darken takes precedence
// when both are set and the cell already has a color.
type Mode struct {
	Random bool // New cells get a uniformly random color
	Darken bool // Re-entered cells get darker each time
}

// String returns a short label for the active mode, for the status bar.
func (m Mode) String() string {
	switch {
	case m.Random && m.Darken:
		return "random+darken"
	case m.Random:
		return "random"
	case m.Darken:
		return "darken"
	default:
		return "plain"
	}
}

// DefaultNeutral is the fixed color applied to first-painted cells outside
// random mode.
var DefaultNeutral = canvas.RGB{R: 240, G: 240, B: 240}

// DefaultDarkenPercent is how much of the channel range a darken pass
// removes per re-entry.
const DefaultDarkenPercent = 10

// Engine computes the next color for a cell from its current state and the
// active mode. Neutral color and darken strength are configurable; the rand
// source is owned by the caller so sessions stay deterministic under a seed.
type Engine struct {
	neutral   canvas.RGB
	darkenPct int
	rng       *rand.Rand
}

// NewEngine creates an engine with the given random source.
// A nil rng falls back to the global source.
func NewEngine(rng *rand.Rand) *Engine {
	return &Engine{
		neutral:   DefaultNeutral,
		darkenPct: DefaultDarkenPercent,
		rng:       rng,
	}
}

// SetNeutral overrides the first-paint neutral color.
func (e *Engine) SetNeutral(c canvas.RGB) {
	e.neutral = c
}

// SetDarkenPercent overrides the per-entry darken strength.
// Values outside (0, 100] are ignored.
func (e *Engine) SetDarkenPercent(pct int) {
	if pct > 0 && pct <= 100 {
		e.darkenPct = pct
	}
}

// NextColor applies the color transition rules to a cell:
//
//  1. Unset cell, random mode: uniformly random channels.
//  2. Unset cell otherwise: the neutral color.
//  3. Set cell, darken mode: every channel reduced by the darken
//     percentage of the full range, clamped at black.
//  4. Set cell otherwise: unchanged.
func (e *Engine) NextColor(cur canvas.Cell, mode Mode) canvas.RGB {
	if !cur.Set {
		if mode.Random {
			return e.randomColor()
		}
		return e.neutral
	}
	if mode.Darken {
		return e.darken(cur.Color)
	}
	return cur.Color
}

// NextColorFromString applies the transition rules to a textual color
// representation as reported back by a rendering surface. Malformed or
// missing strings are treated as unset, failing open to the default-color
// path; this is never an error.
func (e *Engine) NextColorFromString(cur string, mode Mode) canvas.RGB {
	if c, ok := canvas.ParseRGB(cur); ok {
		return e.NextColor(canvas.Painted(c), mode)
	}
	return e.NextColor(canvas.Empty(), mode)
}

// randomColor draws each channel independently over the full 0-255 range.
func (e *Engine) randomColor() canvas.RGB {
	if e.rng == nil {
		return canvas.RGB{
			R: uint8(rand.Intn(256)),
			G: uint8(rand.Intn(256)),
			B: uint8(rand.Intn(256)),
		}
	}
	return canvas.RGB{
		R: uint8(e.rng.Intn(256)),
		G: uint8(e.rng.Intn(256)),
		B: uint8(e.rng.Intn(256)),
	}
}

// darken reduces brightness by darkenPct of the channel range.
// Channels clamp independently, so an already-black cell stays black.
func (e *Engine) darken(c canvas.RGB) canvas.RGB {
	return canvas.RGB{
		R: e.darkenChannel(c.R),
		G: e.darkenChannel(c.G),
		B: e.darkenChannel(c.B),
	}
}

func (e *Engine) darkenChannel(ch uint8) uint8 {
	v := float64(ch)/255 - float64(e.darkenPct)/100
	return uint8(core.ClampF(v, 0, 1) * 255)
}
