package breath

import (
	"image/color"
	"math"
)

// Hue endpoints in degrees: a calm blue while breathing in, a warm red
// while breathing out. The crossfade happens during the holds, eased so the
// colour settles gently at either end.
const (
	inhaleHue = 260.0
	exhaleHue = 330.0
)

// Colour returns the circle colour for the current cycle position.
func (cycle *Cycle) Colour() color.NRGBA {
	var hue float64
	switch cycle.phase {
	case PhaseInhale:
		hue = inhaleHue
	case PhaseHoldFull:
		hue = lerp(easeInOutCubic(cycle.Progress()), inhaleHue, exhaleHue)
	case PhaseExhale:
		hue = exhaleHue
	default:
		hue = lerp(easeInOutCubic(cycle.Progress()), exhaleHue, inhaleHue)
	}

	r, g, b := hslToRGB(hue, 0.5, 0.5)
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func easeInOutCubic(x float64) float64 {
	if x < 0.5 {
		return 4 * x * x * x
	}
	y := 2*x - 2
	return y*y*y/2 + 1
}

// hslToRGB converts hue (0-360), saturation and lightness (0-1) to RGB.
func hslToRGB(h, s, l float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}
