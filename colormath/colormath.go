// Package colormath implements sRGB color parsing, relative luminance, and
// WCAG contrast ratio computation.
package colormath

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Color is an 8-bit-per-channel sRGB triple. Transient: parsed, used for one
// luminance computation, discarded.
type Color struct {
	R, G, B uint8
}

var (
	hexLongRe  = regexp.MustCompile(`^#([0-9a-f]{6})$`)
	hexShortRe = regexp.MustCompile(`^#([0-9a-f]{3})$`)
	rgbFuncRe  = regexp.MustCompile(`^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*[0-9.]+\s*)?\)$`)
)

// Parse reads a color from its textual form: #RGB, #RRGGBB, rgb(r,g,b), or
// rgba(r,g,b,a). The alpha channel of rgba is ignored. Returns false for
// anything else.
func Parse(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))

	if m := hexLongRe.FindStringSubmatch(s); m != nil {
		v, _ := strconv.ParseUint(m[1], 16, 32)
		return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, true
	}

	if m := hexShortRe.FindStringSubmatch(s); m != nil {
		v, _ := strconv.ParseUint(m[1], 16, 16)
		r := uint8(v >> 8 & 0xf)
		g := uint8(v >> 4 & 0xf)
		b := uint8(v & 0xf)
		// #abc expands to #aabbcc.
		return Color{R: r<<4 | r, G: g<<4 | g, B: b<<4 | b}, true
	}

	if m := rgbFuncRe.FindStringSubmatch(s); m != nil {
		var ch [3]uint8
		for i := 0; i < 3; i++ {
			v, err := strconv.Atoi(m[i+1])
			if err != nil || v > 255 {
				return Color{}, false
			}
			ch[i] = uint8(v)
		}
		return Color{R: ch[0], G: ch[1], B: ch[2]}, true
	}

	return Color{}, false
}

// Luminance returns the WCAG relative luminance of the color in [0,1].
func (c Color) Luminance() float64 {
	r := linearize(float64(c.R) / 255)
	g := linearize(float64(c.G) / 255)
	b := linearize(float64(c.B) / 255)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// linearize converts a gamma-encoded sRGB channel in [0,1] to linear light.
func linearize(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio between two colors,
// always >= 1 regardless of argument order.
func ContrastRatio(a, b Color) float64 {
	la, lb := a.Luminance(), b.Luminance()
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}
