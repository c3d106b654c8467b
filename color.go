package glaze

import (
	"fmt"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color stores an RGBA floating point color value with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// RGB creates an opaque color from float components.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA creates a color from float components.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Gray creates the color (intensity, intensity, intensity, alpha).
func Gray(intensity, alpha float32) Color {
	return Color{R: intensity, G: intensity, B: intensity, A: alpha}
}

// RGBA8 creates a color from 8-bit components.
func RGBA8(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

// ParseColor parses "#rrggbb" or "#rrggbbaa" hex notation.
func ParseColor(s string) (Color, error) {
	var alpha float32 = 1
	if len(s) == 9 && s[0] == '#' {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		alpha = float32(a) / 255
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: alpha}, nil
}

// Hex returns the color in "#rrggbb" or "#rrggbbaa" notation.
func (c Color) Hex() string {
	hex := c.colorful().Clamped().Hex()
	if c.A < 1 {
		return fmt.Sprintf("%s%02x", hex, uint8(clampf(c.A, 0, 1)*255+0.5))
	}
	return hex
}

// WithAlpha returns the color with its alpha component replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// Lighten returns the color with its HSL lightness raised by amount.
func (c Color) Lighten(amount float32) Color {
	h, s, l := c.colorful().Hsl()
	return fromColorful(colorful.Hsl(h, s, clamp01(l+float64(amount))), c.A)
}

// Darken returns the color with its HSL lightness lowered by amount.
func (c Color) Darken(amount float32) Color {
	h, s, l := c.colorful().Hsl()
	return fromColorful(colorful.Hsl(h, s, clamp01(l-float64(amount))), c.A)
}

// Blend mixes two colors in Lab space, which avoids the muddy midpoints
// of naive RGB interpolation. t=0 yields c, t=1 yields other.
func (c Color) Blend(other Color, t float32) Color {
	mixed := c.colorful().BlendLab(other.colorful(), float64(t)).Clamped()
	return fromColorful(mixed, c.A+(other.A-c.A)*t)
}

// ContrastingColor returns black or white, whichever reads better over
// this color. Luminance weights follow the classic ITU-R 601 split.
func (c Color) ContrastingColor() Color {
	luminance := 0.299*c.R + 0.587*c.G + 0.144*c.B
	if luminance < 0.5 {
		return Gray(1, 1)
	}
	return Gray(0, 1)
}

// MarshalText implements encoding.TextMarshaler using hex notation.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler from hex notation.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

func fromColorful(c colorful.Color, alpha float32) Color {
	return Color{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: alpha}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
