package glaze

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Theme bundles the colors and metrics widgets draw with. A theme set on a
// widget propagates to its descendants; widgets without one fall back to
// DefaultTheme.
type Theme struct {
	StandardFontSize   float32 `toml:"standard_font_size"`
	ButtonFontSize     float32 `toml:"button_font_size"`
	WindowHeaderHeight float32 `toml:"window_header_height"`
	WindowBorderWidth  float32 `toml:"window_border_width"`
	ButtonBorderWidth  float32 `toml:"button_border_width"`

	TextColor         Color `toml:"text_color"`
	DisabledTextColor Color `toml:"disabled_text_color"`

	WindowFillColor   Color `toml:"window_fill_color"`
	WindowHeaderColor Color `toml:"window_header_color"`
	WindowBorderColor Color `toml:"window_border_color"`
	WindowTitleColor  Color `toml:"window_title_color"`
	DropShadowColor   Color `toml:"drop_shadow_color"`

	ButtonColor        Color `toml:"button_color"`
	ButtonPressedColor Color `toml:"button_pressed_color"`
	ButtonBorderColor  Color `toml:"button_border_color"`

	TooltipFillColor Color `toml:"tooltip_fill_color"`
	TooltipTextColor Color `toml:"tooltip_text_color"`
}

// DefaultTheme returns the built-in dark theme.
func DefaultTheme() *Theme {
	base := RGBA8(41, 43, 48, 255)
	return &Theme{
		StandardFontSize:   16,
		ButtonFontSize:     18,
		WindowHeaderHeight: 30,
		WindowBorderWidth:  1,
		ButtonBorderWidth:  1,

		TextColor:         Gray(1, 0.63),
		DisabledTextColor: Gray(1, 0.31),

		WindowFillColor:   base.WithAlpha(230.0 / 255),
		WindowHeaderColor: base.Darken(0.05),
		WindowBorderColor: base.Lighten(0.08),
		WindowTitleColor:  Gray(0.86, 0.63),
		DropShadowColor:   Gray(0, 0.5),

		ButtonColor:        base.Lighten(0.12),
		ButtonPressedColor: base.Darken(0.06),
		ButtonBorderColor:  base.Lighten(0.2),

		TooltipFillColor: Gray(0, 0.78),
		TooltipTextColor: Gray(1, 0.9),
	}
}

// LoadTheme reads a TOML theme over the defaults, so partial files only
// override the keys they name. Colors use "#rrggbb" or "#rrggbbaa" strings.
func LoadTheme(r io.Reader) (*Theme, error) {
	t := DefaultTheme()
	dec := toml.NewDecoder(r)
	if err := dec.Decode(t); err != nil {
		return nil, fmt.Errorf("decode theme: %w", err)
	}
	return t, nil
}

// LoadThemeFile reads a TOML theme from path.
func LoadThemeFile(path string) (*Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open theme: %w", err)
	}
	defer f.Close()
	return LoadTheme(f)
}
