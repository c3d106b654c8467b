package glaze

import (
	"strings"
	"testing"
)

func TestLoadThemeOverridesOnlyNamedKeys(t *testing.T) {
	input := `
window_header_height = 42.0
text_color = "#ff0000"
`
	theme, err := LoadTheme(strings.NewReader(input))
	if err != nil {
		t.Fatalf("LoadTheme failed: %v", err)
	}

	if theme.WindowHeaderHeight != 42 {
		t.Errorf("Expected header height 42, got %f", theme.WindowHeaderHeight)
	}
	if theme.TextColor.R != 1 || theme.TextColor.G != 0 || theme.TextColor.B != 0 {
		t.Errorf("Expected text color red, got %+v", theme.TextColor)
	}

	// Unnamed keys keep their defaults.
	def := DefaultTheme()
	if theme.StandardFontSize != def.StandardFontSize {
		t.Errorf("Expected default font size %f, got %f", def.StandardFontSize, theme.StandardFontSize)
	}
}

func TestLoadThemeRejectsBadColor(t *testing.T) {
	input := `text_color = "not-a-color"`
	if _, err := LoadTheme(strings.NewReader(input)); err == nil {
		t.Error("Expected an error for a malformed color")
	}
}

func TestLoadThemeAlphaColors(t *testing.T) {
	input := `window_fill_color = "#11223380"`
	theme, err := LoadTheme(strings.NewReader(input))
	if err != nil {
		t.Fatalf("LoadTheme failed: %v", err)
	}
	a := theme.WindowFillColor.A
	if a < 0.49 || a > 0.52 {
		t.Errorf("Expected alpha near 0.5, got %f", a)
	}
}

func TestDefaultThemeFallback(t *testing.T) {
	w := NewWidget(nil)
	if w.themeOrDefault() == nil {
		t.Fatal("Expected a usable theme for detached widgets")
	}
}
