package glaze

import "testing"

func TestParseColorHex(t *testing.T) {
	c, err := ParseColor("#336699")
	if err != nil {
		t.Fatalf("ParseColor failed: %v", err)
	}
	if c.A != 1 {
		t.Errorf("Expected opaque color, got alpha %f", c.A)
	}
	if c.Hex() != "#336699" {
		t.Errorf("Expected round trip #336699, got %s", c.Hex())
	}
}

func TestParseColorHexWithAlpha(t *testing.T) {
	c, err := ParseColor("#33669980")
	if err != nil {
		t.Fatalf("ParseColor failed: %v", err)
	}
	if c.A < 0.49 || c.A > 0.52 {
		t.Errorf("Expected alpha near 0.5, got %f", c.A)
	}
	if c.Hex() != "#33669980" {
		t.Errorf("Expected round trip #33669980, got %s", c.Hex())
	}
}

func TestParseColorRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "red", "#12"} {
		if _, err := ParseColor(s); err == nil {
			t.Errorf("Expected an error for %q", s)
		}
	}
}

func TestContrastingColor(t *testing.T) {
	if c := RGB(0, 0, 0).ContrastingColor(); c.R != 1 {
		t.Error("Expected white over black")
	}
	if c := RGB(1, 1, 1).ContrastingColor(); c.R != 0 {
		t.Error("Expected black over white")
	}
}

func TestLightenDarken(t *testing.T) {
	base := RGB(0.4, 0.4, 0.4)
	if l := base.Lighten(0.2); l.R <= base.R {
		t.Errorf("Expected lighter red channel, got %f", l.R)
	}
	if d := base.Darken(0.2); d.R >= base.R {
		t.Errorf("Expected darker red channel, got %f", d.R)
	}
}

func TestBlendEndpoints(t *testing.T) {
	a := RGB(1, 0, 0)
	b := RGB(0, 0, 1)
	if got := a.Blend(b, 0); got.B > 0.01 {
		t.Errorf("Expected t=0 to yield the receiver, got %+v", got)
	}
	if got := a.Blend(b, 1); got.R > 0.01 {
		t.Errorf("Expected t=1 to yield the argument, got %+v", got)
	}
}
