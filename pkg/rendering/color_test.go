package rendering

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ff0000", ColorRed},
		{"#f00", ColorRed},
		{"#00ff0080", RGBA(0, 255, 0, 0x80)},
		{"red", ColorRed},
		{" White ", ColorWhite},
		{"cornflowerblue", RGB(100, 149, 237)},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Fatalf("ParseColor(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#gggggg", "not-a-color"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) expected error", in)
		}
	}
}

func TestColorTextRoundTrip(t *testing.T) {
	c := RGBA(10, 20, 30, 40)
	text, err := c.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	var back Color
	if err := back.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}
	if back != c {
		t.Errorf("round trip = %s, want %s", back, c)
	}
}

func TestRectFromLTWH(t *testing.T) {
	r := RectFromLTWH(4, 10, 100, 40)
	if r.Width() != 100 || r.Height() != 40 {
		t.Errorf("size = %v, want 100x40", r.Size())
	}
	if c := r.Center(); c.X != 54 || c.Y != 30 {
		t.Errorf("center = %v, want (54,30)", c)
	}
}
