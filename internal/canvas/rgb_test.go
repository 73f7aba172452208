package canvas

import "testing"

func TestRGBString(t *testing.T) {
	c := RGB{R: 240, G: 240, B: 240}
	if c.String() != "rgb(240, 240, 240)" {
		t.Errorf("String() = %q, expected %q", c.String(), "rgb(240, 240, 240)")
	}
}

func TestRGBHex(t *testing.T) {
	tests := []struct {
		color    RGB
		expected string
	}{
		{RGB{R: 255, G: 255, B: 255}, "#ffffff"},
		{RGB{R: 0, G: 0, B: 0}, "#000000"},
		{RGB{R: 240, G: 240, B: 240}, "#f0f0f0"},
		{RGB{R: 16, G: 32, B: 48}, "#102030"},
	}

	for _, tc := range tests {
		if got := tc.color.Hex(); got != tc.expected {
			t.Errorf("%v.Hex() = %q, expected %q", tc.color, got, tc.expected)
		}
	}
}

func TestParseRGB(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected RGB
		ok       bool
	}{
		{"canonical form", "rgb(10, 20, 30)", RGB{R: 10, G: 20, B: 30}, true},
		{"no spaces", "rgb(1,2,3)", RGB{R: 1, G: 2, B: 3}, true},
		{"bare numbers", "100 150 200", RGB{R: 100, G: 150, B: 200}, true},
		{"full range", "rgb(0, 255, 128)", RGB{R: 0, G: 255, B: 128}, true},
		{"empty string", "", RGB{}, false},
		{"no numbers", "none", RGB{}, false},
		{"two numbers", "rgb(1, 2)", RGB{}, false},
		{"four numbers", "rgba(1, 2, 3, 4)", RGB{}, false},
		{"channel too large", "rgb(256, 0, 0)", RGB{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseRGB(tc.input)
			if ok != tc.ok {
				t.Fatalf("ParseRGB(%q) ok = %v, expected %v", tc.input, ok, tc.ok)
			}
			if ok && got != tc.expected {
				t.Errorf("ParseRGB(%q) = %v, expected %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestParseRGBRoundTrip(t *testing.T) {
	colors := []RGB{
		{R: 0, G: 0, B: 0},
		{R: 255, G: 255, B: 255},
		{R: 174, G: 174, B: 174},
		{R: 12, G: 200, B: 99},
	}

	for _, c := range colors {
		got, ok := ParseRGB(c.String())
		if !ok {
			t.Fatalf("ParseRGB(%q) failed", c.String())
		}
		if got != c {
			t.Errorf("round trip of %v gave %v", c, got)
		}
	}
}
