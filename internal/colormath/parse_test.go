package colormath

import (
	"testing"

	"github.com/aalvaropc/contrastly/internal/domain"
)

func TestParse_Valid(t *testing.T) {
	cases := []struct {
		input string
		want  domain.Color
	}{
		{"#000000", domain.Color{R: 0, G: 0, B: 0}},
		{"#FFFFFF", domain.Color{R: 255, G: 255, B: 255}},
		{"#1a202c", domain.Color{R: 26, G: 32, B: 44}},
		{"#AbCdEf", domain.Color{R: 0xab, G: 0xcd, B: 0xef}},
		{"rgb(255, 0, 10)", domain.Color{R: 255, G: 0, B: 10}},
		{"rgb(1,2,3)", domain.Color{R: 1, G: 2, B: 3}},
		{"rgb(0,\t0,  0)", domain.Color{R: 0, G: 0, B: 0}},
		{"hsl(0, 100%, 50%)", domain.Color{R: 255, G: 0, B: 0}},
		{"hsl(120,100%,25%)", domain.Color{R: 0, G: 128, B: 0}},
		{"hsl(210, 50%, 40%)", domain.Color{R: 51, G: 102, B: 153}},
		{"hsl(360, 100%, 50%)", domain.Color{R: 255, G: 0, B: 0}},
		{"hsl(0, 0%, 50%)", domain.Color{R: 128, G: 128, B: 128}},
	}
	for _, c := range cases {
		got, ok := Parse(c.input)
		if !ok {
			t.Errorf("Parse(%q) failed", c.input)
			continue
		}
		if got != c.want {
			t.Errorf("Parse(%q) = %+v, want %+v", c.input, got, c.want)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	inputs := []string{
		"not-a-color",
		"",
		"red",
		"#fff",
		"#gggggg",
		"#1234567",
		"##123456",
		" #000000",
		"#000000 ",
		"rgb(256, 0, 0)",
		"rgb(1.5, 2, 3)",
		"rgb( 1, 2, 3)",
		"rgb(-1, 2, 3)",
		"rgb(1, 2)",
		"rgba(1, 2, 3, 1)",
		"RGB(1, 2, 3)",
		"rgb(99999999999999999999, 0, 0)",
		"hsl(361, 0%, 0%)",
		"hsl(-10, 50%, 50%)",
		"hsl(10, 101%, 0%)",
		"hsl(10, 50%, 101%)",
		"hsl(10, 50, 50)",
		"hsl(1.5, 2%, 3%)",
		"hsla(10, 50%, 50%, 1)",
	}
	for _, in := range inputs {
		if c, ok := Parse(in); ok {
			t.Errorf("Parse(%q) = %+v, expected no color", in, c)
		}
	}
}

func TestHexToRGB_OptionalHash(t *testing.T) {
	withHash, ok := HexToRGB("#aabbcc")
	if !ok {
		t.Fatalf("expected #aabbcc to decode")
	}
	bare, ok := HexToRGB("aabbcc")
	if !ok {
		t.Fatalf("expected aabbcc to decode")
	}
	if withHash != bare {
		t.Fatalf("expected same color, got %+v and %+v", withHash, bare)
	}
	if _, ok := HexToRGB("abc"); ok {
		t.Fatalf("expected short hex to be rejected")
	}
}

func TestParseHSL(t *testing.T) {
	got, ok := ParseHSL("hsl(220, 26%, 14%)")
	if !ok {
		t.Fatalf("expected hsl to parse")
	}
	if got != (domain.HSL{H: 220, S: 26, L: 14}) {
		t.Fatalf("unexpected hsl %+v", got)
	}
	if _, ok := ParseHSL("rgb(1, 2, 3)"); ok {
		t.Fatalf("expected rgb notation to be rejected by ParseHSL")
	}
}
