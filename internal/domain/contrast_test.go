package domain

import "testing"

func TestEvaluate_Thresholds(t *testing.T) {
	cases := []struct {
		ratio     float64
		aaNormal  bool
		aaLarge   bool
		aaaNormal bool
		aaaLarge  bool
	}{
		{1.0, false, false, false, false},
		{2.99, false, false, false, false},
		{3.0, false, true, false, false},
		{4.49, false, true, false, false},
		{4.5, true, true, false, true},
		{6.99, true, true, false, true},
		{7.0, true, true, true, true},
		{21.0, true, true, true, true},
	}
	for _, c := range cases {
		got := Evaluate(c.ratio)
		if got.Ratio != c.ratio {
			t.Errorf("Evaluate(%v).Ratio = %v", c.ratio, got.Ratio)
		}
		if got.AANormal != c.aaNormal || got.AALarge != c.aaLarge ||
			got.AAANormal != c.aaaNormal || got.AAALarge != c.aaaLarge {
			t.Errorf("Evaluate(%v) = %+v", c.ratio, got)
		}
	}
}

func TestLevelOf(t *testing.T) {
	cases := []struct {
		ratio float64
		want  Level
	}{
		{21, LevelAAA},
		{7, LevelAAA},
		{6.5, LevelAA},
		{4.5, LevelAA},
		{4.48, LevelAALarge},
		{3, LevelAALarge},
		{2.9, LevelFail},
		{1, LevelFail},
	}
	for _, c := range cases {
		if got := LevelOf(c.ratio); got != c.want {
			t.Errorf("LevelOf(%v) = %q, want %q", c.ratio, got, c.want)
		}
	}
}

func TestContrastResult_Passes(t *testing.T) {
	r := Evaluate(4.6)
	if !r.Passes(GateAA) || !r.Passes(GateAALarge) || !r.Passes(GateAAALarge) {
		t.Fatalf("expected AA, AA large and AAA large to pass for 4.6")
	}
	if r.Passes(GateAAA) {
		t.Fatalf("expected AAA normal to fail for 4.6")
	}
	if !r.Passes(Gate("bogus")) {
		t.Fatalf("expected unknown gate to behave like AA")
	}
	if r.Level() != LevelAA {
		t.Fatalf("expected level AA, got %q", r.Level())
	}
}

func TestGate_MinRatio(t *testing.T) {
	cases := map[Gate]float64{
		GateAA:       4.5,
		GateAALarge:  3,
		GateAAA:      7,
		GateAAALarge: 4.5,
		"":           4.5,
	}
	for g, want := range cases {
		if got := g.MinRatio(); got != want {
			t.Errorf("Gate(%q).MinRatio() = %v, want %v", g, got, want)
		}
	}
}

func TestParseGate(t *testing.T) {
	for _, s := range []string{"aa", "aa-large", "aaa", "aaa-large"} {
		if g, ok := ParseGate(s); !ok || string(g) != s {
			t.Errorf("ParseGate(%q) = %q, %v", s, g, ok)
		}
	}
	for _, s := range []string{"", "AA", "a", "aaaa"} {
		if _, ok := ParseGate(s); ok {
			t.Errorf("ParseGate(%q) should fail", s)
		}
	}
}
