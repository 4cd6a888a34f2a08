package domain

// WCAG 2.1 contrast thresholds.
const (
	MinRatioAANormal  = 4.5
	MinRatioAALarge   = 3.0
	MinRatioAAANormal = 7.0
	MinRatioAAALarge  = 4.5
)

// ContrastResult is the WCAG evaluation of a color pair.
type ContrastResult struct {
	Ratio float64 `json:"ratio"`

	AANormal  bool `json:"aa_normal"`
	AALarge   bool `json:"aa_large"`
	AAANormal bool `json:"aaa_normal"`
	AAALarge  bool `json:"aaa_large"`
}

// Evaluate derives the pass/fail flags for a contrast ratio.
func Evaluate(ratio float64) ContrastResult {
	return ContrastResult{
		Ratio:     ratio,
		AANormal:  ratio >= MinRatioAANormal,
		AALarge:   ratio >= MinRatioAALarge,
		AAANormal: ratio >= MinRatioAAANormal,
		AAALarge:  ratio >= MinRatioAAALarge,
	}
}

// Level is the headline classification shown next to a ratio.
type Level string

const (
	LevelAAA     Level = "AAA"
	LevelAA      Level = "AA"
	LevelAALarge Level = "AA Large"
	LevelFail    Level = "Fail"
)

func LevelOf(ratio float64) Level {
	switch {
	case ratio >= MinRatioAAANormal:
		return LevelAAA
	case ratio >= MinRatioAANormal:
		return LevelAA
	case ratio >= MinRatioAALarge:
		return LevelAALarge
	default:
		return LevelFail
	}
}

// Level returns the headline classification of the result.
func (r ContrastResult) Level() Level {
	return LevelOf(r.Ratio)
}

// Gate selects which WCAG criterion a check must meet.
type Gate string

const (
	GateAA       Gate = "aa"
	GateAALarge  Gate = "aa-large"
	GateAAA      Gate = "aaa"
	GateAAALarge Gate = "aaa-large"
)

// Passes reports whether the result satisfies the gate.
// Unknown gates fall back to AA normal text.
func (r ContrastResult) Passes(g Gate) bool {
	switch g {
	case GateAALarge:
		return r.AALarge
	case GateAAA:
		return r.AAANormal
	case GateAAALarge:
		return r.AAALarge
	default:
		return r.AANormal
	}
}

// MinRatio returns the ratio a gate requires.
func (g Gate) MinRatio() float64 {
	switch g {
	case GateAALarge:
		return MinRatioAALarge
	case GateAAA:
		return MinRatioAAANormal
	case GateAAALarge:
		return MinRatioAAALarge
	default:
		return MinRatioAANormal
	}
}

// ParseGate maps a flag or config value to a Gate.
func ParseGate(s string) (Gate, bool) {
	switch g := Gate(s); g {
	case GateAA, GateAALarge, GateAAA, GateAAALarge:
		return g, true
	default:
		return "", false
	}
}
