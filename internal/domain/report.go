package domain

import "time"

// ColorInput keeps what the user typed alongside its canonical hex form.
type ColorInput struct {
	Input string `json:"input"`
	Hex   string `json:"hex"`
}

// Report is a persisted contrast check.
type Report struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Foreground ColorInput `json:"foreground"`
	Background ColorInput `json:"background"`

	Result ContrastResult `json:"result"`
	Level  Level          `json:"level"`
	Font   string         `json:"font,omitempty"`
}

// SwatchCheck is the evaluation of one palette swatch against a background.
type SwatchCheck struct {
	Palette string
	Swatch  Swatch
	Result  ContrastResult
}
