package domain

import (
	"strings"
)

// Font is a preview typeface served by Google Fonts.
type Font struct {
	Name  string `json:"name"`
	Value string `json:"value"` // family name as requested from the stylesheet API
}

var fonts = []Font{
	{Name: "Inter", Value: "Inter"},
	{Name: "Roboto", Value: "Roboto"},
	{Name: "Open Sans", Value: "Open Sans"},
	{Name: "Lato", Value: "Lato"},
	{Name: "Montserrat", Value: "Montserrat"},
	{Name: "Source Sans Pro", Value: "Source Sans Pro"},
	{Name: "Raleway", Value: "Raleway"},
	{Name: "Poppins", Value: "Poppins"},
	{Name: "Nunito", Value: "Nunito"},
	{Name: "Playfair Display", Value: "Playfair Display"},
	{Name: "Merriweather", Value: "Merriweather"},
	{Name: "Crimson Text", Value: "Crimson Text"},
}

const fontsCSSBase = "https://fonts.googleapis.com/css2"

// Fonts returns a copy of the preview font table.
func Fonts() []Font {
	out := make([]Font, len(fonts))
	copy(out, fonts)
	return out
}

// FontByName finds a font by display name, case-insensitively.
func FontByName(name string) (Font, bool) {
	n := strings.TrimSpace(name)
	for _, f := range fonts {
		if strings.EqualFold(f.Name, n) {
			return f, true
		}
	}
	return Font{}, false
}

// FontIndex returns the table position of name, or 0 when unknown.
func FontIndex(name string) int {
	n := strings.TrimSpace(name)
	for i, f := range fonts {
		if strings.EqualFold(f.Name, n) {
			return i
		}
	}
	return 0
}

// FontStylesheetURL builds the css2 URL that loads every given family in
// weights 400/600/700.
func FontStylesheetURL(in []Font) string {
	if len(in) == 0 {
		return ""
	}

	parts := make([]string, 0, len(in)+1)
	for _, f := range in {
		parts = append(parts, "family="+strings.ReplaceAll(f.Value, " ", "+")+":wght@400;600;700")
	}
	parts = append(parts, "display=swap")

	return fontsCSSBase + "?" + strings.Join(parts, "&")
}
