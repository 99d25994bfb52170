package gamedata

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// FeatureDef defines a map feature loaded from JSON.
type FeatureDef struct {
	ID          string `json:"id"`                    // Unique identifier matching entity.Kind (e.g., "lamp")
	Name        string `json:"name"`                  // Display name (e.g., "Lamp")
	Glyph       string `json:"glyph"`                 // Single character for rendering (e.g., "¤")
	Color       string `json:"color"`                 // Hex color code (e.g., "#FFD700")
	LightRadius int    `json:"lightRadius,omitempty"` // Radius of the carried light, 0 for none
	Lit         bool   `json:"lit,omitempty"`         // Whether the light starts lit
	Count       int    `json:"count,omitempty"`       // How many to scatter when populating a world
}

// GlyphRune returns the glyph as a rune for rendering.
func (f *FeatureDef) GlyphRune() rune {
	r, size := utf8.DecodeRuneInString(f.Glyph)
	if size == 0 || r == utf8.RuneError {
		return '?'
	}
	return r
}

// TCellColor returns the color as a tcell.Color.
func (f *FeatureDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(f.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// HasLight returns true if the feature carries a light source.
func (f *FeatureDef) HasLight() bool {
	return f.LightRadius > 0
}

// FeaturesFile represents the structure of features.json.
type FeaturesFile struct {
	Floor    FeatureDef   `json:"floor"`
	Features []FeatureDef `json:"features"`
}

// LoadFeatures loads feature definitions from the embedded features.json file.
func LoadFeatures() (*FeaturesFile, error) {
	file, err := Load[FeaturesFile]("features.json")
	if err != nil {
		return nil, err
	}
	return &file, nil
}
