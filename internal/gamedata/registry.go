package gamedata

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// FeatureRegistry holds loaded feature definitions and provides lookup utilities.
type FeatureRegistry struct {
	features map[string]*FeatureDef
	all      []FeatureDef
	floor    FeatureDef
}

// NewFeatureRegistry creates a registry from loaded feature definitions.
func NewFeatureRegistry(file *FeaturesFile) *FeatureRegistry {
	registry := &FeatureRegistry{
		features: make(map[string]*FeatureDef),
		all:      file.Features,
		floor:    file.Floor,
	}
	for i := range registry.all {
		registry.features[registry.all[i].ID] = &registry.all[i]
	}
	return registry
}

// LoadFeatureRegistry loads and creates a registry from the embedded features.json.
func LoadFeatureRegistry() (*FeatureRegistry, error) {
	file, err := LoadFeatures()
	if err != nil {
		return nil, err
	}
	if len(file.Features) == 0 {
		return nil, errors.New("no features loaded from features.json")
	}
	return NewFeatureRegistry(file), nil
}

// MustLoadFeatureRegistry loads a registry, panicking on error.
func MustLoadFeatureRegistry() *FeatureRegistry {
	registry, err := LoadFeatureRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the feature definition with the given ID, or nil if not found.
func (r *FeatureRegistry) GetByID(id string) *FeatureDef {
	return r.features[id]
}

// Floor returns the definition used for empty tiles.
func (r *FeatureRegistry) Floor() *FeatureDef {
	return &r.floor
}

// All returns all feature definitions.
func (r *FeatureRegistry) All() []FeatureDef {
	return r.all
}

// Count returns the number of features in the registry.
func (r *FeatureRegistry) Count() int {
	return len(r.all)
}

// Palette maps every glyph, floor included, to its display style.
func (r *FeatureRegistry) Palette() map[rune]tcell.Style {
	palette := make(map[rune]tcell.Style, len(r.all)+1)
	palette[r.floor.GlyphRune()] = tcell.StyleDefault.Foreground(r.floor.TCellColor())
	for i := range r.all {
		def := &r.all[i]
		palette[def.GlyphRune()] = tcell.StyleDefault.Foreground(def.TCellColor()).Bold(def.ID == "player")
	}
	return palette
}
