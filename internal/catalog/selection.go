package catalog

import "github.com/five82/dex/internal/pokedex"

// Preferences is the single display preference value shared by the list and
// the detail overlay.
type Preferences struct {
	Language pokedex.Language
	Variant  pokedex.Variant
}

// NewPreferences starts from the given language and the default image.
func NewPreferences(lang pokedex.Language) Preferences {
	if lang != pokedex.French {
		lang = pokedex.English
	}
	return Preferences{Language: lang, Variant: pokedex.VariantDefault}
}

// ToggleLanguage flips between the two supported languages.
func (p *Preferences) ToggleLanguage() {
	p.Language = p.Language.Other()
}

// ToggleVariant flips between the default and shiny image.
func (p *Preferences) ToggleVariant() {
	p.Variant = p.Variant.Other()
}

// Selection tracks the entity shown in the detail overlay. Closing keeps the
// entity so the overlay can be reopened unchanged.
type Selection struct {
	current *pokedex.Pokemon
	open    bool
}

// Select focuses p and opens the detail view.
func (s *Selection) Select(p pokedex.Pokemon) {
	dup := p
	s.current = &dup
	s.open = true
}

// Close hides the detail view without forgetting the entity.
func (s *Selection) Close() {
	s.open = false
}

// Reopen shows the last selected entity again. It reports false when nothing
// has been selected yet.
func (s *Selection) Reopen() bool {
	if s.current == nil {
		return false
	}
	s.open = true
	return true
}

// Current returns the last selected entity.
func (s Selection) Current() (pokedex.Pokemon, bool) {
	if s.current == nil {
		return pokedex.Pokemon{}, false
	}
	return *s.current, true
}

// IsOpen reports whether the detail view is showing.
func (s Selection) IsOpen() bool {
	return s.open && s.current != nil
}
