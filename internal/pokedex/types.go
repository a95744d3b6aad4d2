package pokedex

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Language is a display-language code the API carries translations for.
type Language string

const (
	English Language = "en"
	French  Language = "fr"
)

// Languages lists the supported codes in toggle order.
func Languages() []Language {
	return []Language{English, French}
}

// ParseLanguage normalizes a user supplied language code.
func ParseLanguage(value string) (Language, error) {
	code := Language(strings.ToLower(strings.TrimSpace(value)))
	for _, lang := range Languages() {
		if code == lang {
			return lang, nil
		}
	}
	return "", fmt.Errorf("unsupported language %q (want en or fr)", value)
}

// Other returns the remaining supported language.
func (l Language) Other() Language {
	if l == French {
		return English
	}
	return French
}

// Variant selects which of the two image references is displayed.
type Variant string

const (
	VariantDefault Variant = "image"
	VariantShiny   Variant = "image_shiny"
)

// Other returns the remaining image variant.
func (v Variant) Other() Variant {
	if v == VariantShiny {
		return VariantDefault
	}
	return VariantShiny
}

// Label returns a short human readable name for the variant.
func (v Variant) Label() string {
	if v == VariantShiny {
		return "Shiny"
	}
	return "Default"
}

// Names holds the translations of a display string.
type Names struct {
	En string `json:"en"`
	Fr string `json:"fr"`
}

// In returns the translation for lang, falling back to English.
func (n Names) In(lang Language) string {
	if lang == French {
		return n.Fr
	}
	return n.En
}

// Stats mirrors the fixed six-field stat block.
type Stats struct {
	HP             int `json:"hp"`
	Attack         int `json:"atk"`
	Defense        int `json:"def"`
	SpecialAttack  int `json:"spe_atk"`
	SpecialDefense int `json:"spe_def"`
	Speed          int `json:"vit"`
}

// Total sums all six stats.
func (s Stats) Total() int {
	return s.HP + s.Attack + s.Defense + s.SpecialAttack + s.SpecialDefense + s.Speed
}

// Lineage maps related entity ids to an optional label. The API encodes it
// either as an array of ids or as an object keyed by id.
type Lineage map[int]string

// UnmarshalJSON accepts null, [id, ...] and {"id": "label", ...}.
func (l *Lineage) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*l = nil
		return nil
	}
	switch trimmed[0] {
	case '[':
		var ids []int
		if err := json.Unmarshal(trimmed, &ids); err != nil {
			return fmt.Errorf("lineage array: %w", err)
		}
		if len(ids) == 0 {
			*l = nil
			return nil
		}
		out := make(Lineage, len(ids))
		for _, id := range ids {
			out[id] = ""
		}
		*l = out
		return nil
	case '{':
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return fmt.Errorf("lineage object: %w", err)
		}
		if len(raw) == 0 {
			*l = nil
			return nil
		}
		out := make(Lineage, len(raw))
		for key, value := range raw {
			id, err := strconv.Atoi(strings.TrimSpace(key))
			if err != nil {
				return fmt.Errorf("lineage id %q: %w", key, err)
			}
			var label string
			if err := json.Unmarshal(value, &label); err != nil {
				label = ""
			}
			out[id] = label
		}
		*l = out
		return nil
	}
	return fmt.Errorf("lineage: unexpected json %q", string(trimmed))
}

// IDs returns the referenced ids in ascending order.
func (l Lineage) IDs() []int {
	if len(l) == 0 {
		return nil
	}
	ids := make([]int, 0, len(l))
	for id := range l {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Pokemon is one catalog entity.
type Pokemon struct {
	ID          int     `json:"id"`
	Generation  int     `json:"generation"`
	Name        Names   `json:"name"`
	Image       string  `json:"image"`
	ImageShiny  string  `json:"image_shiny"`
	Height      float64 `json:"height"`
	Weight      float64 `json:"weight"`
	Stats       Stats   `json:"stats"`
	Types       []int   `json:"types"`
	EvolvedFrom Lineage `json:"evolvedFrom"`
	EvolvesTo   Lineage `json:"evolvesTo"`
}

// ImageFor returns the image reference for the given variant.
func (p Pokemon) ImageFor(v Variant) string {
	if v == VariantShiny {
		return p.ImageShiny
	}
	return p.Image
}

// HasType reports whether the entity carries the type tag id.
func (p Pokemon) HasType(id int) bool {
	for _, t := range p.Types {
		if t == id {
			return true
		}
	}
	return false
}

// Type is a category tag applied to entities.
type Type struct {
	ID    int    `json:"id"`
	Name  Names  `json:"name"`
	Image string `json:"image"`
}

// PokemonListResponse mirrors /api/pokemon.
type PokemonListResponse struct {
	Data []Pokemon `json:"data"`
}

// TypeListResponse mirrors /api/types.
type TypeListResponse struct {
	Data []Type `json:"data"`
}
