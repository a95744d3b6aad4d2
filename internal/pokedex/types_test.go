package pokedex

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestLineageUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Lineage
	}{
		{"null", `null`, nil},
		{"empty_array", `[]`, nil},
		{"empty_object", `{}`, nil},
		{"array", `[2, 3]`, Lineage{2: "", 3: ""}},
		{"object", `{"2":"Herbizarre","3":"Florizarre"}`, Lineage{2: "Herbizarre", 3: "Florizarre"}},
		{"object_non_string_label", `{"5":{"level":16}}`, Lineage{5: ""}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got Lineage
			if err := json.Unmarshal([]byte(tc.in), &got); err != nil {
				t.Fatalf("Unmarshal(%s) returned error: %v", tc.in, err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Unmarshal(%s) = %#v, want %#v", tc.in, got, tc.want)
			}
		})
	}
}

func TestLineageUnmarshal_Invalid(t *testing.T) {
	for _, in := range []string{`"x"`, `{"abc":"x"}`, `["a"]`} {
		var got Lineage
		if err := json.Unmarshal([]byte(in), &got); err == nil {
			t.Fatalf("Unmarshal(%s) returned nil error", in)
		}
	}
}

func TestLineageIDsSorted(t *testing.T) {
	l := Lineage{9: "", 2: "", 5: ""}
	if got := l.IDs(); !reflect.DeepEqual(got, []int{2, 5, 9}) {
		t.Fatalf("IDs = %v, want [2 5 9]", got)
	}
	if got := Lineage(nil).IDs(); got != nil {
		t.Fatalf("IDs on nil = %v, want nil", got)
	}
}

func TestParseLanguage(t *testing.T) {
	if got, err := ParseLanguage(" FR "); err != nil || got != French {
		t.Fatalf("ParseLanguage(FR) = %q, %v, want fr", got, err)
	}
	if _, err := ParseLanguage("jp"); err == nil {
		t.Fatalf("ParseLanguage(jp) returned nil error")
	}
}

func TestToggleHelpersAreInvolutions(t *testing.T) {
	for _, lang := range Languages() {
		if lang.Other().Other() != lang {
			t.Fatalf("Other twice on %q did not round trip", lang)
		}
	}
	for _, v := range []Variant{VariantDefault, VariantShiny} {
		if v.Other().Other() != v {
			t.Fatalf("Other twice on %q did not round trip", v)
		}
	}
}

func TestPokemonAccessors(t *testing.T) {
	p := Pokemon{
		Name:       Names{En: "Bulbasaur", Fr: "Bulbizarre"},
		Image:      "regular.png",
		ImageShiny: "shiny.png",
		Types:      []int{12, 4},
		Stats:      Stats{HP: 45, Attack: 49, Defense: 49, SpecialAttack: 65, SpecialDefense: 65, Speed: 45},
	}
	if p.Name.In(English) != "Bulbasaur" || p.Name.In(French) != "Bulbizarre" {
		t.Fatalf("Names.In mismatch: %#v", p.Name)
	}
	if p.Name.In(Language("de")) != "Bulbasaur" {
		t.Fatalf("Names.In(unknown) should fall back to English")
	}
	if p.ImageFor(VariantShiny) != "shiny.png" || p.ImageFor(VariantDefault) != "regular.png" {
		t.Fatalf("ImageFor mismatch")
	}
	if !p.HasType(4) || p.HasType(1) {
		t.Fatalf("HasType mismatch for %v", p.Types)
	}
	if p.Stats.Total() != 318 {
		t.Fatalf("Stats.Total = %d, want 318", p.Stats.Total())
	}
}
