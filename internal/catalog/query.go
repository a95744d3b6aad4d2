package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/five82/dex/internal/pokedex"
)

// SortKey selects the ordering of the visible list.
type SortKey int

const (
	SortIDAsc SortKey = iota
	SortIDDesc
	SortNameAsc
	SortNameDesc
	SortWeightAsc
	SortWeightDesc
	SortHeightAsc
	SortHeightDesc
)

var sortKeys = []SortKey{
	SortIDAsc, SortIDDesc,
	SortNameAsc, SortNameDesc,
	SortWeightAsc, SortWeightDesc,
	SortHeightAsc, SortHeightDesc,
}

// Label returns the selector text for the key.
func (k SortKey) Label() string {
	switch k {
	case SortIDDesc:
		return "ID ↓"
	case SortNameAsc:
		return "Name A-Z"
	case SortNameDesc:
		return "Name Z-A"
	case SortWeightAsc:
		return "Weight ↑"
	case SortWeightDesc:
		return "Weight ↓"
	case SortHeightAsc:
		return "Height ↑"
	case SortHeightDesc:
		return "Height ↓"
	default:
		return "ID ↑"
	}
}

// Next returns the following key, wrapping around.
func (k SortKey) Next() SortKey {
	return sortKeys[(k.index()+1)%len(sortKeys)]
}

// Prev returns the preceding key, wrapping around.
func (k SortKey) Prev() SortKey {
	return sortKeys[(k.index()-1+len(sortKeys))%len(sortKeys)]
}

func (k SortKey) index() int {
	for i, key := range sortKeys {
		if key == k {
			return i
		}
	}
	return 0
}

// Query is the user's current search, filter and sort selection. The zero
// value matches everything and orders by ascending id.
type Query struct {
	Search     string
	TypeID     int // 0 means no type filter
	Generation int // 0 means no generation filter
	Sort       SortKey
}

// Filtered reports whether any stage other than sorting narrows the list.
func (q Query) Filtered() bool {
	return q.Search != "" || q.TypeID != 0 || q.Generation != 0
}

// Apply derives the visible list from the fetched collection. It never
// modifies entities and always returns a fresh slice.
func Apply(entities []pokedex.Pokemon, q Query, prefs Preferences) []pokedex.Pokemon {
	out := make([]pokedex.Pokemon, 0, len(entities))
	if len(entities) == 0 {
		return out
	}

	fold := cases.Fold()
	needle := fold.String(q.Search)

	for _, p := range entities {
		if needle != "" && !strings.Contains(fold.String(p.Name.In(prefs.Language)), needle) {
			continue
		}
		if q.TypeID != 0 && !p.HasType(q.TypeID) {
			continue
		}
		if q.Generation != 0 && p.Generation != q.Generation {
			continue
		}
		out = append(out, p)
	}

	sortEntities(out, q.Sort, prefs.Language)
	return out
}

func sortEntities(items []pokedex.Pokemon, key SortKey, lang pokedex.Language) {
	var less func(a, b pokedex.Pokemon) bool
	switch key {
	case SortIDDesc:
		less = func(a, b pokedex.Pokemon) bool { return a.ID > b.ID }
	case SortNameAsc, SortNameDesc:
		col := collate.New(languageTag(lang))
		desc := key == SortNameDesc
		less = func(a, b pokedex.Pokemon) bool {
			c := col.CompareString(a.Name.In(lang), b.Name.In(lang))
			if desc {
				return c > 0
			}
			return c < 0
		}
	case SortWeightAsc:
		less = func(a, b pokedex.Pokemon) bool { return a.Weight < b.Weight }
	case SortWeightDesc:
		less = func(a, b pokedex.Pokemon) bool { return a.Weight > b.Weight }
	case SortHeightAsc:
		less = func(a, b pokedex.Pokemon) bool { return a.Height < b.Height }
	case SortHeightDesc:
		less = func(a, b pokedex.Pokemon) bool { return a.Height > b.Height }
	default:
		less = func(a, b pokedex.Pokemon) bool { return a.ID < b.ID }
	}
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
}

func languageTag(lang pokedex.Language) language.Tag {
	if lang == pokedex.French {
		return language.French
	}
	return language.English
}

// Generations lists the distinct generation values present, ascending.
func Generations(entities []pokedex.Pokemon) []int {
	seen := make(map[int]struct{})
	var gens []int
	for _, p := range entities {
		if _, ok := seen[p.Generation]; ok {
			continue
		}
		seen[p.Generation] = struct{}{}
		gens = append(gens, p.Generation)
	}
	sort.Ints(gens)
	return gens
}

// TypesOf returns the tags carried by p in tag-collection order.
func TypesOf(p pokedex.Pokemon, types []pokedex.Type) []pokedex.Type {
	var out []pokedex.Type
	for _, t := range types {
		if p.HasType(t.ID) {
			out = append(out, t)
		}
	}
	return out
}

// FindType looks up a tag by id.
func FindType(types []pokedex.Type, id int) (pokedex.Type, bool) {
	for _, t := range types {
		if t.ID == id {
			return t, true
		}
	}
	return pokedex.Type{}, false
}

// NextGeneration cycles a generation selector: none, then each value in
// order, then back to none.
func NextGeneration(current int, gens []int) int {
	return nextInCycle(current, gens)
}

// NextType cycles a type selector through none and every loaded tag.
func NextType(current int, types []pokedex.Type) int {
	ids := make([]int, 0, len(types))
	for _, t := range types {
		ids = append(ids, t.ID)
	}
	return nextInCycle(current, ids)
}

func nextInCycle(current int, values []int) int {
	if len(values) == 0 {
		return 0
	}
	if current == 0 {
		return values[0]
	}
	for i, v := range values {
		if v == current {
			if i == len(values)-1 {
				return 0
			}
			return values[i+1]
		}
	}
	return 0
}
