package ui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/dex/internal/catalog"
	"github.com/five82/dex/internal/pokedex"
	"github.com/five82/dex/internal/state"
)

type stubLoader struct {
	result catalog.Result
	calls  int
}

func (s *stubLoader) Load(_ context.Context, _ string) catalog.Result {
	s.calls++
	return s.result
}

func samplePokemon() []pokedex.Pokemon {
	return []pokedex.Pokemon{
		{ID: 25, Generation: 1, Name: pokedex.Names{En: "Pikachu", Fr: "Pikachu"}, Types: []int{13},
			Stats: pokedex.Stats{HP: 35, Attack: 55}, EvolvedFrom: pokedex.Lineage{172: ""}, EvolvesTo: pokedex.Lineage{26: "Raichu"}},
		{ID: 145, Generation: 1, Name: pokedex.Names{En: "Zapdos", Fr: "Électhor"}, Types: []int{13, 3}},
		{ID: 172, Generation: 2, Name: pokedex.Names{En: "Pichu", Fr: "Pichu"}, Types: []int{13}},
		{ID: 23, Generation: 1, Name: pokedex.Names{En: "Ekans", Fr: "Abo"}, Types: []int{4}},
		{ID: 133, Generation: 1, Name: pokedex.Names{En: "Eevee", Fr: "Évoli"}, Types: []int{1}},
	}
}

func sampleTypes() []pokedex.Type {
	return []pokedex.Type{
		{ID: 1, Name: pokedex.Names{En: "Normal", Fr: "Normal"}},
		{ID: 3, Name: pokedex.Names{En: "Flying", Fr: "Vol"}},
		{ID: 4, Name: pokedex.Names{En: "Poison", Fr: "Poison"}},
		{ID: 13, Name: pokedex.Names{En: "Electric", Fr: "Électrik"}},
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "end":
			msg = tea.KeyMsg{Type: tea.KeyEnd}
		case "home":
			msg = tea.KeyMsg{Type: tea.KeyHome}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ = update(t, m, msg)
	}
	return m
}

// newModel returns a sized model whose store is loading.
func newModel(t *testing.T, loader *stubLoader) (Model, *state.Store) {
	t.Helper()
	store := &state.Store{}
	m := New(Options{
		Store:     store,
		Loader:    loader,
		Language:  pokedex.English,
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
		LogPath:   filepath.Join(t.TempDir(), "dex.log"),
	})
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init returned nil cmd")
	}
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, store
}

func loadedModel(t *testing.T, res catalog.Result) Model {
	t.Helper()
	m, store := newModel(t, &stubLoader{})
	token := store.Snapshot().Activation
	m, _ = update(t, m, catalogLoadedMsg{token: token, result: res})
	return m
}

func visibleIDs(m Model) []int {
	out := make([]int, 0, len(m.visible))
	for _, p := range m.visible {
		out = append(out, p.ID)
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestModel_InitBeginsLoadOnce(t *testing.T) {
	loader := &stubLoader{result: catalog.Result{Pokemon: samplePokemon()}}
	m, store := newModel(t, loader)

	if got := store.Snapshot().Phase; got != state.PhaseLoading {
		t.Fatalf("Phase after Init = %v, want loading", got)
	}
	m.Init()
	if got := store.Snapshot().Activation; got == "" {
		t.Fatal("Activation is empty after Init")
	}
	if !strings.Contains(m.View(), "Loading Pokédex") {
		t.Fatalf("View while loading = %q, want loading message", m.View())
	}
}

func TestLoadCatalogCmd_CarriesToken(t *testing.T) {
	loader := &stubLoader{result: catalog.Result{Pokemon: samplePokemon()}}
	msg := loadCatalogCmd(context.Background(), loader, "tok-1")()

	loaded, ok := msg.(catalogLoadedMsg)
	if !ok {
		t.Fatalf("cmd returned %T, want catalogLoadedMsg", msg)
	}
	if loaded.token != "tok-1" || len(loaded.result.Pokemon) != 5 {
		t.Fatalf("msg = %+v, want token tok-1 with 5 entities", loaded)
	}
	if loader.calls != 1 {
		t.Fatalf("loader calls = %d, want 1", loader.calls)
	}
}

func TestModel_LoadSuccessShowsList(t *testing.T) {
	m := loadedModel(t, catalog.Result{Pokemon: samplePokemon(), Types: sampleTypes()})

	if !m.snapshot.Loaded() {
		t.Fatalf("Phase = %v, want ready", m.snapshot.Phase)
	}
	if want := []int{23, 25, 133, 145, 172}; !equalInts(visibleIDs(m), want) {
		t.Fatalf("visible = %v, want %v", visibleIDs(m), want)
	}
	view := m.View()
	for _, want := range []string{"Pikachu", "Pokédex (5)", "#025", "Electric"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View missing %q:\n%s", want, view)
		}
	}
}

func TestModel_StaleResultDropped(t *testing.T) {
	m, _ := newModel(t, &stubLoader{})
	m, _ = update(t, m, catalogLoadedMsg{token: "someone-else", result: catalog.Result{Pokemon: samplePokemon()}})

	if m.snapshot.Loaded() {
		t.Fatal("stale result was applied")
	}
	if len(m.visible) != 0 {
		t.Fatalf("visible = %v, want empty", visibleIDs(m))
	}
}

func TestModel_ResultAfterCloseDropped(t *testing.T) {
	m, store := newModel(t, &stubLoader{})
	token := store.Snapshot().Activation
	store.Close()

	m, _ = update(t, m, catalogLoadedMsg{token: token, result: catalog.Result{Pokemon: samplePokemon()}})
	if m.snapshot.Loaded() || len(m.visible) != 0 {
		t.Fatal("result applied after the store was closed")
	}
}

func TestModel_FailureShowsErrorAndLogTail(t *testing.T) {
	m, store := newModel(t, &stubLoader{})
	if err := os.WriteFile(m.logPath, []byte(`{"level":"warn","msg":"catalog load failed","error":"boom"}`+"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	res := catalog.Result{Err: &catalog.UnavailableError{Cause: errors.New("boom")}}
	m, cmd := update(t, m, catalogLoadedMsg{token: store.Snapshot().Activation, result: res})
	if m.snapshot.Phase != state.PhaseFailed {
		t.Fatalf("Phase = %v, want failed", m.snapshot.Phase)
	}
	if cmd == nil {
		t.Fatal("expected a log tail command on failure")
	}
	m, _ = update(t, m, cmd())

	view := m.View()
	for _, want := range []string{"Error: boom", "Restart dex", "catalog load failed"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View missing %q:\n%s", want, view)
		}
	}

	// No retry: list keys do nothing.
	m = press(t, m, "/", "s")
	if m.searching || m.query.Sort != catalog.SortIDAsc {
		t.Fatal("keys changed state after failure")
	}
}

func TestModel_EmptyStatesAreDistinct(t *testing.T) {
	empty := loadedModel(t, catalog.Result{Pokemon: []pokedex.Pokemon{}})
	if !strings.Contains(empty.View(), emptyCatalogText) {
		t.Fatalf("empty catalog view:\n%s", empty.View())
	}

	m := loadedModel(t, catalog.Result{Pokemon: samplePokemon()})
	m = press(t, m, "/", "z", "z", "z", "enter")
	view := m.View()
	if !strings.Contains(view, noMatchText) || strings.Contains(view, emptyCatalogText) {
		t.Fatalf("no-match view:\n%s", view)
	}
}

func TestModel_SearchFiltersLive(t *testing.T) {
	m := loadedModel(t, catalog.Result{Pokemon: samplePokemon()})

	m = press(t, m, "/")
	if !m.searching {
		t.Fatal("searching = false after /")
	}
	m = press(t, m, "p", "i")
	if want := []int{25, 172}; !equalInts(visibleIDs(m), want) {
		t.Fatalf("visible after 'pi' = %v, want %v", visibleIDs(m), want)
	}

	m = press(t, m, "enter")
	if m.searching || m.query.Search != "pi" {
		t.Fatalf("after enter searching=%v search=%q, want kept search", m.searching, m.query.Search)
	}

	m = press(t, m, "/", "esc")
	if m.query.Search != "" || len(m.visible) != 5 {
		t.Fatalf("after esc search=%q visible=%d, want cleared", m.query.Search, len(m.visible))
	}
}

func TestModel_QueryKeys(t *testing.T) {
	m := loadedModel(t, catalog.Result{Pokemon: samplePokemon(), Types: sampleTypes()})

	m = press(t, m, "s")
	if m.query.Sort != catalog.SortIDDesc {
		t.Fatalf("Sort = %v, want id desc", m.query.Sort)
	}
	if want := []int{172, 145, 133, 25, 23}; !equalInts(visibleIDs(m), want) {
		t.Fatalf("visible = %v, want %v", visibleIDs(m), want)
	}
	m = press(t, m, "S")
	if m.query.Sort != catalog.SortIDAsc {
		t.Fatalf("Sort = %v, want id asc", m.query.Sort)
	}

	m = press(t, m, "g", "g")
	if m.query.Generation != 2 {
		t.Fatalf("Generation = %d, want 2", m.query.Generation)
	}
	if want := []int{172}; !equalInts(visibleIDs(m), want) {
		t.Fatalf("visible = %v, want %v", visibleIDs(m), want)
	}

	m = press(t, m, "x", "t", "t")
	if m.query.TypeID != 3 {
		t.Fatalf("TypeID = %d, want 3 (second tag)", m.query.TypeID)
	}
	if want := []int{145}; !equalInts(visibleIDs(m), want) {
		t.Fatalf("visible = %v, want %v", visibleIDs(m), want)
	}

	m = press(t, m, "x")
	if m.query != (catalog.Query{}) || len(m.visible) != 5 {
		t.Fatalf("after reset query=%+v visible=%d", m.query, len(m.visible))
	}
}

func TestModel_LanguageToggleResortsByName(t *testing.T) {
	m := loadedModel(t, catalog.Result{Pokemon: samplePokemon()})
	m = press(t, m, "s", "s") // name ascending

	if want := []int{133, 23, 172, 25, 145}; !equalInts(visibleIDs(m), want) {
		t.Fatalf("english name order = %v, want %v", visibleIDs(m), want)
	}
	m = press(t, m, "L")
	if m.prefs.Language != pokedex.French {
		t.Fatalf("Language = %q, want fr", m.prefs.Language)
	}
	if want := []int{23, 145, 133, 172, 25}; !equalInts(visibleIDs(m), want) {
		t.Fatalf("french name order = %v, want %v", visibleIDs(m), want)
	}
	if !strings.Contains(m.View(), "Électhor") {
		t.Fatalf("View should use French names:\n%s", m.View())
	}
}

func TestModel_CursorStaysOnEntityAcrossResort(t *testing.T) {
	m := loadedModel(t, catalog.Result{Pokemon: samplePokemon()})
	m = press(t, m, "down") // 25
	if p, _ := m.highlighted(); p.ID != 25 {
		t.Fatalf("highlighted = %d, want 25", p.ID)
	}
	m = press(t, m, "s")
	if p, _ := m.highlighted(); p.ID != 25 {
		t.Fatalf("highlighted after resort = %d, want 25", p.ID)
	}

	m = press(t, m, "end")
	if m.cursor != len(m.visible)-1 {
		t.Fatalf("cursor = %d, want last", m.cursor)
	}
	m = press(t, m, "down", "home", "up")
	if m.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", m.cursor)
	}
}

func TestModel_DetailOpenCloseReopen(t *testing.T) {
	m := loadedModel(t, catalog.Result{Pokemon: samplePokemon(), Types: sampleTypes()})
	m = press(t, m, "down", "enter") // Pikachu

	if m.detail == nil || !m.selection.IsOpen() {
		t.Fatal("detail not open after enter")
	}
	view := m.View()
	for _, want := range []string{"#025 Pikachu", "Stats", "Evolves from", "#172 Pichu", "#026 Raichu", "Default"} {
		if !strings.Contains(view, want) {
			t.Fatalf("detail view missing %q:\n%s", want, view)
		}
	}

	m = press(t, m, "v")
	if m.prefs.Variant != pokedex.VariantShiny || !strings.Contains(m.View(), "Shiny") {
		t.Fatal("variant toggle did not reach the open detail")
	}

	m = press(t, m, "esc")
	if m.detail != nil || m.selection.IsOpen() {
		t.Fatal("detail still open after esc")
	}
	if p, ok := m.selection.Current(); !ok || p.ID != 25 {
		t.Fatalf("selection after close = %v %v, want 25 kept", p.ID, ok)
	}
	if m.prefs.Variant != pokedex.VariantShiny {
		t.Fatal("closing the detail reset the variant")
	}

	m = press(t, m, "d")
	if m.detail == nil || !m.selection.IsOpen() {
		t.Fatal("reopen did not open the detail")
	}
}

func TestModel_ReopenWithoutSelectionIsNoop(t *testing.T) {
	m := loadedModel(t, catalog.Result{Pokemon: samplePokemon()})
	m = press(t, m, "d")
	if m.detail != nil || m.selection.IsOpen() {
		t.Fatal("reopen opened a detail with nothing selected")
	}
}

func TestModel_HelpAndThemeCycle(t *testing.T) {
	m := loadedModel(t, catalog.Result{Pokemon: samplePokemon()})
	m = press(t, m, "?")
	if !m.showHelp || !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatal("help not shown")
	}
	m = press(t, m, "j")
	if m.showHelp {
		t.Fatal("any key should close help")
	}
	if m.cursor != 0 {
		t.Fatal("key that closed help also moved the cursor")
	}

	before := m.theme.Name
	m = press(t, m, "T")
	if m.theme.Name == before {
		t.Fatalf("theme still %q after T", before)
	}
	if _, err := os.Stat(m.prefsPath); err != nil {
		t.Fatalf("theme was not saved: %v", err)
	}
}

func TestModel_QuitKeys(t *testing.T) {
	m := loadedModel(t, catalog.Result{Pokemon: samplePokemon()})
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c returned nil cmd")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("ctrl+c did not quit")
	}

	// q is text while searching.
	m = press(t, m, "/", "q")
	if m.query.Search != "q" {
		t.Fatalf("search = %q, want q", m.query.Search)
	}
}
