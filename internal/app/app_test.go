package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/dex/internal/config"
	"github.com/five82/dex/internal/pokedex"
	"github.com/five82/dex/internal/state"
	"github.com/five82/dex/internal/ui"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{"DEX_API_URL", "DEX_LANGUAGE", "DEX_LOG_FILE", "DEX_LOG_LEVEL", "DEX_REQUEST_TIMEOUT"} {
		t.Setenv(key, "")
	}
	return home
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestNewSession_WiresConfigPrefsAndLogging(t *testing.T) {
	home := isolate(t)
	logPath := filepath.Join(home, "logs", "dex.log")
	cfgPath := filepath.Join(home, "config.toml")
	writeFile(t, cfgPath, "api_url = \"http://127.0.0.1:9\"\nlanguage = \"en\"\nlog_file = \""+logPath+"\"\nlog_level = \"debug\"\n")
	prefsPath := filepath.Join(home, "prefs.toml")
	writeFile(t, prefsPath, "theme = \"Slate\"\n")

	s, err := newSession(context.Background(), Options{ConfigPath: cfgPath, PrefsPath: prefsPath})
	if err != nil {
		t.Fatalf("newSession: %v", err)
	}
	defer s.store.Close()

	if s.ui.Language != pokedex.English {
		t.Fatalf("Language = %q, want en", s.ui.Language)
	}
	if s.ui.ThemeName != "Slate" {
		t.Fatalf("ThemeName = %q, want Slate", s.ui.ThemeName)
	}
	if s.ui.LogPath != logPath || s.ui.PrefsPath != prefsPath {
		t.Fatalf("paths = %q %q", s.ui.LogPath, s.ui.PrefsPath)
	}
	if s.ui.Store != s.store || s.ui.Loader == nil || s.ui.Logger == nil {
		t.Fatal("ui options missing store, loader or logger")
	}
	if got := s.store.Snapshot().Phase; got != state.PhaseIdle {
		t.Fatalf("Phase = %v, want idle until the UI starts", got)
	}

	s.logger.Info("session ready")
	_ = s.logger.Sync()
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("log file not created: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"session ready"`) {
		t.Fatalf("log file = %q, want session record", data)
	}
}

func TestNewSession_BadPrefsFallBackToDefaults(t *testing.T) {
	home := isolate(t)
	t.Setenv("DEX_LOG_FILE", filepath.Join(home, "dex.log"))
	prefsPath := filepath.Join(home, "prefs.toml")
	writeFile(t, prefsPath, "theme = [")

	s, err := newSession(context.Background(), Options{ConfigPath: filepath.Join(home, "missing.toml"), PrefsPath: prefsPath})
	if err != nil {
		t.Fatalf("newSession: %v", err)
	}
	defer s.store.Close()

	if s.ui.ThemeName != "Nightfox" {
		t.Fatalf("ThemeName = %q, want Nightfox", s.ui.ThemeName)
	}
	if s.ui.Language != pokedex.French {
		t.Fatalf("Language = %q, want fr default", s.ui.Language)
	}
}

func TestNewSession_ConfigErrorsAreFatal(t *testing.T) {
	home := isolate(t)
	cfgPath := filepath.Join(home, "config.toml")
	writeFile(t, cfgPath, "language = \"de\"\n")

	_, err := newSession(context.Background(), Options{ConfigPath: cfgPath})
	if err == nil || !strings.Contains(err.Error(), "load config") {
		t.Fatalf("newSession error = %v, want load config failure", err)
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := config.Default()
	if err := applyOverrides(&cfg, Options{Language: " EN ", APIURL: " http://localhost:3000 "}); err != nil {
		t.Fatalf("applyOverrides: %v", err)
	}
	if cfg.Language != "en" || cfg.APIURL != "http://localhost:3000" {
		t.Fatalf("cfg = %+v", cfg)
	}

	before := cfg
	if err := applyOverrides(&cfg, Options{}); err != nil {
		t.Fatalf("applyOverrides empty: %v", err)
	}
	if cfg != before {
		t.Fatalf("empty overrides changed cfg: %+v", cfg)
	}

	if err := applyOverrides(&cfg, Options{Language: "de"}); err == nil {
		t.Fatal("applyOverrides accepted an unsupported language")
	}
}

func TestSessionRun_CancelsContextAndClosesStoreOnExit(t *testing.T) {
	home := isolate(t)
	t.Setenv("DEX_LOG_FILE", filepath.Join(home, "dex.log"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s, err := newSession(ctx, Options{ConfigPath: filepath.Join(home, "missing.toml"), PrefsPath: filepath.Join(home, "prefs.toml")})
	if err != nil {
		t.Fatalf("newSession: %v", err)
	}

	var seen context.Context
	err = s.run(cancel, func(opts ui.Options) error {
		seen = opts.Context
		if seen.Err() != nil {
			t.Fatal("context cancelled before the UI exited")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if seen == nil || seen.Err() == nil {
		t.Fatal("context still live after the UI exited")
	}
	if !s.store.Closed() {
		t.Fatal("store not closed after the UI exited")
	}
	if _, ok := s.store.Begin(); ok {
		t.Fatal("closed store accepted a new load")
	}
}
