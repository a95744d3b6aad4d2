package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/five82/dex/internal/catalog"
	"github.com/five82/dex/internal/config"
	"github.com/five82/dex/internal/logging"
	"github.com/five82/dex/internal/pokedex"
	"github.com/five82/dex/internal/prefs"
	"github.com/five82/dex/internal/state"
	"github.com/five82/dex/internal/ui"
)

// Options configure the dex application. Empty fields keep the value from
// the config file or environment.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/dex/prefs.toml
	Language   string // en or fr
	APIURL     string
}

// session holds everything Run builds before handing control to the UI.
type session struct {
	cfg    config.Config
	logger *zap.Logger
	client *pokedex.Client
	store  *state.Store
	ui     ui.Options
}

// Run boots the dex TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s, err := newSession(ctx, opts)
	if err != nil {
		return err
	}
	return s.run(cancel, ui.Run)
}

// run drives the UI, then cancels any in-flight fetch and closes the store so
// a late result is dropped.
func (s *session) run(cancel context.CancelFunc, runUI func(ui.Options) error) error {
	defer func() { _ = s.logger.Sync() }()

	s.logger.Info("dex starting",
		zap.String("api_url", s.client.BaseURL()),
		zap.String("language", string(s.ui.Language)),
		zap.Duration("request_timeout", s.cfg.RequestTimeout),
	)

	err := runUI(s.ui)
	cancel()
	s.store.Close()
	if err != nil {
		s.logger.Error("ui exited with error", zap.Error(err))
		return err
	}
	s.logger.Info("dex stopped", zap.Stringer("phase", s.store.Snapshot().Phase))
	return nil
}

func newSession(ctx context.Context, opts Options) (*session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := applyOverrides(&cfg, opts); err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn("prefs ignored", zap.String("path", opts.PrefsPath), zap.Error(err))
	}

	client, err := pokedex.NewClient(cfg.APIURL, pokedex.WithTimeout(cfg.RequestTimeout))
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("init pokedex client: %w", err)
	}

	store := &state.Store{}
	return &session{
		cfg:    cfg,
		logger: logger,
		client: client,
		store:  store,
		ui: ui.Options{
			Context:   ctx,
			Loader:    catalog.NewLoader(client, logger),
			Store:     store,
			Logger:    logger,
			Language:  cfg.DisplayLanguage(),
			ThemeName: userPrefs.Theme,
			PrefsPath: opts.PrefsPath,
			LogPath:   cfg.LogPath(),
		},
	}, nil
}

// applyOverrides layers command line flags over the loaded config.
func applyOverrides(cfg *config.Config, opts Options) error {
	if lang := strings.TrimSpace(opts.Language); lang != "" {
		parsed, err := pokedex.ParseLanguage(lang)
		if err != nil {
			return fmt.Errorf("flag -lang: %w", err)
		}
		cfg.Language = string(parsed)
	}
	if api := strings.TrimSpace(opts.APIURL); api != "" {
		cfg.APIURL = api
	}
	return nil
}
