package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/five82/dex/internal/logging"
	"github.com/five82/dex/internal/pokedex"
)

// ErrUnavailable is the single failure kind surfaced to the user.
var ErrUnavailable = errors.New("data unavailable")

const fallbackMessage = "An unknown error occurred"

// UnavailableError wraps whatever made either collection unreachable.
type UnavailableError struct {
	Cause error
}

func (e *UnavailableError) Error() string {
	if e.Cause == nil {
		return ErrUnavailable.Error()
	}
	return ErrUnavailable.Error() + ": " + e.Cause.Error()
}

// Unwrap exposes both the sentinel and the cause to errors.Is/As.
func (e *UnavailableError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrUnavailable}
	}
	return []error{ErrUnavailable, e.Cause}
}

// ErrorMessage returns the text shown to the user for a load failure: the
// underlying message when there is one, otherwise a generic fallback.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var ue *UnavailableError
	if errors.As(err, &ue) {
		if ue.Cause == nil {
			return fallbackMessage
		}
		err = ue.Cause
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return fallbackMessage
}

// Result is the outcome of one load. Either both collections are set and Err
// is nil, or Err is set and both collections are empty.
type Result struct {
	Pokemon []pokedex.Pokemon
	Types   []pokedex.Type
	Err     error
}

// Loader performs the one-shot fetch of both collections.
type Loader struct {
	fetcher pokedex.CatalogFetcher
	logger  *zap.Logger
}

// NewLoader builds a Loader. A nil logger discards log output.
func NewLoader(fetcher pokedex.CatalogFetcher, logger *zap.Logger) *Loader {
	return &Loader{fetcher: fetcher, logger: logging.OrNop(logger)}
}

// Load fetches entities and tags concurrently and waits for both. Any failure
// fails the whole load; a partial result is never returned.
func (l *Loader) Load(ctx context.Context, activation string) Result {
	logger := l.logger.With(zap.String("activation", activation))
	if l.fetcher == nil {
		logger.Error("catalog load skipped: no fetcher")
		return Result{Err: &UnavailableError{}}
	}

	start := time.Now()
	logger.Info("catalog load started")

	ctx = pokedex.WithRequestID(ctx, activation)
	g, gctx := errgroup.WithContext(ctx)

	var (
		pokemon []pokedex.Pokemon
		types   []pokedex.Type
	)
	g.Go(func() error {
		var err error
		pokemon, err = l.fetcher.FetchPokemon(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		types, err = l.fetcher.FetchTypes(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		logger.Warn("catalog load failed",
			zap.Error(err),
			zap.Duration("elapsed", time.Since(start)),
		)
		return Result{Err: &UnavailableError{Cause: err}}
	}

	logger.Info("catalog load finished",
		zap.Int("pokemon", len(pokemon)),
		zap.Int("types", len(types)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return Result{Pokemon: pokemon, Types: types}
}
