package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/dex/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override dex config path (optional)")
	prefsPath := flag.String("prefs", "", "override prefs path (optional)")
	lang := flag.String("lang", "", "starting display language: en or fr (optional)")
	apiURL := flag.String("api", "", "override Pokédex API base URL (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		Language:   *lang,
		APIURL:     *apiURL,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "dex: %v\n", err)
		return 1
	}
	return 0
}
