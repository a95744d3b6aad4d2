// Package app is the composition root for dex.
//
// Run loads the config (file, then DEX_* environment, then command line
// overrides), opens the JSON log file, reads the stored theme, builds the
// Pokédex API client and catalog loader, and hands a fresh state.Store to the
// UI. The UI starts the single catalog load from Init; there is no polling and
// no retry. The store is closed when the UI exits so a late response is
// dropped.
//
//	Run()
//	 ├─> config.Load()          defaults, config.toml, DEX_* env
//	 ├─> applyOverrides()       -lang, -api
//	 ├─> logging.New()          zap JSON to the log file
//	 ├─> prefs.Load()           theme; errors are logged, not fatal
//	 ├─> pokedex.NewClient()    HTTP client with request timeout
//	 ├─> catalog.NewLoader()    concurrent fetch of both collections
//	 └─> ui.Run()               blocks until quit or signal
//
// Config and logging failures are returned to the caller. Catalog failures
// are shown in the UI.
package app
