// Package config loads dex's startup configuration.
//
// # Resolution
//
// Values are layered, later layers winning:
//
//  1. Built-in defaults (see Default)
//  2. The TOML file at the given path, or ~/.config/dex/config.toml
//  3. DEX_* environment variables
//
// Command-line flags are applied on top by cmd/dex. A missing config file is
// not an error; an unreadable or malformed one is.
//
// # File format
//
//	api_url = "https://pokedex-api.3rgo.tech"
//	language = "fr"                        # en or fr
//	log_file = "~/.local/state/dex/dex.log"
//	log_level = "info"
//	request_timeout = "15s"                # "0s" disables the timeout
//
// # Environment
//
//   - DEX_API_URL
//   - DEX_LANGUAGE
//   - DEX_LOG_FILE
//   - DEX_LOG_LEVEL
//   - DEX_REQUEST_TIMEOUT (Go duration syntax)
//
// Empty strings in the file are treated as unset. Paths starting with "~" are
// expanded against the user's home directory and made absolute.
package config
