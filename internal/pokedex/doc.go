// Package pokedex provides an HTTP client for the public Pokédex API.
//
// # Overview
//
// The client fetches the two read-only collections dex renders: the Pokémon
// entity list and the type tag list. Both endpoints wrap their payload in a
// top-level "data" array.
//
//   - GET /api/pokemon: { "data": Pokemon[] }
//   - GET /api/types:   { "data": Type[] }
//
// # Client Usage
//
//	client, err := pokedex.NewClient("https://pokedex-api.3rgo.tech",
//		pokedex.WithTimeout(15*time.Second))
//	if err != nil {
//		return err
//	}
//	pokemon, err := client.FetchPokemon(ctx)
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation
//   - Set Accept: application/json and User-Agent: dex/0.1
//   - Carry X-Request-ID when the context was tagged with WithRequestID
//   - Treat any non-2xx status as a failure
//
// Example error messages:
//   - "execute request: dial tcp: connection refused"
//   - "api /api/types returned status 503"
//   - "decode response: unexpected EOF"
//
// # Translations
//
// Display strings arrive as {"en": ..., "fr": ...} objects. They decode into
// the fixed-shape Names record; Names.In picks the field for a Language.
//
// # Thread Safety
//
// The Client is safe for concurrent use; the catalog loader issues both
// requests in parallel on one Client.
package pokedex
