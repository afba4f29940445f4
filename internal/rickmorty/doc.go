// Package rickmorty provides an HTTP client for the Rick and Morty REST API.
//
// # Overview
//
// The client covers the two read-only endpoints morty needs:
//
//   - GET /character?page=N: one page of the character listing
//   - GET /character/{id}: a single character
//
// Both return JSON decoded into Character / CharacterPage. Required fields
// (id, name, status, species, gender, image) must be present; "type" may be
// empty.
//
// # Client Usage
//
//	client, err := rickmorty.NewClient("https://rickandmortyapi.com/api/",
//		rickmorty.WithTimeout(10*time.Second),
//		rickmorty.WithRateLimit(5),
//	)
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//	defer client.Close()
//
//	page, err := client.FetchCharacters(ctx, 1)
//
// The base URL is always passed in explicitly; there is no process-wide
// client instance.
//
// # Errors
//
// Every failure is one of two kinds:
//
//   - *NetworkError: DNS, refused connection, timeout, cancellation or a
//     non-2xx status (StatusCode set, a 404 is not special-cased)
//   - *DecodeError: the body does not match the expected schema
//
// Requests are never retried. Classify and Describe turn an error into a
// display summary without exposing the raw error text.
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation
//   - Set Accept: application/json and a morty/* User-Agent
//   - Pass through an optional go.uber.org/ratelimit limiter
//   - Log at debug level (warn on failure) with op, url, status and elapsed
//     fields
package rickmorty
