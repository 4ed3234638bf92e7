// Package tomato provides a client for the Rotten Tomatoes v1.0 JSON API.
//
// The API is read-only; every client operation issues at most one HTTP
// request and maps the response into typed domain entities.
//
// # Usage
//
// Create a client with your API key:
//
//	logger := zerolog.New(os.Stderr)
//	client := tomato.NewClient("your-api-key", logger,
//		tomato.WithPageLimit(30),
//		tomato.WithRateLimit(5),
//	)
//
//	ctx := context.Background()
//	movies, total, err := client.SearchMovies(ctx, "blade runner", 1)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Paginated operations (search, in theaters, upcoming, DVD lists)
// return one page plus the total count across all pages; the caller
// pages by incrementing the page argument. Limit-bounded operations
// (box office, opening, top rentals, similar) return a capped list;
// a limit above 50 is clamped to the server maximum, and a limit of
// zero or less leaves the cap to the server.
//
// Detail lookups resolve from whatever the source entity carries:
//
//	detailed, err := client.MovieInfo(ctx, movie)
//
// uses the movie's primary ID when present, otherwise its self-link
// verbatim; with neither it issues no request and returns (nil, nil).
//
// # Error Handling
//
// The package distinguishes four failure classes:
//
//   - ErrMissingAPIKey: no API key configured
//   - URIError: the request target could not be built
//   - TransportError: network failure or non-success HTTP status
//   - ResponseError: envelope missing an expected field
//
// A malformed individual entry inside a result array is not an error:
// the entry is dropped and the call succeeds with the remainder. The
// total reported by paginated endpoints always comes from the envelope,
// so it may exceed the number of entries returned.
package tomato
