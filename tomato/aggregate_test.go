package tomato

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newServerClient points a client with a real HTTP transport at a test
// server handler.
func newServerClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	host := strings.TrimPrefix(server.URL, "http://")
	return NewClient("test-key", zerolog.Nop(), WithHost(host))
}

func TestPaginatedEnvelopeShape(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, epSearch.path, r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		w.Write([]byte(`{
			"movies": [
				{"id": 12345, "title": "Alien", "year": 1979},
				{"id": "12346", "title": "Aliens", "year": 1986}
			],
			"total": 87
		}`))
	})

	movies, total, err := client.SearchMovies(context.Background(), "alien", 1)
	require.NoError(t, err)

	assert.Len(t, movies, 2)
	assert.Equal(t, 87, total)
	assert.Equal(t, MovieID("12345"), movies[0].ID)
	assert.Equal(t, MovieID("12346"), movies[1].ID)
	assert.Equal(t, "Alien", movies[0].Title)
}

func TestBatchResilience(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"movies": [
				{"id": 1, "title": "First"},
				{"id": 2, "year": 2001},
				{"id": 3, "title": "Third"}
			],
			"total": 3
		}`))
	})

	movies, total, err := client.InTheatersMovies(context.Background(), "", 1)
	require.NoError(t, err)

	// The malformed middle entry is dropped, survivors keep their order,
	// and the total still reports what the envelope said.
	require.Len(t, movies, 2)
	assert.Equal(t, "First", movies[0].Title)
	assert.Equal(t, "Third", movies[1].Title)
	assert.Equal(t, 3, total)
}

func TestLimitedFetchDoesNotTruncate(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		// Server ignoring the limit is the server's business.
		w.Write([]byte(`{"movies": [
			{"title": "A"}, {"title": "B"}, {"title": "C"}
		]}`))
	})

	movies, err := client.BoxOfficeMovies(context.Background(), "", 2)
	require.NoError(t, err)
	assert.Len(t, movies, 3)
}

func TestMalformedEnvelope(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{name: "missing movies array", body: `{"total": 5}`, wantField: "movies"},
		{name: "missing total", body: `{"movies": []}`, wantField: "total"},
		{name: "not json", body: `<html>quota exceeded</html>`, wantField: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})

			movies, _, err := client.UpcomingMovies(context.Background(), "", 1)
			var respErr *ResponseError
			require.ErrorAs(t, err, &respErr)
			assert.Equal(t, tt.wantField, respErr.Field)
			// Terminal errors carry no partial results.
			assert.Nil(t, movies)
		})
	}
}

func TestLimitedMissingArrayIsFatal(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": "service unavailable"}`))
	})

	_, err := client.TopRentals(context.Background(), "", 10)
	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, "movies", respErr.Field)
}

func TestServerErrorStatus(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	})

	_, _, err := client.SearchMovies(context.Background(), "dune", 1)
	var trErr *TransportError
	require.ErrorAs(t, err, &trErr)
	assert.Equal(t, http.StatusForbidden, trErr.StatusCode)
	assert.True(t, trErr.IsForbidden())
}

func TestMovieCast(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, movieInfoBase+"/770672122/cast.json", r.URL.Path)
		w.Write([]byte(`{"cast": [
			{"id": 162655641, "name": "Tom Hanks", "characters": ["Woody"]},
			{"characters": ["nobody"]},
			{"id": 162655020, "name": "Tim Allen", "characters": ["Buzz Lightyear"]}
		]}`))
	})

	cast, err := client.MovieCast(context.Background(), "770672122")
	require.NoError(t, err)

	require.Len(t, cast, 2)
	assert.Equal(t, "Tom Hanks", cast[0].Name)
	assert.Equal(t, []string{"Woody"}, cast[0].Characters)
	assert.Equal(t, "Tim Allen", cast[1].Name)
}

func TestMovieReviews(t *testing.T) {
	var query url.Values
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		assert.Equal(t, movieInfoBase+"/770672122/reviews.json", r.URL.Path)
		w.Write([]byte(`{
			"reviews": [
				{"critic": "Roger Ebert", "freshness": "fresh", "quote": "A joy."},
				{"critic": "A. Nonymous", "freshness": "rotten"}
			],
			"total": 173
		}`))
	})

	reviews, total, err := client.MovieReviews(context.Background(), "770672122", 2, "uk")
	require.NoError(t, err)

	require.Len(t, reviews, 2)
	assert.Equal(t, "Roger Ebert", reviews[0].Critic)
	assert.True(t, reviews[0].IsFresh())
	assert.False(t, reviews[1].IsFresh())
	// The reviews total is reported as absent regardless of the envelope.
	assert.Zero(t, total)
	assert.Equal(t, "2", query.Get("page"))
	assert.Equal(t, "uk", query.Get("country"))
}

func TestMovieReviewsMissingArray(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total": 173}`))
	})

	_, _, err := client.MovieReviews(context.Background(), "770672122", 1, "")
	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, "reviews", respErr.Field)
}

func TestMovieInfoOverHTTP(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, movieInfoBase+"/770672122.json", r.URL.Path)
		w.Write([]byte(`{
			"id": 770672122,
			"title": "Toy Story 3",
			"year": 2010,
			"mpaa_rating": "G",
			"runtime": 103,
			"ratings": {"critics_rating": "Certified Fresh", "critics_score": 99, "audience_score": 91},
			"release_dates": {"theater": "2010-06-18", "dvd": "2010-11-02"},
			"alternate_ids": {"imdb": "0435761"},
			"links": {"self": "http://example.com/movies/770672122.json"}
		}`))
	})

	movie, err := client.MovieInfo(context.Background(), Movie{ID: "770672122"})
	require.NoError(t, err)
	require.NotNil(t, movie)

	assert.Equal(t, "Toy Story 3", movie.Title)
	assert.Equal(t, 2010, movie.Year)
	assert.Equal(t, 103, movie.Runtime)
	assert.Equal(t, 99, movie.Ratings.CriticsScore)
	assert.Equal(t, "2010-06-18", movie.ReleaseDates.Theater)
	assert.Equal(t, "0435761", movie.IMDBID())
	assert.True(t, movie.HasID())
}
