package tomato

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovieIDUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    MovieID
		wantErr bool
	}{
		{name: "string id", raw: `"770672122"`, want: "770672122"},
		{name: "numeric id", raw: `770672122`, want: "770672122"},
		{name: "object id", raw: `{"id": 1}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id MovieID
			err := json.Unmarshal([]byte(tt.raw), &id)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestMovieFromJSON(t *testing.T) {
	t.Run("well formed", func(t *testing.T) {
		movie, err := movieFromJSON([]byte(`{"id": 9, "title": "Brazil", "year": 1985}`))
		require.NoError(t, err)
		assert.Equal(t, "Brazil", movie.Title)
		assert.Equal(t, 1985, movie.Year)
	})

	t.Run("missing title is a mapping failure", func(t *testing.T) {
		_, err := movieFromJSON([]byte(`{"id": 9, "year": 1985}`))
		require.Error(t, err)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := movieFromJSON([]byte(`not json`))
		require.Error(t, err)
	})
}

func TestCastMemberFromJSON(t *testing.T) {
	member, err := castMemberFromJSON([]byte(`{"name": "Sigourney Weaver", "characters": ["Ripley"]}`))
	require.NoError(t, err)
	assert.Equal(t, "Sigourney Weaver", member.Name)

	_, err = castMemberFromJSON([]byte(`{"characters": ["Ripley"]}`))
	require.Error(t, err)
}

func TestReviewFromJSON(t *testing.T) {
	review, err := reviewFromJSON([]byte(`{"critic": "Pauline Kael", "freshness": "fresh"}`))
	require.NoError(t, err)
	assert.Equal(t, "Pauline Kael", review.Critic)
	assert.True(t, review.IsFresh())

	_, err = reviewFromJSON([]byte(`{"quote": "anonymous praise"}`))
	require.Error(t, err)
}

func TestMovieHelpers(t *testing.T) {
	movie := Movie{
		Links:        Links{Self: "http://example.com/movies/1.json"},
		AlternateIDs: AltIDs{IMDB: "0083658"},
	}

	assert.False(t, movie.HasID())
	assert.Equal(t, "http://example.com/movies/1.json", movie.SelfLink())
	assert.Equal(t, "0083658", movie.IMDBID())

	movie.ID = "1"
	assert.True(t, movie.HasID())
}
