package tomato

import (
	"encoding/json"
	"fmt"
)

// MovieID is a primary identifier assigned by the catalog service.
// The API is inconsistent about whether ids arrive as JSON strings or
// numbers, so both are accepted.
type MovieID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *MovieID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = MovieID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("movie id must be a string or number: %s", string(b))
	}
	*id = MovieID(n.String())
	return nil
}

// Links holds the hypermedia links attached to an entity. Self points
// back to the entity's own detail resource and can be used verbatim as
// a request target.
type Links struct {
	Self      string `json:"self,omitempty"`
	Alternate string `json:"alternate,omitempty"`
	Cast      string `json:"cast,omitempty"`
	Clips     string `json:"clips,omitempty"`
	Reviews   string `json:"reviews,omitempty"`
	Similar   string `json:"similar,omitempty"`
	Review    string `json:"review,omitempty"`
}

// Ratings holds critics and audience scores for a movie.
type Ratings struct {
	CriticsRating  string `json:"critics_rating,omitempty"`
	CriticsScore   int    `json:"critics_score,omitempty"`
	AudienceRating string `json:"audience_rating,omitempty"`
	AudienceScore  int    `json:"audience_score,omitempty"`
}

// ReleaseDates holds theater and DVD release dates as reported by the
// service (YYYY-MM-DD).
type ReleaseDates struct {
	Theater string `json:"theater,omitempty"`
	DVD     string `json:"dvd,omitempty"`
}

// Posters holds poster image URLs in the sizes the service provides.
type Posters struct {
	Thumbnail string `json:"thumbnail,omitempty"`
	Profile   string `json:"profile,omitempty"`
	Detailed  string `json:"detailed,omitempty"`
	Original  string `json:"original,omitempty"`
}

// AltIDs holds identifiers for the movie in other catalogs.
type AltIDs struct {
	IMDB string `json:"imdb,omitempty"`
}

// Movie represents a catalog movie. Movies returned by the search
// endpoint may carry no ID; detail lookups then fall back to the
// self-link. Movies are never mutated after mapping.
type Movie struct {
	ID               MovieID      `json:"id,omitempty"`
	Title            string       `json:"title"`
	Year             int          `json:"year,omitempty"`
	MPAARating       string       `json:"mpaa_rating,omitempty"`
	Runtime          int          `json:"runtime,omitempty"`
	CriticsConsensus string       `json:"critics_consensus,omitempty"`
	ReleaseDates     ReleaseDates `json:"release_dates,omitempty"`
	Ratings          Ratings      `json:"ratings,omitempty"`
	Synopsis         string       `json:"synopsis,omitempty"`
	Posters          Posters      `json:"posters,omitempty"`
	AbridgedCast     []CastMember `json:"abridged_cast,omitempty"`
	AlternateIDs     AltIDs       `json:"alternate_ids,omitempty"`
	Links            Links        `json:"links,omitempty"`
}

// HasID checks whether the movie carries a primary identifier.
func (m *Movie) HasID() bool {
	return m.ID != ""
}

// SelfLink returns the movie's self-referential detail link, if any.
func (m *Movie) SelfLink() string {
	return m.Links.Self
}

// IMDBID returns the movie's IMDB identifier, if the service supplied one.
func (m *Movie) IMDBID() string {
	return m.AlternateIDs.IMDB
}

// CastMember represents one entry of a movie's abridged cast listing.
type CastMember struct {
	ID         MovieID  `json:"id,omitempty"`
	Name       string   `json:"name"`
	Characters []string `json:"characters,omitempty"`
}

// Review represents a single critic review of a movie.
type Review struct {
	Critic      string `json:"critic"`
	Date        string `json:"date,omitempty"`
	Freshness   string `json:"freshness,omitempty"`
	Publication string `json:"publication,omitempty"`
	Quote       string `json:"quote,omitempty"`
	Links       Links  `json:"links,omitempty"`
}

// IsFresh checks whether the review rated the movie fresh.
func (r *Review) IsFresh() bool {
	return r.Freshness == "fresh"
}

// movieFromJSON maps one JSON object into a Movie. A movie without a
// title is treated as a mapping failure rather than returned as a
// zero-valued record.
func movieFromJSON(raw []byte) (Movie, error) {
	var m Movie
	if err := json.Unmarshal(raw, &m); err != nil {
		return Movie{}, fmt.Errorf("cannot decode movie entry: %w", err)
	}
	if m.Title == "" {
		return Movie{}, fmt.Errorf("movie entry has no title")
	}
	return m, nil
}

// castMemberFromJSON maps one JSON object into a CastMember.
func castMemberFromJSON(raw []byte) (CastMember, error) {
	var cm CastMember
	if err := json.Unmarshal(raw, &cm); err != nil {
		return CastMember{}, fmt.Errorf("cannot decode cast entry: %w", err)
	}
	if cm.Name == "" {
		return CastMember{}, fmt.Errorf("cast entry has no name")
	}
	return cm, nil
}

// reviewFromJSON maps one JSON object into a Review.
func reviewFromJSON(raw []byte) (Review, error) {
	var r Review
	if err := json.Unmarshal(raw, &r); err != nil {
		return Review{}, fmt.Errorf("cannot decode review entry: %w", err)
	}
	if r.Critic == "" {
		return Review{}, fmt.Errorf("review entry has no critic")
	}
	return r, nil
}
