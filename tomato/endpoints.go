package tomato

// DefaultHost is the Rotten Tomatoes API server.
const DefaultHost = "api.rottentomatoes.com"

const apiBase = "/api/public/v1.0"

// resultKind describes how an endpoint shapes its response.
type resultKind int

const (
	// kindPaginated endpoints return a page of items plus a total count.
	kindPaginated resultKind = iota
	// kindLimited endpoints return a capped list with no total; the cap
	// is applied server-side through the limit parameter.
	kindLimited
	// kindSingle endpoints return one JSON object, not an envelope.
	kindSingle
)

// endpoint associates a path with its response shape and whether the
// server honors a country parameter for it.
type endpoint struct {
	path    string
	kind    resultKind
	country bool
}

var (
	epSearch       = endpoint{path: apiBase + "/movies.json", kind: kindPaginated}
	epBoxOffice    = endpoint{path: apiBase + "/lists/movies/box_office.json", kind: kindLimited, country: true}
	epInTheaters   = endpoint{path: apiBase + "/lists/movies/in_theaters.json", kind: kindPaginated, country: true}
	epOpening      = endpoint{path: apiBase + "/lists/movies/opening.json", kind: kindLimited, country: true}
	epUpcoming     = endpoint{path: apiBase + "/lists/movies/upcoming.json", kind: kindPaginated, country: true}
	epTopRentals   = endpoint{path: apiBase + "/lists/dvds/top_rentals.json", kind: kindLimited, country: true}
	epCurrentDVDs  = endpoint{path: apiBase + "/lists/dvds/current_releases.json", kind: kindPaginated, country: true}
	epNewDVDs      = endpoint{path: apiBase + "/lists/dvds/new_releases.json", kind: kindPaginated, country: true}
	epUpcomingDVDs = endpoint{path: apiBase + "/lists/dvds/upcoming.json", kind: kindPaginated, country: true}
)

const movieInfoBase = apiBase + "/movies"

func movieInfoPath(id MovieID) string {
	return movieInfoBase + "/" + string(id) + ".json"
}

func movieSimilarPath(id MovieID) string {
	return movieInfoBase + "/" + string(id) + "/similar.json"
}

func movieCastPath(id MovieID) string {
	return movieInfoBase + "/" + string(id) + "/cast.json"
}

func movieReviewsPath(id MovieID) string {
	return movieInfoBase + "/" + string(id) + "/reviews.json"
}
