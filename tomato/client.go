package tomato

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"
	"go.uber.org/ratelimit"
)

// Default values for the client configuration.
const (
	// DefaultPageLimit is the number of results per page requested from
	// paginated endpoints when no other value is configured.
	DefaultPageLimit = 30

	// MaxListLimit is the server's maximum for the limit parameter on
	// list endpoints. Larger requested limits are clamped to it, matching
	// what the server itself would do.
	MaxListLimit = 50
)

// Client is a Rotten Tomatoes API client. All operations are read-only
// and perform at most one HTTP round trip. The API key and page limit
// may be changed between calls, but mutating them while calls are in
// flight is the caller's problem; the client does no locking.
type Client struct {
	host      string
	apiKey    string
	pageLimit int
	transport Transport
	limiter   ratelimit.Limiter
	logger    zerolog.Logger
}

// NewClient creates a new catalog client. The API key may be empty at
// construction time and supplied later via SetAPIKey; operations fail
// with ErrMissingAPIKey until it is set.
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) *Client {
	options := clientOptions{
		host:      DefaultHost,
		pageLimit: DefaultPageLimit,
	}
	for _, opt := range opts {
		opt(&options)
	}

	transport := options.transport
	if transport == nil {
		httpClient := options.httpClient
		if httpClient == nil && options.timeout > 0 {
			httpClient = &http.Client{Timeout: options.timeout}
		}
		transport = newHTTPTransport(httpClient)
	}

	return &Client{
		host:      options.host,
		apiKey:    apiKey,
		pageLimit: options.pageLimit,
		transport: transport,
		limiter:   options.limiter,
		logger:    logger,
	}
}

// APIKey returns the configured API key.
func (c *Client) APIKey() string {
	return c.apiKey
}

// SetAPIKey replaces the API key used for subsequent requests.
func (c *Client) SetAPIKey(key string) {
	c.apiKey = key
}

// PageLimit returns the configured results-per-page value.
func (c *Client) PageLimit() int {
	return c.pageLimit
}

// SetPageLimit sets the results-per-page value for paginated endpoints.
// Non-positive values are ignored.
func (c *Client) SetPageLimit(limit int) {
	if limit > 0 {
		c.pageLimit = limit
	}
}

// baseParams builds the parameter set every request carries.
func (c *Client) baseParams() (url.Values, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	return params, nil
}

// pagedParams builds parameters for a paginated endpoint. The page
// limit is held as an integer and stringified only here.
func (c *Client) pagedParams(page int) (url.Values, error) {
	params, err := c.baseParams()
	if err != nil {
		return nil, err
	}
	params.Set("page", strconv.Itoa(page))
	params.Set("page_limit", strconv.Itoa(c.pageLimit))
	return params, nil
}

// limitedParams builds parameters for a limit-bounded endpoint. A
// non-positive limit is omitted so the server default applies; values
// above MaxListLimit are clamped.
func (c *Client) limitedParams(limit int) (url.Values, error) {
	params, err := c.baseParams()
	if err != nil {
		return nil, err
	}
	if limit > 0 {
		if limit > MaxListLimit {
			limit = MaxListLimit
		}
		params.Set("limit", strconv.Itoa(limit))
	}
	return params, nil
}

// addCountry adds the country parameter when a value was supplied.
// An empty country means the server's default locale, never an explicit
// empty parameter.
func addCountry(params url.Values, country string) {
	if country != "" {
		params.Set("country", country)
	}
}

// SearchMovies searches the catalog for movies matching a plain text
// query. It returns one page of matches plus the total number of
// matches across all pages. Movies returned by search may carry no ID.
func (c *Client) SearchMovies(ctx context.Context, query string, page int) ([]Movie, int, error) {
	params, err := c.pagedParams(page)
	if err != nil {
		return nil, 0, err
	}
	params.Set("q", query)
	return c.fetchPaginated(ctx, epSearch, params)
}

// BoxOfficeMovies returns top box office earning movies, sorted by most
// recent weekend gross ticket sales. A limit above MaxListLimit is
// clamped; zero or negative means no limit parameter is sent.
func (c *Client) BoxOfficeMovies(ctx context.Context, country string, limit int) ([]Movie, error) {
	return c.fetchList(ctx, epBoxOffice, country, limit)
}

// InTheatersMovies returns one page of movies currently in theaters
// plus the total count.
func (c *Client) InTheatersMovies(ctx context.Context, country string, page int) ([]Movie, int, error) {
	return c.fetchPage(ctx, epInTheaters, country, page)
}

// OpeningMovies returns current opening movies.
func (c *Client) OpeningMovies(ctx context.Context, country string, limit int) ([]Movie, error) {
	return c.fetchList(ctx, epOpening, country, limit)
}

// UpcomingMovies returns one page of upcoming movies plus the total count.
func (c *Client) UpcomingMovies(ctx context.Context, country string, page int) ([]Movie, int, error) {
	return c.fetchPage(ctx, epUpcoming, country, page)
}

// TopRentals returns the current top DVD rentals.
func (c *Client) TopRentals(ctx context.Context, country string, limit int) ([]Movie, error) {
	return c.fetchList(ctx, epTopRentals, country, limit)
}

// CurrentReleaseDVDs returns one page of current release DVDs plus the
// total count.
func (c *Client) CurrentReleaseDVDs(ctx context.Context, country string, page int) ([]Movie, int, error) {
	return c.fetchPage(ctx, epCurrentDVDs, country, page)
}

// NewReleaseDVDs returns one page of new release DVDs plus the total count.
func (c *Client) NewReleaseDVDs(ctx context.Context, country string, page int) ([]Movie, int, error) {
	return c.fetchPage(ctx, epNewDVDs, country, page)
}

// UpcomingDVDs returns one page of upcoming DVDs plus the total count.
func (c *Client) UpcomingDVDs(ctx context.Context, country string, page int) ([]Movie, int, error) {
	return c.fetchPage(ctx, epUpcomingDVDs, country, page)
}

// MovieInfo returns detailed information for a movie obtained from
// search or one of the list endpoints. Resolution order is fixed: a
// primary ID wins over the self-link; the self-link is used verbatim as
// the request target; with neither present no request is issued and
// (nil, nil) is returned.
func (c *Client) MovieInfo(ctx context.Context, movie Movie) (*Movie, error) {
	switch {
	case movie.HasID():
		params, err := c.baseParams()
		if err != nil {
			return nil, err
		}
		ep := endpoint{path: movieInfoPath(movie.ID), kind: kindSingle}
		return c.fetchSingle(ctx, ep, params)
	case movie.SelfLink() != "":
		body, err := c.getURI(ctx, movie.SelfLink())
		if err != nil {
			return nil, err
		}
		return mapSingle(body)
	default:
		return nil, nil
	}
}

// SimilarMovies returns movies similar to the given one. The movie must
// carry a primary ID; similar listings have no self-link fallback.
func (c *Client) SimilarMovies(ctx context.Context, movie Movie, country string, limit int) ([]Movie, error) {
	if !movie.HasID() {
		return nil, &URIError{Host: c.host, Path: movieSimilarPath(""), Err: errNoMovieID}
	}
	ep := endpoint{path: movieSimilarPath(movie.ID), kind: kindLimited, country: true}
	return c.fetchList(ctx, ep, country, limit)
}

// MovieCast returns the full cast listing for a movie ID.
func (c *Client) MovieCast(ctx context.Context, movieID MovieID) ([]CastMember, error) {
	if movieID == "" {
		return nil, &URIError{Host: c.host, Path: movieCastPath(""), Err: errNoMovieID}
	}
	params, err := c.baseParams()
	if err != nil {
		return nil, err
	}
	body, err := c.get(ctx, movieCastPath(movieID), params)
	if err != nil {
		return nil, err
	}
	return c.decodeCast(body)
}

// MovieReviews returns one page of critic reviews for a movie ID.
//
// The reported total is always zero: the v1.0 reviews envelope has
// never yielded a usable total in practice, so the count is treated as
// absent rather than trusted. Callers paging through reviews should
// stop on the first empty page.
func (c *Client) MovieReviews(ctx context.Context, movieID MovieID, page int, country string) ([]Review, int, error) {
	if movieID == "" {
		return nil, 0, &URIError{Host: c.host, Path: movieReviewsPath(""), Err: errNoMovieID}
	}
	params, err := c.baseParams()
	if err != nil {
		return nil, 0, err
	}
	params.Set("page", strconv.Itoa(page))
	addCountry(params, country)

	body, err := c.get(ctx, movieReviewsPath(movieID), params)
	if err != nil {
		return nil, 0, err
	}
	reviews, err := c.decodeReviews(body)
	if err != nil {
		return nil, 0, err
	}
	return reviews, 0, nil
}

// fetchPage runs a paginated list endpoint call.
func (c *Client) fetchPage(ctx context.Context, ep endpoint, country string, page int) ([]Movie, int, error) {
	return c.fetchMovies(ctx, ep, country, page)
}

// fetchList runs a limit-bounded list endpoint call.
func (c *Client) fetchList(ctx context.Context, ep endpoint, country string, limit int) ([]Movie, error) {
	movies, _, err := c.fetchMovies(ctx, ep, country, limit)
	return movies, err
}

// fetchMovies services one movie-list endpoint call, building the
// parameters the endpoint's kind calls for. n is the page number for
// paginated endpoints and the limit for limit-bounded ones.
func (c *Client) fetchMovies(ctx context.Context, ep endpoint, country string, n int) ([]Movie, int, error) {
	var (
		params url.Values
		err    error
	)
	switch ep.kind {
	case kindPaginated:
		params, err = c.pagedParams(n)
	case kindLimited:
		params, err = c.limitedParams(n)
	default:
		return nil, 0, &URIError{Host: c.host, Path: ep.path, Err: errNotAList}
	}
	if err != nil {
		return nil, 0, err
	}
	if ep.country {
		addCountry(params, country)
	}

	if ep.kind == kindPaginated {
		return c.fetchPaginated(ctx, ep, params)
	}
	movies, err := c.fetchLimited(ctx, ep, params)
	return movies, 0, err
}
