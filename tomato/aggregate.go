package tomato

import (
	"context"
	"encoding/json"
	"net/url"
)

// listEnvelope is the top-level JSON object wrapping list responses.
// Items are kept raw so a malformed entry can be dropped without
// failing the whole batch. Pointer fields distinguish a missing field
// from an empty one.
type listEnvelope struct {
	Movies  *[]json.RawMessage `json:"movies"`
	Cast    *[]json.RawMessage `json:"cast"`
	Reviews *[]json.RawMessage `json:"reviews"`
	Total   *int               `json:"total"`
}

// get issues one request against an endpoint path with the given
// parameters and returns the raw body.
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	uri, err := c.transport.BuildURI(c.host, path, params)
	if err != nil {
		return nil, err
	}
	return c.getURI(ctx, uri)
}

// getURI issues one request against a complete, pre-built target such
// as a self-link. The rate limiter, when configured, paces every
// request through here.
func (c *Client) getURI(ctx context.Context, uri string) ([]byte, error) {
	if c.limiter != nil {
		c.limiter.Take()
	}
	c.logger.Debug().Str("uri", uri).Msg("Making catalog API request")
	return c.transport.Get(ctx, uri)
}

// fetchPaginated services exactly one page of a paginated endpoint.
// The envelope must carry both the movies array and an integer total;
// either missing is fatal for the call. The returned total is the
// envelope's, independent of how many entries survived mapping.
func (c *Client) fetchPaginated(ctx context.Context, ep endpoint, params url.Values) ([]Movie, int, error) {
	body, err := c.get(ctx, ep.path, params)
	if err != nil {
		return nil, 0, err
	}

	var env listEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, 0, &ResponseError{Err: err}
	}
	if env.Movies == nil {
		return nil, 0, &ResponseError{Field: "movies"}
	}
	if env.Total == nil {
		return nil, 0, &ResponseError{Field: "total"}
	}

	return c.mapMovies(*env.Movies), *env.Total, nil
}

// fetchLimited services a limit-bounded endpoint. The limit was applied
// at parameter-building time; the server is trusted to honor it and no
// client-side truncation happens here.
func (c *Client) fetchLimited(ctx context.Context, ep endpoint, params url.Values) ([]Movie, error) {
	body, err := c.get(ctx, ep.path, params)
	if err != nil {
		return nil, err
	}

	var env listEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &ResponseError{Err: err}
	}
	if env.Movies == nil {
		return nil, &ResponseError{Field: "movies"}
	}

	return c.mapMovies(*env.Movies), nil
}

// fetchSingle services a single-object endpoint. The body is one JSON
// object rather than an envelope; a mapping failure here is fatal for
// the call.
func (c *Client) fetchSingle(ctx context.Context, ep endpoint, params url.Values) (*Movie, error) {
	body, err := c.get(ctx, ep.path, params)
	if err != nil {
		return nil, err
	}
	return mapSingle(body)
}

// mapSingle maps a single-object response body into a movie.
func mapSingle(body []byte) (*Movie, error) {
	movie, err := movieFromJSON(body)
	if err != nil {
		return nil, &ResponseError{Err: err}
	}
	return &movie, nil
}

// mapMovies converts raw entries into movies, dropping entries that
// fail to map and keeping the survivors in their original order.
func (c *Client) mapMovies(raws []json.RawMessage) []Movie {
	movies := make([]Movie, 0, len(raws))
	for _, raw := range raws {
		movie, err := movieFromJSON(raw)
		if err != nil {
			c.logger.Debug().Err(err).Msg("Skipping malformed movie entry")
			continue
		}
		movies = append(movies, movie)
	}
	return movies
}

// decodeCast parses a cast envelope, applying the same drop-on-failure
// policy per entry.
func (c *Client) decodeCast(body []byte) ([]CastMember, error) {
	var env listEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &ResponseError{Err: err}
	}
	if env.Cast == nil {
		return nil, &ResponseError{Field: "cast"}
	}

	cast := make([]CastMember, 0, len(*env.Cast))
	for _, raw := range *env.Cast {
		member, err := castMemberFromJSON(raw)
		if err != nil {
			c.logger.Debug().Err(err).Msg("Skipping malformed cast entry")
			continue
		}
		cast = append(cast, member)
	}
	return cast, nil
}

// decodeReviews parses a reviews envelope.
func (c *Client) decodeReviews(body []byte) ([]Review, error) {
	var env listEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &ResponseError{Err: err}
	}
	if env.Reviews == nil {
		return nil, &ResponseError{Field: "reviews"}
	}

	reviews := make([]Review, 0, len(*env.Reviews))
	for _, raw := range *env.Reviews {
		review, err := reviewFromJSON(raw)
		if err != nil {
			c.logger.Debug().Err(err).Msg("Skipping malformed review entry")
			continue
		}
		reviews = append(reviews, review)
	}
	return reviews, nil
}
