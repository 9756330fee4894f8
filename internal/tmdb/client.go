// Package tmdb is the client for the TMDB v3 HTTP API: popular listing,
// free-text search, filtered discover, and per-movie detail/credits.
package tmdb

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"

	"filmcheck/internal/movie"
)

const (
	defaultBaseURL = "https://api.themoviedb.org/3"

	// ImageBaseURL is joined with relative poster paths for display.
	ImageBaseURL = "https://image.tmdb.org/t/p/w500"
)

// Page is the provider's list envelope.
type Page struct {
	Page         int           `json:"page"`
	Results      []movie.Movie `json:"results"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
}

// CastMember is one billed actor.
type CastMember struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Character string `json:"character"`
}

// CrewMember is one crew credit.
type CrewMember struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Job  string `json:"job"`
}

// Credits is the credits endpoint payload.
type Credits struct {
	ID   int64        `json:"id"`
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// Director returns the name of the first crew member credited as Director,
// or "" when there is none.
func (c Credits) Director() string {
	for _, member := range c.Crew {
		if member.Job == "Director" {
			return member.Name
		}
	}
	return ""
}

// TopCast returns at most n cast members in billing order.
func (c Credits) TopCast(n int) []CastMember {
	if len(c.Cast) < n {
		n = len(c.Cast)
	}
	return c.Cast[:n]
}

// Client issues requests against the TMDB API.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient creates a client for the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Popular fetches one page of the popular listing.
func (c *Client) Popular(page int) (*Page, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))

	var out Page
	if err := c.get("/movie/popular", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Search fetches one page of free-text search results.
func (c *Client) Search(query string, page int) (*Page, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))

	var out Page
	if err := c.get("/search/movie", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DiscoverOptions are the discover query's criteria. Zero values are
// omitted from the request; an empty SortKey falls back to popularity
// descending.
type DiscoverOptions struct {
	GenreIDs  []int
	Year      int
	MinRating float64
	SortKey   string
	Page      int
}

// Discover fetches one page of a server-side filtered/sorted listing.
func (c *Client) Discover(opts DiscoverOptions) (*Page, error) {
	sortKey := opts.SortKey
	if sortKey == "" {
		sortKey = "popularity.desc"
	}
	page := opts.Page
	if page == 0 {
		page = 1
	}

	params := url.Values{}
	params.Set("sort_by", sortKey)
	params.Set("page", strconv.Itoa(page))
	if len(opts.GenreIDs) > 0 {
		ids := make([]string, 0, len(opts.GenreIDs))
		for _, id := range opts.GenreIDs {
			ids = append(ids, strconv.Itoa(id))
		}
		params.Set("with_genres", strings.Join(ids, ","))
	}
	if opts.Year != 0 {
		params.Set("primary_release_year", strconv.Itoa(opts.Year))
	}
	if opts.MinRating != 0 {
		params.Set("vote_average.gte", strconv.FormatFloat(opts.MinRating, 'f', -1, 64))
	}

	var out Page
	if err := c.get("/discover/movie", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Details fetches the detail record for one movie.
func (c *Client) Details(id int64) (*movie.Movie, error) {
	var out movie.Movie
	if err := c.get(fmt.Sprintf("/movie/%d", id), url.Values{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MovieCredits fetches the credits for one movie.
func (c *Client) MovieCredits(id int64) (*Credits, error) {
	var out Credits
	if err := c.get(fmt.Sprintf("/movie/%d/credits", id), url.Values{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DetailsAndCredits fetches detail and credits concurrently. A failure in
// either fails the pair.
func (c *Client) DetailsAndCredits(id int64) (*movie.Movie, *Credits, error) {
	var (
		details *movie.Movie
		credits *Credits
	)

	p := pool.New().WithErrors()
	p.Go(func() error {
		var err error
		details, err = c.Details(id)
		return err
	})
	p.Go(func() error {
		var err error
		credits, err = c.MovieCredits(id)
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, nil, err
	}
	return details, credits, nil
}

// get performs one GET round trip and decodes the JSON body into dst. Every
// request carries the API key and language; there is no retry logic.
func (c *Client) get(path string, params url.Values, dst any) error {
	params.Set("api_key", c.apiKey)
	params.Set("language", "en-US")

	req, err := http.NewRequest("GET", c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return fmt.Errorf("request to %s failed with status code: %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}
