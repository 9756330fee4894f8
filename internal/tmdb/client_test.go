package tmdb

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &Client{
		baseURL: srv.URL,
		apiKey:  "test-key",
		client:  srv.Client(),
	}
}

func TestPopular(t *testing.T) {
	var gotQuery url.Values
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/popular", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Write([]byte(`{
			"page": 2,
			"results": [{"id": 603, "title": "The Matrix", "genre_ids": [28, 878]}],
			"total_pages": 40,
			"total_results": 800
		}`))
	})

	page, err := client.Popular(2)
	require.NoError(t, err)

	assert.Equal(t, "test-key", gotQuery.Get("api_key"))
	assert.Equal(t, "en-US", gotQuery.Get("language"))
	assert.Equal(t, "2", gotQuery.Get("page"))

	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 40, page.TotalPages)
	assert.Equal(t, 800, page.TotalResults)
	require.Len(t, page.Results, 1)
	assert.Equal(t, int64(603), page.Results[0].ID)
	assert.Equal(t, []int{28, 878}, page.Results[0].GenreIDs)
}

func TestSearch(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "blade runner", r.URL.Query().Get("query"))
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		w.Write([]byte(`{"page": 1, "results": [], "total_pages": 1, "total_results": 0}`))
	})

	page, err := client.Search("blade runner", 1)
	require.NoError(t, err)
	assert.Empty(t, page.Results)
}

func TestDiscoverParams(t *testing.T) {
	var gotQuery url.Values
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/discover/movie", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"page": 1, "results": [], "total_pages": 1, "total_results": 0}`))
	})

	_, err := client.Discover(DiscoverOptions{
		GenreIDs:  []int{878, 28},
		Year:      2021,
		MinRating: 7.5,
		SortKey:   "vote_average.desc",
		Page:      3,
	})
	require.NoError(t, err)

	assert.Equal(t, "878,28", gotQuery.Get("with_genres"))
	assert.Equal(t, "2021", gotQuery.Get("primary_release_year"))
	assert.Equal(t, "7.5", gotQuery.Get("vote_average.gte"))
	assert.Equal(t, "vote_average.desc", gotQuery.Get("sort_by"))
	assert.Equal(t, "3", gotQuery.Get("page"))
}

func TestDiscoverDefaults(t *testing.T) {
	var gotQuery url.Values
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"page": 1, "results": [], "total_pages": 1, "total_results": 0}`))
	})

	_, err := client.Discover(DiscoverOptions{})
	require.NoError(t, err)

	assert.Equal(t, "popularity.desc", gotQuery.Get("sort_by"))
	assert.Equal(t, "1", gotQuery.Get("page"))
	assert.False(t, gotQuery.Has("with_genres"))
	assert.False(t, gotQuery.Has("primary_release_year"))
	assert.False(t, gotQuery.Has("vote_average.gte"))
}

func TestNon200Status(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.Popular(1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestListPathsDegradeIdentically(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	fetches := map[string]func() (*Page, error){
		"popular":  func() (*Page, error) { return client.Popular(1) },
		"search":   func() (*Page, error) { return client.Search("x", 1) },
		"discover": func() (*Page, error) { return client.Discover(DiscoverOptions{}) },
	}
	for name, fetch := range fetches {
		page, err := fetch()
		require.Error(t, err, name)
		assert.Nil(t, page, name)
		assert.Contains(t, err.Error(), "502", name)
	}
}

func TestMalformedPayload(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"page": `))
	})

	_, err := client.Search("x", 1)
	require.Error(t, err)
}

func TestDetailsAndCredits(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/movie/27205":
			w.Write([]byte(`{
				"id": 27205,
				"title": "Inception",
				"runtime": 148,
				"genres": [{"id": 878, "name": "Science Fiction"}]
			}`))
		case "/movie/27205/credits":
			w.Write([]byte(`{
				"id": 27205,
				"cast": [{"id": 6193, "name": "Leonardo DiCaprio", "character": "Cobb"}],
				"crew": [
					{"id": 947, "name": "Hans Zimmer", "job": "Original Music Composer"},
					{"id": 525, "name": "Christopher Nolan", "job": "Director"}
				]
			}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})

	details, credits, err := client.DetailsAndCredits(27205)
	require.NoError(t, err)

	assert.Equal(t, "Inception", details.Title)
	assert.Equal(t, 148, details.Runtime)
	assert.Equal(t, "Christopher Nolan", credits.Director())
	require.Len(t, credits.TopCast(10), 1)
	assert.Equal(t, "Cobb", credits.TopCast(10)[0].Character)
}

func TestDetailsAndCreditsFailsWhenEitherFails(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/movie/1/credits" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"id": 1, "title": "Fine"}`))
	})

	_, _, err := client.DetailsAndCredits(1)
	require.Error(t, err)
}

func TestDirectorMissing(t *testing.T) {
	c := Credits{Crew: []CrewMember{{Name: "X", Job: "Producer"}}}
	assert.Equal(t, "", c.Director())
}
