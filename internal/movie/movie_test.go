package movie

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeListShape(t *testing.T) {
	m := Normalize(Movie{
		ID:       603,
		Title:    "The Matrix",
		GenreIDs: []int{28, 878},
	})

	assert.Equal(t, []int{28, 878}, m.GenreIDs)
	assert.Equal(t, []string{"Action", "Science Fiction"}, m.GenreNames)
}

func TestNormalizeDropsUnknownIDs(t *testing.T) {
	m := Normalize(Movie{GenreIDs: []int{28, 4242, 878}})

	// The name list may be shorter than the id list; that is accepted.
	assert.Equal(t, []int{28, 4242, 878}, m.GenreIDs)
	assert.Equal(t, []string{"Action", "Science Fiction"}, m.GenreNames)
}

func TestNormalizeDetailShape(t *testing.T) {
	m := Normalize(Movie{
		ID: 27205,
		Genres: []Genre{
			{ID: 878, Name: "Science Fiction"},
			{ID: 28, Name: "Action"},
		},
	})

	assert.Equal(t, []int{878, 28}, m.GenreIDs)
	assert.Equal(t, []string{"Science Fiction", "Action"}, m.GenreNames)
}

func TestNormalizeCustomShape(t *testing.T) {
	in := Movie{
		ID:         1700000000000,
		Title:      "Home Movie",
		GenreIDs:   []int{18},
		GenreNames: []string{"Drama"},
		IsCustom:   true,
	}

	assert.Equal(t, in, Normalize(in))
}

func TestNormalizeIdempotent(t *testing.T) {
	shapes := []Movie{
		{ID: 1, GenreIDs: []int{35, 9648}},
		{ID: 2, Genres: []Genre{{ID: 27, Name: "Horror"}}},
		{ID: 3, GenreNames: []string{"Western"}, IsCustom: true},
		{ID: 4},
	}
	for _, in := range shapes {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestNormalizeEmptyRecord(t *testing.T) {
	m := Normalize(Movie{ID: 5, Title: "Bare"})
	assert.Empty(t, m.GenreIDs)
	assert.Empty(t, m.GenreNames)
	assert.Zero(t, m.VoteAverage)
}

func TestDecodeListResult(t *testing.T) {
	payload := `{
		"id": 603,
		"title": "The Matrix",
		"overview": "A hacker learns the truth.",
		"release_date": "1999-03-30",
		"vote_average": 8.2,
		"popularity": 84.4,
		"poster_path": "/matrix.jpg",
		"genre_ids": [28, 878]
	}`

	var m Movie
	require.NoError(t, json.Unmarshal([]byte(payload), &m))
	assert.Equal(t, int64(603), m.ID)
	assert.Equal(t, "1999-03-30", m.ReleaseDate)
	assert.Equal(t, []int{28, 878}, m.GenreIDs)
	assert.Empty(t, m.GenreNames)
}

func TestYear(t *testing.T) {
	assert.Equal(t, "2021", Movie{ReleaseDate: "2021-07-04"}.Year())
	assert.Equal(t, "", Movie{}.Year())
}

func TestPosterURL(t *testing.T) {
	const base = "https://image.tmdb.org/t/p/w500"

	assert.Equal(t, base+"/x.jpg", Movie{PosterPath: "/x.jpg"}.PosterURL(base))
	assert.Equal(t, "https://example.com/p.png",
		Movie{PosterPath: "https://example.com/p.png"}.PosterURL(base))
	assert.Equal(t, "", Movie{}.PosterURL(base))
}

func TestValidReleaseDate(t *testing.T) {
	cases := []struct {
		date string
		ok   bool
	}{
		{"", true},
		{"2024-02-29", true}, // leap year
		{"2024-02-30", false},
		{"2023-02-29", false},
		{"99-01-01", false},
		{"2021-7-04", false},
		{"1799-12-31", false},
		{"1800-01-01", true},
		{"2100-12-31", true},
		{"2101-01-01", false},
		{"2021-13-01", false},
		{"not-a-date", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, ValidReleaseDate(tc.date), "date %q", tc.date)
	}
}
