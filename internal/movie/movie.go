// Package movie defines the canonical movie record and the normalization
// that reconciles the three shapes movies arrive in: list results carrying
// genre_ids, detail results carrying genres objects, and user-authored
// records carrying genre_names directly.
package movie

import (
	"strings"

	"filmcheck/internal/genre"
)

// Genre is the {id, name} pair the detail endpoint returns.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Movie is the canonical record. The JSON tags match TMDB's wire names so
// the same struct decodes list, detail, and locally authored records.
type Movie struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Overview    string   `json:"overview"`
	ReleaseDate string   `json:"release_date,omitempty"`
	VoteAverage float64  `json:"vote_average"`
	Popularity  float64  `json:"popularity"`
	PosterPath  string   `json:"poster_path,omitempty"`
	Runtime     int      `json:"runtime,omitempty"`
	GenreIDs    []int    `json:"genre_ids,omitempty"`
	Genres      []Genre  `json:"genres,omitempty"`
	GenreNames  []string `json:"genre_names,omitempty"`
	IsCustom    bool     `json:"is_custom,omitempty"`
}

// Normalize returns m with genre ids and names reconciled so that GenreNames
// is populated whenever a mapping exists. It is idempotent and never fails:
// ids the registry does not know are dropped from the name list.
func Normalize(m Movie) Movie {
	if len(m.Genres) > 0 {
		if len(m.GenreIDs) == 0 {
			ids := make([]int, 0, len(m.Genres))
			for _, g := range m.Genres {
				ids = append(ids, g.ID)
			}
			m.GenreIDs = ids
		}
		if len(m.GenreNames) == 0 {
			names := make([]string, 0, len(m.Genres))
			for _, g := range m.Genres {
				names = append(names, g.Name)
			}
			m.GenreNames = names
		}
		return m
	}

	if len(m.GenreIDs) > 0 && len(m.GenreNames) == 0 {
		names := make([]string, 0, len(m.GenreIDs))
		for _, id := range m.GenreIDs {
			if name, ok := genre.Name(id); ok {
				names = append(names, name)
			}
		}
		m.GenreNames = names
	}

	return m
}

// Year returns the leading four digits of the release date, or "" when the
// record has no date.
func (m Movie) Year() string {
	if len(m.ReleaseDate) < 4 {
		return ""
	}
	return m.ReleaseDate[:4]
}

// PosterURL resolves the poster path against an image base URL. Custom
// records may hold a fully qualified URL, which passes through untouched.
func (m Movie) PosterURL(base string) string {
	if m.PosterPath == "" {
		return ""
	}
	if strings.HasPrefix(m.PosterPath, "http") {
		return m.PosterPath
	}
	return base + m.PosterPath
}
