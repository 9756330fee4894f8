// Package engine implements the client-side filter/sort pipeline applied to
// both remote search results and locally held lists.
package engine

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"filmcheck/internal/genre"
	"filmcheck/internal/movie"
)

// Filters are the three independent filter criteria. Empty values disable
// the corresponding stage; they combine with AND semantics.
type Filters struct {
	Genre     string // slug or numeric genre id
	Year      string // four-digit year
	MinRating string // numeric minimum vote average
}

// Empty reports whether every criterion is unset.
func (f Filters) Empty() bool {
	return f.Genre == "" && f.Year == "" && f.MinRating == ""
}

// Apply runs the pipeline: text filter, genre filter, year filter, rating
// filter, then the active sort. It never mutates its input; the result is a
// subset of the input in a stable order.
func Apply(movies []movie.Movie, query string, filters Filters, sortBy Sort) []movie.Movie {
	filtered := make([]movie.Movie, len(movies))
	copy(filtered, movies)

	if q := strings.TrimSpace(query); q != "" {
		q = strings.ToLower(q)
		filtered = keep(filtered, func(m movie.Movie) bool {
			return strings.Contains(strings.ToLower(m.Title), q) ||
				strings.Contains(strings.ToLower(m.Overview), q)
		})
	}

	if filters.Genre != "" {
		if id, ok := genre.Resolve(filters.Genre); ok {
			name, _ := genre.Name(id)
			filtered = keep(filtered, func(m movie.Movie) bool {
				return matchesGenre(m, id, name)
			})
		}
	}

	if filters.Year != "" {
		if year, err := strconv.Atoi(filters.Year); err == nil {
			filtered = keep(filtered, func(m movie.Movie) bool {
				movieYear, err := strconv.Atoi(m.Year())
				return err == nil && movieYear == year
			})
		}
	}

	if filters.MinRating != "" {
		if min, err := strconv.ParseFloat(filters.MinRating, 64); err == nil {
			filtered = keep(filtered, func(m movie.Movie) bool {
				return m.VoteAverage >= min
			})
		}
	}

	if less := sortBy.less(); less != nil {
		sort.SliceStable(filtered, func(i, j int) bool {
			return less(filtered[i], filtered[j])
		})
	}

	return filtered
}

// matchesGenre checks the three places genre information can live: the id
// list, the detail endpoint's genre objects, and the derived or authored
// name list. Name matching is a case-insensitive substring test so that a
// selection like "sci-fi" (resolved to "Science Fiction") matches partially
// named entries.
func matchesGenre(m movie.Movie, id int, name string) bool {
	for _, gid := range m.GenreIDs {
		if gid == id {
			return true
		}
	}

	lowered := strings.ToLower(name)
	for _, g := range m.Genres {
		if g.ID == id {
			return true
		}
		if name != "" && strings.Contains(strings.ToLower(g.Name), lowered) {
			return true
		}
	}

	if name != "" {
		for _, n := range m.GenreNames {
			if strings.Contains(strings.ToLower(n), lowered) {
				return true
			}
		}
	}

	return false
}

func keep(movies []movie.Movie, pred func(movie.Movie) bool) []movie.Movie {
	out := movies[:0]
	for _, m := range movies {
		if pred(m) {
			out = append(out, m)
		}
	}
	return out
}

func releaseTime(m movie.Movie) time.Time {
	t, err := time.Parse("2006-01-02", m.ReleaseDate)
	if err != nil {
		// Missing or malformed dates sort as oldest.
		return time.Time{}
	}
	return t
}
