package engine

import "filmcheck/internal/movie"

// Dimension is one of the three sortable fields.
type Dimension int

const (
	Popularity Dimension = iota
	Rating
	ReleaseDate
)

// Order is the per-dimension direction. Toggling a dimension cycles
// None -> Descending -> Ascending -> None.
type Order int

const (
	None Order = iota
	Descending
	Ascending
)

// Sort holds one order per dimension. At most one dimension is non-None at a
// time: Toggle clears the others.
type Sort struct {
	Popularity  Order
	Rating      Order
	ReleaseDate Order
}

// Toggle advances the given dimension's cycle and resets the other two.
func (s *Sort) Toggle(d Dimension) {
	current := s.order(d)
	*s = Sort{}
	switch current {
	case None:
		s.set(d, Descending)
	case Descending:
		s.set(d, Ascending)
	case Ascending:
		// Back to None; the zero Sort already is.
	}
}

func (s Sort) order(d Dimension) Order {
	switch d {
	case Popularity:
		return s.Popularity
	case Rating:
		return s.Rating
	default:
		return s.ReleaseDate
	}
}

func (s *Sort) set(d Dimension, o Order) {
	switch d {
	case Popularity:
		s.Popularity = o
	case Rating:
		s.Rating = o
	case ReleaseDate:
		s.ReleaseDate = o
	}
}

// Active reports whether any dimension is set.
func (s Sort) Active() bool {
	return s.Popularity != None || s.Rating != None || s.ReleaseDate != None
}

// QueryKey renders the active dimension as a TMDB discover sort key,
// defaulting to popularity.desc when nothing is active.
func (s Sort) QueryKey() string {
	switch {
	case s.Popularity == Descending:
		return "popularity.desc"
	case s.Popularity == Ascending:
		return "popularity.asc"
	case s.Rating == Descending:
		return "vote_average.desc"
	case s.Rating == Ascending:
		return "vote_average.asc"
	case s.ReleaseDate == Descending:
		return "release_date.desc"
	case s.ReleaseDate == Ascending:
		return "release_date.asc"
	}
	return "popularity.desc"
}

// less returns the comparator for the active dimension, or nil when no sort
// should be applied. Precedence popularity > rating > release date matters
// only if a caller sets several dimensions by hand; Toggle never does.
func (s Sort) less() func(a, b movie.Movie) bool {
	switch {
	case s.Popularity == Descending:
		return func(a, b movie.Movie) bool { return a.Popularity > b.Popularity }
	case s.Popularity == Ascending:
		return func(a, b movie.Movie) bool { return a.Popularity < b.Popularity }
	case s.Rating == Descending:
		return func(a, b movie.Movie) bool { return a.VoteAverage > b.VoteAverage }
	case s.Rating == Ascending:
		return func(a, b movie.Movie) bool { return a.VoteAverage < b.VoteAverage }
	case s.ReleaseDate == Descending:
		return func(a, b movie.Movie) bool { return releaseTime(a).After(releaseTime(b)) }
	case s.ReleaseDate == Ascending:
		return func(a, b movie.Movie) bool { return releaseTime(a).Before(releaseTime(b)) }
	}
	return nil
}
