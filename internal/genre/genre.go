// Package genre holds the fixed TMDB movie genre registry.
package genre

import (
	"sort"
	"strconv"
)

// Genre pairs a TMDB genre id with its display name.
type Genre struct {
	ID   int
	Name string
}

var names = map[int]string{
	28:    "Action",
	12:    "Adventure",
	16:    "Animation",
	35:    "Comedy",
	80:    "Crime",
	99:    "Documentary",
	18:    "Drama",
	10751: "Family",
	14:    "Fantasy",
	36:    "History",
	27:    "Horror",
	10402: "Music",
	9648:  "Mystery",
	10749: "Romance",
	878:   "Science Fiction",
	10770: "TV Movie",
	53:    "Thriller",
	10752: "War",
	37:    "Western",
}

// slugs maps the filter control's short selections to one representative id.
var slugs = map[string]int{
	"action": 28,
	"comedy": 35,
	"drama":  18,
	"horror": 27,
	"sci-fi": 878,
}

// Name returns the display name for a genre id.
func Name(id int) (string, bool) {
	name, ok := names[id]
	return name, ok
}

// Resolve maps a filter selection to a genre id. The selection is either one
// of the known slugs or a numeric id string. Any non-zero numeric id
// resolves, even one the registry has no name for: filtering on it then
// matches only records that carry that id.
func Resolve(selection string) (int, bool) {
	if id, ok := slugs[selection]; ok {
		return id, true
	}
	id, err := strconv.Atoi(selection)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// Slugs returns the filter control's selections in a stable order.
func Slugs() []string {
	out := make([]string, 0, len(slugs))
	for s := range slugs {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// All returns the full registry sorted by display name, for the genre picker
// in the custom movie form.
func All() []Genre {
	out := make([]Genre, 0, len(names))
	for id, name := range names {
		out = append(out, Genre{ID: id, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
