// Package library holds the four in-memory collections a user curates.
// Collections are volatile and reset on restart.
package library

import (
	"sync"

	"filmcheck/internal/movie"
)

// List names one of the four collections.
type List string

const (
	Watched     List = "watched"
	Favorites   List = "favorites"
	WantToWatch List = "toWatch"
	Custom      List = "custom"
)

// Lists is every collection in display order.
var Lists = []List{Watched, Favorites, WantToWatch, Custom}

// Library is the membership store. Bubbletea delivers messages on one
// goroutine but commands run on their own, so access is mutex-guarded.
type Library struct {
	mu    sync.Mutex
	lists map[List][]movie.Movie
}

func New() *Library {
	return &Library{lists: make(map[List][]movie.Movie)}
}

// Toggle normalizes m and adds it to the list if absent, else removes it.
// Returns the new membership state.
func (l *Library) Toggle(list List, m movie.Movie) bool {
	m = movie.Normalize(m)

	l.mu.Lock()
	defer l.mu.Unlock()

	entries := l.lists[list]
	for i, existing := range entries {
		if existing.ID == m.ID {
			l.lists[list] = append(entries[:i], entries[i+1:]...)
			return false
		}
	}
	l.lists[list] = append(entries, m)
	return true
}

// Contains reports membership by id.
func (l *Library) Contains(list List, id int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, m := range l.lists[list] {
		if m.ID == id {
			return true
		}
	}
	return false
}

// Movies returns a copy of the list in insertion order.
func (l *Library) Movies(list List) []movie.Movie {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]movie.Movie, len(l.lists[list]))
	copy(out, l.lists[list])
	return out
}

// Len returns the number of records in the list.
func (l *Library) Len(list List) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.lists[list])
}

// UpsertCustom inserts a user-authored record, replacing an existing record
// with the same id in place so edits keep their position.
func (l *Library) UpsertCustom(m movie.Movie) {
	m.IsCustom = true
	m = movie.Normalize(m)

	l.mu.Lock()
	defer l.mu.Unlock()

	entries := l.lists[Custom]
	for i, existing := range entries {
		if existing.ID == m.ID {
			entries[i] = m
			return
		}
	}
	l.lists[Custom] = append(entries, m)
}

// DeleteCustom removes the record from the custom collection and from every
// other collection it was toggled into. Deleting an unknown id is a no-op.
func (l *Library) DeleteCustom(id int64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, list := range Lists {
		entries := l.lists[list]
		for i, existing := range entries {
			if existing.ID == id {
				l.lists[list] = append(entries[:i], entries[i+1:]...)
				break
			}
		}
	}
}
