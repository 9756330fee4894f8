package ui

import (
	"log/slog"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"filmcheck/internal/genre"
	"filmcheck/internal/movie"
	"filmcheck/internal/tmdb"
)

// fetchPage fetches the current Home page: a committed search query takes
// priority over the discover query, the plain popular listing serves when
// nothing is filtered or sorted, and otherwise filters and the sort key are
// pushed to the server. The command captures the sequence number so stale
// responses can be recognized.
func (m Model) fetchPage() tea.Cmd {
	seq := m.fetchSeq
	query := strings.TrimSpace(m.query)
	filters := m.filters
	sorted := m.sortBy.Active()
	sortKey := m.sortBy.QueryKey()
	page := m.page
	api := m.api

	return func() tea.Msg {
		var (
			result *tmdb.Page
			err    error
		)
		switch {
		case query != "":
			result, err = api.Search(query, page)
		case filters.Empty() && !sorted:
			result, err = api.Popular(page)
		default:
			opts := tmdb.DiscoverOptions{SortKey: sortKey, Page: page}
			if filters.Genre != "" {
				if id, ok := genre.Resolve(filters.Genre); ok {
					opts.GenreIDs = []int{id}
				}
			}
			if filters.Year != "" {
				opts.Year, _ = strconv.Atoi(filters.Year)
			}
			if filters.MinRating != "" {
				opts.MinRating, _ = strconv.ParseFloat(filters.MinRating, 64)
			}
			result, err = api.Discover(opts)
		}
		if err != nil {
			return pageErrMsg{seq: seq, err: err}
		}
		return pageMsg{seq: seq, page: *result}
	}
}

// fetchDetail fans out the detail and credits requests. Custom records never
// reach here; they have no remote counterpart.
func (m Model) fetchDetail(id int64) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		details, credits, err := api.DetailsAndCredits(id)
		if err != nil {
			return errorMsg{err}
		}
		return detailMsg{details: *details, credits: *credits}
	}
}

// applyPage installs a fetch result, normalizing every record before it is
// exposed to the engine or the library.
func (m *Model) applyPage(page tmdb.Page) {
	movies := make([]movie.Movie, 0, len(page.Results))
	for _, result := range page.Results {
		movies = append(movies, movie.Normalize(result))
	}
	m.movies = movies
	m.totalPages = page.TotalPages
	if m.totalPages < 1 {
		m.totalPages = 1
	}
	m.state = stateBrowse
	m.clampCursor()
}

// failPage degrades a failed list fetch to the empty state.
func (m *Model) failPage(err error) {
	slog.Error("page fetch failed", "error", err, "page", m.page)
	m.movies = nil
	m.totalPages = 1
	m.page = 1
	m.cursor = 0
	m.state = stateBrowse
}

// refetch bumps the sequence number and starts a fresh page-1 fetch, used
// whenever the query, filters, or sort change.
func (m *Model) refetch() tea.Cmd {
	m.fetchSeq++
	m.page = 1
	m.cursor = 0
	m.state = stateLoading
	return m.fetchPage()
}

// Custom message types
type pageMsg struct {
	seq  int
	page tmdb.Page
}

type pageErrMsg struct {
	seq int
	err error
}

type detailMsg struct {
	details movie.Movie
	credits tmdb.Credits
}

type errorMsg struct {
	err error
}

type resetMsg struct{}
