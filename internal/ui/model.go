// Package ui is the terminal front end: it wires key presses to the engine,
// library, and TMDB client, and renders their output.
package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"filmcheck/internal/engine"
	"filmcheck/internal/library"
	"filmcheck/internal/movie"
	"filmcheck/internal/tmdb"
)

// Application states
const (
	stateBrowse = iota
	stateLoading
	stateLoadingDetail
	stateDetail
	stateForm
	stateError
)

// Tabs
const (
	tabHome = iota
	tabWatched
	tabFavorites
	tabWantToWatch
	tabCustom
	tabCount
)

var tabLabels = []string{"Home", "Watched", "Favorites", "Want to Watch", "My Movies"}

// list maps a non-home tab to its collection.
func tabList(tab int) library.List {
	switch tab {
	case tabWatched:
		return library.Watched
	case tabFavorites:
		return library.Favorites
	case tabWantToWatch:
		return library.WantToWatch
	default:
		return library.Custom
	}
}

// Filter option cycles, mirroring the sidebar selects: an empty entry means
// the filter is off.
var (
	genreOptions  = []string{"", "action", "comedy", "drama", "horror", "sci-fi"}
	yearOptions   = []string{"", "2024", "2023", "2022", "2021", "2020"}
	ratingOptions = []string{"", "9", "8", "7", "6"}
)

// Model represents the application state
type Model struct {
	state int
	tab   int

	api *tmdb.Client
	lib *library.Library

	searchInput textinput.Model
	query       string // committed on enter

	filters engine.Filters
	sortBy  engine.Sort

	// Home tab page state.
	movies     []movie.Movie
	page       int
	totalPages int

	// fetchSeq tags page fetches so responses that arrive after a newer
	// fetch was dispatched are discarded.
	fetchSeq int

	cursor int

	detail    *movie.Movie
	credits   *tmdb.Credits
	detailRow movie.Movie // the list record the detail view was opened from

	form *movieForm

	spinner  spinner.Model
	viewport viewport.Model
	err      error
	width    int
	height   int
}

// NewModel creates the application model.
func NewModel(api *tmdb.Client, lib *library.Library) Model {
	ti := textinput.New()
	ti.Placeholder = "Search movies..."
	ti.CharLimit = 100
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(primaryColor)

	vp := viewport.New(80, 20)

	return Model{
		state:       stateLoading,
		tab:         tabHome,
		api:         api,
		lib:         lib,
		searchInput: ti,
		page:        1,
		totalPages:  1,
		spinner:     sp,
		viewport:    vp,
		width:       80,
		height:      24,
	}
}

// Init kicks off the first popular-movies fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchPage())
}

// visible returns the records the current tab displays: the fetched page on
// Home (the server already applied search/filter/sort there), the filtered
// and sorted library copy elsewhere.
func (m Model) visible() []movie.Movie {
	if m.tab == tabHome {
		return m.movies
	}
	return engine.Apply(m.lib.Movies(tabList(m.tab)), m.query, m.filters, m.sortBy)
}

// selected returns the record under the cursor.
func (m Model) selected() (movie.Movie, bool) {
	visible := m.visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return movie.Movie{}, false
	}
	return visible[m.cursor], true
}

func (m *Model) clampCursor() {
	if n := len(m.visible()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
