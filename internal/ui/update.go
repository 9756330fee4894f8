package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"filmcheck/internal/engine"
	"filmcheck/internal/library"
	"filmcheck/internal/movie"
)

// Update handles messages and user input
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}

		if m.state == stateForm {
			return m.updateForm(msg)
		}

		if m.searchInput.Focused() {
			return m.updateSearch(msg)
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "esc":
			if m.state == stateDetail || m.state == stateError {
				m.state = stateBrowse
				m.detail = nil
				m.credits = nil
				m.err = nil
				return m, nil
			}
		}

		switch m.state {
		case stateBrowse:
			return m.updateBrowse(msg)
		case stateDetail:
			return m.updateDetail(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 8

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case pageMsg:
		// A response for an outdated fetch must not overwrite a newer one.
		if msg.seq != m.fetchSeq {
			return m, nil
		}
		m.applyPage(msg.page)

	case pageErrMsg:
		if msg.seq != m.fetchSeq {
			return m, nil
		}
		m.failPage(msg.err)

	case detailMsg:
		// Detail records carry genres objects, not genre_names; normalize
		// before exposing them to rendering and the library.
		details := movie.Normalize(msg.details)
		credits := msg.credits
		m.detail = &details
		m.credits = &credits
		m.state = stateDetail
		m.viewport.SetContent(m.formatDetail())
		m.viewport.GotoTop()

	case errorMsg:
		m.err = msg.err
		m.state = stateError
		cmds = append(cmds, tea.Tick(2*time.Second, func(time.Time) tea.Msg {
			return resetMsg{}
		}))

	case resetMsg:
		if m.state == stateError {
			m.state = stateBrowse
			m.err = nil
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchInput.Blur()
		m.query = m.searchInput.Value()
		if m.tab == tabHome {
			return m, m.refetch()
		}
		m.cursor = 0
		return m, nil
	case "esc":
		m.searchInput.Blur()
		m.searchInput.SetValue(m.query)
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "/":
		m.searchInput.Focus()
		return m, textinput.Blink

	case "tab":
		m.tab = (m.tab + 1) % tabCount
		m.cursor = 0
		return m, nil
	case "shift+tab":
		m.tab = (m.tab + tabCount - 1) % tabCount
		m.cursor = 0
		return m, nil

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}

	case "left", "h":
		if m.tab == tabHome && m.page > 1 {
			m.fetchSeq++
			m.page--
			m.cursor = 0
			m.state = stateLoading
			return m, m.fetchPage()
		}
	case "right", "l":
		if m.tab == tabHome && m.page < m.totalPages {
			m.fetchSeq++
			m.page++
			m.cursor = 0
			m.state = stateLoading
			return m, m.fetchPage()
		}

	case "1", "2", "3":
		return m.toggleSort(msg.String())

	case "g":
		m.filters.Genre = cycle(genreOptions, m.filters.Genre)
		return m.filtersChanged()
	case "y":
		m.filters.Year = cycle(yearOptions, m.filters.Year)
		return m.filtersChanged()
	case "r":
		m.filters.MinRating = cycle(ratingOptions, m.filters.MinRating)
		return m.filtersChanged()

	case "w":
		return m.toggleMembership(library.Watched)
	case "f":
		return m.toggleMembership(library.Favorites)
	case "t":
		return m.toggleMembership(library.WantToWatch)

	case "a":
		m.form = newMovieForm(nil)
		m.state = stateForm
		return m, textinput.Blink
	case "e":
		if selected, ok := m.selected(); ok && selected.IsCustom {
			m.form = newMovieForm(&selected)
			m.state = stateForm
			return m, textinput.Blink
		}
	case "d":
		if selected, ok := m.selected(); ok && selected.IsCustom {
			m.lib.DeleteCustom(selected.ID)
			m.clampCursor()
		}

	case "enter":
		if selected, ok := m.selected(); ok {
			m.detailRow = selected
			if selected.IsCustom {
				// Custom records have no remote counterpart; render
				// straight from the library.
				detail := selected
				m.detail = &detail
				m.credits = nil
				m.state = stateDetail
				m.viewport.SetContent(m.formatDetail())
				m.viewport.GotoTop()
				return m, nil
			}
			m.state = stateLoadingDetail
			return m, tea.Batch(m.spinner.Tick, m.fetchDetail(selected.ID))
		}
	}

	return m, nil
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "w":
		return m.toggleDetailMembership(library.Watched)
	case "f":
		return m.toggleDetailMembership(library.Favorites)
	case "t":
		return m.toggleDetailMembership(library.WantToWatch)
	case "e":
		if m.detail != nil && m.detail.IsCustom {
			m.form = newMovieForm(m.detail)
			m.state = stateForm
			return m, textinput.Blink
		}
	case "d":
		if m.detail != nil && m.detail.IsCustom {
			m.lib.DeleteCustom(m.detail.ID)
			m.detail = nil
			m.credits = nil
			m.state = stateBrowse
			m.clampCursor()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.form = nil
		m.state = stateBrowse
		return m, nil
	}

	cmd, submit := m.form.update(msg)
	if submit {
		if record, ok := m.form.save(); ok {
			m.lib.UpsertCustom(record)
			m.form = nil
			m.state = stateBrowse
			m.tab = tabCustom
			m.clampCursor()
		}
		return m, nil
	}
	return m, cmd
}

func (m Model) toggleSort(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "1":
		m.sortBy.Toggle(engine.Popularity)
	case "2":
		m.sortBy.Toggle(engine.Rating)
	case "3":
		m.sortBy.Toggle(engine.ReleaseDate)
	}
	if m.tab == tabHome {
		return m, m.refetch()
	}
	m.cursor = 0
	return m, nil
}

func (m Model) filtersChanged() (tea.Model, tea.Cmd) {
	if m.tab == tabHome {
		// Search takes priority over discover; filters only matter once
		// the query is cleared.
		return m, m.refetch()
	}
	m.cursor = 0
	return m, nil
}

func (m Model) toggleMembership(list library.List) (tea.Model, tea.Cmd) {
	if selected, ok := m.selected(); ok {
		m.lib.Toggle(list, selected)
		m.clampCursor()
	}
	return m, nil
}

// toggleDetailMembership prefers the detail record when toggling from the
// detail view, falling back to the list record it was opened from.
func (m Model) toggleDetailMembership(list library.List) (tea.Model, tea.Cmd) {
	record := m.detailRow
	if m.detail != nil {
		record = *m.detail
	}
	m.lib.Toggle(list, record)
	return m, nil
}

// cycle advances through a closed option set, wrapping at the end.
func cycle(options []string, current string) string {
	for i, option := range options {
		if option == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}
