package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"filmcheck/internal/engine"
	"filmcheck/internal/library"
	"filmcheck/internal/movie"
	"filmcheck/internal/pagination"
	"filmcheck/internal/tmdb"
)

// View renders the current UI
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Film Checker"))
	sb.WriteString("  ")
	if m.searchInput.Focused() {
		sb.WriteString(focusedInputStyle.Render(m.searchInput.View()))
	} else {
		sb.WriteString(inputStyle.Render(m.searchInput.View()))
	}
	sb.WriteString("\n")
	sb.WriteString(m.renderTabs())
	sb.WriteString("\n\n")

	switch m.state {
	case stateLoading:
		sb.WriteString(m.spinner.View())
		sb.WriteString(" ")
		sb.WriteString(normalTextStyle.Render("Loading movies..."))

	case stateLoadingDetail:
		sb.WriteString(m.spinner.View())
		sb.WriteString(" ")
		sb.WriteString(normalTextStyle.Render("Fetching details for \"" + m.detailRow.Title + "\""))

	case stateBrowse:
		sb.WriteString(m.renderBrowse())

	case stateDetail:
		sb.WriteString(m.viewport.View())
		sb.WriteString("\n\n")
		sb.WriteString(mutedTextStyle.Render("↑/↓: Scroll • w/f/t: Toggle lists • Esc: Back • q: Quit"))

	case stateForm:
		sb.WriteString(m.form.view())

	case stateError:
		sb.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		sb.WriteString("\n\n")
		sb.WriteString(mutedTextStyle.Render("Returning in a moment..."))
	}

	return lipgloss.NewStyle().
		Width(m.width).
		MaxHeight(m.height).
		Render(sb.String())
}

func (m Model) renderTabs() string {
	var parts []string
	for tab, label := range tabLabels {
		if tab == m.tab {
			parts = append(parts, activeTabStyle.Render(label))
		} else {
			parts = append(parts, tabStyle.Render(label))
		}
	}
	return strings.Join(parts, "")
}

func (m Model) renderBrowse() string {
	var sb strings.Builder

	sb.WriteString(m.renderCriteria())
	sb.WriteString("\n")

	visible := m.visible()

	switch {
	case m.tab == tabHome && len(visible) == 0:
		sb.WriteString(m.renderHeading(0, 0))
		sb.WriteString("\n\n")
		sb.WriteString(mutedTextStyle.Render("No movies found"))
	case m.tab == tabHome:
		sb.WriteString(m.renderHeading(0, 0))
		sb.WriteString("\n")
		sb.WriteString(m.renderList(visible))
		sb.WriteString("\n")
		sb.WriteString(m.renderPager())
	default:
		total := m.lib.Len(tabList(m.tab))
		sb.WriteString(m.renderHeading(len(visible), total))
		sb.WriteString("\n")
		if total == 0 {
			sb.WriteString("\n")
			sb.WriteString(mutedTextStyle.Render(emptyMessages[m.tab]))
		} else if len(visible) == 0 {
			sb.WriteString("\n")
			sb.WriteString(mutedTextStyle.Render("No movies match your filters"))
		} else {
			sb.WriteString(m.renderList(visible))
		}
	}

	sb.WriteString("\n\n")
	sb.WriteString(mutedTextStyle.Render(m.helpLine()))
	return sb.String()
}

var emptyMessages = []string{
	"",
	"Movies you mark as watched will show up here",
	"Movies you favorite will show up here",
	"Movies you want to watch will show up here",
	"Add your own movies with 'a'",
}

func (m Model) renderHeading(shown, total int) string {
	switch {
	case m.tab == tabHome && strings.TrimSpace(m.query) != "":
		return subtitleStyle.Render(fmt.Sprintf("Search Results for %q", strings.TrimSpace(m.query)))
	case m.tab == tabHome:
		return subtitleStyle.Render("Popular Movies")
	default:
		heading := subtitleStyle.Render(tabLabels[m.tab])
		if shown != total {
			heading += mutedTextStyle.Render(fmt.Sprintf(" (%d of %d)", shown, total))
		}
		return heading
	}
}

// renderCriteria shows the active sort and filters so the list's order is
// never a mystery.
func (m Model) renderCriteria() string {
	var parts []string

	if m.sortBy.Active() {
		parts = append(parts, "sort: "+describeSort(m.sortBy))
	}
	if m.filters.Genre != "" {
		parts = append(parts, "genre: "+m.filters.Genre)
	}
	if m.filters.Year != "" {
		parts = append(parts, "year: "+m.filters.Year)
	}
	if m.filters.MinRating != "" {
		parts = append(parts, "rating ≥ "+m.filters.MinRating)
	}

	if len(parts) == 0 {
		return mutedTextStyle.Render("no sort or filters active")
	}
	return normalTextStyle.Render(strings.Join(parts, " • "))
}

func describeSort(s engine.Sort) string {
	arrow := func(o engine.Order) string {
		if o == engine.Ascending {
			return "↑"
		}
		return "↓"
	}
	switch {
	case s.Popularity != engine.None:
		return "popularity " + arrow(s.Popularity)
	case s.Rating != engine.None:
		return "rating " + arrow(s.Rating)
	default:
		return "release date " + arrow(s.ReleaseDate)
	}
}

func (m Model) renderList(visible []movie.Movie) string {
	var list strings.Builder

	for i, entry := range visible {
		line := entry.Title
		if year := entry.Year(); year != "" {
			line += " (" + year + ")"
		}
		line += "  " + fmt.Sprintf("%.1f", entry.VoteAverage)
		if len(entry.GenreNames) > 0 {
			line += "  " + entry.GenreNames[0]
		}
		if markers := m.membershipMarkers(entry.ID); markers != "" {
			line += "  " + markers
		}
		if entry.IsCustom {
			line += "  (mine)"
		}

		if i == m.cursor {
			list.WriteString(highlightedTextStyle.Render("> " + line))
		} else {
			list.WriteString(normalTextStyle.Render("  " + line))
		}
		list.WriteString("\n")
	}

	return listStyle.Render(strings.TrimRight(list.String(), "\n"))
}

// membershipMarkers annotates a row with the collections it belongs to.
func (m Model) membershipMarkers(id int64) string {
	var markers string
	if m.lib.Contains(library.Watched, id) {
		markers += "✓"
	}
	if m.lib.Contains(library.Favorites, id) {
		markers += "♥"
	}
	if m.lib.Contains(library.WantToWatch, id) {
		markers += "+"
	}
	return markers
}

func (m Model) renderPager() string {
	if m.totalPages <= 1 {
		return ""
	}

	w := pagination.WindowFor(m.page, m.totalPages)
	var parts []string

	if w.PrevEnabled {
		parts = append(parts, pagerStyle.Render("‹ Prev"))
	} else {
		parts = append(parts, pagerDisabledStyle.Render("‹ Prev"))
	}

	if w.ShowFirst {
		parts = append(parts, pagerStyle.Render("1"))
		if w.LeadingEllipsis {
			parts = append(parts, pagerDisabledStyle.Render("…"))
		}
	}
	for _, page := range w.Pages {
		label := strconv.Itoa(page)
		if page == m.page {
			parts = append(parts, pagerActiveStyle.Render(label))
		} else {
			parts = append(parts, pagerStyle.Render(label))
		}
	}
	if w.ShowLast {
		if w.TrailingEllipsis {
			parts = append(parts, pagerDisabledStyle.Render("…"))
		}
		parts = append(parts, pagerStyle.Render(strconv.Itoa(m.totalPages)))
	}

	if w.NextEnabled {
		parts = append(parts, pagerStyle.Render("Next ›"))
	} else {
		parts = append(parts, pagerDisabledStyle.Render("Next ›"))
	}

	parts = append(parts, mutedTextStyle.Render(fmt.Sprintf("Page %d of %d", m.page, m.totalPages)))
	return strings.Join(parts, " ")
}

func (m Model) helpLine() string {
	help := "↑/↓: Navigate • Enter: Details • Tab: Switch tab • /: Search • " +
		"1/2/3: Sort • g/y/r: Filters • w/f/t: Toggle lists • a: Add"
	if selected, ok := m.selected(); ok && selected.IsCustom {
		help += " • e: Edit • d: Delete"
	}
	if m.tab == tabHome {
		help += " • ←/→: Page"
	}
	return help + " • q: Quit"
}

// formatDetail builds the detail viewport content.
func (m Model) formatDetail() string {
	if m.detail == nil {
		return "No movie details available"
	}
	detail := *m.detail

	var sb strings.Builder

	heading := detail.Title
	if year := detail.Year(); year != "" {
		heading += " (" + year + ")"
	}
	sb.WriteString(titleStyle.Render(heading))
	sb.WriteString("\n\n")

	sb.WriteString(ratingBadgeStyle.Render(fmt.Sprintf("%.1f", detail.VoteAverage)))
	if detail.Runtime > 0 {
		sb.WriteString(normalTextStyle.Render(fmt.Sprintf("  %d min", detail.Runtime)))
	}
	sb.WriteString("\n\n")

	if len(detail.GenreNames) > 0 {
		sb.WriteString(normalTextStyle.Render(strings.Join(detail.GenreNames, " · ")))
		sb.WriteString("\n\n")
	}

	sb.WriteString(m.renderDetailMembership(detail.ID))
	sb.WriteString("\n\n")

	sb.WriteString(subtitleStyle.Render("Description"))
	sb.WriteString("\n")
	overview := detail.Overview
	if overview == "" {
		overview = "No description available"
	}
	maxWidth := m.viewport.Width - 4
	if maxWidth < 20 {
		maxWidth = 60
	}
	sb.WriteString(normalTextStyle.Render(wrapText(overview, maxWidth)))
	sb.WriteString("\n")

	if m.credits != nil {
		director := m.credits.Director()
		if director == "" {
			director = "Unknown"
		}
		sb.WriteString("\n")
		sb.WriteString(subtitleStyle.Render("Director"))
		sb.WriteString("\n")
		sb.WriteString(normalTextStyle.Render(director))
		sb.WriteString("\n")

		if cast := m.credits.TopCast(10); len(cast) > 0 {
			sb.WriteString("\n")
			sb.WriteString(subtitleStyle.Render("Actors"))
			sb.WriteString("\n")
			for _, member := range cast {
				line := member.Name
				if member.Character != "" {
					line += " as " + member.Character
				}
				sb.WriteString(normalTextStyle.Render(line))
				sb.WriteString("\n")
			}
		}
	}

	if poster := detail.PosterURL(tmdb.ImageBaseURL); poster != "" {
		sb.WriteString("\n")
		sb.WriteString(subtitleStyle.Render("Poster"))
		sb.WriteString("\n")
		sb.WriteString(mutedTextStyle.Render(poster))
	}

	return sb.String()
}

func (m Model) renderDetailMembership(id int64) string {
	segment := func(on bool, active, inactive string) string {
		if on {
			return highlightedTextStyle.Render(active)
		}
		return mutedTextStyle.Render(inactive)
	}
	return segment(m.lib.Contains(library.Watched, id), "✓ Watched", "w: Mark as Watched") + "  " +
		segment(m.lib.Contains(library.Favorites, id), "♥ Favorite", "f: Add to Favorites") + "  " +
		segment(m.lib.Contains(library.WantToWatch, id), "+ Want to Watch", "t: Want to Watch")
}

// wrapText wraps text to fit within a given width.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	lineLength := 0
	for _, word := range strings.Fields(text) {
		if lineLength > 0 && lineLength+1+len(word) > width {
			result.WriteString("\n")
			lineLength = 0
		} else if lineLength > 0 {
			result.WriteString(" ")
			lineLength++
		}
		result.WriteString(word)
		lineLength += len(word)
	}
	return result.String()
}
