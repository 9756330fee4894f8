package ui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"filmcheck/internal/genre"
	"filmcheck/internal/movie"
)

// Form fields, in focus order. The genre picker sits after the text inputs.
const (
	fieldTitle = iota
	fieldOverview
	fieldReleaseDate
	fieldRating
	fieldPoster
	fieldGenres
	fieldCount
)

var fieldLabels = []string{"Title", "Overview", "Release date (YYYY-MM-DD)", "Rating (0-10)", "Poster path or URL", "Genres"}

// movieForm authors or edits a custom record. Only the release date is
// validated; everything else is free-form.
type movieForm struct {
	editing    bool
	id         int64
	popularity float64

	inputs      []textinput.Model
	focus       int
	genreCursor int
	selected    map[int]bool

	dateInvalid bool
}

func newMovieForm(existing *movie.Movie) *movieForm {
	inputs := make([]textinput.Model, fieldGenres)
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 500
		ti.Width = 48
		inputs[i] = ti
	}
	inputs[fieldTitle].CharLimit = 200
	inputs[fieldReleaseDate].CharLimit = 10
	inputs[fieldRating].CharLimit = 4
	inputs[fieldTitle].Focus()

	f := &movieForm{
		inputs:   inputs,
		selected: make(map[int]bool),
	}

	if existing != nil {
		f.editing = true
		f.id = existing.ID
		f.popularity = existing.Popularity
		f.inputs[fieldTitle].SetValue(existing.Title)
		f.inputs[fieldOverview].SetValue(existing.Overview)
		f.inputs[fieldReleaseDate].SetValue(existing.ReleaseDate)
		if existing.VoteAverage != 0 {
			f.inputs[fieldRating].SetValue(strconv.FormatFloat(existing.VoteAverage, 'f', -1, 64))
		}
		f.inputs[fieldPoster].SetValue(existing.PosterPath)
		for _, id := range existing.GenreIDs {
			f.selected[id] = true
		}
	}

	return f
}

func (f *movieForm) setFocus(focus int) {
	f.focus = (focus + fieldCount) % fieldCount
	for i := range f.inputs {
		if i == f.focus {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

// update handles one key press. It reports whether a save was requested.
func (f *movieForm) update(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "tab", "down":
		if f.focus == fieldGenres && msg.String() == "down" {
			if f.genreCursor < len(genre.All())-1 {
				f.genreCursor++
				return nil, false
			}
			// Fall out of the picker from its last row.
		}
		f.setFocus(f.focus + 1)
		return nil, false
	case "shift+tab", "up":
		if f.focus == fieldGenres && msg.String() == "up" {
			if f.genreCursor > 0 {
				f.genreCursor--
				return nil, false
			}
			// Fall out of the picker from its first row.
		}
		f.setFocus(f.focus - 1)
		return nil, false
	case " ":
		if f.focus == fieldGenres {
			id := genre.All()[f.genreCursor].ID
			if f.selected[id] {
				delete(f.selected, id)
			} else {
				f.selected[id] = true
			}
			return nil, false
		}
	case "enter":
		return nil, true
	}

	if f.focus < fieldGenres {
		var cmd tea.Cmd
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
		if f.focus == fieldReleaseDate {
			f.dateInvalid = !movie.ValidReleaseDate(strings.TrimSpace(f.inputs[fieldReleaseDate].Value()))
		}
		return cmd, false
	}
	return nil, false
}

// save validates and builds the record. A malformed release date rejects the
// submission and flags the field.
func (f *movieForm) save() (movie.Movie, bool) {
	date := strings.TrimSpace(f.inputs[fieldReleaseDate].Value())
	if !movie.ValidReleaseDate(date) {
		f.dateInvalid = true
		return movie.Movie{}, false
	}

	id := f.id
	if !f.editing {
		id = time.Now().UnixMilli()
	}
	rating, _ := strconv.ParseFloat(strings.TrimSpace(f.inputs[fieldRating].Value()), 64)

	var (
		ids   []int
		names []string
	)
	for _, g := range genre.All() {
		if f.selected[g.ID] {
			ids = append(ids, g.ID)
			names = append(names, g.Name)
		}
	}

	return movie.Movie{
		ID:          id,
		Title:       strings.TrimSpace(f.inputs[fieldTitle].Value()),
		Overview:    strings.TrimSpace(f.inputs[fieldOverview].Value()),
		ReleaseDate: date,
		VoteAverage: rating,
		Popularity:  f.popularity,
		PosterPath:  strings.TrimSpace(f.inputs[fieldPoster].Value()),
		GenreIDs:    ids,
		GenreNames:  names,
		IsCustom:    true,
	}, true
}

func (f *movieForm) view() string {
	var sb strings.Builder

	if f.editing {
		sb.WriteString(titleStyle.Render("Edit Movie"))
	} else {
		sb.WriteString(titleStyle.Render("Add Movie"))
	}
	sb.WriteString("\n\n")

	for i, input := range f.inputs {
		label := fieldLabels[i]
		if i == f.focus {
			sb.WriteString(highlightedTextStyle.Render(label))
		} else {
			sb.WriteString(subtitleStyle.Render(label))
		}
		if i == fieldReleaseDate && f.dateInvalid {
			sb.WriteString(" ")
			sb.WriteString(errorStyle.Render("invalid date"))
		}
		sb.WriteString("\n")
		if i == f.focus {
			sb.WriteString(focusedInputStyle.Render(input.View()))
		} else {
			sb.WriteString(inputStyle.Render(input.View()))
		}
		sb.WriteString("\n")
	}

	if f.focus == fieldGenres {
		sb.WriteString(highlightedTextStyle.Render(fieldLabels[fieldGenres]))
	} else {
		sb.WriteString(subtitleStyle.Render(fieldLabels[fieldGenres]))
	}
	sb.WriteString("\n")
	for i, g := range genre.All() {
		marker := "[ ]"
		if f.selected[g.ID] {
			marker = "[x]"
		}
		line := marker + " " + g.Name
		if f.focus == fieldGenres && i == f.genreCursor {
			sb.WriteString(highlightedTextStyle.Render("> " + line))
		} else {
			sb.WriteString(normalTextStyle.Render("  " + line))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(mutedTextStyle.Render("Tab/↑↓: Move • Space: Toggle genre • Enter: Save • Esc: Cancel"))
	return sb.String()
}
