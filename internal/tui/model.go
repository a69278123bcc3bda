// Package tui is the interactive country explorer: one search input driving
// an exclusive loading/results/error panel.
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"atlas/internal/countries"
	"atlas/internal/theme"
)

// Model is the main explorer model.
type Model struct {
	// Dependencies
	service CountryService
	themes  *theme.Store

	// Component state
	input   textinput.Model
	spinner spinner.Model
	results viewport.Model

	// Search state
	state     viewState
	searchSeq int
	country   *countries.Country
	errMsg    string

	// Presentation
	pref    theme.Preference
	styles  styles
	mapZoom int

	// Dimensions
	width  int
	height int
}

// NewModel creates an explorer model wired to the given lookup service and
// theme store.
func NewModel(svc CountryService, store *theme.Store, pref theme.Preference, mapZoom int) Model {
	st := newStyles(pref)

	ti := textinput.New()
	ti.Placeholder = "Enter a country name..."
	ti.CharLimit = 100
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = st.spinner

	return Model{
		service: svc,
		themes:  store,
		input:   ti,
		spinner: sp,
		results: viewport.New(78, 20),
		state:   stateIdle,
		pref:    pref,
		styles:  st,
		mapZoom: mapZoom,
		width:   80,
		height:  24,
	}
}

// Init initializes the model and returns initial commands.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// State accessors used by tests and the view.

// Country returns the currently displayed record, nil when none is shown.
func (m Model) Country() *countries.Country {
	return m.country
}

// ErrorMessage returns the message shown in the error panel.
func (m Model) ErrorMessage() string {
	return m.errMsg
}

// Theme returns the active theme preference.
func (m Model) Theme() theme.Preference {
	return m.pref
}
