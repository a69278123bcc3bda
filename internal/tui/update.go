package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.results.Width = max(20, m.width-4)
		m.results.Height = max(5, m.height-10)
		if m.state == stateResults {
			m.results.SetContent(m.renderCountry())
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		if m.state != stateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case countryLoadedMsg:
		// A response from a superseded search never touches the display.
		if msg.seq != m.searchSeq {
			return m, nil
		}
		m.country = msg.country
		m.state = stateResults
		m.results.SetContent(m.renderCountry())
		m.results.GotoTop()
		return m, nil

	case lookupFailedMsg:
		if msg.seq != m.searchSeq {
			return m, nil
		}
		m.errMsg = msg.err.Error()
		m.state = stateError
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKeyPress handles keyboard input.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "enter":
		return m.submit()

	case "ctrl+t":
		m.pref = m.themes.Toggle()
		m.styles = newStyles(m.pref)
		m.spinner.Style = m.styles.spinner
		if m.state == stateResults {
			m.results.SetContent(m.renderCountry())
		}
		return m, nil

	case "up", "down", "pgup", "pgdown":
		if m.state == stateResults {
			var cmd tea.Cmd
			m.results, cmd = m.results.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit starts a new search attempt. Every call restarts from Loading; the
// sequence number advances so in-flight responses from earlier attempts are
// dropped when they arrive.
func (m Model) submit() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.input.Value())
	if name == "" {
		m.state = stateError
		m.errMsg = "Please enter a country name"
		return m, nil
	}

	m.searchSeq++
	m.state = stateLoading
	return m, tea.Batch(m.spinner.Tick, fetchCountryCmd(m.service, name, m.searchSeq))
}
