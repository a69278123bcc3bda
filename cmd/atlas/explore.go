package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"atlas/internal/theme"
	"atlas/internal/tui"
)

// runExplorer launches the interactive country explorer.
func runExplorer(a *app) error {
	hint := theme.Dark
	if !lipgloss.HasDarkBackground() {
		hint = theme.Light
	}
	pref := a.themes.Initial(hint)
	a.themes.Apply(pref)

	a.log.WithFields(map[string]any{"theme": pref.String()}).Debug("starting explorer")

	m := tui.NewModel(a.client, a.themes, pref, a.settings.MapZoom)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		a.log.Error(err, "explorer failed")
		return fmt.Errorf("failed to run explorer: %w", err)
	}

	return nil
}
