package tui

import "atlas/internal/countries"

// viewState determines which panel renders below the search bar. Exactly one
// state is visible at a time.
type viewState int

const (
	stateIdle viewState = iota
	stateLoading
	stateResults
	stateError
)

// countryLoadedMsg carries a successful lookup result. The sequence number
// identifies which search produced it.
type countryLoadedMsg struct {
	seq     int
	country *countries.Country
}

// lookupFailedMsg carries the terminal error for a lookup attempt.
type lookupFailedMsg struct {
	seq int
	err error
}
