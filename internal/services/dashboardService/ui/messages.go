package ui

import (
	loaderservice "github.com/redjax/csvdash/internal/services/loaderService"
)

// tableLoadedMsg carries a finished load. seq ties it to the request so a
// slow load of a table the user already left is dropped.
type tableLoadedMsg struct {
	seq    int
	table  string
	result loaderservice.LoadResult
}

// queryTickMsg fires once the run delay has elapsed.
type queryTickMsg struct {
	seq int
}

type exportDoneMsg struct {
	path string
	err  error
}
