package spinner

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// StartSpinner starts a terminal spinner on stderr with the given message,
// so it never mixes with output written to stdout. It stays silent when
// stderr is not a terminal.
//
// Usage: assign the spinner to a 'stop' variable, run some code, then call stop().
// i.e.:
//
//	stop := spinner.StartSpinner("Loading orders")
//	res := loader.Load(ctx, "orders")
//	stop()
func StartSpinner(message string) func() {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message
	s.Start()

	return s.Stop
}
