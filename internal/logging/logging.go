package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/redjax/csvdash/internal/constants"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global zerolog logger for CLI use: human readable
// output on stderr at the given level.
func Setup(level string, debug bool) error {
	return configure(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}, level, debug)
}

// SetupFile points the global logger at a file so an interactive TUI keeps
// the terminal to itself. An empty path writes to csvdash.log in the OS temp dir.
// The returned func closes the file.
func SetupFile(path, level string, debug bool) (string, func() error, error) {
	if path == "" {
		path = DefaultLogFile()
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return "", nil, fmt.Errorf("failed to open log file: %w", err)
	}
	if err := configure(f, level, debug); err != nil {
		f.Close()
		return "", nil, err
	}
	return path, f.Close, nil
}

// DefaultLogFile is where the dashboard logs when no log.file is configured.
func DefaultLogFile() string {
	return filepath.Join(os.TempDir(), constants.AppName+".log")
}

func configure(w io.Writer, level string, debug bool) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if debug {
		lvl = zerolog.DebugLevel
	}

	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	return nil
}
