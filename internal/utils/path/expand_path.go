package path

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath replaces a leading ~ with the user's home directory and cleans
// the result. Other paths are returned cleaned but otherwise untouched.
func ExpandPath(p string) (string, error) {
	if len(p) == 0 {
		return "", fmt.Errorf("empty path")
	}

	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		if p == "~" {
			return home, nil
		}
		return filepath.Join(home, p[2:]), nil
	}

	return filepath.Clean(p), nil
}
