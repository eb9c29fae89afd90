package history

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DetectFlavor inspects $SHELL to pick a history flavor.
func DetectFlavor() (Flavor, bool) {
	shell := os.Getenv("SHELL")
	switch {
	case strings.Contains(shell, "zsh"):
		return FlavorZsh, true
	case strings.Contains(shell, "bash"):
		return FlavorBash, true
	}
	return "", false
}

// DefaultPath returns the standard history file location for a flavor.
// $HISTFILE wins when it points at an existing file for the same shell.
func DefaultPath(flavor Flavor) (string, error) {
	if histfile := os.Getenv("HISTFILE"); histfile != "" {
		if strings.Contains(histfile, string(flavor)) {
			if _, err := os.Stat(histfile); err == nil {
				return histfile, nil
			}
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}

	switch flavor {
	case FlavorZsh:
		return filepath.Join(home, ".zsh_history"), nil
	case FlavorBash:
		return filepath.Join(home, ".bash_history"), nil
	default:
		return "", fmt.Errorf("unsupported history flavor: %s", flavor)
	}
}
