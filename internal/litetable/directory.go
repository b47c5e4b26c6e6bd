package litetable

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	litetableDir = ".litetable"
	// HomeEnv overrides the LiteTable directory.
	HomeEnv = "LITETABLE_HOME"
)

// GetLitetableDir returns the LiteTable directory: $LITETABLE_HOME when set, otherwise
// ~/.litetable.
func GetLitetableDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, litetableDir), nil
}
