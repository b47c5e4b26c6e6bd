package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/litetable/litetable-go/internal/litetable"
	"github.com/rs/zerolog/log"
)

const snapshotFileGlob = "snapshot-*.db"

// saveSnapshot writes snap to a new file. The file only appears under its final name once
// it is complete.
func (m *Manager) saveSnapshot(snap *litetable.Snapshot) (string, error) {
	filename := filepath.Join(m.dataDir, fmt.Sprintf("snapshot-%d.db", time.Now().UnixNano()))

	dataBytes, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	tmp := filename + ".tmp"
	if err = os.WriteFile(tmp, dataBytes, 0644); err != nil {
		return "", fmt.Errorf("failed to write snapshot file: %w", err)
	}
	if err = os.Rename(tmp, filename); err != nil {
		return "", fmt.Errorf("failed to commit snapshot file: %w", err)
	}

	return filename, nil
}

// getLatestSnapshot returns the latest snapshot file in the data directory.
func (m *Manager) getLatestSnapshot() (string, error) {
	files, err := filepath.Glob(filepath.Join(m.dataDir, snapshotFileGlob))
	if err != nil {
		return "", err
	}

	if len(files) == 0 {
		// No snapshots yet, nothing to load
		return "", nil
	}

	// Find the newest snapshot file
	latest := files[0]
	for _, file := range files {
		if file > latest {
			latest = file
		}
	}

	return latest, nil
}

// Latest loads the newest snapshot, or nil when none was written yet.
func (m *Manager) Latest() (*litetable.Snapshot, error) {
	latest, err := m.getLatestSnapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to get latest snapshot: %w", err)
	}
	if latest == "" {
		return nil, nil
	}

	dataBytes, err := os.ReadFile(latest)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", latest, err)
	}

	var snap litetable.Snapshot
	if err := json.Unmarshal(dataBytes, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", latest, err)
	}

	log.Debug().Msgf("loaded snapshot %s", filepath.Base(latest))
	return &snap, nil
}

// maintainSnapshotLimit checks the number of snapshot files in the directory and prunes the oldest
// ones if the limit is exceeded.
func (m *Manager) maintainSnapshotLimit() {
	// List all snapshot files
	files, err := filepath.Glob(filepath.Join(m.dataDir, snapshotFileGlob))
	if err != nil {
		log.Error().Err(err).Msg("failed to list snapshot files")
		return
	}

	// If we're under the limit, no pruning needed
	if len(files) <= m.maxSnapshotLimit {
		return
	}

	// file names embed a fixed-width unix nano timestamp, so lexical order is chronological
	sort.Strings(files)

	// Delete the oldest files, keeping only the configured limit
	for i := 0; i < len(files)-m.maxSnapshotLimit; i++ {
		if err := os.Remove(files[i]); err != nil {
			log.Error().Err(err).Msgf("failed to remove old snapshot %s", files[i])
			continue
		}
		log.Debug().Msgf("pruned old snapshot: %s", filepath.Base(files[i]))
	}
}
