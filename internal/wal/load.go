package wal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// maxEntrySize bounds a single WAL line.
const maxEntrySize = 16 * 1024 * 1024

// Load reads every entry of the WAL in order and hands it to fn. Malformed lines are skipped.
// Loading stops at the first error returned by fn.
func (m *Manager) Load(fn func(e *Entry) error) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	file, err := os.Open(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			// No WAL file exists yet, not an error
			return nil
		}
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEntrySize)

	var line int
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}

		var entry Entry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			log.Warn().Err(err).Msgf("skipping malformed WAL entry on line %d", line)
			continue
		}

		if err := fn(&entry); err != nil {
			return fmt.Errorf("WAL entry on line %d: %w", line, err)
		}
	}

	return scanner.Err()
}
