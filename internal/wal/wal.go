package wal

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultWalDirectory = "wal"
	defaultWALFile      = "wal.log"
)

// Entry represents a Write-Ahead Log entry for a store mutation
type Entry struct {
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}

type Manager struct {
	mu      sync.RWMutex
	walFile *os.File
	path    string
}

type Config struct {
	// Path where the WAL directory will be saved
	Path string
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Path == "" {
		errGrp = append(errGrp, errors.New("home directory cannot be empty"))
	}
	return errors.Join(errGrp...)
}

func New(cfg *Config) (*Manager, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	walPath := filepath.Join(cfg.Path, defaultWalDirectory, defaultWALFile)
	walDir := filepath.Dir(walPath)
	if err := os.MkdirAll(walDir, 0750); err != nil {
		return nil, errors.New("failed to create WAL directory: " + err.Error())
	}

	// Open WAL file with appropriate permissions
	file, err := os.OpenFile(walPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0640)
	if err != nil {
		return nil, errors.New("failed to open WAL file: " + err.Error())
	}

	return &Manager{
		walFile: file,
		path:    walPath,
	}, nil
}

// Apply appends the entry to the WAL file as a single JSON line:
//
// ex: {"type":"put","payload":{"table":{"namespace":"default","qualifier":"users"},...},"timestamp":"..."}
//
// The entry is written before the mutation is applied in memory, so the log can be replayed
// after a crash. Entries older than the latest snapshot are removed by Truncate.
func (m *Manager) Apply(e *Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.walFile == nil {
		return errors.New("WAL is closed")
	}

	// Convert the entry to JSON for storage
	jsonData, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}

	// Write the JSON data to the WAL file, followed by a newline
	if _, err = m.walFile.Write(append(jsonData, '\n')); err != nil {
		return fmt.Errorf("failed to write to WAL: %w", err)
	}

	return nil
}

// Truncate empties the WAL once its entries are covered by a snapshot.
func (m *Manager) Truncate() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.walFile == nil {
		return errors.New("WAL is closed")
	}
	if err := m.walFile.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate WAL: %w", err)
	}
	if _, err := m.walFile.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to rewind WAL: %w", err)
	}
	return nil
}

// Path returns the location of the WAL file
func (m *Manager) Path() string {
	return m.path
}

func (m *Manager) Start() error {
	return nil
}

// Stop flushes and closes the WAL file.
func (m *Manager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.walFile == nil {
		return nil
	}
	if err := m.walFile.Sync(); err != nil {
		log.Warn().Err(err).Msg("failed to sync WAL")
	}
	err := m.walFile.Close()
	m.walFile = nil
	return err
}

func (m *Manager) Name() string {
	return "Write-Ahead Log"
}
