// Package storage persists point-in-time snapshots of the engine to disk.
//
// A snapshot is written on every flush interval and once more on shutdown. Writing a snapshot
// happens while the engine is paused for checkpointing, so once the file is on disk the WAL
// is truncated: everything it held is covered by the snapshot. On start the engine restores
// the newest snapshot and replays whatever the WAL gathered since.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/litetable/litetable-go/internal/litetable"
	"github.com/litetable/litetable-go/internal/metrics"
	"github.com/rs/zerolog/log"
)

//go:generate mockgen -destination=manager_mock.go -package=storage -source=manager.go

const (
	dataDiskName = ".table"
	snapshotDir  = "snapshots"

	defaultSnapshotLimit = 10
)

// checkpointer pauses writes while fn persists a snapshot.
type checkpointer interface {
	Checkpoint(fn func(snap *litetable.Snapshot) error) error
}

type walTruncator interface {
	Truncate() error
}

// Manager handles persistent storage operations to a disk
type Manager struct {
	dataDir string

	snapshotDuration time.Duration
	maxSnapshotLimit int

	mutex   sync.Mutex
	source  checkpointer
	wal     walTruncator
	metrics *metrics.Metrics

	started   atomic.Bool
	procCtx   context.Context
	ctxCancel context.CancelFunc
	wg        sync.WaitGroup
}

type Config struct {
	RootDir string
	// FlushInterval is the time between snapshots.
	FlushInterval    time.Duration
	MaxSnapshotLimit int
	// WAL is truncated after every snapshot. Optional.
	WAL     walTruncator
	Metrics *metrics.Metrics
}

func (c *Config) validate() error {
	var errGrp []error
	if c.RootDir == "" {
		errGrp = append(errGrp, fmt.Errorf("data directory is required"))
	}
	if c.FlushInterval <= 0 {
		errGrp = append(errGrp, fmt.Errorf("flush interval must be greater than 0"))
	}

	// if the configured snapshot is larger than 50, throw an error
	if c.MaxSnapshotLimit < 0 || c.MaxSnapshotLimit > 50 {
		errGrp = append(errGrp, fmt.Errorf("max snapshot limit must be between 1 and 50"))
	}

	return errors.Join(errGrp...)
}

// New creates a new disk storage manager
func New(cfg *Config) (*Manager, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	dirName := filepath.Join(cfg.RootDir, dataDiskName, snapshotDir)
	if err := os.MkdirAll(dirName, 0755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	limit := cfg.MaxSnapshotLimit
	// if we got nothing, set the default
	if limit == 0 {
		limit = defaultSnapshotLimit
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		dataDir:          dirName,
		snapshotDuration: cfg.FlushInterval,
		maxSnapshotLimit: limit,
		wal:              cfg.WAL,
		metrics:          cfg.Metrics,
		procCtx:          ctx,
		ctxCancel:        cancel,
	}, nil
}

// SetSource sets the engine checkpointed by the background flush. It must be called before
// Start.
func (m *Manager) SetSource(src checkpointer) {
	m.source = src
}

// Dir returns the directory snapshots are written to.
func (m *Manager) Dir() string {
	return m.dataDir
}

// Start runs the background snapshot process.
func (m *Manager) Start() error {
	if m.source == nil {
		return errors.New("snapshot source required")
	}
	m.started.Store(true)

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		ticker := time.NewTicker(m.snapshotDuration)
		defer ticker.Stop()

		for {
			select {
			case <-m.procCtx.Done():
				return
			case <-ticker.C:
				if err := m.Flush(); err != nil {
					log.Error().Err(err).Msg("failed to save snapshot")
				}
			}
		}
	}()
	return nil
}

// Stop ends the background process and writes a final snapshot.
func (m *Manager) Stop() error {
	m.ctxCancel()
	m.wg.Wait()

	// nothing to flush when the engine never came up
	if !m.started.Swap(false) {
		return nil
	}
	return m.Flush()
}

func (m *Manager) Name() string {
	return "Disk Storage"
}

// Flush checkpoints the source into a new snapshot, prunes old snapshots and truncates the
// WAL.
func (m *Manager) Flush() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	start := time.Now()
	var filename string
	err := m.source.Checkpoint(func(snap *litetable.Snapshot) error {
		var err error
		if filename, err = m.saveSnapshot(snap); err != nil {
			return err
		}
		if m.wal == nil {
			return nil
		}
		return m.wal.Truncate()
	})
	m.metrics.ObserveFlush(err)
	if err != nil {
		return err
	}

	log.Debug().Msgf("saved snapshot %s in %v", filepath.Base(filename), time.Since(start))
	m.maintainSnapshotLimit()
	return nil
}
