package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/litetable/litetable-go/internal/engine"
	"github.com/litetable/litetable-go/internal/litetable"
	"github.com/litetable/litetable-go/internal/store"
	"github.com/litetable/litetable-go/internal/wal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		cfg   *Config
		error string
		limit int
	}{
		"invalid config": {
			cfg:   &Config{MaxSnapshotLimit: 51},
			error: "data directory is required\nflush interval must be greater than 0\nmax snapshot limit must be between 1 and 50",
		},
		"default limit": {
			cfg:   &Config{FlushInterval: time.Minute},
			limit: defaultSnapshotLimit,
		},
		"configured limit": {
			cfg:   &Config{FlushInterval: time.Minute, MaxSnapshotLimit: 3},
			limit: 3,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if tc.error == "" {
				tc.cfg.RootDir = t.TempDir()
			}
			got, err := New(tc.cfg)
			if tc.error != "" {
				require.EqualError(t, err, tc.error)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.limit, got.maxSnapshotLimit)
			require.DirExists(t, got.Dir())
			require.Equal(t, "Disk Storage", got.Name())
		})
	}
}

func TestMaintainSnapshotLimit(t *testing.T) {
	// Create a temporary directory for test files
	tempDir := t.TempDir()

	// Create a test manager with a limit of 3 snapshots
	manager := &Manager{
		dataDir:          tempDir,
		maxSnapshotLimit: 3,
	}

	// Create 5 snapshot files with timestamps precisely 1 month apart
	ts1 := time.Date(2023, 1, 15, 12, 0, 0, 0, time.UTC).UnixNano() // Jan 15, 2023 (oldest)
	ts2 := time.Date(2023, 2, 15, 12, 0, 0, 0, time.UTC).UnixNano() // Feb 15, 2023
	ts3 := time.Date(2023, 3, 15, 12, 0, 0, 0, time.UTC).UnixNano() // Mar 15, 2023
	ts4 := time.Date(2023, 4, 15, 12, 0, 0, 0, time.UTC).UnixNano() // Apr 15, 2023
	ts5 := time.Date(2023, 5, 15, 12, 0, 0, 0, time.UTC).UnixNano() // May 15, 2023 (newest)

	// Add timestamps in non-sequential order to test sorting
	timestamps := []int64{ts3, ts1, ts5, ts2, ts4}
	// The 3 newest timestamps that should be kept
	expectedTimestamps := []int64{ts3, ts4, ts5}

	// Create the snapshot files
	for _, ts := range timestamps {
		filename := filepath.Join(tempDir, fmt.Sprintf("snapshot-%d.db", ts))
		require.NoError(t, os.WriteFile(filename, []byte{}, 0644))
	}

	// Get initial files
	initialFiles, err := filepath.Glob(filepath.Join(tempDir, snapshotFileGlob))
	require.NoError(t, err)
	assert.Len(t, initialFiles, 5, "Should have 5 snapshot files initially")

	// Run the function to maintain snapshot limit
	manager.maintainSnapshotLimit()

	// Check remaining files
	remainingFiles, err := filepath.Glob(filepath.Join(tempDir, snapshotFileGlob))
	require.NoError(t, err)
	assert.Len(t, remainingFiles, 3, "Should have pruned to 3 snapshot files")

	// Extract timestamps from remaining files
	var keptTimestamps []int64
	for _, file := range remainingFiles {
		keptTimestamps = append(keptTimestamps, extractTimestamp(filepath.Base(file)))
	}
	sort.Slice(keptTimestamps, func(i, j int) bool { return keptTimestamps[i] < keptTimestamps[j] })

	// Verify we kept exactly the expected timestamps
	assert.Equal(t, expectedTimestamps, keptTimestamps, "The three newest snapshots should be kept")
}

// Helper function to extract timestamp from filename
func extractTimestamp(filename string) int64 {
	var timestamp int64
	_, err := fmt.Sscanf(filename, "snapshot-%d.db", &timestamp)
	if err != nil {
		return 0
	}
	return timestamp
}

func newManager(t *testing.T, truncator walTruncator) *Manager {
	t.Helper()
	m, err := New(&Config{RootDir: t.TempDir(), FlushInterval: time.Hour, WAL: truncator})
	require.NoError(t, err)
	return m
}

func TestManager_Flush(t *testing.T) {
	t.Parallel()
	users := litetable.NewTableName("", "users")
	snap := &litetable.Snapshot{
		TakenAt: 1_700_000_000_000,
		Tables: []litetable.TableSnapshot{{
			Descriptor: litetable.NewTableDescriptor(users, litetable.NewColumnFamilyDescriptor("info")),
			Rows: []litetable.RowSnapshot{{
				Key: []byte("2001"),
				Families: map[string]litetable.VersionedQualifier{
					"info": {"age": {{Value: []byte("10"), Timestamp: 1}}},
				},
			}},
		}},
	}

	t.Run("snapshot written and WAL truncated", func(t *testing.T) {
		t.Parallel()
		req := require.New(t)
		ctrl := gomock.NewController(t)
		truncator := NewMockwalTruncator(ctrl)
		truncator.EXPECT().Truncate().Return(nil)
		source := NewMockcheckpointer(ctrl)
		source.EXPECT().
			Checkpoint(gomock.Any()).
			DoAndReturn(func(fn func(*litetable.Snapshot) error) error { return fn(snap) })

		m := newManager(t, truncator)
		m.SetSource(source)

		latest, err := m.Latest()
		req.NoError(err)
		req.Nil(latest)

		req.NoError(m.Flush())
		latest, err = m.Latest()
		req.NoError(err)
		req.Equal(snap.Tables[0].Rows, latest.Tables[0].Rows)
		req.Equal(snap.TakenAt, latest.TakenAt)
	})

	t.Run("failed checkpoint keeps the WAL", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		truncator := NewMockwalTruncator(ctrl)
		source := NewMockcheckpointer(ctrl)
		source.EXPECT().Checkpoint(gomock.Any()).Return(errors.New("paused"))

		m := newManager(t, truncator)
		m.SetSource(source)
		require.EqualError(t, m.Flush(), "paused")
	})

	t.Run("prunes after flush", func(t *testing.T) {
		t.Parallel()
		req := require.New(t)
		ctrl := gomock.NewController(t)
		source := NewMockcheckpointer(ctrl)
		source.EXPECT().
			Checkpoint(gomock.Any()).
			DoAndReturn(func(fn func(*litetable.Snapshot) error) error { return fn(snap) }).
			Times(3)

		m := newManager(t, nil)
		m.maxSnapshotLimit = 2
		m.SetSource(source)
		for range 3 {
			req.NoError(m.Flush())
		}
		files, err := filepath.Glob(filepath.Join(m.Dir(), snapshotFileGlob))
		req.NoError(err)
		req.Len(files, 2)
	})
}

func TestManager_StartStop(t *testing.T) {
	t.Parallel()

	t.Run("start requires a source", func(t *testing.T) {
		t.Parallel()
		m := newManager(t, nil)
		require.EqualError(t, m.Start(), "snapshot source required")
	})

	t.Run("stop without start does not flush", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		m := newManager(t, nil)
		m.SetSource(NewMockcheckpointer(ctrl))
		require.NoError(t, m.Stop())
	})

	t.Run("stop flushes once", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		source := NewMockcheckpointer(ctrl)
		source.EXPECT().
			Checkpoint(gomock.Any()).
			DoAndReturn(func(fn func(*litetable.Snapshot) error) error {
				return fn(&litetable.Snapshot{})
			})

		m := newManager(t, nil)
		m.SetSource(source)
		require.NoError(t, m.Start())
		require.NoError(t, m.Stop())
		require.NoError(t, m.Stop())
	})
}

// A restart restores the snapshot and replays only what the WAL gathered after it.
func TestManager_EngineRecovery(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	ctx := context.Background()
	root := t.TempDir()
	users := litetable.NewTableName("", "users")

	open := func() (*engine.Engine, *wal.Manager, *Manager) {
		w, err := wal.New(&wal.Config{Path: root})
		req.NoError(err)
		m, err := New(&Config{RootDir: root, FlushInterval: time.Hour, WAL: w})
		req.NoError(err)
		e, err := engine.New(&engine.Config{WAL: w, Snapshots: m})
		req.NoError(err)
		m.SetSource(e)
		req.NoError(e.Start())
		return e, w, m
	}

	e, w, m := open()
	req.NoError(e.CreateTable(ctx, litetable.NewTableDescriptor(users,
		litetable.NewColumnFamilyDescriptor("info").WithMaxVersions(3))))
	req.NoError(e.Put(ctx, users, store.NewPut([]byte("2001")).
		AddColumn([]byte("info"), []byte("age"), []byte("10"))))
	req.NoError(m.Flush())

	info, err := os.Stat(w.Path())
	req.NoError(err)
	req.Zero(info.Size())

	req.NoError(e.Put(ctx, users, store.NewPut([]byte("2001")).
		AddColumn([]byte("info"), []byte("age"), []byte("11"))))
	req.NoError(w.Stop())

	e, w, _ = open()
	defer w.Stop()
	res, err := e.Get(ctx, users, store.NewGet([]byte("2001")).ReadAllVersions())
	req.NoError(err)
	req.Len(res.Cells, 2)
	req.Equal("11", string(res.Cells[0].Value))
	req.Equal("10", string(res.Cells[1].Value))
}
