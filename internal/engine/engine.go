package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/litetable/litetable-go/internal/litetable"
	"github.com/litetable/litetable-go/internal/wal"
	"github.com/rs/zerolog/log"
)

const defaultScannerLease = time.Minute

type walLog interface {
	Apply(e *wal.Entry) error
	Load(fn func(e *wal.Entry) error) error
}

type snapshotLoader interface {
	Latest() (*litetable.Snapshot, error)
}

type emitter interface {
	Emit(event litetable.ChangeEvent)
}

// Engine is an in-memory column-family store. Rows of each table are kept in key order,
// every cell keeps its versions newest first and deletions are recorded as tombstones until
// compaction removes them.
type Engine struct {
	mu         sync.RWMutex
	namespaces map[string]*litetable.NamespaceDescriptor
	tables     map[string]*table // "namespace:table" -> table

	scanners *scannerRegistry

	wal       walLog
	snapshots snapshotLoader
	emitter   emitter
	now       func() time.Time
}

type Config struct {
	// WAL records every mutation so it can be replayed on start. Optional.
	WAL walLog
	// Snapshots provides the state to restore before the WAL is replayed. Optional.
	Snapshots snapshotLoader
	// Emitter receives a change event per applied cell. Optional.
	Emitter emitter
	// ScannerLease is how long an idle scanner survives.
	ScannerLease time.Duration
	// Clock overrides time.Now.
	Clock func() time.Time
}

func (c *Config) validate() error {
	var errGrp []error
	if c.ScannerLease < 0 {
		errGrp = append(errGrp, errors.New("scanner lease cannot be negative"))
	}
	return errors.Join(errGrp...)
}

// New creates an engine holding the default and system namespaces.
func New(cfg *Config) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	lease := cfg.ScannerLease
	if lease == 0 {
		lease = defaultScannerLease
	}
	now := cfg.Clock
	if now == nil {
		now = time.Now
	}

	e := &Engine{
		tables:    make(map[string]*table),
		scanners:  newScannerRegistry(lease),
		wal:       cfg.WAL,
		snapshots: cfg.Snapshots,
		emitter:   cfg.Emitter,
		now:       now,
	}
	e.resetNamespaces()
	return e, nil
}

func (e *Engine) resetNamespaces() {
	e.namespaces = map[string]*litetable.NamespaceDescriptor{
		litetable.DefaultNamespace: litetable.NewNamespaceDescriptor(litetable.DefaultNamespace, nil),
		litetable.SystemNamespace:  litetable.NewNamespaceDescriptor(litetable.SystemNamespace, nil),
	}
}

// Start restores the latest snapshot and replays the WAL on top of it.
func (e *Engine) Start() error {
	if e.snapshots != nil {
		snap, err := e.snapshots.Latest()
		if err != nil {
			return fmt.Errorf("failed to load snapshot: %w", err)
		}
		if snap != nil {
			e.Restore(snap)
			log.Info().Msgf("restored snapshot with %d tables", len(snap.Tables))
		}
	}

	if e.wal == nil {
		return nil
	}

	var replayed int
	if err := e.wal.Load(func(entry *wal.Entry) error {
		var rec record
		if err := json.Unmarshal(entry.Payload, &rec); err != nil {
			log.Warn().Err(err).Msg("skipping malformed WAL entry")
			return nil
		}
		if err := e.replay(recordType(entry.Type), &rec); err != nil {
			log.Debug().Err(err).Msgf("WAL entry %s not replayed", entry.Type)
			return nil
		}
		replayed++
		return nil
	}); err != nil {
		return fmt.Errorf("failed to load WAL: %w", err)
	}

	log.Info().Msgf("replayed %d WAL entries", replayed)
	return nil
}

// Stop releases every open scanner.
func (e *Engine) Stop() error {
	if n := e.scanners.closeAll(); n > 0 {
		log.Info().Msgf("closed %d open scanners", n)
	}
	return nil
}

func (e *Engine) Name() string {
	return "LiteTable Engine"
}

// nowMillis returns the engine clock as unix milliseconds.
func (e *Engine) nowMillis() int64 {
	return e.now().UnixMilli()
}

// log appends a record to the WAL when one is configured.
func (e *Engine) log(typ recordType, rec *record) error {
	if e.wal == nil {
		return nil
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal %s record: %w", typ, err)
	}
	if err := e.wal.Apply(&wal.Entry{
		Type:      string(typ),
		Payload:   payload,
		Timestamp: e.now(),
	}); err != nil {
		return fmt.Errorf("failed to write %s to WAL: %w", typ, err)
	}
	return nil
}

// Checkpoint hands a consistent snapshot to fn while all writes are blocked. fn typically
// persists the snapshot and truncates the WAL.
func (e *Engine) Checkpoint(fn func(snap *litetable.Snapshot) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.snapshotLocked())
}

// Snapshot returns a deep copy of the engine state.
func (e *Engine) Snapshot() *litetable.Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() *litetable.Snapshot {
	snap := &litetable.Snapshot{TakenAt: e.nowMillis()}
	for _, ns := range sortedKeys(e.namespaces) {
		snap.Namespaces = append(snap.Namespaces, *litetable.NewNamespaceDescriptor(ns, e.namespaces[ns].Configuration))
	}
	for _, key := range sortedKeys(e.tables) {
		snap.Tables = append(snap.Tables, e.tables[key].snapshot())
	}
	return snap
}

// Restore replaces the engine state with snap.
func (e *Engine) Restore(snap *litetable.Snapshot) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.resetNamespaces()
	for _, ns := range snap.Namespaces {
		e.namespaces[ns.Name] = litetable.NewNamespaceDescriptor(ns.Name, ns.Configuration)
	}
	e.tables = make(map[string]*table, len(snap.Tables))
	for _, ts := range snap.Tables {
		t := restoreTable(ts)
		e.tables[t.desc.Name.String()] = t
	}
}
