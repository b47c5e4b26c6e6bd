package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/litetable/litetable-go/internal/litetable"
	"github.com/litetable/litetable-go/internal/store"
)

// cursor is the server side state of an open scan. It resumes after the last row examined,
// so writes made between pages are observed when they sort after it.
type cursor struct {
	mu       sync.Mutex
	table    litetable.TableName
	scan     store.Scan
	after    []byte
	lastUsed atomic.Int64 // unix nanoseconds
}

type scannerRegistry struct {
	mu      sync.Mutex
	lease   time.Duration
	cursors map[string]*cursor
}

func newScannerRegistry(lease time.Duration) *scannerRegistry {
	return &scannerRegistry{
		lease:   lease,
		cursors: make(map[string]*cursor),
	}
}

func (s *scannerRegistry) add(c *cursor) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.cursors[id] = c
	s.mu.Unlock()
	return id
}

func (s *scannerRegistry) get(id string) (*cursor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.cursors[id]
	return c, ok
}

func (s *scannerRegistry) remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.cursors[id]
	delete(s.cursors, id)
	return ok
}

func (s *scannerRegistry) dropTable(name litetable.TableName) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, c := range s.cursors {
		if c.table == name {
			delete(s.cursors, id)
		}
	}
}

func (s *scannerRegistry) expire(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	for id, c := range s.cursors {
		if now.Sub(time.Unix(0, c.lastUsed.Load())) > s.lease {
			delete(s.cursors, id)
			n++
		}
	}
	return n
}

func (s *scannerRegistry) closeAll() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.cursors)
	s.cursors = make(map[string]*cursor)
	return n
}

func (s *scannerRegistry) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cursors)
}

// OpenScanner validates a scan and registers a cursor for it. The returned id is used to page
// through the range with ScannerNext.
func (e *Engine) OpenScanner(ctx context.Context, name litetable.TableName, scan *store.Scan) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if scan == nil {
		scan = store.NewScan()
	}
	name = name.Canonical()

	e.mu.RLock()
	t, err := e.writableTable(name)
	if err == nil {
		t.mu.RLock()
		_, err = newSelection(t.desc, scan.Columns, scan.MaxVersions)
		t.mu.RUnlock()
	}
	e.mu.RUnlock()
	if err != nil {
		return "", err
	}

	c := &cursor{table: name, scan: *scan}
	c.lastUsed.Store(e.now().UnixNano())
	return e.scanners.add(c), nil
}

// ScannerNext returns up to limit rows of an open scanner and whether the range is
// exhausted. An exhausted scanner is released.
func (e *Engine) ScannerNext(ctx context.Context, id string, limit int) ([]*litetable.Result, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	c, ok := e.scanners.get(id)
	if !ok {
		return nil, false, newError(store.ErrScannerNotFound, "%s", id)
	}
	if limit <= 0 {
		limit = c.scan.PageSize()
	}

	c.mu.Lock()
	results, last, done, err := e.scanPage(c.table, &c.scan, c.after, limit)
	c.after = last
	c.lastUsed.Store(e.now().UnixNano())
	c.mu.Unlock()
	if err != nil {
		e.scanners.remove(id)
		return nil, false, err
	}

	if done {
		e.scanners.remove(id)
	}
	return results, done, nil
}

// CloseScanner releases a scanner. Closing an unknown scanner is a no-op.
func (e *Engine) CloseScanner(_ context.Context, id string) error {
	e.scanners.remove(id)
	return nil
}

// ExpireScanners releases scanners idle for longer than the lease and returns how many were
// released.
func (e *Engine) ExpireScanners(now time.Time) int {
	return e.scanners.expire(now)
}

// OpenScanners returns the number of live scanners.
func (e *Engine) OpenScanners() int {
	return e.scanners.len()
}
