package store

import (
	"context"
	"io"
	"sync"

	"github.com/litetable/litetable-go/internal/litetable"
)

// PageFunc fetches up to limit rows and reports whether the range is exhausted.
type PageFunc func(ctx context.Context, limit int) ([]*litetable.Result, bool, error)

// Pager is a ResultScanner that fetches rows a page at a time from a server side cursor.
type Pager struct {
	mu       sync.Mutex
	ctx      context.Context
	pageSize int
	fetch    PageFunc
	release  func() error

	buf    []*litetable.Result
	done   bool
	closed bool
}

// NewPager returns a scanner that calls fetch whenever its buffer runs dry and release once
// when closed.
func NewPager(ctx context.Context, pageSize int, fetch PageFunc, release func() error) *Pager {
	if pageSize <= 0 {
		pageSize = DefaultCaching
	}
	return &Pager{
		ctx:      ctx,
		pageSize: pageSize,
		fetch:    fetch,
		release:  release,
	}
}

// Next returns the next row, or io.EOF once the range is exhausted.
func (p *Pager) Next() (*litetable.Result, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, ErrHandleClosed
	}
	for len(p.buf) == 0 {
		if p.done {
			return nil, io.EOF
		}
		rows, done, err := p.fetch(p.ctx, p.pageSize)
		if err != nil {
			return nil, err
		}
		p.buf, p.done = rows, done
	}

	next := p.buf[0]
	p.buf = p.buf[1:]
	return next, nil
}

// Close releases the server side cursor. Subsequent calls are no-ops.
func (p *Pager) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	p.buf = nil
	if p.release == nil {
		return nil
	}
	return p.release()
}
