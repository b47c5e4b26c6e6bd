// Package connection owns the process-wide store connection. It is opened once, lazily on first
// use or eagerly when the application starts, and closed once on shutdown. The connection is
// safe for concurrent use, so callers share it without further locking.
package connection

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/litetable/litetable-go/internal/store"
	"github.com/rs/zerolog/log"
)

//go:generate mockgen -destination=connection_mock.go -package=connection -source=connection.go

// opener establishes a connection to a store: the gRPC transport or the embedded engine.
type opener interface {
	Open(ctx context.Context) (store.Connection, error)
}

type live struct {
	conn store.Connection
}

type Manager struct {
	opener      opener
	dialTimeout time.Duration

	// current is read without the lock once the connection is open.
	current atomic.Pointer[live]
	mu      sync.Mutex
	closed  bool
}

type Config struct {
	Opener opener
	// DialTimeout bounds opening the connection. Zero leaves it to the caller's context.
	DialTimeout time.Duration
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Opener == nil {
		errGrp = append(errGrp, errors.New("opener required"))
	}
	if c.DialTimeout < 0 {
		errGrp = append(errGrp, errors.New("dial timeout cannot be negative"))
	}
	return errors.Join(errGrp...)
}

// New creates a connection manager. No connection is made until it is needed.
func New(cfg *Config) (*Manager, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Manager{
		opener:      cfg.Opener,
		dialTimeout: cfg.DialTimeout,
	}, nil
}

// Connection returns the shared connection, opening it on first use. A failure to open is a
// KindConnectivity error; once the manager is closed it returns store.ErrConnectionClosed.
func (m *Manager) Connection(ctx context.Context) (store.Connection, error) {
	if l := m.current.Load(); l != nil {
		return l.conn, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, store.NewError(store.KindConnectivity, "connection", store.ErrConnectionClosed)
	}
	if l := m.current.Load(); l != nil {
		return l.conn, nil
	}

	if m.dialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.dialTimeout)
		defer cancel()
	}

	start := time.Now()
	conn, err := m.opener.Open(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to open store connection")
		return nil, store.NewError(store.KindConnectivity, "open connection", err)
	}

	m.current.Store(&live{conn: conn})
	log.Info().Msgf("store connection established in %v", time.Since(start))
	return conn, nil
}

// Close releases the shared connection. It is a no-op when the connection was never opened or
// is already closed.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true

	l := m.current.Swap(nil)
	if l == nil {
		return nil
	}
	if err := l.conn.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close store connection")
		return err
	}
	log.Info().Msg("store connection closed")
	return nil
}

// Start opens the connection eagerly. A failure aborts the application.
func (m *Manager) Start() error {
	_, err := m.Connection(context.Background())
	return err
}

func (m *Manager) Stop() error {
	return m.Close()
}

func (m *Manager) Name() string {
	return "Connection Manager"
}
