// Package transport implements store.Connection against a remote LiteTable server over gRPC.
package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/litetable/litetable-go/internal/litetable"
	"github.com/litetable/litetable-go/internal/rpc"
	"github.com/litetable/litetable-go/internal/store"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
)

const defaultDialTimeout = 5 * time.Second

// Dialer opens connections to a LiteTable server.
type Dialer struct {
	target      string
	dialTimeout time.Duration
	opts        []grpc.DialOption
}

type Config struct {
	// Target is the server address, host:port.
	Target      string
	DialTimeout time.Duration
	// ContextDialer replaces the network dialer, mostly for in-memory tests.
	ContextDialer func(ctx context.Context, addr string) (net.Conn, error)
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Target == "" {
		errGrp = append(errGrp, errors.New("target required"))
	}
	if c.DialTimeout < 0 {
		errGrp = append(errGrp, errors.New("dial timeout cannot be negative"))
	}
	return errors.Join(errGrp...)
}

func New(cfg *Config) (*Dialer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	timeout := cfg.DialTimeout
	if timeout == 0 {
		timeout = defaultDialTimeout
	}
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if cfg.ContextDialer != nil {
		opts = append(opts, grpc.WithContextDialer(cfg.ContextDialer))
	}

	return &Dialer{
		target:      cfg.Target,
		dialTimeout: timeout,
		opts:        opts,
	}, nil
}

// Open dials the server and waits until the channel is ready or the dial timeout passes.
func (d *Dialer) Open(ctx context.Context) (store.Connection, error) {
	cc, err := grpc.NewClient(d.target, d.opts...)
	if err != nil {
		return nil, store.NewError(store.KindConnectivity, "open", err)
	}

	ctx, cancel := context.WithTimeout(ctx, d.dialTimeout)
	defer cancel()

	cc.Connect()
	for {
		state := cc.GetState()
		if state == connectivity.Ready {
			break
		}
		if !cc.WaitForStateChange(ctx, state) {
			_ = cc.Close()
			return nil, store.NewError(store.KindConnectivity, "open",
				fmt.Errorf("%w: %s not ready after %v: %v", store.ErrUnavailable, d.target, d.dialTimeout,
					context.Cause(ctx)))
		}
	}

	log.Debug().Msgf("connected to LiteTable at %s", d.target)
	return &connection{cc: cc, client: rpc.NewStoreClient(cc)}, nil
}

type connection struct {
	cc     *grpc.ClientConn
	client *rpc.StoreClient
	closed atomic.Bool
	once   sync.Once
	err    error
}

func (c *connection) Admin() (store.Admin, error) {
	if c.closed.Load() {
		return nil, store.NewError(store.KindConnectivity, "admin", store.ErrConnectionClosed)
	}
	return &admin{handle{conn: c}}, nil
}

func (c *connection) Table(name litetable.TableName) (store.Table, error) {
	if c.closed.Load() {
		return nil, store.NewError(store.KindConnectivity, "table", store.ErrConnectionClosed)
	}
	name = name.Canonical()
	if err := name.Validate(); err != nil {
		return nil, store.Errorf(store.KindPrecondition, "table", store.ErrInvalidArgument, "%v", err)
	}
	return &tableHandle{handle: handle{conn: c}, name: name}, nil
}

func (c *connection) Close() error {
	c.once.Do(func() {
		c.closed.Store(true)
		c.err = c.cc.Close()
	})
	return c.err
}

func (c *connection) IsClosed() bool {
	return c.closed.Load()
}

type handle struct {
	conn   *connection
	closed atomic.Bool
}

func (h *handle) check(ctx context.Context, op string) error {
	if h.closed.Load() {
		return store.NewError(store.KindUnknown, op, store.ErrHandleClosed)
	}
	if h.conn.closed.Load() {
		return store.NewError(store.KindConnectivity, op, store.ErrConnectionClosed)
	}
	return ctx.Err()
}

func (h *handle) Close() error {
	h.closed.Store(true)
	return nil
}
