// Package rows reads and writes table rows: single-cell puts, versioned gets, range scans with
// optional server-side filters, and scoped column deletion.
//
// Every call acquires a table handle from the shared connection and releases it before
// returning. Scans release the handle when iteration ends, whether the range was exhausted,
// the caller stopped early or an error was yielded.
package rows

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/litetable/litetable-go/internal/litetable"
	"github.com/litetable/litetable-go/internal/metrics"
	"github.com/litetable/litetable-go/internal/store"
	"github.com/rs/zerolog/log"
)

//go:generate mockgen -destination=rows_mock.go -package=rows -source=rows.go

const component = "rows"

// connector hands out the shared store connection.
type connector interface {
	Connection(ctx context.Context) (store.Connection, error)
}

type Access struct {
	connections connector
	caching     int
	metrics     *metrics.Metrics
}

type Config struct {
	Connections connector
	// Caching is the number of rows fetched per scan page. Defaults to store.DefaultCaching.
	Caching int
	Metrics *metrics.Metrics
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Connections == nil {
		errGrp = append(errGrp, errors.New("connections required"))
	}
	if c.Caching < 0 {
		errGrp = append(errGrp, errors.New("caching cannot be negative"))
	}
	return errors.Join(errGrp...)
}

func New(cfg *Config) (*Access, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	caching := cfg.Caching
	if caching == 0 {
		caching = store.DefaultCaching
	}
	return &Access{
		connections: cfg.Connections,
		caching:     caching,
		metrics:     cfg.Metrics,
	}, nil
}

// WithCaching returns a copy of the access layer whose scans fetch n rows per page. n must be
// at least 1.
func (a *Access) WithCaching(n int) (*Access, error) {
	if n < 1 {
		return nil, store.Errorf(store.KindPrecondition, "with_caching", store.ErrInvalidArgument,
			"caching must be at least 1, got %d", n)
	}
	out := *a
	out.caching = n
	return &out, nil
}

// withTable runs fn with a handle on name that is closed on every path.
func (a *Access) withTable(ctx context.Context, op string, name litetable.TableName,
	fn func(t store.Table) error) error {
	conn, err := a.connections.Connection(ctx)
	if err != nil {
		return err
	}
	t, err := conn.Table(name)
	if err != nil {
		return dataError(op, err)
	}
	defer func() {
		if cerr := t.Close(); cerr != nil {
			log.Warn().Err(cerr).Msgf("%s: failed to release table handle %s", op, name)
		}
	}()
	return fn(t)
}

func (a *Access) finish(op string, start time.Time, err error) {
	a.metrics.Observe(component, op, start, err)
	switch {
	case err == nil:
		log.Debug().Msgf("%s completed in %v", op, time.Since(start))
	case store.IsKind(err, store.KindPrecondition):
		log.Warn().Err(err).Msg(op + " rejected")
	default:
		log.Error().Err(err).Msg(op + " failed")
	}
}

func dataError(op string, err error) error {
	return store.NewError(store.KindDataOperation, op, err)
}

func invalid(op string, err error) error {
	return store.NewError(store.KindPrecondition, op, fmt.Errorf("%w: %v", store.ErrInvalidArgument, err))
}
