// Package schema manages namespaces, tables and column family retention. Every operation
// acquires an admin handle from the shared connection and releases it before returning.
//
// Usage mistakes, like creating a table without families or deleting a table that does not
// exist, are reported as store.KindPrecondition errors without changing the store. Failures
// reported by the store are store.KindSchemaOperation errors.
package schema

import (
	"context"
	"errors"
	"time"

	"github.com/litetable/litetable-go/internal/litetable"
	"github.com/litetable/litetable-go/internal/metrics"
	"github.com/litetable/litetable-go/internal/store"
	"github.com/rs/zerolog/log"
)

//go:generate mockgen -destination=schema_mock.go -package=schema -source=schema.go

// DefaultMaxVersions is the retention given to families created by CreateTable.
const DefaultMaxVersions = 5

const component = "schema"

// connector hands out the shared store connection.
type connector interface {
	Connection(ctx context.Context) (store.Connection, error)
}

type Admin struct {
	connections connector
	maxVersions int
	metrics     *metrics.Metrics
}

type Config struct {
	Connections connector
	// DefaultMaxVersions overrides DefaultMaxVersions when set.
	DefaultMaxVersions int
	Metrics            *metrics.Metrics
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Connections == nil {
		errGrp = append(errGrp, errors.New("connections required"))
	}
	if c.DefaultMaxVersions < 0 {
		errGrp = append(errGrp, errors.New("default max versions cannot be negative"))
	}
	return errors.Join(errGrp...)
}

func New(cfg *Config) (*Admin, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	versions := cfg.DefaultMaxVersions
	if versions == 0 {
		versions = DefaultMaxVersions
	}
	return &Admin{
		connections: cfg.Connections,
		maxVersions: versions,
		metrics:     cfg.Metrics,
	}, nil
}

// WithDefaultMaxVersions returns a copy of the admin that creates families retaining n
// versions. n must be at least 1.
func (a *Admin) WithDefaultMaxVersions(n int) (*Admin, error) {
	if n < 1 {
		return nil, store.Errorf(store.KindPrecondition, "with_default_max_versions", store.ErrInvalidArgument,
			"max versions must be at least 1, got %d", n)
	}
	out := *a
	out.maxVersions = n
	return &out, nil
}

// withAdmin runs fn with an admin handle that is closed on every path.
func (a *Admin) withAdmin(ctx context.Context, op string, fn func(adm store.Admin) error) error {
	conn, err := a.connections.Connection(ctx)
	if err != nil {
		return err
	}
	adm, err := conn.Admin()
	if err != nil {
		return store.NewError(store.KindConnectivity, op, err)
	}
	defer func() {
		if cerr := adm.Close(); cerr != nil {
			log.Warn().Err(cerr).Msgf("%s: failed to release admin handle", op)
		}
	}()
	return fn(adm)
}

// finish records the outcome of op and logs failures.
func (a *Admin) finish(op string, start time.Time, err error) {
	a.metrics.Observe(component, op, start, err)
	switch {
	case err == nil:
		log.Debug().Msgf("%s completed in %v", op, time.Since(start))
	case store.IsKind(err, store.KindPrecondition):
		log.Warn().Err(err).Msg(op + " skipped")
	default:
		log.Error().Err(err).Msg(op + " failed")
	}
}

func schemaError(op string, err error) error {
	return store.NewError(store.KindSchemaOperation, op, err)
}

// exists checks for the table within an already acquired handle.
func exists(ctx context.Context, adm store.Admin, op string, name litetable.TableName) (bool, error) {
	ok, err := adm.TableExists(ctx, name)
	if err != nil {
		return false, schemaError(op, err)
	}
	return ok, nil
}
