package main

import (
	"context"

	"github.com/litetable/litetable-go/internal/app"
	"github.com/litetable/litetable-go/internal/cdc"
	"github.com/litetable/litetable-go/internal/config"
	"github.com/litetable/litetable-go/internal/connection"
	"github.com/litetable/litetable-go/internal/engine"
	"github.com/litetable/litetable-go/internal/metrics"
	"github.com/litetable/litetable-go/internal/reaper"
	"github.com/litetable/litetable-go/internal/rows"
	"github.com/litetable/litetable-go/internal/schema"
	grpcserver "github.com/litetable/litetable-go/internal/server/grpc"
	"github.com/litetable/litetable-go/internal/storage"
	"github.com/litetable/litetable-go/internal/store"
	"github.com/litetable/litetable-go/internal/transport"
	"github.com/litetable/litetable-go/internal/wal"
)

type mode int

const (
	modeServe mode = iota
	modeDemo
)

type storeOpener interface {
	Open(ctx context.Context) (store.Connection, error)
}

// runtime is the wired process: the dependencies in start order and the client layer built
// on top of them.
type runtime struct {
	deps    []app.Dependency
	metrics *metrics.Metrics
	conns   *connection.Manager
	schema  *schema.Admin
	rows    *rows.Access
}

// build wires the process for m. The store runs in-process when serving or when cfg is
// embedded; otherwise the client layer dials the configured server. Only serve listens on
// the configured ports, so a demo can run next to a server sharing its configuration.
func build(cfg *config.Config, m mode) (*runtime, error) {
	rt := &runtime{metrics: metrics.New()}
	serve := m == modeServe

	var opener storeOpener
	if serve || cfg.Embedded {
		e, err := rt.store(cfg, serve)
		if err != nil {
			return nil, err
		}
		opener = e
	} else {
		dialer, err := transport.New(&transport.Config{
			Target:      cfg.ServerTarget(),
			DialTimeout: cfg.DialTimeoutDuration(),
		})
		if err != nil {
			return nil, err
		}
		opener = dialer
	}

	if serve && cfg.MetricsPort > 0 {
		srv, err := metrics.NewServer(&metrics.Config{
			Address: cfg.ServerAddress,
			Port:    cfg.MetricsPort,
			Metrics: rt.metrics,
		})
		if err != nil {
			return nil, err
		}
		rt.deps = append(rt.deps, srv)
	}

	conns, err := connection.New(&connection.Config{
		Opener:      opener,
		DialTimeout: cfg.DialTimeoutDuration(),
	})
	if err != nil {
		return nil, err
	}
	rt.conns = conns
	// serving never opens the client layer
	if !serve {
		rt.deps = append(rt.deps, conns)
	}

	if rt.schema, err = schema.New(&schema.Config{
		Connections:        conns,
		DefaultMaxVersions: cfg.DefaultMaxVersions,
		Metrics:            rt.metrics,
	}); err != nil {
		return nil, err
	}
	if rt.rows, err = rows.New(&rows.Config{
		Connections: conns,
		Caching:     cfg.ScannerCaching,
		Metrics:     rt.metrics,
	}); err != nil {
		return nil, err
	}
	return rt, nil
}

// store wires the embedded engine with its log, snapshots and compaction. The change stream
// and the gRPC server are only wired when serve is set.
func (rt *runtime) store(cfg *config.Config, serve bool) (*engine.Engine, error) {
	walManager, err := wal.New(&wal.Config{Path: cfg.DataDir})
	if err != nil {
		return nil, err
	}
	rt.deps = append(rt.deps, walManager)

	engineCfg := &engine.Config{
		WAL:          walManager,
		ScannerLease: cfg.ScannerLeaseDuration(),
	}

	if serve && cfg.CDCPort > 0 {
		cdcServer, err := cdc.New(&cdc.Config{
			Address: cfg.ServerAddress,
			Port:    cfg.CDCPort,
		})
		if err != nil {
			return nil, err
		}
		engineCfg.Emitter = cdcServer
		rt.deps = append(rt.deps, cdcServer)
	}

	diskStorage, err := storage.New(&storage.Config{
		RootDir:          cfg.DataDir,
		FlushInterval:    cfg.SnapshotInterval(),
		MaxSnapshotLimit: cfg.MaxSnapshotLimit,
		WAL:              walManager,
		Metrics:          rt.metrics,
	})
	if err != nil {
		return nil, err
	}
	engineCfg.Snapshots = diskStorage

	e, err := engine.New(engineCfg)
	if err != nil {
		return nil, err
	}
	diskStorage.SetSource(e)
	// the engine restores before storage starts flushing it
	rt.deps = append(rt.deps, e, diskStorage)

	gc, err := reaper.New(&reaper.Config{
		Target:     e,
		GCInterval: cfg.GarbageCollectionTimer,
		Metrics:    rt.metrics,
	})
	if err != nil {
		return nil, err
	}
	rt.deps = append(rt.deps, gc)

	if serve {
		srv, err := grpcserver.NewServer(&grpcserver.Config{
			Address: cfg.ServerAddress,
			Port:    cfg.ServerPort,
			Backend: e,
			Metrics: rt.metrics,
		})
		if err != nil {
			return nil, err
		}
		rt.deps = append(rt.deps, srv)
	}
	return e, nil
}
