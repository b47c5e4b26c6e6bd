package main

import (
	"bytes"
	"context"
	"net"
	"testing"
	"time"

	"github.com/litetable/litetable-go/internal/app"
	"github.com/litetable/litetable-go/internal/config"
	"github.com/litetable/litetable-go/internal/demo"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		ServerAddress:          "127.0.0.1",
		ServerPort:             9443,
		Embedded:               true,
		DataDir:                t.TempDir(),
		DialTimeout:            1,
		SnapshotTimer:          300,
		GarbageCollectionTimer: 30,
		ScannerLease:           60,
		StopTimeout:            5,
		ScannerCaching:         10,
		DefaultMaxVersions:     5,
		MaxSnapshotLimit:       3,
	}
}

func freePort(t *testing.T) int {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()
	return lis.Addr().(*net.TCPAddr).Port
}

func names(deps []app.Dependency) []string {
	out := make([]string, len(deps))
	for i, d := range deps {
		out[i] = d.Name()
	}
	return out
}

func TestBuild(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		mode      mode
		embedded  bool
		listeners bool
		want      []string
	}{
		"serve": {
			mode:     modeServe,
			embedded: true,
			want: []string{"Write-Ahead Log", "LiteTable Engine", "Disk Storage", "Reaper", "gRPC Server"},
		},
		"serve ignores embedded": {
			mode:     modeServe,
			embedded: false,
			want:     []string{"Write-Ahead Log", "LiteTable Engine", "Disk Storage", "Reaper", "gRPC Server"},
		},
		"embedded demo": {
			mode:     modeDemo,
			embedded: true,
			want:     []string{"Write-Ahead Log", "LiteTable Engine", "Disk Storage", "Reaper", "Connection Manager"},
		},
		"serve with listeners": {
			mode:      modeServe,
			embedded:  true,
			listeners: true,
			want: []string{"Write-Ahead Log", "CDC Stream", "LiteTable Engine", "Disk Storage", "Reaper",
				"gRPC Server", "Metrics Server"},
		},
		"embedded demo skips listeners": {
			mode:      modeDemo,
			embedded:  true,
			listeners: true,
			want:      []string{"Write-Ahead Log", "LiteTable Engine", "Disk Storage", "Reaper", "Connection Manager"},
		},
		"remote demo skips listeners": {
			mode:      modeDemo,
			listeners: true,
			want:      []string{"Connection Manager"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			cfg := testConfig(t)
			cfg.Embedded = tc.embedded
			cfg.ServerPort = freePort(t)
			if tc.listeners {
				cfg.MetricsPort = freePort(t)
				cfg.CDCPort = freePort(t)
			}

			rt, err := build(cfg, tc.mode)
			require.NoError(t, err)
			require.Equal(t, tc.want, names(rt.deps))
			require.NotNil(t, rt.schema)
			require.NotNil(t, rt.rows)
		})
	}
}

// The demo survives a restart: the table written by the first process is found by the second.
func TestBuild_DemoRestart(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	cfg := testConfig(t)

	run := func(task func(ctx context.Context, rt *runtime) error) {
		rt, err := build(cfg, modeDemo)
		req.NoError(err)
		application, err := app.CreateApp(&app.Config{
			ServiceName: "test",
			StopTimeout: 5 * time.Second,
		}, rt.deps...)
		req.NoError(err)
		req.NoError(application.RunTask(context.Background(), func(ctx context.Context) error {
			return task(ctx, rt)
		}))
	}

	var out bytes.Buffer
	run(func(ctx context.Context, rt *runtime) error {
		runner, err := demo.New(&demo.Config{Schema: rt.schema, Rows: rt.rows, Out: &out})
		if err != nil {
			return err
		}
		return runner.Run(ctx)
	})
	req.Contains(out.String(), "namespace bigdata created")

	run(func(ctx context.Context, rt *runtime) error {
		found, err := rt.schema.TableExists(ctx, demo.DefaultNamespace, demo.DefaultTable)
		req.True(found)
		if err != nil {
			return err
		}
		cells, err := rt.rows.GetCells(ctx, demo.DefaultNamespace, demo.DefaultTable, "2002", "info", "age")
		req.Len(cells, 1)
		req.Equal("20", string(cells[0].Value))
		return err
	})
}

// A remote demo shares the configuration of the server it talks to, ports included.
func TestBuild_DemoNextToServer(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	cfg := testConfig(t)
	cfg.Embedded = false
	cfg.ServerPort = freePort(t)
	cfg.MetricsPort = freePort(t)
	cfg.CDCPort = freePort(t)

	server, err := build(cfg, modeServe)
	req.NoError(err)
	serveApp, err := app.CreateApp(&app.Config{ServiceName: "serve", StopTimeout: 5 * time.Second},
		server.deps...)
	req.NoError(err)

	var out bytes.Buffer
	err = serveApp.RunTask(context.Background(), func(ctx context.Context) error {
		client, err := build(cfg, modeDemo)
		if err != nil {
			return err
		}
		demoApp, err := app.CreateApp(&app.Config{ServiceName: "demo", StopTimeout: 5 * time.Second},
			client.deps...)
		if err != nil {
			return err
		}
		runner, err := demo.New(&demo.Config{Schema: client.schema, Rows: client.rows, Out: &out})
		if err != nil {
			return err
		}
		return demoApp.RunTask(ctx, runner.Run)
	})
	req.NoError(err)
	req.Contains(out.String(), "namespace bigdata created")
	req.Contains(out.String(), "wrote 8 cells in 4 rows")
}
