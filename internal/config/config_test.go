package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/litetable/litetable-go/internal/litetable"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad(t *testing.T) {
	home := t.TempDir()
	t.Setenv(litetable.HomeEnv, home)

	tests := map[string]struct {
		body  string
		check func(*require.Assertions, *Config)
		error string
	}{
		"defaults": {
			check: func(req *require.Assertions, cfg *Config) {
				req.True(cfg.Embedded)
				req.Equal(home, cfg.DataDir)
				req.Equal("127.0.0.1:9443", cfg.ServerTarget())
				req.Equal(100, cfg.ScannerCaching)
				req.Equal(5, cfg.DefaultMaxVersions)
				req.Equal(5*time.Second, cfg.DialTimeoutDuration())
				req.Equal(5*time.Minute, cfg.SnapshotInterval())
				req.False(cfg.Debug)
			},
		},
		"overrides": {
			body: `# remote store
server_address = store.internal
server_port=50051
embedded=false
data_dir=/var/lib/litetable
dial_timeout=2
scanner_caching=10
default_max_versions=3
snapshot_timer=60
max_snapshot_limit=7
garbage_collection_timer=15
scanner_lease=30
cdc_port=0
metrics_port=0
debug=true
unknown_key=ignored
`,
			check: func(req *require.Assertions, cfg *Config) {
				req.False(cfg.Embedded)
				req.Equal("store.internal:50051", cfg.ServerTarget())
				req.Equal("/var/lib/litetable", cfg.DataDir)
				req.Equal(2*time.Second, cfg.DialTimeoutDuration())
				req.Equal(10, cfg.ScannerCaching)
				req.Equal(3, cfg.DefaultMaxVersions)
				req.Equal(time.Minute, cfg.SnapshotInterval())
				req.Equal(7, cfg.MaxSnapshotLimit)
				req.Equal(15, cfg.GarbageCollectionTimer)
				req.Equal(30*time.Second, cfg.ScannerLeaseDuration())
				req.Zero(cfg.CDCPort)
				req.Zero(cfg.MetricsPort)
				req.True(cfg.Debug)
			},
		},
		"malformed line": {
			body:  "debug\n",
			error: "line 1: expected key=value",
		},
		"invalid number": {
			body:  "# comment\nserver_port=abc\n",
			error: `line 2: invalid server_port value: strconv.Atoi: parsing "abc": invalid syntax`,
		},
		"invalid values": {
			body:  "default_max_versions=0\nmax_snapshot_limit=51\n",
			error: "default_max_versions must be at least 1\nmax_snapshot_limit must be between 1 and 50",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "missing.conf")
			if tc.body != "" {
				path = writeConfig(t, tc.body)
			}

			got, err := Load(path)
			if tc.error != "" {
				require.EqualError(t, err, tc.error)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			tc.check(require.New(t), got)
		})
	}
}

func TestNewConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv(litetable.HomeEnv, home)
	require.NoError(t, os.WriteFile(filepath.Join(home, configFileName), []byte("scanner_caching=42\n"), 0644))

	cfg, err := NewConfig()
	require.NoError(t, err)
	require.Equal(t, 42, cfg.ScannerCaching)
}
