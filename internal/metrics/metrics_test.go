package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/litetable/litetable-go/internal/store"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	srv := httptest.NewServer(Handler(m))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestOutcome(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		err  error
		want string
	}{
		"success":      {want: "ok"},
		"untyped":      {err: errors.New("boom"), want: "unknown"},
		"precondition": {err: store.NewError(store.KindPrecondition, "create table", store.ErrTableExists), want: "precondition"},
		"connectivity": {err: store.NewError(store.KindConnectivity, "open", store.ErrUnavailable), want: "connectivity"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Outcome(tc.err))
		})
	}
}

func TestMetrics_Observe(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	m := New()

	m.Observe("rows", "put", time.Now(), nil)
	m.Observe("rows", "put", time.Now(), nil)
	m.Observe("schema", "create_table", time.Now(),
		store.NewError(store.KindPrecondition, "create table", store.ErrTableExists))
	m.ObserveRows("scan", 3)
	m.ObserveMaintenance(4, 1, 2, time.Millisecond)
	m.ObserveFlush(nil)

	body := scrape(t, m)
	req.Contains(body, `litetable_client_operations_total{component="rows",operation="put",outcome="ok"} 2`)
	req.Contains(body, `litetable_client_operations_total{component="schema",operation="create_table",outcome="precondition"} 1`)
	req.Contains(body, `litetable_client_rows_scanned_total{operation="scan"} 3`)
	req.Contains(body, "litetable_reaper_removed_versions_total 4")
	req.Contains(body, "litetable_reaper_expired_scanners_total 1")
	req.Contains(body, "litetable_engine_open_scanners 2")
	req.Contains(body, `litetable_storage_snapshot_flushes_total{outcome="ok"} 1`)
}

func TestMetrics_Nil(t *testing.T) {
	t.Parallel()
	var m *Metrics
	require.NotPanics(t, func() {
		m.Observe("rows", "put", time.Now(), nil)
		m.ObserveRows("scan", 1)
		m.ObserveMaintenance(1, 1, 1, time.Second)
		m.ObserveFlush(errors.New("disk full"))
	})
}

func TestNewServer(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		cfg   *Config
		error string
	}{
		"invalid config": {
			cfg:   &Config{},
			error: "port required\nmetrics required",
		},
		"valid config": {
			cfg: &Config{Address: "127.0.0.1", Port: 9102, Metrics: New()},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := NewServer(tc.cfg)
			if tc.error != "" {
				require.EqualError(t, err, tc.error)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "Metrics Server", got.Name())
		})
	}
}

func TestHealthHandler(t *testing.T) {
	t.Parallel()
	rec := httptest.NewRecorder()
	healthHandler(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"healthy"`)
}
