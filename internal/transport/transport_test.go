package transport

import (
	"context"
	"errors"
	"io"
	"net"
	"testing"
	"time"

	"github.com/litetable/litetable-go/internal/engine"
	"github.com/litetable/litetable-go/internal/litetable"
	grpcserver "github.com/litetable/litetable-go/internal/server/grpc"
	"github.com/litetable/litetable-go/internal/store"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/test/bufconn"
)

var users = litetable.NewTableName("", "users")

func TestNew(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		cfg   *Config
		error string
	}{
		"invalid config": {
			cfg:   &Config{DialTimeout: -time.Second},
			error: "target required\ndial timeout cannot be negative",
		},
		"defaults": {
			cfg: &Config{Target: "localhost:9090"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := New(tc.cfg)
			if tc.error != "" {
				require.EqualError(t, err, tc.error)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, defaultDialTimeout, got.dialTimeout)
		})
	}
}

// serve runs an engine behind the gRPC server on an in-memory listener.
func serve(t *testing.T) (*Dialer, *engine.Engine) {
	t.Helper()
	e, err := engine.New(&engine.Config{})
	require.NoError(t, err)
	require.NoError(t, e.Start())

	lis := bufconn.Listen(1 << 20)
	srv, err := grpcserver.NewServer(&grpcserver.Config{Listener: lis, Backend: e})
	require.NoError(t, err)
	require.NoError(t, srv.Start())
	t.Cleanup(func() { _ = srv.Stop() })

	d, err := New(&Config{
		Target:      "passthrough:///bufnet",
		DialTimeout: time.Second,
		ContextDialer: func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		},
	})
	require.NoError(t, err)
	return d, e
}

func TestDialer_Open_Unreachable(t *testing.T) {
	t.Parallel()
	d, err := New(&Config{
		Target:      "passthrough:///nowhere",
		DialTimeout: 200 * time.Millisecond,
		ContextDialer: func(context.Context, string) (net.Conn, error) {
			return nil, errors.New("connection refused")
		},
	})
	require.NoError(t, err)

	conn, err := d.Open(context.Background())
	require.Nil(t, conn)
	require.ErrorIs(t, err, store.ErrUnavailable)
	require.True(t, store.IsKind(err, store.KindConnectivity))
}

func TestConnection_RoundTrip(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	ctx := context.Background()
	d, e := serve(t)

	conn, err := d.Open(ctx)
	req.NoError(err)
	defer conn.Close()

	admin, err := conn.Admin()
	req.NoError(err)
	defer admin.Close()

	desc := litetable.NewTableDescriptor(users,
		litetable.NewColumnFamilyDescriptor("info").WithMaxVersions(3),
		litetable.NewColumnFamilyDescriptor("extra"))
	req.NoError(admin.CreateTable(ctx, desc))
	req.ErrorIs(admin.CreateTable(ctx, desc), store.ErrTableExists)

	exists, err := admin.TableExists(ctx, users)
	req.NoError(err)
	req.True(exists)

	got, err := admin.GetDescriptor(ctx, users)
	req.NoError(err)
	req.Equal([]string{"extra", "info"}, got.FamilyNames())

	table, err := conn.Table(users)
	req.NoError(err)
	defer table.Close()

	for _, key := range []string{"2001", "2002", "2003"} {
		req.NoError(table.Put(ctx, store.NewPut([]byte(key)).
			AddColumn([]byte("info"), []byte("age"), []byte(key[2:]))))
	}

	res, err := table.Get(ctx, store.NewGet([]byte("2002")))
	req.NoError(err)
	v, ok := res.Value([]byte("info"), []byte("age"))
	req.True(ok)
	req.Equal("02", string(v))

	_, err = table.Get(ctx, store.NewGet([]byte("2002")).AddFamily([]byte("nope")))
	req.ErrorIs(err, store.ErrFamilyNotFound)

	// one row per page
	scanner, err := table.Scan(ctx, store.NewScan().WithStartRow([]byte("2002")).SetCaching(1))
	req.NoError(err)
	var keys []string
	for {
		r, err := scanner.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		req.NoError(err)
		keys = append(keys, string(r.Row))
	}
	req.Equal([]string{"2002", "2003"}, keys)
	req.NoError(scanner.Close())
	req.Zero(e.OpenScanners())

	// an abandoned scanner is released on close
	scanner, err = table.Scan(ctx, store.NewScan().SetCaching(1))
	req.NoError(err)
	_, err = scanner.Next()
	req.NoError(err)
	req.Equal(1, e.OpenScanners())
	req.NoError(scanner.Close())
	req.Zero(e.OpenScanners())
	_, err = scanner.Next()
	req.ErrorIs(err, store.ErrHandleClosed)

	req.NoError(table.Delete(ctx, store.NewDelete([]byte("2001"))))
	res, err = table.Get(ctx, store.NewGet([]byte("2001")))
	req.NoError(err)
	req.True(res.IsEmpty())

	req.ErrorIs(admin.DeleteTable(ctx, users), store.ErrTableEnabled)
	req.NoError(admin.DisableTable(ctx, users))
	req.ErrorIs(table.Put(ctx, store.NewPut([]byte("2004")).
		AddColumn([]byte("info"), []byte("age"), []byte("04"))), store.ErrTableDisabled)
	req.NoError(admin.DeleteTable(ctx, users))

	tables, err := admin.ListTables(ctx, "")
	req.NoError(err)
	req.Empty(tables)
}

func TestConnection_Closed(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	ctx := context.Background()
	d, _ := serve(t)

	conn, err := d.Open(ctx)
	req.NoError(err)

	admin, err := conn.Admin()
	req.NoError(err)
	req.NoError(admin.Close())
	_, err = admin.TableExists(ctx, users)
	req.ErrorIs(err, store.ErrHandleClosed)

	_, err = conn.Table(litetable.TableName{Qualifier: "bad name"})
	req.ErrorIs(err, store.ErrInvalidArgument)
	req.True(store.IsKind(err, store.KindPrecondition))

	table, err := conn.Table(users)
	req.NoError(err)

	req.NoError(conn.Close())
	req.NoError(conn.Close())
	req.True(conn.IsClosed())

	_, err = conn.Admin()
	req.ErrorIs(err, store.ErrConnectionClosed)
	req.True(store.IsKind(err, store.KindConnectivity))

	_, err = table.Get(ctx, store.NewGet([]byte("2001")))
	req.ErrorIs(err, store.ErrConnectionClosed)
	req.True(store.IsKind(err, store.KindConnectivity))
}
