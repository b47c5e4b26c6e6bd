package engine

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/litetable/litetable-go/internal/litetable"
	"github.com/litetable/litetable-go/internal/store"
	"github.com/stretchr/testify/require"
)

func TestConnection(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("admin and table handles reach the engine", func(t *testing.T) {
		t.Parallel()
		req := require.New(t)
		e := newTestEngine(t, nil)
		conn, err := e.Open(ctx)
		req.NoError(err)

		admin, err := conn.Admin()
		req.NoError(err)
		defer admin.Close()

		req.NoError(admin.CreateNamespace(ctx, litetable.NewNamespaceDescriptor("demo", nil)))
		name := litetable.NewTableName("demo", "users")
		req.NoError(admin.CreateTable(ctx, litetable.NewTableDescriptor(name,
			litetable.NewColumnFamilyDescriptor("info"))))
		ok, err := admin.TableExists(ctx, name)
		req.NoError(err)
		req.True(ok)

		tbl, err := conn.Table(name)
		req.NoError(err)
		defer tbl.Close()
		req.Equal(name, tbl.Name())

		for _, row := range []string{"3", "1", "2"} {
			req.NoError(tbl.Put(ctx, store.NewPut([]byte(row)).AddColumn(info, age, []byte(row))))
		}
		res, err := tbl.Get(ctx, store.NewGet([]byte("2")))
		req.NoError(err)
		req.Equal([]string{"2"}, values(res.Cells))

		scanner, err := tbl.Scan(ctx, store.NewScan().SetCaching(1))
		req.NoError(err)
		var rows []string
		for {
			r, err := scanner.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			req.NoError(err)
			rows = append(rows, string(r.Row))
		}
		req.Equal([]string{"1", "2", "3"}, rows)
		req.NoError(scanner.Close())
		req.NoError(scanner.Close())

		req.NoError(tbl.Delete(ctx, store.NewDelete([]byte("2"))))
		res, err = tbl.Get(ctx, store.NewGet([]byte("2")))
		req.NoError(err)
		req.True(res.IsEmpty())

		names, err := admin.ListTables(ctx, "demo")
		req.NoError(err)
		req.Equal([]litetable.TableName{name}, names)

		desc, err := admin.GetDescriptor(ctx, name)
		req.NoError(err)
		req.NoError(admin.ModifyTable(ctx, desc))
		req.NoError(admin.DisableTable(ctx, name))
		req.NoError(admin.EnableTable(ctx, name))
		req.NoError(admin.DisableTable(ctx, name))
		req.NoError(admin.DeleteTable(ctx, name))
	})

	t.Run("closed scanner releases its cursor", func(t *testing.T) {
		t.Parallel()
		req := require.New(t)
		e := newTestEngine(t, nil)
		createUsers(t, e, 1)
		put(t, e, "1", "info", "age", "1")
		put(t, e, "2", "info", "age", "2")

		tbl, err := e.Connect().Table(users)
		req.NoError(err)
		scanner, err := tbl.Scan(ctx, store.NewScan().SetCaching(1))
		req.NoError(err)
		_, err = scanner.Next()
		req.NoError(err)
		req.Equal(1, e.OpenScanners())

		req.NoError(scanner.Close())
		req.Equal(0, e.OpenScanners())
		_, err = scanner.Next()
		req.ErrorIs(err, store.ErrHandleClosed)
	})

	t.Run("closed connection fails with a connectivity error", func(t *testing.T) {
		t.Parallel()
		req := require.New(t)
		e := newTestEngine(t, nil)
		createUsers(t, e, 1)
		conn := e.Connect()
		tbl, err := conn.Table(users)
		req.NoError(err)

		req.NoError(conn.Close())
		req.NoError(conn.Close())
		req.True(conn.IsClosed())

		_, err = conn.Admin()
		req.ErrorIs(err, store.ErrConnectionClosed)
		req.True(store.IsKind(err, store.KindConnectivity))

		_, err = conn.Table(users)
		req.ErrorIs(err, store.ErrConnectionClosed)

		err = tbl.Put(ctx, store.NewPut([]byte("1")).AddColumn(info, age, []byte("1")))
		req.ErrorIs(err, store.ErrConnectionClosed)
		req.True(store.IsKind(err, store.KindConnectivity))
	})

	t.Run("closed handle is rejected", func(t *testing.T) {
		t.Parallel()
		req := require.New(t)
		e := newTestEngine(t, nil)
		admin, err := e.Connect().Admin()
		req.NoError(err)
		req.NoError(admin.Close())

		_, err = admin.TableExists(ctx, users)
		req.ErrorIs(err, store.ErrHandleClosed)
	})

	t.Run("invalid table names are rejected", func(t *testing.T) {
		t.Parallel()
		e := newTestEngine(t, nil)
		_, err := e.Connect().Table(litetable.NewTableName("", "bad name"))
		require.ErrorIs(t, err, store.ErrInvalidArgument)
		require.True(t, store.IsKind(err, store.KindPrecondition))
	})

	t.Run("cancelled open fails", func(t *testing.T) {
		t.Parallel()
		e := newTestEngine(t, nil)
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := e.Open(cctx)
		require.True(t, store.IsKind(err, store.KindConnectivity))
	})
}
