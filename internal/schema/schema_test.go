package schema

import (
	"context"
	"errors"
	"testing"

	"github.com/litetable/litetable-go/internal/connection"
	"github.com/litetable/litetable-go/internal/engine"
	"github.com/litetable/litetable-go/internal/litetable"
	"github.com/litetable/litetable-go/internal/metrics"
	"github.com/litetable/litetable-go/internal/store"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var users = litetable.NewTableName("demo", "users")

// fixture wires an Admin to a mocked connection whose admin handle must be released exactly
// once per acquisition.
type fixture struct {
	admin *Admin
	conns *Mockconnector
	conn  *store.MockConnection
	store *store.MockAdmin
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		conns: NewMockconnector(ctrl),
		conn:  store.NewMockConnection(ctrl),
		store: store.NewMockAdmin(ctrl),
	}
	a, err := New(&Config{Connections: f.conns, Metrics: metrics.New()})
	require.NoError(t, err)
	f.admin = a
	return f
}

// acquire expects one connection lookup and one admin handle that is closed.
func (f *fixture) acquire() {
	f.conns.EXPECT().Connection(gomock.Any()).Return(f.conn, nil)
	f.conn.EXPECT().Admin().Return(f.store, nil)
	f.store.EXPECT().Close().Return(nil)
}

func TestNew(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		cfg      *Config
		error    string
		versions int
	}{
		"invalid config": {
			cfg:   &Config{DefaultMaxVersions: -1},
			error: "connections required\ndefault max versions cannot be negative",
		},
		"default versions": {
			cfg:      &Config{},
			versions: DefaultMaxVersions,
		},
		"configured versions": {
			cfg:      &Config{DefaultMaxVersions: 2},
			versions: 2,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if tc.error == "" {
				tc.cfg.Connections = NewMockconnector(gomock.NewController(t))
			}
			got, err := New(tc.cfg)
			if tc.error != "" {
				require.EqualError(t, err, tc.error)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.versions, got.maxVersions)

			tuned, err := got.WithDefaultMaxVersions(7)
			require.NoError(t, err)
			require.Equal(t, 7, tuned.maxVersions)
			require.Equal(t, tc.versions, got.maxVersions)

			for _, n := range []int{0, -1} {
				tuned, err = got.WithDefaultMaxVersions(n)
				require.ErrorIs(t, err, store.ErrInvalidArgument)
				require.True(t, store.IsKind(err, store.KindPrecondition))
				require.Nil(t, tuned)
			}
		})
	}
}

func TestAdmin_CreateNamespace(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("created with configuration", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.acquire()
		f.store.EXPECT().
			CreateNamespace(gomock.Any(), litetable.NewNamespaceDescriptor("demo", map[string]string{"owner": "ops"})).
			Return(nil)
		require.NoError(t, f.admin.CreateNamespace(ctx, "demo", map[string]string{"owner": "ops"}))
	})

	t.Run("store failure is a schema error", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.acquire()
		f.store.EXPECT().CreateNamespace(gomock.Any(), gomock.Any()).Return(store.ErrNamespaceExists)

		err := f.admin.CreateNamespace(ctx, "demo", nil)
		require.ErrorIs(t, err, store.ErrNamespaceExists)
		require.True(t, store.IsKind(err, store.KindSchemaOperation))
	})

	t.Run("connection failure", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.conns.EXPECT().Connection(gomock.Any()).
			Return(nil, store.NewError(store.KindConnectivity, "open connection", store.ErrUnavailable))

		err := f.admin.CreateNamespace(ctx, "demo", nil)
		require.ErrorIs(t, err, store.ErrUnavailable)
		require.True(t, store.IsKind(err, store.KindConnectivity))
	})

	t.Run("admin handle unavailable", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.conns.EXPECT().Connection(gomock.Any()).Return(f.conn, nil)
		f.conn.EXPECT().Admin().Return(nil, store.ErrConnectionClosed)

		err := f.admin.CreateNamespace(ctx, "demo", nil)
		require.ErrorIs(t, err, store.ErrConnectionClosed)
		require.True(t, store.IsKind(err, store.KindConnectivity))
	})
}

func TestAdmin_TableExists(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		exists bool
		err    error
	}{
		"exists":  {exists: true},
		"missing": {},
		"error":   {exists: true, err: errors.New("timeout")},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)
			f.acquire()
			f.store.EXPECT().TableExists(gomock.Any(), users).Return(tc.exists, tc.err)

			got, err := f.admin.TableExists(context.Background(), "demo", "users")
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				require.True(t, store.IsKind(err, store.KindSchemaOperation))
				require.False(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.exists, got)
		})
	}
}

func TestAdmin_CreateTable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("no families makes no store call", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		err := f.admin.CreateTable(ctx, "demo", "users")
		require.ErrorIs(t, err, store.ErrNoColumnFamilies)
		require.True(t, store.IsKind(err, store.KindPrecondition))
	})

	t.Run("existing table is not created again", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.acquire()
		f.store.EXPECT().TableExists(gomock.Any(), users).Return(true, nil)

		err := f.admin.CreateTable(ctx, "demo", "users", "info")
		require.ErrorIs(t, err, store.ErrTableExists)
		require.True(t, store.IsKind(err, store.KindPrecondition))
	})

	t.Run("families get the default retention", func(t *testing.T) {
		t.Parallel()
		req := require.New(t)
		f := newFixture(t)
		f.acquire()
		f.store.EXPECT().TableExists(gomock.Any(), users).Return(false, nil)
		f.store.EXPECT().CreateTable(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, desc *litetable.TableDescriptor) error {
				req.Equal(users, desc.Name)
				req.Equal([]string{"contact", "info"}, desc.FamilyNames())
				for _, cf := range desc.Families {
					req.Equal(DefaultMaxVersions, cf.MaxVersions)
				}
				return nil
			})
		req.NoError(f.admin.CreateTable(ctx, "demo", "users", "info", "contact"))
	})

	t.Run("configured retention", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.acquire()
		f.store.EXPECT().TableExists(gomock.Any(), users).Return(false, nil)
		f.store.EXPECT().CreateTable(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, desc *litetable.TableDescriptor) error {
				cf, _ := desc.Family("info")
				require.Equal(t, 2, cf.MaxVersions)
				return nil
			})
		adm, err := f.admin.WithDefaultMaxVersions(2)
		require.NoError(t, err)
		require.NoError(t, adm.CreateTable(ctx, "demo", "users", "info"))
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.acquire()
		f.store.EXPECT().TableExists(gomock.Any(), users).Return(false, nil)
		f.store.EXPECT().CreateTable(gomock.Any(), gomock.Any()).Return(store.ErrNamespaceNotFound)

		err := f.admin.CreateTable(ctx, "demo", "users", "info")
		require.ErrorIs(t, err, store.ErrNamespaceNotFound)
		require.True(t, store.IsKind(err, store.KindSchemaOperation))
	})
}

func TestAdmin_ModifyFamilyVersions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	current := litetable.NewTableDescriptor(users,
		litetable.NewColumnFamilyDescriptor("info").WithMaxVersions(5),
		litetable.ColumnFamilyDescriptor{
			Name:          "contact",
			MaxVersions:   3,
			MinVersions:   1,
			TimeToLive:    3600,
			BlockSize:     8192,
			InMemory:      true,
			Configuration: map[string]string{"compression": "snappy"},
		},
	)
	current.Configuration = map[string]string{"owner": "ops"}

	t.Run("invalid versions makes no store call", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		err := f.admin.ModifyFamilyVersions(ctx, "demo", "users", "info", 0)
		require.ErrorIs(t, err, store.ErrInvalidArgument)
		require.True(t, store.IsKind(err, store.KindPrecondition))
	})

	t.Run("missing table is not read", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.acquire()
		f.store.EXPECT().TableExists(gomock.Any(), users).Return(false, nil)

		err := f.admin.ModifyFamilyVersions(ctx, "demo", "users", "info", 2)
		require.ErrorIs(t, err, store.ErrTableNotFound)
		require.True(t, store.IsKind(err, store.KindPrecondition))
	})

	t.Run("only the target family changes", func(t *testing.T) {
		t.Parallel()
		req := require.New(t)
		f := newFixture(t)
		f.acquire()
		f.store.EXPECT().TableExists(gomock.Any(), users).Return(true, nil)
		f.store.EXPECT().GetDescriptor(gomock.Any(), users).Return(current.Clone(), nil)
		f.store.EXPECT().ModifyTable(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, desc *litetable.TableDescriptor) error {
				req.Equal(current.Configuration, desc.Configuration)
				before, _ := current.Family("info")
				after, _ := desc.Family("info")
				req.Equal(before.WithMaxVersions(1), after)
				untouched, _ := desc.Family("contact")
				original, _ := current.Family("contact")
				req.Equal(original, untouched)
				return nil
			})
		req.NoError(f.admin.ModifyFamilyVersions(ctx, "demo", "users", "info", 1))

		// the descriptor the caller held is never mutated
		cf, _ := current.Family("info")
		req.Equal(5, cf.MaxVersions)
	})

	t.Run("unknown family", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.acquire()
		f.store.EXPECT().TableExists(gomock.Any(), users).Return(true, nil)
		f.store.EXPECT().GetDescriptor(gomock.Any(), users).Return(current.Clone(), nil)

		err := f.admin.ModifyFamilyVersions(ctx, "demo", "users", "address", 2)
		require.ErrorIs(t, err, store.ErrFamilyNotFound)
		require.True(t, store.IsKind(err, store.KindSchemaOperation))
	})

	t.Run("modify rejected", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.acquire()
		f.store.EXPECT().TableExists(gomock.Any(), users).Return(true, nil)
		f.store.EXPECT().GetDescriptor(gomock.Any(), users).Return(current.Clone(), nil)
		f.store.EXPECT().ModifyTable(gomock.Any(), gomock.Any()).Return(errors.New("read only"))

		err := f.admin.ModifyFamilyVersions(ctx, "demo", "users", "info", 2)
		require.EqualError(t, err, "schema modify_family_versions: read only")
	})
}

func TestAdmin_DeleteTable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("missing table is not disabled", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.acquire()
		f.store.EXPECT().TableExists(gomock.Any(), users).Return(false, nil)

		got, err := f.admin.DeleteTable(ctx, "demo", "users")
		require.False(t, got)
		require.ErrorIs(t, err, store.ErrTableNotFound)
		require.True(t, store.IsKind(err, store.KindPrecondition))
	})

	t.Run("disable precedes delete", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.acquire()
		gomock.InOrder(
			f.store.EXPECT().TableExists(gomock.Any(), users).Return(true, nil),
			f.store.EXPECT().DisableTable(gomock.Any(), users).Return(nil),
			f.store.EXPECT().DeleteTable(gomock.Any(), users).Return(nil),
		)

		got, err := f.admin.DeleteTable(ctx, "demo", "users")
		require.NoError(t, err)
		require.True(t, got)
	})

	t.Run("already disabled", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.acquire()
		f.store.EXPECT().TableExists(gomock.Any(), users).Return(true, nil)
		f.store.EXPECT().DisableTable(gomock.Any(), users).Return(store.ErrTableDisabled)
		f.store.EXPECT().DeleteTable(gomock.Any(), users).Return(nil)

		got, err := f.admin.DeleteTable(ctx, "demo", "users")
		require.NoError(t, err)
		require.True(t, got)
	})

	t.Run("disable failure skips delete", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.acquire()
		f.store.EXPECT().TableExists(gomock.Any(), users).Return(true, nil)
		f.store.EXPECT().DisableTable(gomock.Any(), users).Return(errors.New("busy"))

		got, err := f.admin.DeleteTable(ctx, "demo", "users")
		require.False(t, got)
		require.True(t, store.IsKind(err, store.KindSchemaOperation))
	})

	t.Run("delete failure", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.acquire()
		f.store.EXPECT().TableExists(gomock.Any(), users).Return(true, nil)
		f.store.EXPECT().DisableTable(gomock.Any(), users).Return(nil)
		f.store.EXPECT().DeleteTable(gomock.Any(), users).Return(store.ErrTableEnabled)

		got, err := f.admin.DeleteTable(ctx, "demo", "users")
		require.False(t, got)
		require.ErrorIs(t, err, store.ErrTableEnabled)
		require.True(t, store.IsKind(err, store.KindSchemaOperation))
	})
}

func TestAdmin_ListAndDescribe(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("list", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.acquire()
		f.store.EXPECT().ListTables(gomock.Any(), "demo").Return([]litetable.TableName{users}, nil)

		got, err := f.admin.ListTables(ctx, "demo")
		require.NoError(t, err)
		require.Equal(t, []litetable.TableName{users}, got)
	})

	t.Run("describe missing", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.acquire()
		f.store.EXPECT().GetDescriptor(gomock.Any(), users).Return(nil, store.ErrTableNotFound)

		got, err := f.admin.DescribeTable(ctx, "demo", "users")
		require.Nil(t, got)
		require.ErrorIs(t, err, store.ErrTableNotFound)
	})
}

// The full lifecycle against the embedded engine.
func TestAdmin_Engine(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	ctx := context.Background()

	e, err := engine.New(&engine.Config{})
	req.NoError(err)
	req.NoError(e.Start())
	conns, err := connection.New(&connection.Config{Opener: e})
	req.NoError(err)
	defer conns.Close()

	a, err := New(&Config{Connections: conns})
	req.NoError(err)

	req.NoError(a.CreateNamespace(ctx, "demo", map[string]string{"owner": "ops"}))
	err = a.CreateNamespace(ctx, "demo", nil)
	req.ErrorIs(err, store.ErrNamespaceExists)

	req.NoError(a.CreateTable(ctx, "demo", "users", "info", "contact"))
	req.ErrorIs(a.CreateTable(ctx, "demo", "users", "info"), store.ErrTableExists)

	found, err := a.TableExists(ctx, "demo", "users")
	req.NoError(err)
	req.True(found)

	req.NoError(a.ModifyFamilyVersions(ctx, "demo", "users", "info", 2))
	desc, err := a.DescribeTable(ctx, "demo", "users")
	req.NoError(err)
	info, _ := desc.Family("info")
	contact, _ := desc.Family("contact")
	req.Equal(2, info.MaxVersions)
	req.Equal(DefaultMaxVersions, contact.MaxVersions)

	tables, err := a.ListTables(ctx, "demo")
	req.NoError(err)
	req.Equal([]litetable.TableName{users}, tables)

	deleted, err := a.DeleteTable(ctx, "demo", "users")
	req.NoError(err)
	req.True(deleted)

	deleted, err = a.DeleteTable(ctx, "demo", "users")
	req.False(deleted)
	req.True(store.IsKind(err, store.KindPrecondition))
}
