package litetable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableDescriptor_WithFamily(t *testing.T) {
	t.Parallel()
	info := NewColumnFamilyDescriptor("info")
	info.MaxVersions = 5
	msg := NewColumnFamilyDescriptor("msg")
	msg.MaxVersions = 3
	msg.TimeToLive = 3600
	msg.InMemory = true
	msg.Configuration = map[string]string{"owner": "yh"}

	td := NewTableDescriptor(NewTableName("bigdata", "person"), msg, info)

	t.Run("families are sorted", func(t *testing.T) {
		require.Equal(t, []string{"info", "msg"}, td.FamilyNames())
	})

	t.Run("modifies only the target family", func(t *testing.T) {
		req := require.New(t)
		cf, ok := td.Family("info")
		req.True(ok)

		modified, err := td.WithFamily(cf.WithMaxVersions(4))
		req.NoError(err)

		got, _ := modified.Family("info")
		req.Equal(4, got.MaxVersions)
		req.Equal(cf.BlockSize, got.BlockSize)

		untouched, _ := modified.Family("msg")
		req.Equal(msg, untouched)

		// the source snapshot is never mutated
		orig, _ := td.Family("info")
		req.Equal(5, orig.MaxVersions)
	})

	t.Run("clone does not share configuration maps", func(t *testing.T) {
		req := require.New(t)
		cp := td.Clone()
		cp.Families[1].Configuration["owner"] = "someone-else"

		orig, _ := td.Family("msg")
		req.Equal("yh", orig.Configuration["owner"])
	})

	t.Run("unknown family", func(t *testing.T) {
		_, err := td.WithFamily(NewColumnFamilyDescriptor("nope"))
		require.Error(t, err)
	})
}

func TestTableDescriptor_Validate(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		td      *TableDescriptor
		wantErr bool
	}{
		"no families": {
			td:      NewTableDescriptor(NewTableName("ns", "t")),
			wantErr: true,
		},
		"zero max versions": {
			td: NewTableDescriptor(NewTableName("ns", "t"),
				NewColumnFamilyDescriptor("cf").WithMaxVersions(0)),
			wantErr: true,
		},
		"duplicate family": {
			td: &TableDescriptor{
				Name: NewTableName("ns", "t"),
				Families: []ColumnFamilyDescriptor{
					NewColumnFamilyDescriptor("cf"), NewColumnFamilyDescriptor("cf"),
				},
			},
			wantErr: true,
		},
		"missing table name": {
			td:      NewTableDescriptor(NewTableName("ns", ""), NewColumnFamilyDescriptor("cf")),
			wantErr: true,
		},
		"valid": {
			td: NewTableDescriptor(NewTableName("ns", "t"), NewColumnFamilyDescriptor("cf")),
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := tc.td.Validate()
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestParseTableName(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	tn, err := ParseTableName("bigdata:person")
	req.NoError(err)
	req.Equal(TableName{Namespace: "bigdata", Qualifier: "person"}, tn)
	req.Equal("bigdata:person", tn.String())

	tn, err = ParseTableName("person")
	req.NoError(err)
	req.Equal(DefaultNamespace, tn.Namespace)

	_, err = ParseTableName("bigdata:")
	req.Error(err)
}

func TestSortCells(t *testing.T) {
	t.Parallel()
	cells := []Cell{
		{Family: []byte("msg"), Qualifier: []byte("a"), Timestamp: 1},
		{Family: []byte("info"), Qualifier: []byte("gender"), Timestamp: 5},
		{Family: []byte("info"), Qualifier: []byte("age"), Timestamp: 1},
		{Family: []byte("info"), Qualifier: []byte("age"), Timestamp: 3},
	}
	SortCells(cells)

	r := &Result{Row: []byte("2001"), Cells: cells}
	v, ok := r.Value([]byte("info"), []byte("age"))
	require.True(t, ok)
	require.Nil(t, v)
	require.Equal(t, int64(3), cells[0].Timestamp)
	require.Equal(t, "age", String(cells[1].Qualifier))
	require.Equal(t, "gender", String(cells[2].Qualifier))
	require.Equal(t, "msg", String(cells[3].Family))
}
