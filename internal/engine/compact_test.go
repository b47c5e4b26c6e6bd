package engine

import (
	"context"
	"testing"
	"time"

	"github.com/litetable/litetable-go/internal/store"
	"github.com/stretchr/testify/require"
)

func TestEngine_Compact(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	ctx := context.Background()
	clock := newFakeClock()
	e := newTestEngine(t, &Config{Clock: clock.Now})
	createUsers(t, e, 2)

	put(t, e, "2001", "info", "age", "10")
	put(t, e, "2001", "info", "age", "11")
	put(t, e, "2001", "info", "age", "12")
	put(t, e, "2002", "info", "age", "20")
	req.NoError(e.Delete(ctx, users, store.NewDelete([]byte("2002"))))

	// over-retention version dropped, row 2002 keeps its tombstone during the grace period
	stats := e.Compact(clock.Now())
	req.Equal(1, stats.Tables)
	req.Equal(2, stats.Rows)
	req.Equal(2, stats.Removed)

	res, err := e.Get(ctx, users, store.NewGet([]byte("2001")).ReadAllVersions())
	req.NoError(err)
	req.Equal([]string{"12", "11"}, values(res.Cells))

	// after the grace period the tombstone goes and so does the row
	stats = e.Compact(clock.Now().Add(2 * time.Hour))
	req.Equal(1, stats.Removed)
	req.Len(e.Snapshot().Tables[0].Rows, 1)
	req.Equal("2001", string(e.Snapshot().Tables[0].Rows[0].Key))

	// retention lowered after the fact is enforced by compaction
	desc, err := e.GetDescriptor(ctx, users)
	req.NoError(err)
	cf, _ := desc.Family("info")
	modified, err := desc.WithFamily(cf.WithMaxVersions(1))
	req.NoError(err)
	req.NoError(e.ModifyTable(ctx, modified))
	stats = e.Compact(clock.Now())
	req.Equal(1, stats.Removed)
	req.Len(e.Snapshot().Tables[0].Rows[0].Families["info"]["age"], 1)
}
