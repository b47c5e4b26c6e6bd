package engine

import (
	"time"

	"github.com/litetable/litetable-go/internal/litetable"
)

// CompactionStats summarises a compaction pass.
type CompactionStats struct {
	Tables  int
	Rows    int
	Removed int
}

// Compact rewrites every qualifier to its live versions. Hidden values, versions beyond the
// family retention, expired values and tombstones past their grace period are dropped; rows
// left without data are removed.
func (e *Engine) Compact(now time.Time) CompactionStats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var stats CompactionStats
	nowMillis := now.UnixMilli()
	for _, key := range sortedKeys(e.tables) {
		t := e.tables[key]
		t.mu.Lock()
		rows, removed := t.compact(nowMillis)
		t.mu.Unlock()

		stats.Tables++
		stats.Rows += rows
		stats.Removed += removed
	}
	return stats
}

func (t *table) compact(now int64) (int, int) {
	var (
		rows, removed int
		empty         []*row
	)
	t.rows.Ascend(func(r *row) bool {
		rows++
		for family, qualifiers := range r.families {
			cf, ok := t.desc.Family(family)
			if !ok {
				for _, versions := range qualifiers {
					removed += len(versions)
				}
				delete(r.families, family)
				continue
			}
			for qualifier, versions := range qualifiers {
				kept := compactVersions(versions, cf, now)
				removed += len(versions) - len(kept)
				if len(kept) == 0 {
					delete(qualifiers, qualifier)
					continue
				}
				qualifiers[qualifier] = kept
			}
			if len(qualifiers) == 0 {
				delete(r.families, family)
			}
		}
		if len(r.families) == 0 {
			empty = append(empty, r)
		}
		return true
	})
	for _, r := range empty {
		t.rows.Delete(r)
	}
	return rows, removed
}

func compactVersions(versions []litetable.TimestampedValue, cf litetable.ColumnFamilyDescriptor,
	now int64) []litetable.TimestampedValue {
	live := visible(versions, cf, now, cf.MaxVersions)
	var kept []litetable.TimestampedValue
	for _, v := range versions {
		if v.IsTombstone() {
			if v.ExpiresAt > now {
				kept = append(kept, v)
			}
			continue
		}
		if len(live) > 0 && live[0].Timestamp == v.Timestamp {
			kept = append(kept, v)
			live = live[1:]
		}
	}
	return kept
}
