package reaper

import (
	"time"

	"github.com/rs/zerolog/log"
)

// Result summarises one collection.
type Result struct {
	Tables          int
	Rows            int
	Removed         int
	ExpiredScanners int
	OpenScanners    int
	Took            time.Duration
}

// Reap runs one garbage collection pass. Concurrent calls are serialised.
func (r *Reaper) Reap() Result {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	start := time.Now()
	now := r.now()

	stats := r.target.Compact(now)
	res := Result{
		Tables:          stats.Tables,
		Rows:            stats.Rows,
		Removed:         stats.Removed,
		ExpiredScanners: r.target.ExpireScanners(now),
		OpenScanners:    r.target.OpenScanners(),
		Took:            time.Since(start),
	}
	r.metrics.ObserveMaintenance(res.Removed, res.ExpiredScanners, res.OpenScanners, res.Took)

	log.Debug().
		Int("tables", res.Tables).
		Int("rows", res.Rows).
		Int("removed", res.Removed).
		Int("expiredScanners", res.ExpiredScanners).
		Dur("took", res.Took).
		Msg("garbage collection complete")
	return res
}
