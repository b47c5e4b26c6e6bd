// Package reaper runs the periodic garbage collection of the store: compaction of versions the
// column families no longer retain, purging of expired tombstones, and release of scanners
// whose lease ran out.
package reaper

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/litetable/litetable-go/internal/engine"
	"github.com/litetable/litetable-go/internal/metrics"
)

//go:generate mockgen -destination=reaper_mock.go -package=reaper -source=reaper.go

// target is the data source the Reaper needs control over.
type target interface {
	Compact(now time.Time) engine.CompactionStats
	ExpireScanners(now time.Time) int
	OpenScanners() int
}

type Reaper struct {
	target  target
	metrics *metrics.Metrics
	now     func() time.Time

	mutex        sync.Mutex
	reapInterval time.Duration

	procCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

type Config struct {
	Target target
	// GCInterval is the number of seconds between collections.
	GCInterval int
	Metrics    *metrics.Metrics
	// Clock defaults to time.Now.
	Clock func() time.Time
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Target == nil {
		errGrp = append(errGrp, errors.New("target cannot be nil"))
	}
	if c.GCInterval <= 0 {
		errGrp = append(errGrp, errors.New("GCInterval must be greater than 0"))
	}
	return errors.Join(errGrp...)
}

// New creates a new Reaper.
func New(cfg *Config) (*Reaper, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	// create a cancel context to ensure all garbage collection processes are shut down gracefully
	ctx, cancel := context.WithCancel(context.Background())

	return &Reaper{
		target:       cfg.Target,
		metrics:      cfg.Metrics,
		now:          clock,
		reapInterval: time.Duration(cfg.GCInterval) * time.Second,
		procCtx:      ctx,
		cancel:       cancel,
	}, nil
}

func (r *Reaper) Start() error {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(r.reapInterval)
		defer ticker.Stop()
		for {
			select {
			case <-r.procCtx.Done():
				return
			case <-ticker.C:
				r.Reap()
			}
		}
	}()
	return nil
}

func (r *Reaper) Stop() error {
	// kill the process context
	r.cancel()

	// Wait for a running collection to finish
	r.wg.Wait()
	return nil
}

func (r *Reaper) Name() string {
	return "Reaper"
}
