package monitor

import (
	"math"
	"sort"

	"procwatch/internal/domain"
	"procwatch/internal/logger"
)

// EvictionPolicy decides what happens to cached readings of pids that
// disappeared between two listings.
type EvictionPolicy int

const (
	// KeepStale leaves entries of dead pids in the tracker caches. A
	// recycled pid then starts from the old process' snapshot.
	KeepStale EvictionPolicy = iota
	// DropStale evicts every pid that was not enumerated by the latest
	// listing.
	DropStale
)

func (p EvictionPolicy) String() string {
	switch p {
	case DropStale:
		return "drop-stale"
	default:
		return "keep-stale"
	}
}

// ratioCache is the read side of ProcessTracker the registry depends on.
type ratioCache interface {
	LastKnownRatio(pid int) (float64, bool)
	Retain(live []int) int
}

// Registry lists the live processes ordered by their last known CPU
// utilization. It never samples: ordering by a fresh reading would advance
// the tracker cache of every process on each listing.
type Registry struct {
	source ProcessSource
	ratios ratioCache
	policy EvictionPolicy
	log    logger.Logger
}

func NewRegistry(source ProcessSource, ratios ratioCache, policy EvictionPolicy, log logger.Logger) *Registry {
	return &Registry{
		source: source,
		ratios: ratios,
		policy: policy,
		log:    log,
	}
}

// Listing rebuilds the process list from scratch. Processes with equal
// ratios keep their enumeration order.
func (r *Registry) Listing() []domain.ProcessView {
	pids := r.source.Pids()

	views := make([]domain.ProcessView, 0, len(pids))
	for _, pid := range pids {
		views = append(views, r.view(pid))
	}

	sort.SliceStable(views, func(i, j int) bool {
		return r.rank(views[i].PID) > r.rank(views[j].PID)
	})

	if r.policy == DropStale {
		if n := r.ratios.Retain(pids); n > 0 {
			r.log.Debug("evicted stale pids", "count", n)
		}
	}

	return views
}

func (r *Registry) view(pid int) domain.ProcessView {
	clk := r.source.ClockTicks()
	uptime := r.source.UptimeSeconds() - r.source.ProcessStartTicks(pid)/clk

	return domain.ProcessView{
		PID:           pid,
		User:          r.source.UserName(r.source.ProcessUID(pid)),
		Command:       r.source.ProcessCommand(pid),
		RAMKB:         r.source.ProcessRAMKB(pid),
		UptimeSeconds: wholeSeconds(uptime),
	}
}

// rank maps the cached ratio onto a total order: never sampled counts as
// zero and NaN sorts below every number.
func (r *Registry) rank(pid int) float64 {
	ratio, ok := r.ratios.LastKnownRatio(pid)
	if !ok {
		return 0
	}
	if math.IsNaN(ratio) {
		return math.Inf(-1)
	}
	return ratio
}

func wholeSeconds(s float64) int64 {
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return 0
	}
	return int64(s)
}
