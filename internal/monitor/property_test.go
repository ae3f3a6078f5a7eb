package monitor

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"procwatch/internal/domain"
	"procwatch/internal/logger"
)

// Integer-valued counters keep every sum exact, so bounds are checked
// without rounding slack.
func countersOf(v []int64) domain.CPUCounters {
	f := make([]float64, len(v))
	for i, x := range v {
		f[i] = float64(x)
	}
	return domain.CPUCountersFromFields(f)
}

func addCounters(base, inc []int64) []int64 {
	out := make([]int64, len(base))
	for i := range base {
		out[i] = base[i] + inc[i]
	}
	return out
}

func TestCPUTracker_RatioBounded_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("monotone counters give a ratio in [0,1]", prop.ForAll(
		func(base, inc []int64) bool {
			c1 := countersOf(base)
			c2 := countersOf(addCounters(base, inc))
			if c2.Sample().Total <= c1.Sample().Total {
				return true
			}

			src := newFakeSource()
			src.cpu = []domain.CPUCounters{c1, c2}
			tracker := NewCPUTracker(src)
			tracker.Utilization()
			r := tracker.Utilization()

			return r >= 0 && r <= 1
		},
		gen.SliceOfN(10, gen.Int64Range(0, 1_000_000_000)),
		gen.SliceOfN(10, gen.Int64Range(0, 100_000)),
	))

	properties.TestingRun(t)
}

func TestCPUTracker_FirstCallBaseline_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("first call is active/total, repeat is NaN", prop.ForAll(
		func(v []int64) bool {
			c := countersOf(v)
			s := c.Sample()
			if s.Total == 0 {
				return true
			}

			src := newFakeSource()
			src.cpu = []domain.CPUCounters{c}
			tracker := NewCPUTracker(src)

			first := tracker.Utilization()
			second := tracker.Utilization()

			return first == s.Active/s.Total && math.IsNaN(second)
		},
		gen.SliceOfN(10, gen.Int64Range(0, 1_000_000_000)),
	))

	properties.TestingRun(t)
}

func TestProcessTracker_RepeatIsNaN_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("identical snapshots give NaN", prop.ForAll(
		func(ticks, start, uptime int64) bool {
			src := newFakeSource()
			src.uptime = float64(uptime)
			src.addProc(1, fakeProc{ticks: float64(ticks), start: float64(start)})
			tracker := NewProcessTracker(src)

			tracker.Utilization(1)
			return math.IsNaN(tracker.Utilization(1))
		},
		gen.Int64Range(0, 1_000_000),
		gen.Int64Range(0, 1_000_000),
		gen.Int64Range(0, 100_000),
	))

	properties.TestingRun(t)
}

func TestRegistry_StableForEqualRatios_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("equal ratios keep relative order across listings", prop.ForAll(
		func(buckets []int) bool {
			src := newFakeSource()
			ratios := make(map[int]float64, len(buckets))
			for i, b := range buckets {
				pid := i + 1
				src.addProc(pid, fakeProc{})
				ratios[pid] = float64(b) / 4
			}
			reg := NewRegistry(src, &stubRatios{ratios: ratios}, KeepStale, logger.NewNop())

			first := pidsOf(reg.Listing())
			second := pidsOf(reg.Listing())
			if !equalInts(first, second) {
				return false
			}

			for i := 1; i < len(first); i++ {
				a, b := ratios[first[i-1]], ratios[first[i]]
				if a < b || (a == b && first[i-1] > first[i]) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 4)),
	))

	properties.TestingRun(t)
}
