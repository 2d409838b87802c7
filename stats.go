package cell

import "context"

const (
	// MetricMiss is a name of a metric to count empty-slot access events.
	MetricMiss = "cache_miss"
	// MetricExpired is a name of a metric to count expired value drops.
	MetricExpired = "cache_expired"
	// MetricHit is a name of a metric to count accesses served from the slot.
	MetricHit = "cache_hit"
	// MetricBuild is a name of a metric to count filler invocations.
	MetricBuild = "cache_build"
	// MetricFailed is a name of a metric to count fillers that produced no value.
	MetricFailed = "cache_failed"
)

// NewStatsTracker creates tracker instance from tracking functions.
func NewStatsTracker(
	add,
	set func(ctx context.Context, name string, val float64, labelsAndValues ...string),
) StatsTracker {
	if add == nil || set == nil {
		panic("both add and set must not be nil")
	}

	return tracker{
		add: add,
		set: set,
	}
}

// StatsTracker collects incremental and absolute (gauge) metrics.
//
// This interface matches github.com/bool64/stats.Tracker.
type StatsTracker interface {
	// Add collects additional or observable value.
	Add(ctx context.Context, name string, increment float64, labelsAndValues ...string)

	// Set collects absolute value, e.g. whether the slot holds a value.
	Set(ctx context.Context, name string, absolute float64, labelsAndValues ...string)
}

type tracker struct {
	add func(ctx context.Context, name string, val float64, labelsAndValues ...string)
	set func(ctx context.Context, name string, val float64, labelsAndValues ...string)
}

func (t tracker) Add(ctx context.Context, name string, increment float64, labelsAndValues ...string) {
	t.add(ctx, name, increment, labelsAndValues...)
}

func (t tracker) Set(ctx context.Context, name string, absolute float64, labelsAndValues ...string) {
	t.set(ctx, name, absolute, labelsAndValues...)
}
