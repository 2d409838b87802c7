package cell

import "context"

// trait carries instrumentation shared by both slot implementations.
//
// Slot operations have no context of their own, events are reported with
// context.Background().
type trait struct {
	Config Config
	Stat   StatsTracker
	Log    logTrait
}

func newTrait(config Config) *trait {
	t := &trait{
		Config: config,
		Stat:   config.Stats,
	}
	t.Log.setup(config.Logger)

	return t
}

func (c *trait) expired() {
	ctx := context.Background()

	if c.Log.logDebug != nil {
		c.Log.logDebug(ctx, "cache value expired", "name", c.Config.Name)
	}

	if c.Stat != nil {
		c.Stat.Add(ctx, MetricExpired, 1, "name", c.Config.Name)
	}
}

func (c *trait) hit() {
	ctx := context.Background()

	if c.Log.logDebug != nil {
		c.Log.logDebug(ctx, "cache hit", "name", c.Config.Name)
	}

	if c.Stat != nil {
		c.Stat.Add(ctx, MetricHit, 1, "name", c.Config.Name)
	}
}

func (c *trait) miss() {
	ctx := context.Background()

	if c.Log.logDebug != nil {
		c.Log.logDebug(ctx, "cache miss", "name", c.Config.Name)
	}

	if c.Stat != nil {
		c.Stat.Add(ctx, MetricMiss, 1, "name", c.Config.Name)
	}
}

func (c *trait) built() {
	ctx := context.Background()

	if c.Log.logDebug != nil {
		c.Log.logDebug(ctx, "cache value built", "name", c.Config.Name)
	}

	if c.Stat != nil {
		c.Stat.Add(ctx, MetricBuild, 1, "name", c.Config.Name)
	}
}

func (c *trait) buildFailed() {
	ctx := context.Background()

	if c.Log.logDebug != nil {
		c.Log.logDebug(ctx, "cache filler produced no value", "name", c.Config.Name)
	}

	if c.Stat != nil {
		c.Stat.Add(ctx, MetricFailed, 1, "name", c.Config.Name)
	}
}

func (c *trait) borrowConflict() {
	if c.Log.logError != nil {
		c.Log.logError(context.Background(), "conflicting borrow of shared slot",
			"name", c.Config.Name)
	}
}
