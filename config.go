package cell

// Config controls slot instrumentation.
type Config struct {
	// Logger is an instance of contextualized logger, can be nil.
	Logger Logger

	// Stats is a metrics collector, can be nil.
	Stats StatsTracker

	// Name is slot instance name, used in stats and logging.
	Name string
}

// Use is a functional option to apply configuration.
func (c Config) Use(cfg *Config) {
	*cfg = c
}
