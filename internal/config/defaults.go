package config

const (
	defaultLogLevel       = "info"
	defaultLogFormat      = "pretty"
	defaultChannelWidth   = 5
	defaultDemoWorkers    = 2
	defaultDemoIterations = 3
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Level:        defaultLogLevel,
			Format:       defaultLogFormat,
			ChannelWidth: defaultChannelWidth,
		},
		Demo: Demo{
			Workers:    defaultDemoWorkers,
			Iterations: defaultDemoIterations,
		},
	}
}
