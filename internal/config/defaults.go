package config

const (
	defaultRequestTimeout  = 180
	defaultOutputDir       = "~/Downloads"
	defaultAnalyzingDelay  = 2
	defaultTailoringDelay  = 5
	defaultGeneratingDelay = 15
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Endpoint: Endpoint{
			RequestTimeout: defaultRequestTimeout,
		},
		Output: Output{
			Dir: defaultOutputDir,
		},
		Stages: Stages{
			AnalyzingDelay:  defaultAnalyzingDelay,
			TailoringDelay:  defaultTailoringDelay,
			GeneratingDelay: defaultGeneratingDelay,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
