package config

// NHLAPIConfig controls how we talk to the public NHL APIs. Empty base URLs
// fall back to the client's defaults.
type NHLAPIConfig struct {
	WebBaseURL    string
	StatsBaseURL  string
	Timeout       Duration
	MinInterval   Duration
	RetryAttempts int
	RetryBackoff  Duration
}

func loadNHLAPI() NHLAPIConfig {
	return NHLAPIConfig{
		WebBaseURL:    envOrDefault(envNHLWebBaseURL, ""),
		StatsBaseURL:  envOrDefault(envNHLStatsBaseURL, ""),
		Timeout:       durationEnvOrDefault(envNHLTimeout, defaultNHLTimeout),
		MinInterval:   durationEnvOrDefault(envNHLMinInterval, defaultNHLMinInterval),
		RetryAttempts: intEnvOrDefault(envNHLRetries, defaultNHLRetries),
		RetryBackoff:  durationEnvOrDefault(envNHLBackoff, defaultNHLBackoff),
	}
}
