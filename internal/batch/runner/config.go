package runner

type Config struct {
	WarmupRuns int `json:"warmup_runs"`
	Runs       int `json:"runs"`
}

func DefaultConfig() Config {
	return Config{WarmupRuns: 0, Runs: 1}
}
