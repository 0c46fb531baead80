package config

// TestConfig returns a config suitable for tests: embedded catalog,
// substring search with no debounce delay worth waiting for, logging
// off.
func TestConfig() *Config {
	cfg := defaultConfig()
	cfg.Search.DebounceMillis = 1
	return cfg
}
