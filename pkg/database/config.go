package database

import (
	"fmt"
	"os"
	"strconv"
)

// LoadConfigFromEnv builds store configuration from the environment.
// WARDEN_DB_PATH is required outside tests; WARDEN_DB_BUSY_TIMEOUT_MS is
// optional.
func LoadConfigFromEnv() (Config, error) {
	path := os.Getenv("WARDEN_DB_PATH")
	if path == "" {
		path = "./data/warden.db"
	}

	cfg := Config{Path: path}

	if v := os.Getenv("WARDEN_DB_BUSY_TIMEOUT_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms <= 0 {
			return Config{}, fmt.Errorf("invalid WARDEN_DB_BUSY_TIMEOUT_MS %q", v)
		}
		cfg.BusyTimeoutMS = ms
	}

	return cfg, nil
}
