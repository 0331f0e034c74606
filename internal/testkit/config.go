// Package testkit manages throwaway Postgres and Redis instances for
// integration tests, backed by testcontainers with external overrides.
package testkit

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Options controls the test infrastructure. Everything is driven by
// environment variables so CI and local runs can point at external services
// instead of starting containers.
type Options struct {
	PostgresImage string
	RedisImage    string

	// ExternalPostgresDSN and ExternalRedisAddr skip container startup when set.
	ExternalPostgresDSN string
	ExternalRedisAddr   string

	StartupTimeout time.Duration
	KeepContainers bool // leave containers running after the suite for inspection
}

// OptionsFromEnv reads the test infrastructure settings from the environment.
func OptionsFromEnv() Options {
	return Options{
		PostgresImage:       getenv("TEST_POSTGRES_IMAGE", "postgres:18.1-alpine"),
		RedisImage:          getenv("TEST_REDIS_IMAGE", "redis:8.4.0-alpine"),
		ExternalPostgresDSN: os.Getenv("TEST_POSTGRES_DSN"),
		ExternalRedisAddr:   os.Getenv("TEST_REDIS_ADDR"),
		StartupTimeout:      getenvDuration("TEST_STARTUP_TIMEOUT", 90*time.Second),
		KeepContainers:      getenvBool("TEST_KEEP_CONTAINERS", false),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		if secs, serr := strconv.Atoi(v); serr == nil {
			return time.Duration(secs) * time.Second
		}
		fmt.Fprintf(os.Stderr, "testkit: bad %s=%q, using %v\n", key, v, def)
		return def
	}
	return d
}

func getenvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "testkit: bad %s=%q, using %v\n", key, v, def)
		return def
	}
	return b
}
