package testkit

import (
	"context"
	"fmt"
	"os"
	"testing"
)

// Suite holds the running test infrastructure for an integration test package.
type Suite struct {
	opts     Options
	Postgres *PostgresInstance
	Redis    *RedisInstance
}

// Start brings up Postgres and Redis (or binds to external instances) and
// returns the suite. On any failure everything already started is torn down.
func Start(ctx context.Context) (*Suite, error) {
	opts := OptionsFromEnv()

	pg, err := startPostgres(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("suite postgres: %w", err)
	}

	rdb, err := startRedis(ctx, opts)
	if err != nil {
		if !opts.KeepContainers {
			_ = pg.Close(ctx)
		}
		return nil, fmt.Errorf("suite redis: %w", err)
	}

	return &Suite{opts: opts, Postgres: pg, Redis: rdb}, nil
}

// Close tears down the containers unless TEST_KEEP_CONTAINERS is set.
func (s *Suite) Close(ctx context.Context) {
	if s.opts.KeepContainers {
		fmt.Println("TEST_KEEP_CONTAINERS=true, leaving containers running")
		fmt.Println("  Postgres DSN:", s.Postgres.DSN())
		fmt.Println("  Redis Addr:", s.Redis.Addr())
		return
	}

	if err := s.Redis.Close(ctx); err != nil {
		fmt.Println("warning: terminate redis container:", err)
	}
	if err := s.Postgres.Close(ctx); err != nil {
		fmt.Println("warning: terminate postgres container:", err)
	}
}

// Run wires the suite into TestMain: start infrastructure, hand the suite to
// the package's setup callback (connections, migrations), run the tests, tear
// down, exit.
func Run(m *testing.M, setup func(s *Suite) error) {
	ctx := context.Background()

	s, err := Start(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "integration suite startup failed: %v\n", err)
		os.Exit(1)
	}

	if err := setup(s); err != nil {
		fmt.Fprintf(os.Stderr, "integration suite setup failed: %v\n", err)
		s.Close(ctx)
		os.Exit(1)
	}

	code := m.Run()
	s.Close(ctx)
	os.Exit(code)
}
