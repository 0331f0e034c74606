package testkit

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver registration
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// PostgresInstance is a Postgres test database, either a started container or
// an external instance supplied through the options.
type PostgresInstance struct {
	container testcontainers.Container
	dsn       string
}

// DSN returns the connection string for the test database.
func (p *PostgresInstance) DSN() string { return p.dsn }

// Close terminates the container if one was started.
func (p *PostgresInstance) Close(ctx context.Context) error {
	if p.container == nil {
		return nil
	}
	return p.container.Terminate(ctx)
}

func startPostgres(ctx context.Context, opts Options) (*PostgresInstance, error) {
	if opts.ExternalPostgresDSN != "" {
		return &PostgresInstance{dsn: opts.ExternalPostgresDSN}, nil
	}

	ctr, err := postgres.Run(ctx,
		opts.PostgresImage,
		postgres.WithDatabase("ancientsvc_"+randomSuffix()),
		postgres.WithUsername("ancientsvc"),
		postgres.WithPassword("ancientsvc"),
		testcontainers.WithWaitStrategyAndDeadline(opts.StartupTimeout,
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = ctr.Terminate(ctx)
		return nil, fmt.Errorf("postgres connection string: %w", err)
	}

	return &PostgresInstance{container: ctr, dsn: dsn}, nil
}

func randomSuffix() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "fallback"
	}
	return hex.EncodeToString(b)
}
