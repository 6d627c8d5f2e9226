package testdb

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/url"
	"os"

	"github.com/jackc/pgx/v5"
)

// EnvDSN points at a throwaway Postgres server for integration tests.
// Each instance creates its own randomly named database there and drops
// it again on Down, so parallel runs never collide.
const EnvDSN = "TEST_DATABASE_URI"

type TestDBInstance struct {
	DSN string

	adminDSN string
	name     string
}

func NewTestDBInstance() (*TestDBInstance, error) {
	adminDSN := os.Getenv(EnvDSN)
	if adminDSN == "" {
		return nil, fmt.Errorf("%s is not set", EnvDSN)
	}

	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	name := "sokoni_test_" + hex.EncodeToString(buf)

	if err := execAdmin(adminDSN, "CREATE DATABASE "+name); err != nil {
		return nil, fmt.Errorf("failed to create test database %s: %w", name, err)
	}

	u, err := url.Parse(adminDSN)
	if err != nil {
		return nil, err
	}
	u.Path = "/" + name

	return &TestDBInstance{
		DSN:      u.String(),
		adminDSN: adminDSN,
		name:     name,
	}, nil
}

func (i *TestDBInstance) Down() {
	if err := execAdmin(i.adminDSN, "DROP DATABASE IF EXISTS "+i.name+" WITH (FORCE)"); err != nil {
		fmt.Fprintf(os.Stderr, "failed to drop test database %s: %v\n", i.name, err)
	}
}

func execAdmin(dsn string, stmt string) error {
	ctx := context.Background()
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	_, err = conn.Exec(ctx, stmt)
	return err
}
