package testhelper

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CreateUser inserts a user row with unique email/username and returns its ID.
// Most repository tests need an owner because every table hangs off users.
func CreateUser(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	email := fmt.Sprintf("user-%s@example.com", id)
	username := fmt.Sprintf("user-%s", id)

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, username, password_hash) VALUES ($1, $2, $3, $4)`,
		id, email, username, "x")
	if err != nil {
		t.Fatalf("testhelper: failed to create user: %v", err)
	}

	return id
}
