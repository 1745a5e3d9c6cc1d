//go:build integration

// Package dbtest starts a disposable Postgres for store integration tests and
// seeds the collaborator tables this service only reads.
package dbtest

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/MrJamesThe3rd/settle/internal/database"
)

// New starts a container, applies the embedded migrations and returns a
// connection that is closed, with the container, when t finishes.
func New(t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("settle"),
		tcpostgres.WithUsername("settle"),
		tcpostgres.WithPassword("settle"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, container.Terminate(ctx))
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.New(connStr)
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))

	return db
}

type Item struct {
	Name      string
	UnitPrice int64
	Quantity  int64
}

type SeedParams struct {
	Amount int64
	Items  []Item
	// Members joins the group; the first one pays. Every member participates.
	Members []string
	// Outsiders exist as users but belong to no group.
	Outsiders []string
}

type Fixture struct {
	GroupID   uuid.UUID
	ExpenseID uuid.UUID
	PayerID   uuid.UUID
	Members   []uuid.UUID
	Outsiders []uuid.UUID
	ItemIDs   []uuid.UUID
}

func Seed(t *testing.T, db *sql.DB, p SeedParams) *Fixture {
	t.Helper()

	ctx := context.Background()
	f := &Fixture{}

	createUser := func(name string) uuid.UUID {
		var id uuid.UUID
		require.NoError(t, db.QueryRowContext(ctx,
			`INSERT INTO users (display_name) VALUES ($1) RETURNING id`, name).Scan(&id))

		return id
	}

	require.NoError(t, db.QueryRowContext(ctx,
		`INSERT INTO groups (name) VALUES ('dinner club') RETURNING id`).Scan(&f.GroupID))

	for _, name := range p.Members {
		id := createUser(name)
		f.Members = append(f.Members, id)

		_, err := db.ExecContext(ctx, `INSERT INTO group_members (group_id, user_id) VALUES ($1, $2)`, f.GroupID, id)
		require.NoError(t, err)
	}

	for _, name := range p.Outsiders {
		f.Outsiders = append(f.Outsiders, createUser(name))
	}

	require.NotEmpty(t, f.Members, "a payer is required")
	f.PayerID = f.Members[0]

	require.NoError(t, db.QueryRowContext(ctx,
		`INSERT INTO expenses (group_id, payer_id, amount) VALUES ($1, $2, $3) RETURNING id`,
		f.GroupID, f.PayerID, p.Amount).Scan(&f.ExpenseID))

	for i, it := range p.Items {
		var id uuid.UUID
		require.NoError(t, db.QueryRowContext(ctx,
			`INSERT INTO expense_items (expense_id, name, unit_price, quantity, position)
			 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			f.ExpenseID, it.Name, it.UnitPrice, it.Quantity, i).Scan(&id))

		f.ItemIDs = append(f.ItemIDs, id)
	}

	for _, id := range f.Members {
		_, err := db.ExecContext(ctx,
			`INSERT INTO expense_participants (expense_id, user_id) VALUES ($1, $2)`, f.ExpenseID, id)
		require.NoError(t, err)
	}

	return f
}
