package view

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/settle/internal/money"
)

const dbTimeout = 5 * time.Second

// Amounts renders minor units; set once from config at startup.
var Amounts, _ = money.NewFormatter("en-US", 2)

func FormatAmount(minor int64) string {
	return Amounts.Format(minor)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// ShortID keeps the first block of a UUID for narrow table columns.
func ShortID(id uuid.UUID) string {
	return id.String()[:8]
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
