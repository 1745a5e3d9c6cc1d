// Package export renders a settlement as files a group can keep or forward:
// a CSV statement of its transfers and a plain-text payment reminder.
package export

import (
	"archive/zip"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/settle/internal/money"
	"github.com/MrJamesThe3rd/settle/internal/settlement"
)

const (
	StatementFile = "statement.csv"
	ReminderFile  = "reminder.txt"
)

//go:generate mockgen -source=export.go -destination=reader_mock.go -package=export
type SummaryReader interface {
	Get(ctx context.Context, settlementID, actorID uuid.UUID) (*settlement.Summary, error)
}

type Service struct {
	settlements SummaryReader
	amounts     *money.Formatter
	scale       int
}

// NewService formats reminder amounts with amounts; statement amounts are
// plain decimals with scale fraction digits.
func NewService(settlements SummaryReader, amounts *money.Formatter, scale int) *Service {
	return &Service{settlements: settlements, amounts: amounts, scale: scale}
}

// Load returns the settlement if actorID may see it.
func (s *Service) Load(ctx context.Context, settlementID, actorID uuid.UUID) (*settlement.Summary, error) {
	sum, err := s.settlements.Get(ctx, settlementID, actorID)
	if err != nil {
		return nil, fmt.Errorf("loading settlement for export: %w", err)
	}

	return sum, nil
}

// WriteStatement writes one CSV row per transfer, in settlement order.
func (s *Service) WriteStatement(w io.Writer, sum *settlement.Summary) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"debtor_id", "debtor", "creditor_id", "creditor", "amount", "sent", "sent_at"}); err != nil {
		return fmt.Errorf("writing statement header: %w", err)
	}

	for _, t := range sum.Transfers {
		sentAt := ""
		if t.SentAt != nil {
			sentAt = t.SentAt.UTC().Format(time.RFC3339)
		}

		row := []string{
			t.DebtorID.String(),
			t.DebtorName,
			t.CreditorID.String(),
			t.CreditorName,
			decimal.New(t.Amount, -int32(s.scale)).StringFixed(int32(s.scale)),
			strconv.FormatBool(t.Sent),
			sentAt,
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing statement row: %w", err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing statement: %w", err)
	}

	return nil
}

// Reminder lists the transfers still owed, ready to paste into a message.
func (s *Service) Reminder(sum *settlement.Summary) string {
	var sb strings.Builder

	if sum.Status == settlement.StatusCompleted {
		sb.WriteString("Everything is settled. Thanks!\n")
		return sb.String()
	}

	sb.WriteString("Still to send:\n")

	for _, t := range sum.Transfers {
		if t.Sent {
			continue
		}

		fmt.Fprintf(&sb, "* %s -> %s | %s\n", t.DebtorName, t.CreditorName, s.amounts.Format(t.Amount))
	}

	fmt.Fprintf(&sb, "Outstanding: %s\n", s.amounts.Format(sum.Outstanding()))

	if sum.Deadline != nil {
		fmt.Fprintf(&sb, "Please send by %s.\n", sum.Deadline.Format("2006-01-02"))
	}

	return sb.String()
}

// WriteArchive zips the statement and the reminder together.
func (s *Service) WriteArchive(w io.Writer, sum *settlement.Summary) error {
	zw := zip.NewWriter(w)

	f, err := zw.Create(StatementFile)
	if err != nil {
		return fmt.Errorf("adding %s: %w", StatementFile, err)
	}

	if err := s.WriteStatement(f, sum); err != nil {
		return err
	}

	f, err = zw.Create(ReminderFile)
	if err != nil {
		return fmt.Errorf("adding %s: %w", ReminderFile, err)
	}

	if _, err := io.WriteString(f, s.Reminder(sum)); err != nil {
		return fmt.Errorf("writing reminder: %w", err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("closing archive: %w", err)
	}

	return nil
}
