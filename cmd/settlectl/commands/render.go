package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/settle/internal/money"
	"github.com/MrJamesThe3rd/settle/internal/settlement"
	"github.com/MrJamesThe3rd/settle/internal/vote"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

func renderSummary(w io.Writer, s *settlement.Summary, f *money.Formatter) {
	fmt.Fprintf(w, "Settlement %s (%s, %s)\n", s.SettlementID, s.Method, s.Status)
	fmt.Fprintf(w, "Expense %s  total %s  outstanding %s\n",
		s.ExpenseID, f.Format(s.TotalAmount), f.Format(s.Outstanding()))

	if s.Deadline != nil {
		fmt.Fprintf(w, "Deadline %s\n", s.Deadline.Format(time.DateOnly))
	}

	if len(s.Transfers) == 0 {
		fmt.Fprintln(w, "Nothing to pay back.")
		return
	}

	rows := make([][]string, 0, len(s.Transfers))
	for _, t := range s.Transfers {
		sent := "pending"
		if t.Sent {
			sent = "sent"
		}

		rows = append(rows, []string{t.DetailID.String(), t.DebtorName, t.CreditorName, f.Format(t.Amount), sent})
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return lipgloss.NewStyle()
		}).
		Headers("DETAIL", "FROM", "TO", "AMOUNT", "STATUS").
		Rows(rows...)

	fmt.Fprintln(w, tbl.Render())
}

func renderVoteStatus(w io.Writer, st *vote.Status, f *money.Formatter) {
	state := "open"
	if st.Closed {
		state = "closed"
	}

	fmt.Fprintf(w, "Vote %s (%s)\n", st.VoteID, state)

	rows := make([][]string, 0, len(st.Options))
	for _, o := range st.Options {
		rows = append(rows, []string{o.ID.String(), o.ItemName, f.Format(o.Price), joinIDs(o.VoterIDs)})
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("OPTION", "ITEM", "PRICE", "VOTERS").
		Rows(rows...)

	fmt.Fprintln(w, tbl.Render())

	if len(st.NonVoterIDs) > 0 {
		fmt.Fprintf(w, "Not voted yet: %s\n", joinIDs(st.NonVoterIDs))
	}
}

func joinIDs(ids []uuid.UUID) string {
	if len(ids) == 0 {
		return "-"
	}

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}

	return strings.Join(parts, ", ")
}
