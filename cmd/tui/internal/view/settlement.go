package view

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/settle/internal/apperr"
	"github.com/MrJamesThe3rd/settle/internal/settlement"
)

// SettlementModel lists the transfers of the session's expense and lets the
// user mark their own transfer as sent.
type SettlementModel struct {
	CommonModel
	svc     SettlementService
	session Session

	table   table.Model
	spinner spinner.Model
	summary *settlement.Summary

	loading bool
	err     error
	status  string
}

func NewSettlementModel(svc SettlementService, session Session) SettlementModel {
	columns := []table.Column{
		{Title: "From", Width: 18},
		{Title: "To", Width: 18},
		{Title: "Amount", Width: 12},
		{Title: "Status", Width: 9},
		{Title: "Sent", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return SettlementModel{
		svc:     svc,
		session: session,
		table:   t,
		spinner: sp,
		loading: true,
	}
}

func (m SettlementModel) Title() string { return "Settlement" }
func (m SettlementModel) ShortHelp() string {
	return "Esc: back | m: mark my transfer sent | r: refresh"
}

func (m SettlementModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

func (m SettlementModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case summaryMsg:
		m.loading = false
		m.err = nil

		if msg.err != nil {
			if errors.Is(msg.err, apperr.ErrNotFound) {
				m.summary = nil
				m.status = "No settlement yet. Use \"Settle expense\" from the menu."
				m.refreshTable()

				return m, nil
			}

			m.err = msg.err

			return m, nil
		}

		m.summary = msg.summary
		m.refreshTable()

		return m, nil

	case markSentMsg:
		switch {
		case msg.err != nil:
			m.status = fmt.Sprintf("Error: %v", msg.err)
		case msg.result.AlreadySent:
			m.status = "That transfer was already marked sent."
		case msg.result.Completed:
			m.status = "All transfers sent. Settlement completed."
		default:
			m.status = "Marked sent."
		}

		m.loading = true

		return m, tea.Batch(m.spinner.Tick, m.loadCmd())

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 12)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.loadCmd())
		case "m":
			return m, m.markSentCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m SettlementModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render(m.spinner.View() + " Loading settlement...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	var header string
	if m.summary != nil {
		header = fmt.Sprintf("%s split | %s | total %s | outstanding %s",
			m.summary.Method,
			activeStyle(string(m.summary.Status)),
			FormatAmount(m.summary.TotalAmount),
			FormatAmount(m.summary.Outstanding()),
		)

		if m.summary.Deadline != nil {
			header += " | due " + FormatDate(*m.summary.Deadline)
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Render(m.table.View()),
		lipgloss.NewStyle().Faint(true).Render(m.ShortHelp()),
	)

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m *SettlementModel) refreshTable() {
	if m.summary == nil {
		m.table.SetRows(nil)
		return
	}

	rows := make([]table.Row, 0, len(m.summary.Transfers))
	for _, t := range m.summary.Transfers {
		status, sentAt := "pending", ""
		if t.Sent {
			status = "sent"
		}

		if t.SentAt != nil {
			sentAt = FormatDate(*t.SentAt)
		}

		from := t.DebtorName
		if t.DebtorID == m.session.UserID {
			from += " (you)"
		}

		rows = append(rows, table.Row{from, t.CreditorName, FormatAmount(t.Amount), status, sentAt})
	}

	m.table.SetRows(rows)
}

// Messages

type summaryMsg struct {
	summary *settlement.Summary
	err     error
}

func (m SettlementModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		summary, err := m.svc.GetByExpense(ctx, m.session.ExpenseID, m.session.UserID)

		return summaryMsg{summary: summary, err: err}
	}
}

type markSentMsg struct {
	result *settlement.MarkSentResult
	err    error
}

func (m SettlementModel) markSentCmd() tea.Cmd {
	if m.summary == nil {
		return nil
	}

	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.summary.Transfers) {
		return nil
	}

	detailID := m.summary.Transfers[idx].DetailID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		res, err := m.svc.MarkSent(ctx, detailID, m.session.UserID)

		return markSentMsg{result: res, err: err}
	}
}
