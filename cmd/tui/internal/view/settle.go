package view

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/settle/internal/settlement"
)

type settleFields struct {
	method   settlement.Method
	deadline DeadlinePreset
}

// SettleModel creates the settlement of the session's expense. Only the
// methods that need no per-user input are offered; DIRECT and PERCENT go
// through the API or settlectl with a sheet.
type SettleModel struct {
	CommonModel
	svc     SettlementService
	session Session
	now     func() time.Time

	form   *huh.Form
	fields *settleFields

	done   bool
	result string
}

func NewSettleModel(svc SettlementService, session Session) SettleModel {
	fields := &settleFields{method: settlement.MethodEqual}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[settlement.Method]().
				Title("Split method").
				Options(
					huh.NewOption("Equally among participants", settlement.MethodEqual),
					huh.NewOption("By claimed items (closed vote)", settlement.MethodItem),
				).
				Value(&fields.method),
			huh.NewSelect[DeadlinePreset]().
				Title("Payment deadline").
				Options(
					huh.NewOption(DeadlineNone.String(), DeadlineNone),
					huh.NewOption(DeadlineThreeDays.String(), DeadlineThreeDays),
					huh.NewOption(DeadlineOneWeek.String(), DeadlineOneWeek),
					huh.NewOption(DeadlineMonthEnd.String(), DeadlineMonthEnd),
				).
				Value(&fields.deadline),
		),
	).WithWidth(50).WithShowHelp(false)

	return SettleModel{svc: svc, session: session, now: time.Now, form: form, fields: fields}
}

func (m SettleModel) Title() string     { return "Settle Expense" }
func (m SettleModel) ShortHelp() string { return "Enter: confirm | Esc: back" }

func (m SettleModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m SettleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}

		if m.done {
			return m, nil
		}

	case settleResultMsg:
		m.done = true

		if msg.err != nil {
			m.result = fmt.Sprintf("Could not settle: %v", msg.err)
			return m, nil
		}

		m.result = fmt.Sprintf("Settlement %s created: %d transfer(s), %s outstanding.",
			msg.summary.Status, len(msg.summary.Transfers), FormatAmount(msg.summary.Outstanding()))

		return m, nil
	}

	if m.done {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.done = true
	m.result = "Settling..."

	return m, m.createCmd(m.strategy(), m.fields.deadline.Resolve(m.now()))
}

func (m SettleModel) strategy() settlement.Strategy {
	if m.fields.method == settlement.MethodItem {
		return settlement.ByItem{}
	}

	return settlement.Equal{}
}

func (m SettleModel) View() string {
	if m.done {
		return lipgloss.NewStyle().Padding(2).Render(m.result + "\n\nEsc: back")
	}

	return lipgloss.NewStyle().Padding(2).Render(m.form.View())
}

type settleResultMsg struct {
	summary *settlement.Summary
	err     error
}

func (m SettleModel) createCmd(strategy settlement.Strategy, deadline *time.Time) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		summary, err := m.svc.Create(ctx, settlement.CreateParams{
			ExpenseID: m.session.ExpenseID,
			ActorID:   m.session.UserID,
			Strategy:  strategy,
			Deadline:  deadline,
		})

		return settleResultMsg{summary: summary, err: err}
	}
}
