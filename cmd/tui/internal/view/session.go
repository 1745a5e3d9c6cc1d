package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

type sessionFields struct {
	userID    string
	expenseID string
}

// SessionModel asks who the user is and which expense to work on.
type SessionModel struct {
	CommonModel
	form   *huh.Form
	fields *sessionFields
}

func NewSessionModel(current Session) SessionModel {
	fields := &sessionFields{}

	if current.UserID != uuid.Nil {
		fields.userID = current.UserID.String()
	}

	if current.ExpenseID != uuid.Nil {
		fields.expenseID = current.ExpenseID.String()
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("user_id").
				Title("Your user ID").
				Value(&fields.userID).
				Validate(validateUUID),
			huh.NewInput().
				Key("expense_id").
				Title("Expense ID").
				Value(&fields.expenseID).
				Validate(validateUUID),
		),
	).WithWidth(50).WithShowHelp(false)

	return SessionModel{form: form, fields: fields}
}

func validateUUID(s string) error {
	if _, err := uuid.Parse(s); err != nil {
		return fmt.Errorf("not a valid UUID")
	}

	return nil
}

func (m SessionModel) Title() string     { return "Session" }
func (m SessionModel) ShortHelp() string { return "Enter: next | Esc: back" }

func (m SessionModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	session := Session{
		UserID:    uuid.MustParse(m.fields.userID),
		ExpenseID: uuid.MustParse(m.fields.expenseID),
	}

	return m, func() tea.Msg { return SessionMsg{Session: session} }
}

func (m SessionModel) View() string {
	return lipgloss.NewStyle().Padding(2).Render("Who are you and what are we settling?\n\n" + m.form.View())
}
