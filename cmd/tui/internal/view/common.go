package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

type CommonModel struct {
	Width  int
	Height int
}

// Session is who is using the TUI and which expense they are looking at.
type Session struct {
	UserID    uuid.UUID
	ExpenseID uuid.UUID
}

func (s Session) Ready() bool {
	return s.UserID != uuid.Nil && s.ExpenseID != uuid.Nil
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// SessionMsg is emitted when the session form is submitted.
type SessionMsg struct {
	Session Session
}
