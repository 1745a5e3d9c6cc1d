package view

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/settle/internal/apperr"
	"github.com/MrJamesThe3rd/settle/internal/vote"
)

// VoteModel shows the item vote of the session's expense. Pressing enter on
// an item toggles the user's claim on it.
type VoteModel struct {
	CommonModel
	svc     VoteService
	session Session

	table  table.Model
	status *vote.Status

	loading bool
	err     error
	message string
}

func NewVoteModel(svc VoteService, session Session) VoteModel {
	columns := []table.Column{
		{Title: "Item", Width: 24},
		{Title: "Price", Width: 12},
		{Title: "Voters", Width: 8},
		{Title: "Mine", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return VoteModel{svc: svc, session: session, table: t, loading: true}
}

func (m VoteModel) Title() string { return "Item Vote" }
func (m VoteModel) ShortHelp() string {
	return "Esc: back | Enter: claim/unclaim | n: open vote | x: close vote | r: refresh"
}

func (m VoteModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m VoteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case voteStatusMsg:
		m.loading = false
		m.err = nil

		if msg.err != nil {
			if errors.Is(msg.err, apperr.ErrNotFound) {
				m.status = nil
				m.message = "No vote yet. Press n to open one."
				m.refreshTable()

				return m, nil
			}

			m.err = msg.err

			return m, nil
		}

		m.status = msg.status
		m.refreshTable()

		return m, nil

	case voteActionMsg:
		if msg.err != nil {
			m.message = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.message = msg.text
		}

		return m, m.loadCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			return m, m.loadCmd()
		case "enter", " ":
			return m, m.castCmd()
		case "n":
			return m, m.createCmd()
		case "x":
			return m, m.closeCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m VoteModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading vote...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := "No vote"
	if m.status != nil {
		state := activeStyle("open")
		if m.status.Closed {
			state = "closed"
		}

		header = fmt.Sprintf("Vote %s | %s | %d participant(s) still to vote",
			ShortID(m.status.VoteID), state, len(m.status.NonVoterIDs))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Render(m.table.View()),
		lipgloss.NewStyle().Faint(true).Render(m.ShortHelp()),
	)

	if m.message != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.message) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *VoteModel) refreshTable() {
	if m.status == nil {
		m.table.SetRows(nil)
		return
	}

	rows := make([]table.Row, 0, len(m.status.Options))
	for _, o := range m.status.Options {
		mine := ""
		for _, v := range o.VoterIDs {
			if v == m.session.UserID {
				mine = "yes"
				break
			}
		}

		rows = append(rows, table.Row{o.ItemName, FormatAmount(o.Price), fmt.Sprint(len(o.VoterIDs)), mine})
	}

	m.table.SetRows(rows)
}

// Messages

type voteStatusMsg struct {
	status *vote.Status
	err    error
}

type voteActionMsg struct {
	text string
	err  error
}

func (m VoteModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		st, err := m.svc.Status(ctx, m.session.ExpenseID, m.session.UserID)

		return voteStatusMsg{status: st, err: err}
	}
}

func (m VoteModel) castCmd() tea.Cmd {
	if m.status == nil {
		return nil
	}

	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.status.Options) {
		return nil
	}

	optionID := m.status.Options[idx].ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		res, err := m.svc.Cast(ctx, optionID, m.session.UserID)
		if err != nil {
			return voteActionMsg{err: err}
		}

		if res.Action == vote.ActionRetracted {
			return voteActionMsg{text: "Unclaimed " + res.ItemName}
		}

		return voteActionMsg{text: "Claimed " + res.ItemName}
	}
}

func (m VoteModel) createCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		res, err := m.svc.Create(ctx, m.session.ExpenseID, m.session.UserID)
		if err != nil {
			return voteActionMsg{err: err}
		}

		if !res.Created {
			return voteActionMsg{text: "A vote already exists for this expense."}
		}

		return voteActionMsg{text: "Vote opened."}
	}
}

func (m VoteModel) closeCmd() tea.Cmd {
	if m.status == nil {
		return nil
	}

	voteID := m.status.VoteID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		res, err := m.svc.CloseAs(ctx, voteID, m.session.UserID)
		if err != nil {
			return voteActionMsg{err: err}
		}

		if res.AlreadyClosed {
			return voteActionMsg{text: "Vote was already closed."}
		}

		return voteActionMsg{text: "Vote closed. The expense can now be settled by item."}
	}
}
