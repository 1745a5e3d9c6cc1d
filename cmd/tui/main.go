package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/settle/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/settle/internal/config"
	"github.com/MrJamesThe3rd/settle/internal/database"
	dirStore "github.com/MrJamesThe3rd/settle/internal/directory/store"
	"github.com/MrJamesThe3rd/settle/internal/logging"
	"github.com/MrJamesThe3rd/settle/internal/money"
	"github.com/MrJamesThe3rd/settle/internal/settlement"
	settlementStore "github.com/MrJamesThe3rd/settle/internal/settlement/store"
	"github.com/MrJamesThe3rd/settle/internal/vote"
	voteStore "github.com/MrJamesThe3rd/settle/internal/vote/store"
)

const logFile = "settle-tui.log"

type model struct {
	settlementService view.SettlementService
	voteService       view.VoteService

	session     view.Session
	currentView View
	// next is opened once the session form completes.
	next View

	sessionView    view.SessionModel
	settlementView view.SettlementModel
	voteView       view.VoteModel
	settleView     view.SettleModel
}

type View int

const (
	ViewMenu       View = 0
	ViewSession    View = 1
	ViewSettlement View = 2
	ViewVote       View = 3
	ViewSettle     View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Logging to stderr would draw over the TUI.
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		slog.Error("failed to open log file", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(logging.NewHandler(f, cfg.Log.Level, "json")))

	if fm, err := money.NewFormatter(cfg.App.CurrencyLocale, cfg.App.CurrencyScale); err == nil {
		view.Amounts = fm
	} else {
		slog.Warn("invalid currency locale, using en-US", "locale", cfg.App.CurrencyLocale, "error", err)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	dir := dirStore.New(db)
	voteSvc := vote.NewService(voteStore.New(db), dir)
	settlementSvc := settlement.NewService(settlementStore.New(db), dir, voteSvc)

	return model{
		settlementService: settlementSvc,
		voteService:       voteSvc,
		currentView:       ViewMenu,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

// open switches to v, asking for the session first when it is incomplete.
func (m model) open(v View) (model, tea.Cmd) {
	if !m.session.Ready() || v == ViewSession {
		m.next = v
		m.currentView = ViewSession
		m.sessionView = view.NewSessionModel(m.session)

		return m, m.sessionView.Init()
	}

	m.currentView = v

	switch v {
	case ViewSettlement:
		m.settlementView = view.NewSettlementModel(m.settlementService, m.session)
		return m, m.settlementView.Init()
	case ViewVote:
		m.voteView = view.NewVoteModel(m.voteService, m.session)
		return m, m.voteView.Init()
	case ViewSettle:
		m.settleView = view.NewSettleModel(m.settlementService, m.session)
		return m, m.settleView.Init()
	}

	m.currentView = ViewMenu

	return m, nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				return m.open(ViewSettlement)
			case "2":
				return m.open(ViewVote)
			case "3":
				return m.open(ViewSettle)
			case "4":
				return m.open(ViewSession)
			}
		}
	case view.SessionMsg:
		m.session = msg.Session
		next := m.next
		m.next = ViewMenu

		if next == ViewSession {
			m.currentView = ViewMenu
			return m, nil
		}

		return m.open(next)
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewSession:
		var newModel tea.Model
		newModel, cmd = m.sessionView.Update(msg)
		m.sessionView = newModel.(view.SessionModel)
	case ViewSettlement:
		var newModel tea.Model
		newModel, cmd = m.settlementView.Update(msg)
		m.settlementView = newModel.(view.SettlementModel)
	case ViewVote:
		var newModel tea.Model
		newModel, cmd = m.voteView.Update(msg)
		m.voteView = newModel.(view.VoteModel)
	case ViewSettle:
		var newModel tea.Model
		newModel, cmd = m.settleView.Update(msg)
		m.settleView = newModel.(view.SettleModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		who := "no session"
		if m.session.Ready() {
			who = "user " + view.ShortID(m.session.UserID) + " on expense " + view.ShortID(m.session.ExpenseID)
		}

		return lipgloss.NewStyle().Padding(2).Render(
			"Settle TUI (" + who + ")\n\n" +
				"1. View Settlement\n" +
				"2. Item Vote\n" +
				"3. Settle Expense\n" +
				"4. Change User / Expense\n\n" +
				"q. Quit",
		)
	case ViewSession:
		return m.sessionView.View()
	case ViewSettlement:
		return m.settlementView.View()
	case ViewVote:
		return m.voteView.View()
	case ViewSettle:
		return m.settleView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
