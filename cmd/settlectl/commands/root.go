package commands

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/settle/internal/config"
	"github.com/MrJamesThe3rd/settle/internal/database"
	dirStore "github.com/MrJamesThe3rd/settle/internal/directory/store"
	"github.com/MrJamesThe3rd/settle/internal/export"
	"github.com/MrJamesThe3rd/settle/internal/logging"
	"github.com/MrJamesThe3rd/settle/internal/money"
	"github.com/MrJamesThe3rd/settle/internal/settlement"
	settlementStore "github.com/MrJamesThe3rd/settle/internal/settlement/store"
	"github.com/MrJamesThe3rd/settle/internal/vote"
	voteStore "github.com/MrJamesThe3rd/settle/internal/vote/store"
)

var (
	envFile string
	cfg     *config.Config
	db      *sql.DB
)

func Execute() error {
	root := &cobra.Command{
		Use:          "settlectl",
		Short:        "Operate the settle service: migrations, votes and settlements",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load(envFile)

			var err error

			cfg, err = config.Load()
			if err != nil {
				return err
			}

			logging.Setup(cfg.Log.Level, cfg.Log.Format)

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if db != nil {
				db.Close()
			}
		},
	}

	root.PersistentFlags().StringVar(&envFile, "env", ".env", "dotenv file to load before reading the environment")

	root.AddCommand(migrateCmd(), voteCmd(), settlementCmd(), tokenCmd())

	return root.Execute()
}

// openDB connects on first use; token generation never needs a database.
func openDB() (*sql.DB, error) {
	if db != nil {
		return db, nil
	}

	conn, err := database.New(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	db = conn

	return db, nil
}

type services struct {
	votes       *vote.Service
	settlements *settlement.Service
	exports     *export.Service
}

func newServices() (*services, error) {
	conn, err := openDB()
	if err != nil {
		return nil, err
	}

	dir := dirStore.New(conn)
	votes := vote.NewService(voteStore.New(conn), dir)

	settlements := settlement.NewService(settlementStore.New(conn), dir, votes)

	return &services{
		votes:       votes,
		settlements: settlements,
		exports:     export.NewService(settlements, formatter(), cfg.App.CurrencyScale),
	}, nil
}

func formatter() *money.Formatter {
	f, err := money.NewFormatter(cfg.App.CurrencyLocale, cfg.App.CurrencyScale)
	if err != nil {
		slog.Warn("falling back to en-US amounts", "locale", cfg.App.CurrencyLocale, "error", err)

		f, _ = money.NewFormatter("en-US", cfg.App.CurrencyScale)
	}

	return f
}
