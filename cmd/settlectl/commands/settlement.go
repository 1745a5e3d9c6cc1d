package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/settle/internal/settlement"
	"github.com/MrJamesThe3rd/settle/internal/splitsheet"
)

func settlementCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settlement",
		Short: "Create and inspect expense settlements",
	}

	cmd.AddCommand(settlementShowCmd(), settlementCreateCmd(), settlementExportCmd())

	return cmd
}

func settlementShowCmd() *cobra.Command {
	var as string

	cmd := &cobra.Command{
		Use:   "show <expenseID>",
		Short: "Show the settlement of an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expenseID, actorID, err := parseIDs(args[0], as)
			if err != nil {
				return err
			}

			svc, err := newServices()
			if err != nil {
				return err
			}

			summary, err := svc.settlements.GetByExpense(cmd.Context(), expenseID, actorID)
			if err != nil {
				return err
			}

			renderSummary(cmd.OutOrStdout(), summary, formatter())

			return nil
		},
	}

	cmd.Flags().StringVar(&as, "as", "", "user id to act as (must be a group member)")
	_ = cmd.MarkFlagRequired("as")

	return cmd
}

type createFlags struct {
	as           string
	method       string
	participants []string
	entries      string
	deadline     string
}

func settlementCreateCmd() *cobra.Command {
	var f createFlags

	cmd := &cobra.Command{
		Use:   "create <expenseID>",
		Short: "Settle an expense with the given split method",
		Long: `Settle an expense. EQUAL splits across --participant ids (default: the
expense participants), ITEM uses the closed item vote, and DIRECT or PERCENT
read their entries from a spreadsheet CSV given with --entries.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expenseID, actorID, err := parseIDs(args[0], f.as)
			if err != nil {
				return err
			}

			strategy, err := f.strategy(splitsheet.NewParser(cfg.App.CurrencyScale))
			if err != nil {
				return err
			}

			deadline, err := f.parseDeadline()
			if err != nil {
				return err
			}

			svc, err := newServices()
			if err != nil {
				return err
			}

			summary, err := svc.settlements.Create(cmd.Context(), settlement.CreateParams{
				ExpenseID: expenseID,
				ActorID:   actorID,
				Strategy:  strategy,
				Deadline:  deadline,
			})
			if err != nil {
				return err
			}

			renderSummary(cmd.OutOrStdout(), summary, formatter())

			return nil
		},
	}

	cmd.Flags().StringVar(&f.as, "as", "", "user id to act as (must be a group member)")
	cmd.Flags().StringVar(&f.method, "method", "", "EQUAL, DIRECT, PERCENT or ITEM (inferred from --entries when omitted)")
	cmd.Flags().StringSliceVar(&f.participants, "participant", nil, "participant user id for EQUAL (repeatable)")
	cmd.Flags().StringVar(&f.entries, "entries", "", "CSV sheet of user_id with amount or percent columns")
	cmd.Flags().StringVar(&f.deadline, "deadline", "", "payment deadline, RFC3339")
	_ = cmd.MarkFlagRequired("as")

	return cmd
}

type sheetParser interface {
	Parse(r io.Reader) (*splitsheet.Sheet, error)
}

func (f createFlags) strategy(parser sheetParser) (settlement.Strategy, error) {
	if f.entries != "" {
		file, err := os.Open(f.entries)
		if err != nil {
			return nil, fmt.Errorf("opening entries: %w", err)
		}
		defer file.Close()

		sheet, err := parser.Parse(file)
		if err != nil {
			return nil, err
		}

		strategy := sheet.Strategy()
		if f.method != "" && settlement.Method(f.method) != strategy.Method() {
			return nil, fmt.Errorf("--method %s does not match the %s sheet", f.method, strategy.Method())
		}

		return strategy, nil
	}

	method, err := settlement.ParseMethod(f.method)
	if err != nil {
		return nil, err
	}

	switch method {
	case settlement.MethodEqual:
		ids := make([]uuid.UUID, 0, len(f.participants))

		for _, p := range f.participants {
			id, err := uuid.Parse(p)
			if err != nil {
				return nil, fmt.Errorf("invalid participant id %q: %w", p, err)
			}

			ids = append(ids, id)
		}

		return settlement.Equal{ParticipantIDs: ids}, nil
	case settlement.MethodItem:
		return settlement.ByItem{}, nil
	default:
		return nil, fmt.Errorf("%s needs --entries", method)
	}
}

func (f createFlags) parseDeadline() (*time.Time, error) {
	if f.deadline == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, f.deadline)
	if err != nil {
		return nil, fmt.Errorf("invalid --deadline: %w", err)
	}

	return &t, nil
}

func settlementExportCmd() *cobra.Command {
	var as, out string

	cmd := &cobra.Command{
		Use:   "export <settlementID>",
		Short: "Print a payment reminder, or write statement and reminder to a zip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settlementID, actorID, err := parseIDs(args[0], as)
			if err != nil {
				return err
			}

			svc, err := newServices()
			if err != nil {
				return err
			}

			summary, err := svc.exports.Load(cmd.Context(), settlementID, actorID)
			if err != nil {
				return err
			}

			if out == "" {
				fmt.Fprint(cmd.OutOrStdout(), svc.exports.Reminder(summary))
				return nil
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			defer f.Close()

			if err := svc.exports.WriteArchive(f, summary); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)

			return nil
		},
	}

	cmd.Flags().StringVar(&as, "as", "", "user id to act as (must be a group member)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "zip file to write instead of printing the reminder")
	_ = cmd.MarkFlagRequired("as")

	return cmd
}
