package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func voteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vote",
		Short: "Inspect and close item votes",
	}

	cmd.AddCommand(voteCloseCmd(), voteStatusCmd())

	return cmd
}

// vote close <voteID>: the operator and scheduler path, no membership check.
func voteCloseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "close <voteID>",
		Short: "Close a vote so it can feed an item settlement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			voteID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid vote id: %w", err)
			}

			svc, err := newServices()
			if err != nil {
				return err
			}

			res, err := svc.votes.Close(cmd.Context(), voteID)
			if err != nil {
				return err
			}

			if res.AlreadyClosed {
				fmt.Fprintf(cmd.OutOrStdout(), "vote %s was already closed\n", voteID)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "vote %s closed\n", voteID)

			return nil
		},
	}
}

func voteStatusCmd() *cobra.Command {
	var as string

	cmd := &cobra.Command{
		Use:   "status <expenseID>",
		Short: "Show who claimed which item",
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

			st, err := svc.votes.Status(cmd.Context(), expenseID, actorID)
			if err != nil {
				return err
			}

			renderVoteStatus(cmd.OutOrStdout(), st, formatter())

			return nil
		},
	}

	cmd.Flags().StringVar(&as, "as", "", "user id to act as (must be a group member)")
	_ = cmd.MarkFlagRequired("as")

	return cmd
}

// parseIDs parses a positional resource id and the --as actor id.
func parseIDs(id, actor string) (uuid.UUID, uuid.UUID, error) {
	resourceID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid id %q: %w", id, err)
	}

	actorID, err := uuid.Parse(actor)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid --as user id: %w", err)
	}

	return resourceID, actorID, nil
}
