package settlement

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/settle/internal/allocation"
	"github.com/MrJamesThe3rd/settle/internal/vote"
)

// netItemShares turns vote claims into one share per non-payer debtor.
// Each option's price is floor-divided among its voters; options nobody
// claimed are skipped and the payer absorbs them. Debtors are ordered by
// their first claim.
func netItemShares(v *vote.Vote, payer uuid.UUID) []allocation.Share {
	totals := make(map[uuid.UUID]int64)

	var order []uuid.UUID

	for _, opt := range v.Options {
		if len(opt.VoterIDs) == 0 {
			slog.Debug("option has no voters", "option_id", opt.ID, "item", opt.ItemName, "price", opt.Price)
			continue
		}

		each := opt.Price / int64(len(opt.VoterIDs))

		for _, voter := range opt.VoterIDs {
			if voter == payer {
				continue
			}

			if _, seen := totals[voter]; !seen {
				order = append(order, voter)
			}

			totals[voter] += each
		}
	}

	shares := make([]allocation.Share, len(order))
	for i, debtor := range order {
		shares[i] = allocation.Share{Debtor: debtor, Amount: totals[debtor]}
	}

	return shares
}
