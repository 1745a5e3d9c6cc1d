// Package splitsheet reads DIRECT and PERCENT split entries from CSV exports
// of a spreadsheet: one row per user, one column of user ids and one column
// of amounts or percentages.
package splitsheet

import (
	"github.com/MrJamesThe3rd/settle/internal/allocation"
	"github.com/MrJamesThe3rd/settle/internal/settlement"
)

type Kind string

const (
	KindAmount  Kind = "amount"
	KindPercent Kind = "percent"
)

// Sheet is a parsed upload. Exactly one of Direct or Percent is filled,
// according to Kind.
type Sheet struct {
	Kind    Kind
	Charset string // Encoding the upload was decoded from
	Direct  []allocation.DirectEntry
	Percent []allocation.PercentEntry
}

func (s *Sheet) Strategy() settlement.Strategy {
	if s.Kind == KindPercent {
		return settlement.Percent{Entries: s.Percent}
	}

	return settlement.Direct{Entries: s.Direct}
}

func (s *Sheet) Len() int {
	if s.Kind == KindPercent {
		return len(s.Percent)
	}

	return len(s.Direct)
}
