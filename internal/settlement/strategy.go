package settlement

import (
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/settle/internal/allocation"
)

// Strategy selects how an expense is split. It is one of Equal, Direct,
// Percent or ByItem; each carries only the input its method needs.
type Strategy interface {
	Method() Method
	isStrategy()
}

// Equal splits the expense amount evenly. With no ids the expense
// participants are used.
type Equal struct {
	ParticipantIDs []uuid.UUID
}

// Direct assigns explicit amounts that must add up to the expense amount.
type Direct struct {
	Entries []allocation.DirectEntry
}

// Percent assigns ratios that must add up to 100.
type Percent struct {
	Entries []allocation.PercentEntry
}

// ByItem uses the claims of the expense's closed vote.
type ByItem struct{}

func (Equal) Method() Method   { return MethodEqual }
func (Direct) Method() Method  { return MethodDirect }
func (Percent) Method() Method { return MethodPercent }
func (ByItem) Method() Method  { return MethodItem }

func (Equal) isStrategy()   {}
func (Direct) isStrategy()  {}
func (Percent) isStrategy() {}
func (ByItem) isStrategy()  {}
