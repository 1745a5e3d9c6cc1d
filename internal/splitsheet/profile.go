package splitsheet

// Profile describes one accepted header layout. Header matching is
// case-insensitive and ignores surrounding spaces.
type Profile struct {
	Name      string
	Kind      Kind
	UserCols  []string // Any one of these names the user id column
	ValueCols []string // Any one of these names the value column
}

// profiles are tried in order; the first whose columns are all present wins.
var profiles = []Profile{
	{
		Name:      "percent",
		Kind:      KindPercent,
		UserCols:  []string{"user_id", "user", "participant_id"},
		ValueCols: []string{"percent", "percentage", "ratio", "%"},
	},
	{
		Name:      "amount",
		Kind:      KindAmount,
		UserCols:  []string{"user_id", "user", "participant_id"},
		ValueCols: []string{"amount", "owed", "share", "montant", "valor"},
	},
}
