package splitsheet_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/settle/internal/allocation"
	"github.com/MrJamesThe3rd/settle/internal/apperr"
	"github.com/MrJamesThe3rd/settle/internal/encoding"
	"github.com/MrJamesThe3rd/settle/internal/settlement"
	"github.com/MrJamesThe3rd/settle/internal/splitsheet"
)

var (
	alice = uuid.MustParse("8d6b1c55-7b8e-4a55-9f57-0f6f2f7c8a01")
	bob   = uuid.MustParse("2f3d8a9e-1c4b-4f7a-8e2d-5b6c7d8e9f02")
)

// utf16le encodes ASCII text the way Excel's "Unicode text" export does.
func utf16le(s string) []byte {
	out := []byte{0xFF, 0xFE}
	for i := 0; i < len(s); i++ {
		out = append(out, s[i], 0x00)
	}

	return out
}

func TestParser_Parse(t *testing.T) {
	type testCase struct {
		name        string
		scale       int
		input       []byte
		wantKind    splitsheet.Kind
		wantDirect  []allocation.DirectEntry
		wantPercent []string
		wantCharset string
		wantErr     string
	}

	tests := []testCase{
		{
			name:        "SemicolonDecimalComma",
			scale:       2,
			input:       []byte("user_id;amount\n" + alice.String() + ";12,50\n" + bob.String() + ";1.234,56\n"),
			wantKind:    splitsheet.KindAmount,
			wantDirect:  []allocation.DirectEntry{{UserID: alice, Amount: 1250}, {UserID: bob, Amount: 123456}},
			wantCharset: encoding.CharsetUTF8,
		},
		{
			name:       "CommaWithQuotedThousands",
			scale:      2,
			input:      []byte("User,Owed\n" + alice.String() + ",\"1,000.00\"\n" + bob.String() + ",5\n"),
			wantKind:   splitsheet.KindAmount,
			wantDirect: []allocation.DirectEntry{{UserID: alice, Amount: 100000}, {UserID: bob, Amount: 500}},
		},
		{
			name:        "PercentWithSign",
			scale:       2,
			input:       []byte("participant_id,percentage\n" + alice.String() + ",33.34%\n" + bob.String() + ",66.66\n"),
			wantKind:    splitsheet.KindPercent,
			wantPercent: []string{"33.34", "66.66"},
		},
		{
			name:       "TitleRowsAndBlankLines",
			scale:      2,
			input:      []byte("Dinner at Luigi's\n\nuser_id;amount\n" + alice.String() + ";10\n;\n" + bob.String() + ";20\n"),
			wantKind:   splitsheet.KindAmount,
			wantDirect: []allocation.DirectEntry{{UserID: alice, Amount: 1000}, {UserID: bob, Amount: 2000}},
		},
		{
			name:        "UTF16Tabbed",
			scale:       2,
			input:       utf16le("user_id\tamount\r\n" + alice.String() + "\t7.25\r\n"),
			wantKind:    splitsheet.KindAmount,
			wantDirect:  []allocation.DirectEntry{{UserID: alice, Amount: 725}},
			wantCharset: encoding.CharsetUTF16LE,
		},
		{
			name:        "UTF8BOM",
			scale:       0,
			input:       append([]byte{0xEF, 0xBB, 0xBF}, "user_id,amount\n"+alice.String()+",3333\n"...),
			wantKind:    splitsheet.KindAmount,
			wantDirect:  []allocation.DirectEntry{{UserID: alice, Amount: 3333}},
			wantCharset: encoding.CharsetUTF8,
		},
		{
			name:    "TooManyDecimals",
			scale:   2,
			input:   []byte("user_id,amount\n" + alice.String() + ",12.345\n"),
			wantErr: "row 2",
		},
		{
			name:    "AmountOutOfRange",
			scale:   2,
			input:   []byte("user_id,amount\n" + alice.String() + ",100000000000000000000\n"),
			wantErr: "row 2: amount \"100000000000000000000\" is out of range",
		},
		{
			name:    "FractionWithZeroScale",
			scale:   0,
			input:   []byte("user_id,amount\n" + alice.String() + ",3.5\n"),
			wantErr: "decimal places",
		},
		{
			name:    "BadUserID",
			scale:   2,
			input:   []byte("user_id,amount\n" + alice.String() + ",1\nbob,2\n"),
			wantErr: "row 3: invalid user id",
		},
		{
			name:    "BadPercent",
			scale:   2,
			input:   []byte("user_id,percent\n" + alice.String() + ",half\n"),
			wantErr: "invalid percentage",
		},
		{
			name:    "UnknownHeader",
			scale:   2,
			input:   []byte("name,total\nalice,10\n"),
			wantErr: "no recognised header",
		},
		{
			name:    "HeaderOnly",
			scale:   2,
			input:   []byte("user_id;amount\n"),
			wantErr: "no entries",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet, err := splitsheet.NewParser(tt.scale).Parse(bytes.NewReader(tt.input))

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperr.ErrValidation)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, sheet.Kind)

			if tt.wantCharset != "" {
				assert.Equal(t, tt.wantCharset, sheet.Charset)
			}

			if tt.wantKind == splitsheet.KindAmount {
				assert.Equal(t, tt.wantDirect, sheet.Direct)
				assert.Empty(t, sheet.Percent)

				return
			}

			require.Len(t, sheet.Percent, len(tt.wantPercent))

			for i, want := range tt.wantPercent {
				assert.True(t, decimal.RequireFromString(want).Equal(sheet.Percent[i].Ratio),
					"entry %d: got %s", i, sheet.Percent[i].Ratio)
			}
		})
	}
}

func TestParser_RowLimit(t *testing.T) {
	var b strings.Builder

	b.WriteString("user_id,amount\n")

	for range splitsheet.MaxRows + 1 {
		b.WriteString(uuid.NewString() + ",1\n")
	}

	_, err := splitsheet.NewParser(2).Parse(strings.NewReader(b.String()))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestSheet_Strategy(t *testing.T) {
	direct := &splitsheet.Sheet{
		Kind:   splitsheet.KindAmount,
		Direct: []allocation.DirectEntry{{UserID: alice, Amount: 100}},
	}
	assert.Equal(t, settlement.Direct{Entries: direct.Direct}, direct.Strategy())

	percent := &splitsheet.Sheet{
		Kind:    splitsheet.KindPercent,
		Percent: []allocation.PercentEntry{{UserID: bob, Ratio: decimal.NewFromInt(100)}},
	}
	assert.Equal(t, settlement.Percent{Entries: percent.Percent}, percent.Strategy())
}
