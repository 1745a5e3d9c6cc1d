package splitsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/settle/internal/allocation"
	"github.com/MrJamesThe3rd/settle/internal/apperr"
	enc "github.com/MrJamesThe3rd/settle/internal/encoding"
)

// MaxRows bounds an upload; a group split never needs more.
const MaxRows = 1000

// Parser reads sheets whose amounts use the given number of minor-unit digits.
type Parser struct {
	scale int
}

func NewParser(scale int) *Parser {
	return &Parser{scale: scale}
}

// Parse detects the encoding, delimiter and header profile, then reads one
// entry per non-blank row. Malformed input is a validation error naming the
// row.
func (p *Parser) Parse(r io.Reader) (*Sheet, error) {
	utf8r, charset, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read sheet: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = detectDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, apperr.Validation("malformed csv: %v", err)
	}

	profile, userIdx, valueIdx, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, apperr.Validation("no recognised header: expected a user_id column and an amount or percent column")
	}

	sheet := &Sheet{Kind: profile.Kind, Charset: charset}

	for i, row := range rows[headerIdx+1:] {
		rowNum := headerIdx + i + 2 // 1-based, after the header

		user := cellValue(row, userIdx)
		value := cellValue(row, valueIdx)

		if user == "" && value == "" {
			continue
		}

		if sheet.Len() >= MaxRows {
			return nil, apperr.Validation("sheet has more than %d rows", MaxRows)
		}

		userID, err := uuid.Parse(user)
		if err != nil {
			return nil, apperr.Validation("row %d: invalid user id %q", rowNum, user)
		}

		switch profile.Kind {
		case KindPercent:
			ratio, err := parsePercent(value)
			if err != nil {
				return nil, apperr.Validation("row %d: %v", rowNum, err)
			}

			sheet.Percent = append(sheet.Percent, allocation.PercentEntry{UserID: userID, Ratio: ratio})
		case KindAmount:
			amount, err := parseAmount(value, p.scale)
			if err != nil {
				return nil, apperr.Validation("row %d: %v", rowNum, err)
			}

			sheet.Direct = append(sheet.Direct, allocation.DirectEntry{UserID: userID, Amount: amount})
		}
	}

	if sheet.Len() == 0 {
		return nil, apperr.Validation("sheet has no entries")
	}

	return sheet, nil
}

// detectDelimiter picks the most frequent of ';', ',' and tab on the first
// line that has any of them, so title rows above the header are skipped.
// Spreadsheets in decimal-comma locales export with ';'.
func detectDelimiter(data []byte) rune {
	candidates := []rune{';', ',', '\t'}

	for line := range bytes.Lines(data) {
		best, bestCount := ',', 0

		for _, d := range candidates {
			if n := bytes.Count(line, []byte(string(d))); n > bestCount {
				best, bestCount = d, n
			}
		}

		if bestCount > 0 {
			return best
		}
	}

	return ','
}

// detectProfile scans rows for a header matching a known profile and returns
// it with the user and value column indexes and the header row index.
func detectProfile(rows [][]string) (*Profile, int, int, int) {
	for rowIdx, row := range rows {
		cols := make(map[string]int)

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			userIdx, ok := firstColumn(cols, profiles[i].UserCols)
			if !ok {
				continue
			}

			valueIdx, ok := firstColumn(cols, profiles[i].ValueCols)
			if !ok {
				continue
			}

			return &profiles[i], userIdx, valueIdx, rowIdx
		}
	}

	return nil, 0, 0, 0
}

func firstColumn(cols map[string]int, names []string) (int, bool) {
	for _, n := range names {
		if idx, ok := cols[n]; ok {
			return idx, true
		}
	}

	return 0, false
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
