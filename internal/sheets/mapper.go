package sheets

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"eclor/internal/core"
)

// serialEpochOffset is the Lotus/Excel serial of 1970-01-01. Reproducing
// it exactly is what keeps date round-trips aligned with the sheet's own
// rendering.
const serialEpochOffset = 25569

// CoercionResult carries a coerced value plus whether the kind's default
// was substituted for a present-but-unparsable cell. A genuinely empty
// cell yields the same default with Defaulted false, so operators can
// tell "field blank" from "field failed to parse".
type CoercionResult[T any] struct {
	Value     T
	Defaulted bool
}

// CellIssue records one cell whose value failed coercion and degraded to
// its field default. Issues are diagnostics, never errors: one malformed
// cell must not blank a row, let alone the batch.
type CellIssue struct {
	Row   int    // zero-based data row index
	Field string // field key
	Raw   string // raw cell text for the log line
}

// CoerceText stringifies and trims; absent cells become "".
func CoerceText(c Cell) string {
	return strings.TrimSpace(c.String())
}

// CoerceTextNullable is CoerceText with nil for blank cells.
func CoerceTextNullable(c Cell) *string {
	s := CoerceText(c)
	if s == "" {
		return nil
	}
	return &s
}

// CoerceNumber parses a numeric cell, accepting comma decimal separators
// and thousands-separating whitespace (NBSP included). Absent cells and
// parse failures both yield 0; only the latter sets Defaulted.
func CoerceNumber(c Cell) CoercionResult[float64] {
	switch c.Kind {
	case Number:
		if math.IsNaN(c.Num) || math.IsInf(c.Num, 0) {
			return CoercionResult[float64]{Defaulted: true}
		}
		return CoercionResult[float64]{Value: c.Num}
	case Text:
		if strings.TrimSpace(c.Text) == "" {
			return CoercionResult[float64]{}
		}
		n, err := parseNumber(c.Text)
		if err != nil {
			return CoercionResult[float64]{Defaulted: true}
		}
		return CoercionResult[float64]{Value: n}
	default:
		return CoercionResult[float64]{}
	}
}

// CoerceNumberNullable is CoerceNumber with nil instead of 0 for absent
// or empty cells, distinguishing "not applicable" from "value is zero".
func CoerceNumberNullable(c Cell) CoercionResult[*float64] {
	if c.IsEmpty() {
		return CoercionResult[*float64]{}
	}
	r := CoerceNumber(c)
	if r.Defaulted {
		return CoercionResult[*float64]{Defaulted: true}
	}
	v := r.Value
	return CoercionResult[*float64]{Value: &v}
}

// CoerceDate accepts the three raw date encodings the sheet produces: a
// serial day count, a DD/MM/YYYY literal, or an ISO YYYY-MM-DD literal.
// Anything else yields nil, never an error.
func CoerceDate(c Cell) CoercionResult[*time.Time] {
	switch c.Kind {
	case Number:
		if math.IsNaN(c.Num) || math.IsInf(c.Num, 0) {
			return CoercionResult[*time.Time]{Defaulted: true}
		}
		t := DateFromSerial(c.Num)
		return CoercionResult[*time.Time]{Value: &t}
	case Text:
		s := strings.TrimSpace(c.Text)
		if s == "" {
			return CoercionResult[*time.Time]{}
		}
		for _, layout := range []string{"02/01/2006", "2006-01-02"} {
			if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
				return CoercionResult[*time.Time]{Value: &t}
			}
		}
		// A retyped serial arrives as text.
		if n, err := parseNumber(s); err == nil {
			t := DateFromSerial(n)
			return CoercionResult[*time.Time]{Value: &t}
		}
		return CoercionResult[*time.Time]{Defaulted: true}
	default:
		return CoercionResult[*time.Time]{}
	}
}

// DateFromSerial converts a spreadsheet day-count serial to a UTC time.
// Fractional serials carry a time-of-day component.
func DateFromSerial(serial float64) time.Time {
	secs := math.Round((serial - serialEpochOffset) * 86400)
	return time.Unix(int64(secs), 0).UTC()
}

// parseNumber handles the locale variants seen in manually entered
// cells: "1 234,56", "1234.56", NBSP thousands separators.
func parseNumber(s string) (float64, error) {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	s = strings.ReplaceAll(s, ",", ".")
	return strconv.ParseFloat(s, 64)
}

// MapExpenses converts the data rows of a fetched grid into typed rows
// using the resolved header index. Row order is preserved; no filtering
// or sorting happens here. A malformed cell degrades that field to its
// default and is reported as a CellIssue; mapping itself cannot fail.
func MapExpenses(body [][]Cell, ix HeaderIndex) ([]core.Expense, []CellIssue) {
	rows := make([]core.Expense, 0, len(body))
	var issues []CellIssue
	for i, raw := range body {
		row, rowIssues := mapExpense(i, raw, ix)
		rows = append(rows, row)
		issues = append(issues, rowIssues...)
	}
	return rows, issues
}

func mapExpense(rowIdx int, raw []Cell, ix HeaderIndex) (core.Expense, []CellIssue) {
	var issues []CellIssue

	cellAt := func(key string) Cell {
		col, ok := ix.Column(key)
		if !ok || col >= len(raw) {
			return Cell{}
		}
		return raw[col]
	}
	note := func(key string, c Cell, defaulted bool) {
		if defaulted {
			issues = append(issues, CellIssue{Row: rowIdx, Field: key, Raw: c.String()})
		}
	}
	num := func(key string) float64 {
		c := cellAt(key)
		r := CoerceNumber(c)
		note(key, c, r.Defaulted)
		return r.Value
	}
	numPtr := func(key string) *float64 {
		c := cellAt(key)
		r := CoerceNumberNullable(c)
		note(key, c, r.Defaulted)
		return r.Value
	}
	date := func(key string) *time.Time {
		c := cellAt(key)
		r := CoerceDate(c)
		note(key, c, r.Defaulted)
		return r.Value
	}

	row := core.Expense{
		Label:          CoerceText(cellAt(FieldLabel)),
		AmountTTC:      num(FieldAmountTTC),
		PaymentDate:    date(FieldPaymentDate),
		Invoice:        CoerceText(cellAt(FieldInvoice)),
		Category:       CoerceText(cellAt(FieldCategory)),
		Type:           CoerceText(cellAt(FieldType)),
		Duration:       numPtr(FieldDuration),
		Deadline:       date(FieldDeadline),
		DaysLeft:       CoerceTextNullable(cellAt(FieldDaysLeft)),
		AnnualEstimate: num(FieldAnnualEstimate),
		URL:            CoerceText(cellAt(FieldURL)),
		MonthlyCost:    num(FieldMonthlyCost),
		Cumulative:     num(FieldCumulative),
		ID:             CoerceText(cellAt(FieldID)),
	}
	return row, issues
}
