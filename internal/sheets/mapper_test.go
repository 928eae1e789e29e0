package sheets

import (
	"testing"
	"time"
)

func TestCoerceNumber_LocaleVariants(t *testing.T) {
	cases := []struct {
		name string
		in   Cell
		want float64
	}{
		{"french grouping", TextCell("1 234,56"), 1234.56},
		{"nbsp grouping", TextCell("1 234,56"), 1234.56},
		{"dot decimal", TextCell("1234.56"), 1234.56},
		{"native number", NumberCell(1234.56), 1234.56},
		{"comma only", TextCell("12,5"), 12.5},
		{"empty text", TextCell(""), 0},
		{"absent", Cell{}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := CoerceNumber(tc.in)
			if r.Value != tc.want {
				t.Errorf("CoerceNumber = %v, want %v", r.Value, tc.want)
			}
			if r.Defaulted {
				t.Error("Defaulted should be false for parsable or empty input")
			}
		})
	}
}

func TestCoerceNumber_ParseFailureIsFlagged(t *testing.T) {
	r := CoerceNumber(TextCell("n/a"))
	if r.Value != 0 || !r.Defaulted {
		t.Fatalf("got value=%v defaulted=%v, want 0/true", r.Value, r.Defaulted)
	}
}

func TestCoerceNumberNullable(t *testing.T) {
	if r := CoerceNumberNullable(TextCell("")); r.Value != nil || r.Defaulted {
		t.Errorf("empty: got %+v, want nil value", r)
	}
	if r := CoerceNumberNullable(Cell{}); r.Value != nil {
		t.Errorf("absent: got %+v, want nil value", r)
	}
	if r := CoerceNumberNullable(NumberCell(0)); r.Value == nil || *r.Value != 0 {
		t.Errorf("explicit zero: got %+v, want pointer to 0", r)
	}
	if r := CoerceNumberNullable(TextCell("douze")); r.Value != nil || !r.Defaulted {
		t.Errorf("unparsable: got %+v, want nil/defaulted", r)
	}
}

func TestCoerceDate_SerialRoundTrip(t *testing.T) {
	cases := []struct {
		serial float64
		want   time.Time
	}{
		{25569, time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)},
		{44927, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
		{45356, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		if got := DateFromSerial(tc.serial); !got.Equal(tc.want) {
			t.Errorf("DateFromSerial(%v) = %v, want %v", tc.serial, got, tc.want)
		}
		r := CoerceDate(NumberCell(tc.serial))
		if r.Value == nil || !r.Value.Equal(tc.want) {
			t.Errorf("CoerceDate(serial %v) = %v, want %v", tc.serial, r.Value, tc.want)
		}
	}
}

func TestCoerceDate_TextEncodings(t *testing.T) {
	want := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"05/03/2024", "2024-03-05"} {
		r := CoerceDate(TextCell(in))
		if r.Value == nil {
			t.Fatalf("CoerceDate(%q) = nil", in)
		}
		if !r.Value.Equal(want) {
			t.Errorf("CoerceDate(%q) = %v, want %v", in, r.Value, want)
		}
	}
}

func TestCoerceDate_Unparsable(t *testing.T) {
	r := CoerceDate(TextCell("demain"))
	if r.Value != nil || !r.Defaulted {
		t.Fatalf("got %+v, want nil/defaulted", r)
	}
	if r := CoerceDate(TextCell("")); r.Value != nil || r.Defaulted {
		t.Fatalf("empty date: got %+v, want nil/not defaulted", r)
	}
}

func TestCoerceTextNullable(t *testing.T) {
	if got := CoerceTextNullable(TextCell("J-164")); got == nil || *got != "J-164" {
		t.Errorf("got %v", got)
	}
	if got := CoerceTextNullable(TextCell("   ")); got != nil {
		t.Errorf("blank should be nil, got %q", *got)
	}
	if got := CoerceTextNullable(Cell{}); got != nil {
		t.Errorf("absent should be nil, got %q", *got)
	}
}

func testIndex() HeaderIndex {
	header := make([]Cell, len(ExpensesSchema))
	for i, f := range ExpensesSchema {
		header[i] = TextCell(f.Label)
	}
	return ResolveHeader(header, ExpensesSchema)
}

func TestMapExpenses_MalformedCellDoesNotAbortBatch(t *testing.T) {
	ix := testIndex()
	amountCol, _ := ix.Column(FieldAmountTTC)
	labelCol, _ := ix.Column(FieldLabel)

	row := func(label string, amount Cell) []Cell {
		cells := make([]Cell, len(ExpensesSchema))
		cells[labelCol] = TextCell(label)
		cells[amountCol] = amount
		return cells
	}
	body := [][]Cell{
		row("Parking aéroport", NumberCell(12)),
		row("Essence", TextCell("45,20")),
		row("Repas équipe", TextCell("n/a")), // malformed amount
		row("Carte SD", NumberCell(89.9)),
		row("Drone part", TextCell("1 250,00")),
	}

	rows, issues := MapExpenses(body, ix)
	if len(rows) != 5 {
		t.Fatalf("mapped %d rows, want 5", len(rows))
	}
	wantAmounts := []float64{12, 45.2, 0, 89.9, 1250}
	for i, want := range wantAmounts {
		if rows[i].AmountTTC != want {
			t.Errorf("row %d amount = %v, want %v", i, rows[i].AmountTTC, want)
		}
	}
	if len(issues) != 1 {
		t.Fatalf("issues = %+v, want exactly one", issues)
	}
	if issues[0].Row != 2 || issues[0].Field != FieldAmountTTC || issues[0].Raw != "n/a" {
		t.Errorf("issue = %+v", issues[0])
	}
}

func TestMapExpenses_OrderPreservedAndShortRows(t *testing.T) {
	ix := testIndex()
	labelCol, _ := ix.Column(FieldLabel)

	// Rows shorter than the column span (trailing cells omitted by the
	// API) must map with defaults, not panic.
	body := [][]Cell{
		{TextCell("premier")},
		make([]Cell, labelCol), // row entirely before the label column
		{TextCell("troisième")},
	}
	rows, _ := MapExpenses(body, ix)
	if len(rows) != 3 {
		t.Fatalf("mapped %d rows", len(rows))
	}
	if rows[0].Label != "premier" || rows[1].Label != "" || rows[2].Label != "troisième" {
		t.Errorf("order or defaults wrong: %q %q %q", rows[0].Label, rows[1].Label, rows[2].Label)
	}
}

func TestMapExpenses_FullRow(t *testing.T) {
	ix := testIndex()
	cells := make([]Cell, len(ExpensesSchema))
	set := func(key string, c Cell) {
		col, ok := ix.Column(key)
		if !ok {
			t.Fatalf("field %s unresolved", key)
		}
		cells[col] = c
	}
	set(FieldLabel, TextCell("  Adobe Creative Cloud  "))
	set(FieldAmountTTC, NumberCell(59.99))
	set(FieldPaymentDate, NumberCell(45356))
	set(FieldInvoice, TextCell("FAC-2024-031"))
	set(FieldCategory, TextCell("⚙️ Software"))
	set(FieldType, TextCell("🔁 Abonnement"))
	set(FieldDuration, NumberCell(12))
	set(FieldDeadline, TextCell("05/03/2025"))
	set(FieldDaysLeft, TextCell("J-164"))
	set(FieldAnnualEstimate, TextCell("719,88"))
	set(FieldURL, TextCell("https://adobe.com"))
	set(FieldMonthlyCost, NumberCell(59.99))
	set(FieldCumulative, TextCell("1 439,76"))
	set(FieldID, TextCell("dep-042"))

	rows, issues := MapExpenses([][]Cell{cells}, ix)
	if len(issues) != 0 {
		t.Fatalf("unexpected issues: %+v", issues)
	}
	r := rows[0]
	if r.Label != "Adobe Creative Cloud" {
		t.Errorf("Label = %q", r.Label)
	}
	if r.PaymentDate == nil || !r.PaymentDate.Equal(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("PaymentDate = %v", r.PaymentDate)
	}
	if r.Duration == nil || *r.Duration != 12 {
		t.Errorf("Duration = %v", r.Duration)
	}
	if r.DaysLeft == nil || *r.DaysLeft != "J-164" {
		t.Errorf("DaysLeft = %v", r.DaysLeft)
	}
	if r.AnnualEstimate != 719.88 || r.Cumulative != 1439.76 {
		t.Errorf("amounts: %v %v", r.AnnualEstimate, r.Cumulative)
	}
}
