package sheets

import "testing"

func TestCellFromRaw(t *testing.T) {
	if c := CellFromRaw(nil); c.Kind != Empty {
		t.Errorf("nil -> %+v", c)
	}
	if c := CellFromRaw(""); c.Kind != Empty {
		t.Errorf("empty string -> %+v", c)
	}
	if c := CellFromRaw("Essence"); c.Kind != Text || c.Text != "Essence" {
		t.Errorf("string -> %+v", c)
	}
	if c := CellFromRaw(45.2); c.Kind != Number || c.Num != 45.2 {
		t.Errorf("float -> %+v", c)
	}
	if c := CellFromRaw(true); c.Kind != Text || c.Text != "true" {
		t.Errorf("bool -> %+v", c)
	}
}

func TestGridFromRaw(t *testing.T) {
	grid := GridFromRaw([][]any{
		{"🧾 Libellé", "💶 Montant TTC"},
		{"Essence", 45.2},
		{"", nil},
	})
	if len(grid) != 3 {
		t.Fatalf("rows = %d", len(grid))
	}
	if grid[1][1].Kind != Number || grid[1][1].Num != 45.2 {
		t.Errorf("grid[1][1] = %+v", grid[1][1])
	}
	if !grid[2][0].IsEmpty() || !grid[2][1].IsEmpty() {
		t.Error("blank cells should be empty")
	}
}

func TestCellString_Number(t *testing.T) {
	if got := NumberCell(44927).String(); got != "44927" {
		t.Errorf("serial renders as %q", got)
	}
	if got := NumberCell(45.2).String(); got != "45.2" {
		t.Errorf("decimal renders as %q", got)
	}
}
