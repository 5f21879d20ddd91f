package domain

import (
	"testing"
)

func TestRowFromCells(t *testing.T) {
	t.Run("maps fixed columns", func(t *testing.T) {
		row := RowFromCells([]string{"A", "Alice", "B", "C", "", "D", "", ""})

		if row.Code != "A" || row.Name != "Alice" {
			t.Errorf("unexpected code/name: %q %q", row.Code, row.Name)
		}
		if row.Preferred()[0] != "B" || row.Preferred()[1] != "C" {
			t.Errorf("unexpected preferred: %v", row.Preferred())
		}
		if row.NonPreferred()[0] != "D" {
			t.Errorf("unexpected non-preferred: %v", row.NonPreferred())
		}
	})

	t.Run("pads short rows and trims cells", func(t *testing.T) {
		row := RowFromCells([]string{" A ", " ", "B "})
		if row.Code != "A" {
			t.Errorf("expected trimmed code 'A', got %q", row.Code)
		}
		if row.Name != "" {
			t.Errorf("expected empty name, got %q", row.Name)
		}
		if row.Targets[0] != "B" {
			t.Errorf("expected 'B', got %q", row.Targets[0])
		}
		for i := 1; i < NominationSlots; i++ {
			if row.Targets[i] != "" {
				t.Errorf("expected empty target at %d, got %q", i, row.Targets[i])
			}
		}
	})

	t.Run("ignores extra cells", func(t *testing.T) {
		row := RowFromCells([]string{"A", "", "1", "2", "3", "4", "5", "6", "7"})
		if row.Targets[5] != "6" {
			t.Errorf("expected '6', got %q", row.Targets[5])
		}
		if len(row.Cells()) != RowColumns {
			t.Errorf("expected %d cells, got %d", RowColumns, len(row.Cells()))
		}
	})
}

func TestRowIsBlank(t *testing.T) {
	if !RowFromCells(nil).IsBlank() {
		t.Error("expected empty row to be blank")
	}
	if RowFromCells([]string{"", "", "", "", "", "", "", "X"}).IsBlank() {
		t.Error("expected row with a target to be non-blank")
	}
}
