package tui

import (
	"reflect"
	"testing"

	"github.com/charmbracelet/bubbles/table"
)

func TestBuildColumnsBasic(t *testing.T) {
	cols := buildColumns(summaryColumns, 100)

	if len(cols) != len(summaryColumns) {
		t.Fatalf("expected %d columns, got %d", len(summaryColumns), len(cols))
	}
	for i, col := range cols {
		if col.Title != summaryColumns[i].title {
			t.Errorf("column %d: expected title %q, got %q", i, summaryColumns[i].title, col.Title)
		}
	}

	totalW := 0
	for _, col := range cols {
		totalW += col.Width
	}
	if totalW > 100 {
		t.Errorf("expected total width <= 100, got %d", totalW)
	}
}

func TestBuildColumnsFlexDistribution(t *testing.T) {
	cols := buildColumns(summaryColumns, 100)

	layerCol := findCol(cols, "Layer")
	keysCol := findCol(cols, "Keys")
	if layerCol == nil || keysCol == nil {
		t.Fatal("expected to find Layer and Keys columns")
	}

	// Layer (flex) absorbs the remaining width
	if layerCol.Width <= keysCol.Width {
		t.Errorf("expected layer width (%d) > keys width (%d)", layerCol.Width, keysCol.Width)
	}
}

func TestBuildColumnsEmpty(t *testing.T) {
	cols := buildColumns(nil, 80)
	if len(cols) != 0 {
		t.Errorf("expected 0 columns, got %d", len(cols))
	}
}

func TestBuildColumnsNarrowWidth(t *testing.T) {
	cols := buildColumns(summaryColumns, 20)

	for i, col := range cols {
		if col.Width < summaryColumns[i].minWidth {
			t.Errorf("column %q narrower than its minimum: %d", col.Title, col.Width)
		}
	}
}

func TestSummaryRows(t *testing.T) {
	rows := summaryRows(testTabs())
	want := []table.Row{
		{"1", "BASE", "7", "1", "1", "1", "1"},
		{"2", "LOWER", "4", "0", "0", "1", "0"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("summaryRows() = %v, want %v", rows, want)
	}
}

// findCol finds a column by title in a slice.
func findCol(cols []table.Column, title string) *table.Column {
	for i := range cols {
		if cols[i].Title == title {
			return &cols[i]
		}
	}
	return nil
}
