package analyzer

import (
	"reflect"
	"testing"

	"agencydash/domain/analysis"
	"agencydash/domain/catalog"
)

func TestSuggestFiltersTypesAndCaps(t *testing.T) {
	rows := []analysis.Row{
		{"סטטוס": "פעיל", "סכום": "100", "תאריך": "2024-01-01", "עיר לקוח": "חיפה"},
		{"סטטוס": "מבוטל", "סכום": "200", "תאריך": "2024-02-01", "עיר לקוח": "תל אביב"},
	}
	cols := []analysis.ColumnClassification{
		{Name: "סטטוס", PrimaryCategory: "processes", DataType: analysis.TypeText, UniqueCount: 2},
		{Name: "סכום", PrimaryCategory: "financial", DataType: analysis.TypeNumber, UniqueCount: 2},
		{Name: "תאריך", PrimaryCategory: "dates", DataType: analysis.TypeDate, UniqueCount: 2},
		{Name: "עיר לקוח", PrimaryCategory: "clients", DataType: analysis.TypeText, UniqueCount: 2},
		{Name: "מזהה", PrimaryCategory: "identifiers", DataType: analysis.TypeText, UniqueCount: 2, IsKey: true},
		{Name: "חופשי", DataType: analysis.TypeText, UniqueCount: 2},
	}

	filters := SuggestFilters(cols, rows)

	for _, f := range filters {
		if f.Column == "מזהה" {
			t.Error("key columns must never be suggested")
		}
		if f.Column == "חופשי" {
			t.Error("columns without a primary category must never be suggested")
		}
	}

	// processes ranks first in the preference order
	if filters[0].Column != "סטטוס" {
		t.Errorf("expected סטטוס first, got %s", filters[0].Column)
	}
	if filters[0].Type != analysis.FilterDropdown {
		t.Errorf("expected dropdown for low-cardinality text, got %s", filters[0].Type)
	}
	if !reflect.DeepEqual(filters[0].Options, []string{"מבוטל", "פעיל"}) {
		t.Errorf("dropdown options must be sorted, got %v", filters[0].Options)
	}

	byColumn := make(map[string]analysis.FilterSuggestion)
	for _, f := range filters {
		byColumn[f.Column] = f
	}
	if byColumn["סכום"].Type != analysis.FilterNumberRange {
		t.Errorf("expected number-range for numeric column")
	}
	if byColumn["תאריך"].Type != analysis.FilterDateRange {
		t.Errorf("expected date-range for date column")
	}
}

func TestSuggestFiltersCapAtFive(t *testing.T) {
	var cols []analysis.ColumnClassification
	for _, name := range []string{"סטטוס", "שלב", "מצב", "תהליך ראשי", "סטטוס משני", "שלב טיפול", "מצב הפקה"} {
		cols = append(cols, analysis.ColumnClassification{
			Name: name, PrimaryCategory: "processes", DataType: analysis.TypeText, UniqueCount: 30,
		})
	}
	filters := SuggestFilters(cols, nil)
	if len(filters) != 5 {
		t.Errorf("expected 5 filters, got %d", len(filters))
	}
	for _, f := range filters {
		if f.Type != analysis.FilterSearch {
			t.Errorf("expected search filter for high-cardinality text, got %s", f.Type)
		}
	}
}

func TestSuggestCardsAlwaysFour(t *testing.T) {
	for _, n := range []int{0, 1, 2, 6} {
		analyses := make([]analysis.CategoryAnalysis, 0, n)
		catIDs := []string{"manufacturers", "financial", "processes", "agents", "clients", "products"}
		for i := 0; i < n; i++ {
			cat, _ := catalog.CategoryByID(catIDs[i])
			analyses = append(analyses, analysis.CategoryAnalysis{
				CategoryID: cat.ID,
				Metrics:    []analysis.MetricValue{{ID: cat.Metrics[0].ID, Name: cat.Metrics[0].Name, Value: 7, Formatted: "7"}},
			})
		}

		cards := SuggestCards(analyses, 42)
		if len(cards) != 4 {
			t.Fatalf("with %d analyses: expected exactly 4 cards, got %d", n, len(cards))
		}
		for i := n; i < 4 && i < len(cards); i++ {
			if cards[i].CategoryID != "identifiers" {
				t.Errorf("padding card must use identifiers, got %s", cards[i].CategoryID)
			}
			if cards[i].Value != 42 {
				t.Errorf("padding card must carry the row count, got %f", cards[i].Value)
			}
		}
	}
}

func TestSuggestChartsEnumSelection(t *testing.T) {
	rows := []analysis.Row{
		{"סטטוס": "פעיל", "הערה": "x1"},
		{"סטטוס": "פעיל", "הערה": "x2"},
		{"סטטוס": "מבוטל", "הערה": "x3"},
		{"סטטוס": "", "הערה": "x4"},
	}
	analyses := []analysis.CategoryAnalysis{
		{
			CategoryID: "processes",
			Columns: []analysis.ColumnClassification{
				// single-valued and high-cardinality columns never qualify
				{Name: "קבוע", DataType: analysis.TypeText, UniqueCount: 1},
				{Name: "הערה", DataType: analysis.TypeText, UniqueCount: 40},
				{Name: "סטטוס", DataType: analysis.TypeText, UniqueCount: 2},
			},
		},
	}

	charts := SuggestCharts(analyses, rows)
	if len(charts) != 1 {
		t.Fatalf("expected 1 chart, got %d", len(charts))
	}
	c := charts[0]
	if c.Column != "סטטוס" {
		t.Errorf("expected the enum-like column, got %s", c.Column)
	}
	if c.ChartType != catalog.ChartFunnel {
		t.Errorf("expected the category's preferred chart type, got %s", c.ChartType)
	}

	if c.Data[0].Label != "פעיל" || c.Data[0].Count != 2 {
		t.Errorf("expected פעיל first with count 2, got %+v", c.Data[0])
	}
	if c.Data[0].Color != "#22C55E" {
		t.Errorf("expected positive status color, got %q", c.Data[0].Color)
	}

	foundUnknown := false
	for _, d := range c.Data {
		if d.Label == "unknown" {
			foundUnknown = true
			if d.Count != 1 || d.Color != "" {
				t.Errorf("unexpected unknown slice: %+v", d)
			}
		}
	}
	if !foundUnknown {
		t.Error("empty cells must tally under the unknown placeholder")
	}
}

func TestSuggestChartsCaps(t *testing.T) {
	rows := make([]analysis.Row, 0, 30)
	for i := 0; i < 30; i++ {
		rows = append(rows, analysis.Row{"סטטוס": string(rune('a' + i%15))})
	}

	var analyses []analysis.CategoryAnalysis
	for _, id := range []string{"processes", "manufacturers", "agents", "products", "clients", "dates"} {
		analyses = append(analyses, analysis.CategoryAnalysis{
			CategoryID: id,
			Columns: []analysis.ColumnClassification{
				{Name: "סטטוס", DataType: analysis.TypeText, UniqueCount: 15},
			},
		})
	}

	charts := SuggestCharts(analyses, rows)
	if len(charts) != 4 {
		t.Errorf("expected chart cap of 4, got %d", len(charts))
	}

	// top-10 slice cap
	if len(charts[0].Data) != 10 {
		t.Errorf("expected 10 slices, got %d", len(charts[0].Data))
	}

	// a chart-less category among the first four produces nothing in its place
	analyses[1].Columns = []analysis.ColumnClassification{
		{Name: "סכום", DataType: analysis.TypeNumber, UniqueCount: 15},
	}
	charts = SuggestCharts(analyses, rows)
	if len(charts) != 3 {
		t.Errorf("expected 3 charts when one of the first four lacks an enum column, got %d", len(charts))
	}
}
