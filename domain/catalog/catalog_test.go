package catalog

import (
	"strings"
	"testing"
)

func TestCatalogIntegrity(t *testing.T) {
	if len(Categories()) == 0 {
		t.Fatal("category catalog is empty")
	}
	seen := make(map[string]bool)
	for _, c := range Categories() {
		if c.ID == "" || c.Name == "" {
			t.Errorf("category %q missing id or name", c.ID)
		}
		if seen[c.ID] {
			t.Errorf("duplicate category id %q", c.ID)
		}
		seen[c.ID] = true
		if len(c.Patterns) == 0 {
			t.Errorf("category %q has no patterns", c.ID)
		}
		if len(c.Metrics) == 0 {
			t.Errorf("category %q has no metrics", c.ID)
		}
		for _, p := range c.Patterns {
			if p != strings.ToLower(p) {
				t.Errorf("category %q pattern %q is not lower-case", c.ID, p)
			}
		}
	}
}

func TestCategoryByID(t *testing.T) {
	c, ok := CategoryByID("financial")
	if !ok {
		t.Fatal("financial category not found")
	}
	if c.ChartType != ChartBar {
		t.Errorf("expected bar chart for financial, got %s", c.ChartType)
	}
	if _, ok := CategoryByID("nope"); ok {
		t.Error("unknown id should not resolve")
	}
}

func TestMatchColumnToCategory(t *testing.T) {
	tests := []struct {
		column string
		want   string
	}{
		{"יצרן", "manufacturers"},
		{"שם סוכן", "agents"},
		{"סכום עמלה", "financial"},
		{"תאריך_פתיחה", "dates"},
		// financial is declared before dates, so the first match wins
		{"תאריך_עמלה", "financial"},
		{"something_else", ""},
		{"STATUS", "processes"},
	}
	for _, tt := range tests {
		if got := MatchColumnToCategory(tt.column); got != tt.want {
			t.Errorf("MatchColumnToCategory(%q) = %q, want %q", tt.column, got, tt.want)
		}
	}
}

func TestStatusPatternColor(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"פעיל", "#22C55E"},
		{"שולם חלקית", "#22C55E"},
		{"מבוטל", "#EF4444"},
		{"ממתין לאישור", "#EAB308"},
		{"חדש", "#3B82F6"},
		{"PAID", "#22C55E"},
		{"לא מוכר", ""},
	}
	for _, tt := range tests {
		if got := StatusPatternColor(tt.value); got != tt.want {
			t.Errorf("StatusPatternColor(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestDetectProductType(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"ביטוח חיים", "life"},
		{"ריסק משכנתא", "life"},
		{"קרן פנסיה מקיפה", "pension"},
		{"ביטוח רכב", "elementary"},
		{"ביטוח מנהלים", "managers"},
		{"ביטוח נסיעות לחו\"ל", "travel"},
		{"משהו אחר", ""},
	}
	for _, tt := range tests {
		if got := DetectProductType(tt.value); got != tt.want {
			t.Errorf("DetectProductType(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestGenericTemplate(t *testing.T) {
	g := GenericTemplate()
	if g.ID != "generic" {
		t.Fatalf("expected generic template, got %q", g.ID)
	}
	if len(g.RequiredCategories) != 0 {
		t.Error("generic template must not require categories")
	}

	for _, tpl := range Templates() {
		for _, req := range tpl.RequiredCategories {
			if _, ok := CategoryByID(req); !ok {
				t.Errorf("template %q requires unknown category %q", tpl.ID, req)
			}
		}
	}
}
