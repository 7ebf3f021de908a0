package catalog

import "strings"

// ChartType tags a category with its preferred visualization
type ChartType string

const (
	ChartPie         ChartType = "pie"
	ChartBar         ChartType = "bar"
	ChartFunnel      ChartType = "funnel"
	ChartLeaderboard ChartType = "leaderboard"
	ChartTimeline    ChartType = "timeline"
	ChartGauge       ChartType = "gauge"
)

// MetricKind is the aggregation applied when computing a metric
type MetricKind string

const (
	MetricCount    MetricKind = "count"
	MetricSum      MetricKind = "sum"
	MetricAvg      MetricKind = "avg"
	MetricMin      MetricKind = "min"
	MetricMax      MetricKind = "max"
	MetricDistinct MetricKind = "distinct"
)

// MetricFormat controls how a computed metric value is displayed
type MetricFormat string

const (
	FormatNumber   MetricFormat = "number"
	FormatCurrency MetricFormat = "currency"
	FormatPercent  MetricFormat = "percent"
)

// MetricDef declares a metric computed for every analysis of its category
type MetricDef struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Kind   MetricKind   `json:"kind"`
	Column string       `json:"column,omitempty"` // explicit target; empty = pick by type
	Format MetricFormat `json:"format"`
}

// Category is a named business concept matched against column names.
// Patterns are lower-case substrings; a column may match several categories.
type Category struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Icon        string      `json:"icon"`
	Color       string      `json:"color"`
	Description string      `json:"description"`
	Patterns    []string    `json:"patterns"`
	ChartType   ChartType   `json:"chart_type"`
	Metrics     []MetricDef `json:"metrics"`
}

// categories is the static catalog. Declaration order matters: the first
// category whose pattern matches a column name becomes that column's primary
// category.
var categories = []Category{
	{
		ID:          "manufacturers",
		Name:        "יצרנים",
		Icon:        "🏢",
		Color:       "#6366F1",
		Description: "חברות ביטוח ובתי השקעות",
		Patterns:    []string{"יצרן", "חברת ביטוח", "מבטח", "בית השקעות", "manufacturer", "insurer", "company"},
		ChartType:   ChartPie,
		Metrics: []MetricDef{
			{ID: "manufacturer_count", Name: "מספר יצרנים", Kind: MetricDistinct, Format: FormatNumber},
			{ID: "record_count", Name: "סה\"כ רשומות", Kind: MetricCount, Format: FormatNumber},
		},
	},
	{
		ID:          "financial",
		Name:        "פיננסי",
		Icon:        "💰",
		Color:       "#10B981",
		Description: "סכומים, עמלות ופרמיות",
		Patterns:    []string{"סכום", "עמלה", "פרמיה", "צבירה", "הפקדה", "שכר", "amount", "commission", "premium", "balance", "salary"},
		ChartType:   ChartBar,
		Metrics: []MetricDef{
			{ID: "total_amount", Name: "סה\"כ", Kind: MetricSum, Format: FormatCurrency},
			{ID: "avg_amount", Name: "ממוצע", Kind: MetricAvg, Format: FormatCurrency},
			{ID: "max_amount", Name: "מקסימום", Kind: MetricMax, Format: FormatCurrency},
			{ID: "min_amount", Name: "מינימום", Kind: MetricMin, Format: FormatCurrency},
		},
	},
	{
		ID:          "processes",
		Name:        "תהליכים",
		Icon:        "🔄",
		Color:       "#F59E0B",
		Description: "סטטוסים ושלבי טיפול",
		Patterns:    []string{"סטטוס", "שלב", "תהליך", "מצב", "status", "stage", "process"},
		ChartType:   ChartFunnel,
		Metrics: []MetricDef{
			{ID: "process_count", Name: "סה\"כ תהליכים", Kind: MetricCount, Format: FormatNumber},
			{ID: "status_count", Name: "מספר סטטוסים", Kind: MetricDistinct, Format: FormatNumber},
		},
	},
	{
		ID:          "agents",
		Name:        "סוכנים",
		Icon:        "👔",
		Color:       "#8B5CF6",
		Description: "סוכנים ומשווקים",
		Patterns:    []string{"סוכן", "משווק", "מפנה", "agent"},
		ChartType:   ChartLeaderboard,
		Metrics: []MetricDef{
			{ID: "agent_count", Name: "מספר סוכנים", Kind: MetricDistinct, Format: FormatNumber},
			{ID: "record_count", Name: "סה\"כ רשומות", Kind: MetricCount, Format: FormatNumber},
		},
	},
	{
		ID:          "clients",
		Name:        "לקוחות",
		Icon:        "👥",
		Color:       "#EC4899",
		Description: "פרטי לקוחות ומבוטחים",
		Patterns:    []string{"לקוח", "מבוטח", "שם פרטי", "שם משפחה", "טלפון", "אימייל", "client", "customer", "phone", "email"},
		ChartType:   ChartBar,
		Metrics: []MetricDef{
			{ID: "client_count", Name: "מספר לקוחות", Kind: MetricDistinct, Format: FormatNumber},
			{ID: "record_count", Name: "סה\"כ רשומות", Kind: MetricCount, Format: FormatNumber},
		},
	},
	{
		ID:          "products",
		Name:        "מוצרים",
		Icon:        "📦",
		Color:       "#14B8A6",
		Description: "מוצרי ביטוח ופוליסות",
		Patterns:    []string{"מוצר", "פוליסה", "תכנית", "קופה", "קרן", "מסלול", "product", "policy", "plan"},
		ChartType:   ChartPie,
		Metrics: []MetricDef{
			{ID: "product_count", Name: "מספר מוצרים", Kind: MetricDistinct, Format: FormatNumber},
			{ID: "record_count", Name: "סה\"כ רשומות", Kind: MetricCount, Format: FormatNumber},
		},
	},
	{
		ID:          "dates",
		Name:        "תאריכים",
		Icon:        "📅",
		Color:       "#0EA5E9",
		Description: "תאריכים ומועדים",
		Patterns:    []string{"תאריך", "מועד", "חודש", "date", "month"},
		ChartType:   ChartTimeline,
		Metrics: []MetricDef{
			{ID: "record_count", Name: "סה\"כ רשומות", Kind: MetricCount, Format: FormatNumber},
		},
	},
	{
		ID:          "identifiers",
		Name:        "מזהים",
		Icon:        "🔑",
		Color:       "#64748B",
		Description: "מספרי זיהוי ומפתחות",
		Patterns:    []string{"מזהה", "ת.ז", "תעודת זהות", "id"},
		ChartType:   ChartGauge,
		Metrics: []MetricDef{
			{ID: "record_count", Name: "סה\"כ רשומות", Kind: MetricCount, Format: FormatNumber},
		},
	},
}

// Categories returns the full catalog in declaration order
func Categories() []Category {
	return categories
}

// CategoryByID looks up a category by its stable identifier
func CategoryByID(id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// MatchColumnToCategory returns the id of the first category whose pattern
// appears in the column name, matching by name only. Empty string when no
// category matches.
func MatchColumnToCategory(columnName string) string {
	lower := strings.ToLower(columnName)
	for _, c := range categories {
		for _, p := range c.Patterns {
			if strings.Contains(lower, p) {
				return c.ID
			}
		}
	}
	return ""
}
