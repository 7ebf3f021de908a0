package analysis

import (
	"time"

	"agencydash/domain/catalog"
	"agencydash/domain/core"
)

// Row is a single record of the analyzed table: column name to raw cell
// value (string, number, bool, time.Time or nil).
type Row map[string]any

// DataType is the inferred type of a column
type DataType string

const (
	TypeText    DataType = "text"
	TypeNumber  DataType = "number"
	TypeDate    DataType = "date"
	TypeBoolean DataType = "boolean"
)

// NumericSummary carries distribution statistics for number-typed columns
type NumericSummary struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Q25    float64 `json:"q25"`
	Q75    float64 `json:"q75"`
}

// ColumnClassification is the per-column result of one analysis run. A column
// may match several categories; PrimaryCategory is the first match in catalog
// order, empty when nothing matched.
type ColumnClassification struct {
	Name            string          `json:"name"`
	Categories      []string        `json:"categories"`
	PrimaryCategory string          `json:"primary_category,omitempty"`
	DataType        DataType        `json:"data_type"`
	UniqueCount     int             `json:"unique_count"`
	NullCount       int             `json:"null_count"`
	SampleValues    []any           `json:"sample_values,omitempty"`
	IsKey           bool            `json:"is_key"`
	NumericSummary  *NumericSummary `json:"numeric_summary,omitempty"`
}

// MetricValue is one computed metric of a category analysis
type MetricValue struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
}

// CategoryAnalysis aggregates one detected category over its member columns
type CategoryAnalysis struct {
	CategoryID     string                 `json:"category_id"`
	Columns        []ColumnClassification `json:"columns"`
	RowCount       int                    `json:"row_count"`
	DistinctValues map[string][]string    `json:"distinct_values"`
	Metrics        []MetricValue          `json:"metrics"`
}

// FilterType is the UI control suggested for a filter
type FilterType string

const (
	FilterDateRange   FilterType = "date-range"
	FilterNumberRange FilterType = "number-range"
	FilterDropdown    FilterType = "dropdown"
	FilterSearch      FilterType = "search"
)

// FilterSuggestion is one ranked filter proposal
type FilterSuggestion struct {
	Column     string     `json:"column"`
	CategoryID string     `json:"category_id"`
	Type       FilterType `json:"type"`
	Options    []string   `json:"options,omitempty"`
	Priority   int        `json:"priority"`
}

// CardSuggestion is one summary card proposal
type CardSuggestion struct {
	CategoryID string  `json:"category_id"`
	Title      string  `json:"title"`
	MetricID   string  `json:"metric_id"`
	Value      float64 `json:"value"`
	Formatted  string  `json:"formatted"`
	Icon       string  `json:"icon"`
	Color      string  `json:"color"`
}

// ChartDatum is one labeled slice of a suggested chart
type ChartDatum struct {
	Label string `json:"label"`
	Count int    `json:"count"`
	Color string `json:"color,omitempty"`
}

// ChartSuggestion is one chart proposal built from an enum-like column
type ChartSuggestion struct {
	CategoryID string            `json:"category_id"`
	Column     string            `json:"column"`
	Title      string            `json:"title"`
	ChartType  catalog.ChartType `json:"chart_type"`
	Data       []ChartDatum      `json:"data"`
}

// ProjectAnalysis is the complete output of one analysis invocation. Computed
// fresh per call; the engine never persists it.
type ProjectAnalysis struct {
	ProjectID          string                 `json:"project_id"`
	TableName          string                 `json:"table_name"`
	TotalRows          int                    `json:"total_rows"`
	TotalColumns       int                    `json:"total_columns"`
	Columns            []ColumnClassification `json:"columns"`
	Categories         []CategoryAnalysis     `json:"categories"`
	DetectedCategories []string               `json:"detected_categories"`
	Template           catalog.Template       `json:"template"`
	Filters            []FilterSuggestion     `json:"filters"`
	Cards              []CardSuggestion       `json:"cards"`
	Charts             []ChartSuggestion      `json:"charts"`
}

// DashboardConfig is the configuration a caller persists after reviewing an
// analysis: the chosen template plus the accepted categories and filters.
type DashboardConfig struct {
	ID         core.ConfigID      `json:"id"`
	ProjectID  string             `json:"project_id"`
	TableName  string             `json:"table_name"`
	TemplateID string             `json:"template_id"`
	Categories []string           `json:"categories"`
	Filters    []FilterSuggestion `json:"filters"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// NewDashboardConfig builds a config from an analysis result
func NewDashboardConfig(pa ProjectAnalysis) *DashboardConfig {
	now := time.Now().UTC()
	return &DashboardConfig{
		ID:         core.ConfigID(core.NewID()),
		ProjectID:  pa.ProjectID,
		TableName:  pa.TableName,
		TemplateID: pa.Template.ID,
		Categories: pa.DetectedCategories,
		Filters:    pa.Filters,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
