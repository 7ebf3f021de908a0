package analyzer

import (
	"sort"

	"agencydash/domain/analysis"
	"agencydash/domain/catalog"
)

const (
	maxFilterSuggestions = 5
	cardCount            = 4
	maxChartSuggestions  = 4
	dropdownMaxOptions   = 20
	enumMaxDistinct      = 20
	chartMaxSlices       = 10
	unmatchedPriority    = 100
)

// unknownLabel stands in for empty cells when tallying chart slices.
const unknownLabel = "unknown"

// filterPreferenceOrder ranks categories for filter suggestions; earlier is
// better.
var filterPreferenceOrder = []string{
	"processes", "manufacturers", "agents", "products", "clients", "dates", "financial",
}

// SuggestFilters derives up to five ranked filter proposals from the column
// classifications. Key columns and columns without a primary category are
// never suggested.
func SuggestFilters(cols []analysis.ColumnClassification, rows []analysis.Row) []analysis.FilterSuggestion {
	var out []analysis.FilterSuggestion
	for _, c := range cols {
		if c.PrimaryCategory == "" || c.IsKey {
			continue
		}
		f := analysis.FilterSuggestion{
			Column:     c.Name,
			CategoryID: c.PrimaryCategory,
			Priority:   filterPriority(c),
		}
		switch {
		case c.DataType == analysis.TypeDate:
			f.Type = analysis.FilterDateRange
		case c.DataType == analysis.TypeNumber:
			f.Type = analysis.FilterNumberRange
		case c.UniqueCount <= dropdownMaxOptions:
			f.Type = analysis.FilterDropdown
			opts := distinctColumnValues(rows, c.Name)
			sort.Strings(opts)
			f.Options = opts
		default:
			f.Type = analysis.FilterSearch
		}
		out = append(out, f)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	if len(out) > maxFilterSuggestions {
		out = out[:maxFilterSuggestions]
	}
	return out
}

func filterPriority(c analysis.ColumnClassification) int {
	for i, id := range filterPreferenceOrder {
		if id == c.PrimaryCategory {
			bonus := 0
			if c.UniqueCount >= 10 {
				bonus = 5
			}
			return i*10 + bonus
		}
	}
	return unmatchedPriority
}

// SuggestCards emits exactly four summary cards: one per leading category
// analysis, padded with a total-records card when fewer categories exist.
func SuggestCards(analyses []analysis.CategoryAnalysis, totalRows int) []analysis.CardSuggestion {
	cards := make([]analysis.CardSuggestion, 0, cardCount)
	for _, a := range analyses {
		if len(cards) == cardCount {
			break
		}
		cat, ok := catalog.CategoryByID(a.CategoryID)
		if !ok || len(a.Metrics) == 0 {
			continue
		}
		m := a.Metrics[0]
		cards = append(cards, analysis.CardSuggestion{
			CategoryID: a.CategoryID,
			Title:      m.Name,
			MetricID:   m.ID,
			Value:      m.Value,
			Formatted:  m.Formatted,
			Icon:       cat.Icon,
			Color:      cat.Color,
		})
	}
	ident, _ := catalog.CategoryByID("identifiers")
	for len(cards) < cardCount {
		cards = append(cards, analysis.CardSuggestion{
			CategoryID: ident.ID,
			Title:      "סה\"כ רשומות",
			MetricID:   "record_count",
			Value:      float64(totalRows),
			Formatted:  formatMetric(float64(totalRows), catalog.FormatNumber),
			Icon:       ident.Icon,
			Color:      ident.Color,
		})
	}
	return cards
}

// SuggestCharts builds at most four charts from the leading category
// analyses. A category contributes a chart only when it has an enum-like
// member column (text-typed, more than one and at most twenty distinct
// values).
func SuggestCharts(analyses []analysis.CategoryAnalysis, rows []analysis.Row) []analysis.ChartSuggestion {
	limit := maxChartSuggestions
	if len(analyses) < limit {
		limit = len(analyses)
	}

	var charts []analysis.ChartSuggestion
	for _, a := range analyses[:limit] {
		col := enumLikeColumn(a.Columns)
		if col == "" {
			continue
		}
		cat, ok := catalog.CategoryByID(a.CategoryID)
		if !ok {
			continue
		}

		counts := make(map[string]int)
		var order []string
		for _, row := range rows {
			label := valueString(row[col])
			if label == "" {
				label = unknownLabel
			}
			if _, seen := counts[label]; !seen {
				order = append(order, label)
			}
			counts[label]++
		}

		data := make([]analysis.ChartDatum, 0, len(order))
		for _, label := range order {
			data = append(data, analysis.ChartDatum{
				Label: label,
				Count: counts[label],
				Color: catalog.StatusPatternColor(label),
			})
		}
		sort.SliceStable(data, func(i, j int) bool { return data[i].Count > data[j].Count })
		if len(data) > chartMaxSlices {
			data = data[:chartMaxSlices]
		}

		charts = append(charts, analysis.ChartSuggestion{
			CategoryID: a.CategoryID,
			Column:     col,
			Title:      cat.Name,
			ChartType:  cat.ChartType,
			Data:       data,
		})
	}
	return charts
}

func enumLikeColumn(cols []analysis.ColumnClassification) string {
	for _, c := range cols {
		if c.DataType == analysis.TypeText && c.UniqueCount > 1 && c.UniqueCount <= enumMaxDistinct {
			return c.Name
		}
	}
	return ""
}
