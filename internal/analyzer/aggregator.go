package analyzer

import (
	"github.com/montanaflynn/stats"

	"agencydash/domain/analysis"
	"agencydash/domain/catalog"
)

// AnalyzeCategory computes a category's distinct value sets and declared
// metrics over its member columns. Every declared metric yields an entry,
// zero-valued when no suitable column exists.
func AnalyzeCategory(cat catalog.Category, columns []analysis.ColumnClassification, rows []analysis.Row) analysis.CategoryAnalysis {
	distinctValues := make(map[string][]string, len(columns))
	for _, col := range columns {
		distinctValues[col.Name] = distinctColumnValues(rows, col.Name)
	}

	metrics := make([]analysis.MetricValue, 0, len(cat.Metrics))
	for _, def := range cat.Metrics {
		v := computeMetric(def, columns, rows)
		metrics = append(metrics, analysis.MetricValue{
			ID:        def.ID,
			Name:      def.Name,
			Value:     v,
			Formatted: formatMetric(v, def.Format),
		})
	}

	return analysis.CategoryAnalysis{
		CategoryID:     cat.ID,
		Columns:        columns,
		RowCount:       len(rows),
		DistinctValues: distinctValues,
		Metrics:        metrics,
	}
}

func computeMetric(def catalog.MetricDef, columns []analysis.ColumnClassification, rows []analysis.Row) float64 {
	switch def.Kind {
	case catalog.MetricCount:
		return float64(len(rows))

	case catalog.MetricDistinct:
		col := targetColumn(def, columns, analysis.TypeText)
		if col == "" {
			return 0
		}
		return float64(len(distinctColumnValues(rows, col)))

	default:
		col := targetColumn(def, columns, analysis.TypeNumber)
		if col == "" {
			return 0
		}
		inclusive, parsed := columnNumbers(rows, col)
		switch def.Kind {
		case catalog.MetricSum:
			// Unparseable cells stay in the sum as zeros.
			s, err := stats.Sum(inclusive)
			if err != nil {
				return 0
			}
			return s
		case catalog.MetricAvg:
			// Unlike sum, unparseable cells are excluded from both the
			// numerator and the denominator.
			m, err := stats.Mean(parsed)
			if err != nil {
				return 0
			}
			return m
		case catalog.MetricMin:
			m, err := stats.Min(parsed)
			if err != nil {
				return 0
			}
			return m
		case catalog.MetricMax:
			m, err := stats.Max(parsed)
			if err != nil {
				return 0
			}
			return m
		}
		return 0
	}
}

// targetColumn resolves the column a metric operates on: the explicit target
// when declared, otherwise the first member column of the wanted type.
func targetColumn(def catalog.MetricDef, columns []analysis.ColumnClassification, want analysis.DataType) string {
	if def.Column != "" {
		return def.Column
	}
	for _, c := range columns {
		if c.DataType == want {
			return c.Name
		}
	}
	return ""
}

// columnNumbers parses a column's cells. inclusive substitutes 0 for every
// cell that fails to parse; parsed drops those cells entirely.
func columnNumbers(rows []analysis.Row, column string) (inclusive, parsed []float64) {
	inclusive = make([]float64, 0, len(rows))
	for _, row := range rows {
		f, ok := parseNumber(valueString(row[column]))
		if !ok {
			inclusive = append(inclusive, 0)
			continue
		}
		inclusive = append(inclusive, f)
		parsed = append(parsed, f)
	}
	return inclusive, parsed
}
