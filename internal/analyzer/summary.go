package analyzer

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"agencydash/domain/analysis"
)

// numericSummary computes distribution statistics over the parseable values
// of a number-typed column. Returns nil when nothing parses.
func numericSummary(nonNull []string) *analysis.NumericSummary {
	var xs []float64
	for _, s := range nonNull {
		if f, ok := parseNumber(s); ok {
			xs = append(xs, f)
		}
	}
	if len(xs) == 0 {
		return nil
	}

	min, _ := stats.Min(xs)
	max, _ := stats.Max(xs)
	mean, _ := stats.Mean(xs)
	median, _ := stats.Median(xs)
	q25, _ := stats.Percentile(xs, 25)
	q75, _ := stats.Percentile(xs, 75)

	stdDev := 0.0
	if len(xs) > 1 {
		stdDev = stat.StdDev(xs, nil)
	}

	return &analysis.NumericSummary{
		Count:  len(xs),
		Min:    min,
		Max:    max,
		Mean:   mean,
		Median: median,
		StdDev: stdDev,
		Q25:    q25,
		Q75:    q75,
	}
}
