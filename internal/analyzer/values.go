package analyzer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"agencydash/domain/analysis"
	"agencydash/domain/catalog"
)

// numericCleaner strips thousands separators, currency symbols, percent
// signs and whitespace before numeric parsing.
var numericCleaner = strings.NewReplacer(",", "", "₪", "", "$", "", "€", "", "%", "", " ", "", "\t", "")

// valueString converts a raw cell value to its canonical string form. Nil
// maps to the empty string.
func valueString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case time.Time:
		return t.Format("2006-01-02")
	default:
		return fmt.Sprintf("%v", t)
	}
}

// parseNumber parses a cell's string form as a finite float after cleaning.
func parseNumber(s string) (float64, bool) {
	clean := numericCleaner.Replace(strings.TrimSpace(s))
	if clean == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(clean, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// distinctColumnValues returns the distinct non-empty stringified values of a
// column in first-seen row order.
func distinctColumnValues(rows []analysis.Row, column string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, row := range rows {
		s := valueString(row[column])
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// formatMetric renders a metric value per its declared display format.
func formatMetric(value float64, format catalog.MetricFormat) string {
	switch format {
	case catalog.FormatCurrency:
		return "₪" + groupThousands(strconv.FormatFloat(math.Round(value), 'f', 0, 64))
	case catalog.FormatPercent:
		return strconv.FormatFloat(value*100, 'f', 1, 64) + "%"
	default:
		return formatNumber(value)
	}
}

// formatNumber renders a grouped number with up to two decimal places.
func formatNumber(value float64) string {
	if value == math.Trunc(value) {
		return groupThousands(strconv.FormatFloat(value, 'f', 0, 64))
	}
	s := strconv.FormatFloat(value, 'f', 2, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")
	fracPart = strings.TrimRight(fracPart, "0")
	if fracPart == "" {
		return groupThousands(intPart)
	}
	return groupThousands(intPart) + "." + fracPart
}

// groupThousands inserts comma separators into a plain digit string,
// preserving a leading minus sign.
func groupThousands(digits string) string {
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}
	n := len(digits)
	if n <= 3 {
		if neg {
			return "-" + digits
		}
		return digits
	}
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 && !(neg && b.Len() == 1) {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
