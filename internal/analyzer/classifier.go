package analyzer

import (
	"regexp"
	"strings"
	"time"

	"agencydash/domain/analysis"
	"agencydash/domain/catalog"
)

// typeThreshold is the fraction of non-null values that must satisfy a type
// rule for the column to take that type.
const typeThreshold = 0.8

const maxSampleValues = 5

// booleanVocabulary is the fixed set of string forms accepted as booleans.
var booleanVocabulary = map[string]struct{}{
	"true": {}, "false": {},
	"כן": {}, "לא": {},
	"yes": {}, "no": {},
	"1": {}, "0": {},
}

var (
	isoDatePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	delimitedDate = regexp.MustCompile(`^\d{1,4}[./\-]\d{1,2}[./\-]\d{1,4}$`)
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"2006/01/02",
	"02.01.2006",
	"02-01-2006",
}

// ClassifyColumn classifies a single column from its name and sample values.
// It is a pure function and never fails: malformed cells simply fall through
// to the text type.
func ClassifyColumn(name string, values []any) analysis.ColumnClassification {
	lower := strings.ToLower(name)

	var matched []string
	for _, cat := range catalog.Categories() {
		for _, p := range cat.Patterns {
			if strings.Contains(lower, p) {
				matched = append(matched, cat.ID)
				break
			}
		}
	}
	primary := ""
	if len(matched) > 0 {
		primary = matched[0]
	}

	var nonNull []string
	var samples []any
	distinct := make(map[string]struct{})
	nullCount := 0
	for _, v := range values {
		s := valueString(v)
		if s == "" {
			nullCount++
			continue
		}
		nonNull = append(nonNull, s)
		distinct[s] = struct{}{}
		if len(samples) < maxSampleValues {
			samples = append(samples, v)
		}
	}

	dataType := inferDataType(nonNull)

	// The uniqueness check compares against the raw value count, so a column
	// with any nulls is never flagged as a key.
	isKey := lower == "id" ||
		strings.HasSuffix(lower, "_id") ||
		strings.Contains(name, "מזהה") ||
		(len(values) > 10 && len(distinct) == len(values))

	cc := analysis.ColumnClassification{
		Name:            name,
		Categories:      matched,
		PrimaryCategory: primary,
		DataType:        dataType,
		UniqueCount:     len(distinct),
		NullCount:       nullCount,
		SampleValues:    samples,
		IsKey:           isKey,
	}
	if dataType == analysis.TypeNumber {
		cc.NumericSummary = numericSummary(nonNull)
	}
	return cc
}

// inferDataType applies the type rules in fixed order: boolean, date,
// number, text. The first satisfied rule wins.
func inferDataType(nonNull []string) analysis.DataType {
	if len(nonNull) == 0 {
		return analysis.TypeText
	}
	if allBoolean(nonNull) {
		return analysis.TypeBoolean
	}
	if typeRatio(nonNull, isDateString) >= typeThreshold {
		return analysis.TypeDate
	}
	if typeRatio(nonNull, isNumberString) >= typeThreshold {
		return analysis.TypeNumber
	}
	return analysis.TypeText
}

func allBoolean(nonNull []string) bool {
	for _, s := range nonNull {
		if _, ok := booleanVocabulary[strings.ToLower(strings.TrimSpace(s))]; !ok {
			return false
		}
	}
	return true
}

func typeRatio(nonNull []string, match func(string) bool) float64 {
	hits := 0
	for _, s := range nonNull {
		if match(s) {
			hits++
		}
	}
	return float64(hits) / float64(len(nonNull))
}

func isNumberString(s string) bool {
	_, ok := parseNumber(s)
	return ok
}

// isDateString accepts ISO-prefixed values, delimited numeric dates, and
// anything that parses to a calendar date with a year strictly between 1900
// and 2100.
func isDateString(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if isoDatePrefix.MatchString(s) || delimitedDate.MatchString(s) {
		return true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			y := t.Year()
			if y > 1900 && y < 2100 {
				return true
			}
		}
	}
	return false
}
