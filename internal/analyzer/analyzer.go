package analyzer

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"agencydash/domain/analysis"
	"agencydash/domain/catalog"
	"agencydash/internal"
)

// Analyzer orchestrates classification, aggregation, template selection and
// suggestion generation over an in-memory row set. It holds no mutable state
// beyond its logger; concurrent Analyze calls are safe.
type Analyzer struct {
	log *internal.Logger
}

// New creates an analyzer with the default logger
func New() *Analyzer {
	return &Analyzer{log: internal.DefaultLogger}
}

// Analyze runs the full pipeline and returns a fresh ProjectAnalysis. It has
// no side effects and never fails on malformed data; an empty row set yields
// a zeroed result with the generic template.
func (a *Analyzer) Analyze(projectID, tableName string, rows []analysis.Row) analysis.ProjectAnalysis {
	if len(rows) == 0 {
		return analysis.ProjectAnalysis{
			ProjectID:          projectID,
			TableName:          tableName,
			Columns:            []analysis.ColumnClassification{},
			Categories:         []analysis.CategoryAnalysis{},
			DetectedCategories: []string{},
			Template:           catalog.GenericTemplate(),
			Filters:            []analysis.FilterSuggestion{},
			Cards:              []analysis.CardSuggestion{},
			Charts:             []analysis.ChartSuggestion{},
		}
	}

	// The first row's key set defines the schema. Keys are sorted so the
	// result is deterministic regardless of map iteration order.
	names := make([]string, 0, len(rows[0]))
	for k := range rows[0] {
		names = append(names, k)
	}
	sort.Strings(names)

	// Columns have no cross-column dependency, so classification runs
	// concurrently.
	cols := make([]analysis.ColumnClassification, len(names))
	var g errgroup.Group
	for i, name := range names {
		g.Go(func() error {
			values := make([]any, len(rows))
			for r, row := range rows {
				values[r] = row[name]
			}
			cols[i] = ClassifyColumn(name, values)
			return nil
		})
	}
	_ = g.Wait()

	byPrimary := make(map[string][]analysis.ColumnClassification)
	for _, c := range cols {
		if c.PrimaryCategory != "" {
			byPrimary[c.PrimaryCategory] = append(byPrimary[c.PrimaryCategory], c)
		}
	}

	var analyses []analysis.CategoryAnalysis
	for _, cat := range catalog.Categories() {
		members := byPrimary[cat.ID]
		if len(members) == 0 {
			continue
		}
		analyses = append(analyses, AnalyzeCategory(cat, members, rows))
	}
	sort.SliceStable(analyses, func(i, j int) bool {
		return len(analyses[i].Columns) > len(analyses[j].Columns)
	})

	detected := make([]string, 0, len(analyses))
	for _, ca := range analyses {
		detected = append(detected, ca.CategoryID)
	}

	result := analysis.ProjectAnalysis{
		ProjectID:          projectID,
		TableName:          tableName,
		TotalRows:          len(rows),
		TotalColumns:       len(names),
		Columns:            cols,
		Categories:         analyses,
		DetectedCategories: detected,
		Template:           SelectTemplate(detected),
		Filters:            SuggestFilters(cols, rows),
		Cards:              SuggestCards(analyses, len(rows)),
		Charts:             SuggestCharts(analyses, rows),
	}

	a.log.Debug("analyzed %s/%s: %d rows, %d columns, %d categories, template=%s",
		projectID, tableName, result.TotalRows, result.TotalColumns, len(analyses), result.Template.ID)

	return result
}
