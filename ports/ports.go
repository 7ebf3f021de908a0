package ports

import (
	"context"

	"agencydash/domain/analysis"
	"agencydash/domain/core"
)

// RowSource provides the rows the analyzer runs over. The analyzer itself
// never performs I/O; implementations own file handling, parsing and errors.
type RowSource interface {
	Read(ctx context.Context) (headers []string, rows []analysis.Row, err error)
}

// ConfigRepository persists dashboard configurations on behalf of callers.
// The analysis engine never reads or writes through it.
type ConfigRepository interface {
	Save(ctx context.Context, cfg *analysis.DashboardConfig) error
	GetByProject(ctx context.Context, projectID string) (*analysis.DashboardConfig, error)
	List(ctx context.Context) ([]analysis.DashboardConfig, error)
	Delete(ctx context.Context, id core.ConfigID) error
}
