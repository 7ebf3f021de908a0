package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"agencydash/domain/analysis"
	"agencydash/domain/core"
	"agencydash/ports"
)

// configRepository implements ports.ConfigRepository over postgres
type configRepository struct {
	db *sqlx.DB
}

// NewConfigRepository creates a new dashboard configuration repository
func NewConfigRepository(db *sqlx.DB) ports.ConfigRepository {
	return &configRepository{db: db}
}

// EnsureSchema creates the dashboard_configs table if it does not exist
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	schema := `CREATE TABLE IF NOT EXISTS dashboard_configs (
		id TEXT PRIMARY KEY,
		project_id TEXT NOT NULL,
		table_name TEXT NOT NULL,
		template_id TEXT NOT NULL,
		categories JSONB NOT NULL DEFAULT '[]',
		filters JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_dashboard_configs_project ON dashboard_configs (project_id, updated_at DESC)`

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure dashboard_configs schema: %w", err)
	}
	return nil
}

// Save upserts a dashboard configuration by id
func (r *configRepository) Save(ctx context.Context, cfg *analysis.DashboardConfig) error {
	categoriesJSON, err := json.Marshal(cfg.Categories)
	if err != nil {
		return fmt.Errorf("failed to marshal categories: %w", err)
	}
	filtersJSON, err := json.Marshal(cfg.Filters)
	if err != nil {
		return fmt.Errorf("failed to marshal filters: %w", err)
	}

	query := `INSERT INTO dashboard_configs (
		id, project_id, table_name, template_id, categories, filters, created_at, updated_at
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8
	) ON CONFLICT (id) DO UPDATE SET
		table_name = EXCLUDED.table_name,
		template_id = EXCLUDED.template_id,
		categories = EXCLUDED.categories,
		filters = EXCLUDED.filters,
		updated_at = EXCLUDED.updated_at`

	_, err = r.db.ExecContext(ctx, query,
		cfg.ID.String(), cfg.ProjectID, cfg.TableName, cfg.TemplateID,
		categoriesJSON, filtersJSON, cfg.CreatedAt, cfg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save dashboard config: %w", err)
	}
	return nil
}

// GetByProject retrieves the most recently updated configuration of a project
func (r *configRepository) GetByProject(ctx context.Context, projectID string) (*analysis.DashboardConfig, error) {
	query := `SELECT id, project_id, table_name, template_id, categories, filters, created_at, updated_at
	FROM dashboard_configs WHERE project_id = $1 ORDER BY updated_at DESC LIMIT 1`

	cfg, err := scanConfig(r.db.QueryRowxContext(ctx, query, projectID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("dashboard config not found for project %s", projectID)
		}
		return nil, fmt.Errorf("failed to get dashboard config: %w", err)
	}
	return cfg, nil
}

// List returns all stored configurations, newest first
func (r *configRepository) List(ctx context.Context) ([]analysis.DashboardConfig, error) {
	query := `SELECT id, project_id, table_name, template_id, categories, filters, created_at, updated_at
	FROM dashboard_configs ORDER BY updated_at DESC`

	rows, err := r.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list dashboard configs: %w", err)
	}
	defer rows.Close()

	var configs []analysis.DashboardConfig
	for rows.Next() {
		cfg, err := scanConfig(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dashboard config: %w", err)
		}
		configs = append(configs, *cfg)
	}
	return configs, rows.Err()
}

// Delete removes a configuration by id
func (r *configRepository) Delete(ctx context.Context, id core.ConfigID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM dashboard_configs WHERE id = $1`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete dashboard config: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("dashboard config not found: %s", id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConfig(row rowScanner) (*analysis.DashboardConfig, error) {
	var cfg analysis.DashboardConfig
	var id string
	var categoriesJSON, filtersJSON []byte

	err := row.Scan(&id, &cfg.ProjectID, &cfg.TableName, &cfg.TemplateID,
		&categoriesJSON, &filtersJSON, &cfg.CreatedAt, &cfg.UpdatedAt)
	if err != nil {
		return nil, err
	}

	cfg.ID = core.ConfigID(id)
	if err := json.Unmarshal(categoriesJSON, &cfg.Categories); err != nil {
		return nil, fmt.Errorf("failed to unmarshal categories: %w", err)
	}
	if err := json.Unmarshal(filtersJSON, &cfg.Filters); err != nil {
		return nil, fmt.Errorf("failed to unmarshal filters: %w", err)
	}
	return &cfg, nil
}
