package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"agencydash/adapters/excel"
	"agencydash/adapters/postgres"
	"agencydash/domain/analysis"
	"agencydash/domain/catalog"
	"agencydash/internal/analyzer"
	"agencydash/internal/config"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "agencydash",
		Short: "Column-to-category inference and dashboard configuration for tabular agency data",
	}

	rootCmd.AddCommand(
		newAnalyzeCmd(),
		newCategoriesCmd(),
		newTemplatesCmd(),
		newSaveCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newAnalyzeCmd() *cobra.Command {
	var projectID, tableName, sheetName string

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Analyze an xlsx/csv file and print the suggested dashboard configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := analyzeFile(cmd.Context(), args[0], projectID, tableName, sheetName)
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "local", "project identifier")
	cmd.Flags().StringVar(&tableName, "table", "", "table name (defaults to the file name)")
	cmd.Flags().StringVar(&sheetName, "sheet", "", "worksheet name for xlsx files")
	return cmd
}

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Print the static category catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(catalog.Categories())
		},
	}
}

func newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "Print the dashboard template catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(catalog.Templates())
		},
	}
}

func newSaveCmd() *cobra.Command {
	var projectID, tableName, sheetName string

	cmd := &cobra.Command{
		Use:   "save [file]",
		Short: "Analyze a file and persist the resulting dashboard configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if err := cfg.RequireDatabase(); err != nil {
				return err
			}

			ctx := cmd.Context()
			result, err := analyzeFile(ctx, args[0], projectID, tableName, sheetName)
			if err != nil {
				return err
			}

			db, err := sqlx.ConnectContext(ctx, "postgres", cfg.Database.URL)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer db.Close()

			if err := postgres.EnsureSchema(ctx, db); err != nil {
				return err
			}

			dashCfg := analysis.NewDashboardConfig(result)
			repo := postgres.NewConfigRepository(db)
			if err := repo.Save(ctx, dashCfg); err != nil {
				return err
			}

			fmt.Printf("saved dashboard config %s (project=%s template=%s)\n",
				dashCfg.ID, dashCfg.ProjectID, dashCfg.TemplateID)
			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "local", "project identifier")
	cmd.Flags().StringVar(&tableName, "table", "", "table name (defaults to the file name)")
	cmd.Flags().StringVar(&sheetName, "sheet", "", "worksheet name for xlsx files")
	return cmd
}

func analyzeFile(ctx context.Context, path, projectID, tableName, sheetName string) (analysis.ProjectAnalysis, error) {
	if tableName == "" {
		tableName = path
	}

	reader := excel.NewReader(path, sheetName)
	_, rows, err := reader.Read(ctx)
	if err != nil {
		return analysis.ProjectAnalysis{}, err
	}

	return analyzer.New().Analyze(projectID, tableName, rows), nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
