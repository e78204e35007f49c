package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"schoolstat/adapters/csvdata"
	"schoolstat/adapters/excel"
	"schoolstat/adapters/gonumdist"
	"schoolstat/adapters/plot"
	"schoolstat/adapters/postgres"
	"schoolstat/adapters/report"
	"schoolstat/app"
	"schoolstat/domain/battery"
	"schoolstat/domain/hypotest"
	"schoolstat/domain/table"
	"schoolstat/internal"
	"schoolstat/internal/config"
	"schoolstat/ports"
)

func main() {
	// Missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "schoolstat",
		Short: "Hypothesis test battery for student score datasets",
	}

	rootCmd.AddCommand(newRunCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	var datasetFile string
	var outputDir string
	var noFigures bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full test battery over a dataset",
		Long: `Run the full hypothesis test battery over a student score dataset.

Example: schoolstat run --dataset students.csv --out ./out`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if datasetFile != "" {
				cfg.Data.DatasetFile = datasetFile
			}
			if outputDir != "" {
				cfg.Output.Dir = outputDir
			}
			if noFigures {
				cfg.Output.Figures = false
			}
			if cfg.Data.DatasetFile == "" {
				return fmt.Errorf("no dataset file configured; pass --dataset or set DATASET_FILE")
			}
			return runBattery(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&datasetFile, "dataset", "", "path to a CSV or Excel dataset")
	cmd.Flags().StringVar(&outputDir, "out", "", "output directory for report and figures")
	cmd.Flags().BoolVar(&noFigures, "no-figures", false, "skip figure generation")
	return cmd
}

func runBattery(ctx context.Context, cfg *config.Config) error {
	log := internal.DefaultLogger

	reader, err := readerFor(cfg)
	if err != nil {
		return err
	}

	var store ports.ResultStorePort
	if cfg.Database.URL != "" {
		db, err := postgres.Connect(ctx, cfg.Database.URL)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer db.Close()
		if err := postgres.Migrate(ctx, db); err != nil {
			return err
		}
		store = postgres.NewReportStore(db)
	}

	tbl, err := reader.Read(ctx)
	if err != nil {
		return fmt.Errorf("reading dataset: %w", err)
	}

	engine := hypotest.NewEngine(gonumdist.Provider{})
	svc := app.NewBatteryService(engine, store, log)
	rep, err := svc.RunBattery(ctx, tbl, reader.Source(), planFrom(cfg))
	if err != nil {
		return err
	}

	if err := writeOutputs(cfg, tbl, rep); err != nil {
		return err
	}

	fmt.Print(report.RenderText(rep))
	return nil
}

func readerFor(cfg *config.Config) (ports.TableReaderPort, error) {
	switch ext := strings.ToLower(filepath.Ext(cfg.Data.DatasetFile)); ext {
	case ".csv":
		return csvdata.NewReader(cfg.Data.DatasetFile), nil
	case ".xlsx", ".xlsm":
		return excel.NewReader(cfg.Data.DatasetFile, cfg.Data.Sheet), nil
	default:
		return nil, fmt.Errorf("unsupported dataset format %q (want .csv or .xlsx)", ext)
	}
}

func planFrom(cfg *config.Config) battery.Plan {
	return battery.Plan{
		ScoreColumn:       cfg.Data.ScoreColumn,
		GroupColumn:       cfg.Data.GroupColumn,
		BeforeColumn:      cfg.Data.BeforeColumn,
		AfterColumn:       cfg.Data.AfterColumn,
		HypothesizedMean:  cfg.Analysis.HypothesizedMean,
		PopulationStdDev:  cfg.Analysis.PopulationStdDev,
		PopulationStdDevA: cfg.Analysis.PopulationStdDevA,
		PopulationStdDevB: cfg.Analysis.PopulationStdDevB,
		EqualVariance:     cfg.Analysis.EqualVariance,
		Alpha:             cfg.Analysis.Alpha,
	}
}

func writeOutputs(cfg *config.Config, tbl *table.Table, rep *battery.Report) error {
	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	textPath := filepath.Join(cfg.Output.Dir, "results.txt")
	if err := os.WriteFile(textPath, []byte(report.RenderText(rep)), 0o644); err != nil {
		return fmt.Errorf("writing text report: %w", err)
	}

	jsonOut, err := report.RenderJSON(rep)
	if err != nil {
		return err
	}
	jsonPath := filepath.Join(cfg.Output.Dir, "results.json")
	if err := os.WriteFile(jsonPath, jsonOut, 0o644); err != nil {
		return fmt.Errorf("writing JSON report: %w", err)
	}

	mdPath := filepath.Join(cfg.Output.Dir, "results.md")
	if err := os.WriteFile(mdPath, []byte(report.RenderMarkdown(rep)), 0o644); err != nil {
		return fmt.Errorf("writing Markdown report: %w", err)
	}

	if !cfg.Output.Figures {
		return nil
	}

	charter, err := plot.NewCharter(filepath.Join(cfg.Output.Dir, "figures"))
	if err != nil {
		return err
	}

	groups, err := tbl.SplitNumericBy(rep.Plan.ScoreColumn, rep.Plan.GroupColumn)
	if err != nil {
		return err
	}
	samples := make(map[string]hypotest.Sample, len(groups))
	for name, scores := range groups {
		samples[name] = scores
		if _, err := charter.Histogram(name, scores); err != nil {
			return err
		}
	}
	if _, err := charter.BoxPlot("Scores by "+rep.Plan.GroupColumn, rep.Groups, samples); err != nil {
		return err
	}
	return nil
}
