package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"schoolstat/adapters/csvdata"
	"schoolstat/adapters/excel"
	"schoolstat/adapters/gonumdist"
	"schoolstat/adapters/postgres"
	"schoolstat/app"
	"schoolstat/domain/battery"
	"schoolstat/domain/hypotest"
	"schoolstat/internal"
	"schoolstat/internal/config"
	"schoolstat/ports"
	"schoolstat/ui"
)

func main() {
	_ = godotenv.Load()

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Data.DatasetFile == "" {
		return fmt.Errorf("DATASET_FILE is required")
	}

	logger := internal.DefaultLogger
	ctx := context.Background()

	var reader ports.TableReaderPort
	switch ext := strings.ToLower(filepath.Ext(cfg.Data.DatasetFile)); ext {
	case ".csv":
		reader = csvdata.NewReader(cfg.Data.DatasetFile)
	case ".xlsx", ".xlsm":
		reader = excel.NewReader(cfg.Data.DatasetFile, cfg.Data.Sheet)
	default:
		return fmt.Errorf("unsupported dataset format %q (want .csv or .xlsx)", ext)
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
	} else {
		logger.Warn("DATABASE_URL not set; reports will not be persisted")
	}

	engine := hypotest.NewEngine(gonumdist.Provider{})
	svc := app.NewBatteryService(engine, store, logger)

	plan := battery.Plan{
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

	application := ui.NewApp(svc, reader, store, plan, logger)
	if err := application.Serve(cfg.Server.Port); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
