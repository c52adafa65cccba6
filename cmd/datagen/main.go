// cmd/datagen/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"sales-datagen/internal/common/config"
	"sales-datagen/internal/common/database"
	"sales-datagen/internal/common/logger"
	"sales-datagen/internal/common/validation"
	"sales-datagen/internal/export"
	"sales-datagen/internal/generator"
	"sales-datagen/internal/loader"
	"sales-datagen/internal/models"
	"sales-datagen/internal/rules"
)

func main() {
	var (
		flagCustomers   = flag.Int("customers", 0, "number of customers to generate (overrides config)")
		flagSalesPeople = flag.Int("sales-people", 0, "number of sales people to generate (overrides config)")
		flagSeed        = flag.Int64("seed", 0, "random seed; omit for an entropy-drawn seed")
		flagFormat      = flag.String("format", "", "output format: json, csv or both (overrides config)")
		flagOutput      = flag.String("output", "", "output file (json) or directory (csv)")
		flagRules       = flag.String("rules", "", "YAML file overriding the built-in generation rules")
		flagValidate    = flag.Bool("validate", false, "validate the generated dataset against the entity schemas")
		flagLoad        = flag.String("load", "", "storage target to load: postgres, redis, elasticsearch or all")
		flagConfig      = flag.String("config", "", "path to a specific config file")
	)
	flag.Parse()

	seedSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})

	var cfg *config.Config
	var err error
	if *flagConfig != "" {
		cfg, err = config.LoadFromFile(*flagConfig)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	applyFlags(cfg, *flagCustomers, *flagSalesPeople, *flagFormat, *flagOutput, *flagRules, *flagLoad)

	if cfg.Metrics.Enabled {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cfg.Metrics.Address, mux); err != nil {
				zapLog.Warn("metrics endpoint stopped", zap.Error(err))
			}
		}()
	}

	ruleSet, err := rules.Load(cfg.Generator.RulesFile)
	if err != nil {
		zapLog.Fatal("rules load failed", zap.Error(err))
	}

	gen, err := generator.New(ruleSet, log)
	if err != nil {
		zapLog.Fatal("generator init failed", zap.Error(err))
	}

	anchor, err := cfg.Generator.AnchorTime()
	if err != nil {
		zapLog.Fatal("invalid anchor date", zap.Error(err))
	}

	req := generator.Request{
		NumCustomers:   cfg.Generator.NumCustomers,
		NumSalesPeople: cfg.Generator.NumSalesPeople,
		Anchor:         anchor,
	}
	switch {
	case seedSet:
		req.Seed = flagSeed
	case cfg.Generator.Seed != nil:
		req.Seed = cfg.Generator.Seed
	}

	ds, err := gen.Generate(req)
	if err != nil {
		zapLog.Fatal("generation failed", zap.Error(err))
	}

	if *flagValidate {
		result, err := validation.ValidateDataset(ds)
		if err != nil {
			zapLog.Fatal("dataset validation errored", zap.Error(err))
		}
		if !result.Valid {
			for _, ve := range result.Errors {
				zapLog.Error("schema violation",
					zap.String("entity", ve.Entity),
					zap.String("field", ve.Field),
					zap.String("message", ve.Message))
			}
			zapLog.Fatal("dataset failed schema validation", zap.Int("violations", len(result.Errors)))
		}
		zapLog.Info("dataset passed schema validation")
	}

	if err := writeOutput(cfg, ds); err != nil {
		zapLog.Fatal("export failed", zap.Error(err))
	}

	if cfg.Load.Targets() {
		if err := runLoaders(cfg, log, ds); err != nil {
			zapLog.Fatal("load failed", zap.Error(err))
		}
	}

	zapLog.Info("done",
		zap.Int64("seed", ds.Seed),
		zap.Int("customers", len(ds.Customers)),
		zap.Int("opportunities", len(ds.Opportunities)),
		zap.Int("interactions", len(ds.Interactions)))
}

func applyFlags(cfg *config.Config, customers, salesPeople int, format, output, rulesFile, load string) {
	if customers > 0 {
		cfg.Generator.NumCustomers = customers
	}
	if salesPeople > 0 {
		cfg.Generator.NumSalesPeople = salesPeople
	}
	if format != "" {
		cfg.Export.Format = format
	}
	if output != "" {
		cfg.Export.Output = output
	}
	if rulesFile != "" {
		cfg.Generator.RulesFile = rulesFile
	}
	switch load {
	case "postgres":
		cfg.Load.Postgres = true
	case "redis":
		cfg.Load.Redis = true
	case "elasticsearch":
		cfg.Load.Elasticsearch = true
	case "all":
		cfg.Load.Postgres = true
		cfg.Load.Redis = true
		cfg.Load.Elasticsearch = true
	}
}

func writeOutput(cfg *config.Config, ds *models.Dataset) error {
	switch cfg.Export.Format {
	case "json":
		return export.WriteJSON(ds, cfg.Export.Output, cfg.Export.Pretty)
	case "csv":
		return export.WriteCSV(ds, cfg.Export.Output)
	case "both":
		if err := export.WriteJSON(ds, cfg.Export.Output+".json", cfg.Export.Pretty); err != nil {
			return err
		}
		return export.WriteCSV(ds, cfg.Export.Output+"-csv")
	default:
		return fmt.Errorf("unsupported export format %q", cfg.Export.Format)
	}
}

func runLoaders(cfg *config.Config, log logger.Logger, ds *models.Dataset) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if cfg.Load.Postgres {
		pg, err := database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		defer pg.Close()
		if err := pg.Ping(ctx); err != nil {
			return err
		}
		if err := loader.NewPostgresLoader(pg, log).Load(ctx, ds); err != nil {
			return err
		}
	}

	if cfg.Load.Redis {
		rdb, err := database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		defer rdb.Close()
		if err := rdb.Ping(ctx); err != nil {
			return err
		}
		if err := loader.NewRedisLoader(rdb, log).Load(ctx, ds); err != nil {
			return err
		}
	}

	if cfg.Load.Elasticsearch {
		es, err := database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			return err
		}
		if err := es.Ping(); err != nil {
			return err
		}
		if err := loader.NewElasticsearchLoader(es, log).Load(ctx, ds); err != nil {
			return err
		}
	}

	return nil
}
