package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jackmart/promo-planner/internal/calendar"
	"github.com/jackmart/promo-planner/internal/catalog"
	"github.com/jackmart/promo-planner/internal/config"
	"github.com/jackmart/promo-planner/internal/history"
	"github.com/jackmart/promo-planner/internal/planner"
	"github.com/jackmart/promo-planner/internal/server"
	"github.com/jackmart/promo-planner/pkg/constants"
	"github.com/jackmart/promo-planner/pkg/datetime"
	"github.com/jackmart/promo-planner/pkg/format"
	"github.com/jackmart/promo-planner/pkg/output"
	"github.com/jackmart/promo-planner/pkg/validation"
)

var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "console"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Route logs away from stdout so they do not interleave with the report
	zapConfig.OutputPaths = []string{"stderr"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}
		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	configLocation := flag.String("config", "", "path to optional configuration file")
	dateFlag := flag.String("date", "", "plan date (YYYY-MM-DD); empty picks the best boosted day within 30 days")
	targetFlag := flag.Float64("target", 0, "minimum daily incremental-profit target per store (Rupiah)")
	topFlag := flag.Int("top", 0, "number of campaigns printed per store")
	noDetails := flag.Bool("no-details", false, "suppress the per-store campaign details")
	analytics := flag.Bool("analytics", false, "print category performance and chain insights")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	serveFlag := flag.Bool("serve", false, "serve the plan API over HTTP instead of running once")
	flag.Parse()

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration at %s: %v\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// CLI overrides take precedence over config
	target := conf.Planner.TargetPerStore
	if *targetFlag > 0 {
		target = *targetFlag
	}
	topN := conf.Output.TopN
	if *topFlag > 0 {
		topN = *topFlag
	}
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	stores := catalog.Stores()
	categories := catalog.Categories()
	p := planner.New(logger, stores, categories)

	if *serveFlag {
		handler := server.NewHandler(logger, conf, p, version)
		logger.Info("serving plan API",
			zap.String("op", "main"),
			zap.String("address", conf.Server.Address),
		)
		if err := http.ListenAndServe(conf.Server.Address, handler); err != nil {
			logger.Fatal("server failed",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		return
	}

	// Resolve the plan date. A malformed date is the one fatal input error.
	var day time.Time
	if *dateFlag != "" {
		day, err = datetime.ParseDay(*dateFlag)
		if err != nil {
			logger.Fatal("invalid plan date",
				zap.String("op", "main"),
				zap.String("date", *dateFlag),
				zap.Error(err),
			)
		}
	} else {
		day = calendar.BestUpcomingDay(time.Now(), constants.DefaultDateHorizonDays)
		logger.Info("no date given, picked best upcoming boosted day",
			zap.String("op", "main"),
			zap.String("date", day.Format(datetime.DateTimeLayout)),
		)
	}

	plan := p.BuildPlan(day, target)

	if err := output.WritePlanCSV(conf.Output.PlanFile, plan.Details); err != nil {
		logger.Fatal("failed to write plan CSV",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	if err := output.WriteSummaryCSV(conf.Output.SummaryFile, plan.Summaries); err != nil {
		logger.Fatal("failed to write summary CSV",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	if conf.History.DatabasePath != "" {
		store, err := history.Open(conf.History.DatabasePath)
		if err != nil {
			logger.Fatal("failed to open plan history",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		defer func() {
			_ = store.Close()
		}()
		if err := store.Save(plan); err != nil {
			logger.Fatal("failed to save plan history",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrintRunHeader(plan, target)
		if *noDetails {
			grand := 0
			for _, s := range plan.Summaries {
				grand += s.IncrementalProfitTotal
			}
			fmt.Printf("\nTotal incremental profit (%d stores): %s\n", len(plan.Summaries), format.Rupiah(float64(grand)))
			fmt.Printf("Files written: %s & %s\n", conf.Output.PlanFile, conf.Output.SummaryFile)
		} else {
			output.PrettyFormat(plan, target, topN)
			if *analytics {
				output.PrintCategoryPerformance(plan)
				output.PrintChainSummary(plan)
			}
		}
	case constants.OutputFormatCSV:
		logger.Info("plan written",
			zap.String("op", "main"),
			zap.String("planFile", conf.Output.PlanFile),
			zap.String("summaryFile", conf.Output.SummaryFile),
		)
	}
}
