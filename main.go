package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/wildstyl3r/roots/internal/config"
	"github.com/wildstyl3r/roots/internal/driver"
	"github.com/wildstyl3r/roots/internal/logging"
	"github.com/wildstyl3r/roots/internal/report"
	"github.com/wildstyl3r/roots/internal/solver"
	"github.com/wildstyl3r/roots/internal/utils"
)

func main() {
	outputFlags := report.NewFlags(flag.CommandLine)
	var configFileName = flag.String("input", "", "run configuration in toml format (the built-in sequence is used when empty)")
	var verbose = flag.Bool("v", false, "log every finished run")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := logging.New(os.Stderr, level)

	startTime := time.Now()
	fmt.Printf("Current time: %s\n", startTime.UTC().Format(time.UnixDate))

	cfg := config.Default()
	invocations := driver.DefaultSequence()
	if *configFileName != "" {
		var err error
		cfg, _, err = config.LoadConfig(*configFileName)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		invocations, err = driver.FromConfig(&cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	outputPath, err := utils.OutputPath(cfg.OutputDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	outputFlags.SetOutputPath(outputPath)

	writers, summary, err := outputFlags.Open(os.Stdout, cfg.Name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	runs, runErr := driver.New(cfg.Policy(), writers, logger).Run(invocations)
	if err := writers.Close(); err != nil {
		logger.Error("unable to close outputs", "error", err)
	}
	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr)
		os.Exit(1)
	}
	if err := outputFlags.SaveSummary(summary, cfg.Name); err != nil {
		logger.Error("unable to save summary", "error", err)
	}

	means := driver.MeanIterations(runs)
	methods := make([]solver.Method, 0, len(means))
	for method := range means {
		methods = append(methods, method)
	}
	sort.Slice(methods, func(i, j int) bool { return methods[i] < methods[j] })
	fmt.Println()
	for _, method := range methods {
		fmt.Printf("%-16s mean iterations: %.2f\n", method, means[method])
	}
	fmt.Printf("Elapsed time: %v\n", time.Since(startTime))
}
