package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ochairo/solcheck/internal/domain-adapters/gateways"
	orchestrators "github.com/ochairo/solcheck/internal/domain-orchestrators"
	"github.com/ochairo/solcheck/internal/domain/entities"
	"github.com/ochairo/solcheck/internal/domain/interfaces"
	reportgw "github.com/ochairo/solcheck/internal/domain/interfaces/gateways"
	"github.com/ochairo/solcheck/internal/domain/services"
	"github.com/ochairo/solcheck/internal/external-adapters/chart"
	"github.com/ochairo/solcheck/internal/external-adapters/text"
	"github.com/ochairo/solcheck/internal/external-adapters/yaml"
)

const (
	defaultConfigFile = "solcheck.yml"
	configEnvVar      = "SOLCHECK_CONFIG"
)

// checkOptions holds the flags of the check command
type checkOptions struct {
	configPath string
	systems    string
	solutions  string
	epsilon    float64
	onError    string
	format     string
	output     string
	chart      string
	logLevel   string
	strict     bool
	set        map[string]bool
}

func runCheck(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	opts := checkOptions{}
	fs.StringVar(&opts.configPath, "config", "", "Config file (default: $SOLCHECK_CONFIG or ./solcheck.yml)")
	fs.StringVar(&opts.systems, "systems", "", "Systems file (header \"k n\" then k augmented matrices)")
	fs.StringVar(&opts.solutions, "solutions", "", "Solutions file (two lines per system)")
	fs.Float64Var(&opts.epsilon, "epsilon", entities.DefaultEpsilon, "Residual tolerance")
	fs.StringVar(&opts.onError, "on-error", "", "What a malformed system does: abort or skip")
	fs.StringVar(&opts.format, "format", "", "Report format: text or yaml")
	fs.StringVar(&opts.output, "output", "", "Write the report to a file instead of stdout")
	fs.StringVar(&opts.chart, "chart", "", "Render a residual chart (.png, .svg, .pdf)")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.BoolVar(&opts.strict, "strict", false, "Exit with status 2 when any vector is NOT a solution")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: solcheck check [options]

Verify the general solution and check vector of every system in a batch.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Check systems.txt against solutions.txt in the current directory
  solcheck check

  # Skip malformed systems and write a YAML report
  solcheck check --systems in.txt --solutions out.txt --on-error skip --format yaml

  # Fail CI when a vector is NOT a solution
  solcheck check --strict --chart residuals.png
`)
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	opts.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	err := executeCheck(ctx, opts, os.Stdout)
	if exitCode(err) == 1 {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(exitCode(err))
}

func executeCheck(ctx context.Context, opts checkOptions, stdout io.Writer) error {
	// Step 1: Resolve configuration
	cfg, err := loadRunConfig(opts)
	if err != nil {
		return err
	}

	level, err := interfaces.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := interfaces.NewTextLogger(os.Stderr, level)

	// Step 2: Verify input integrity
	if cfg.Security.Enabled() {
		integrity := orchestrators.NewIntegrityOrchestrator(gateways.NewCompositeIntegrityGateway(), logger)
		if _, err := integrity.VerifyInputs(ctx, cfg.Security, cfg.Inputs.Systems, cfg.Inputs.Solutions); err != nil {
			return fmt.Errorf("integrity check failed: %w", err)
		}
	}

	// Step 3: Run the batch
	//nolint:gosec // G304: input paths come from the user's flags or config
	systemsFile, err := os.Open(cfg.Inputs.Systems)
	if err != nil {
		return fmt.Errorf("failed to open systems file: %w", err)
	}
	defer func() { _ = systemsFile.Close() }()

	//nolint:gosec // G304: input paths come from the user's flags or config
	solutionsFile, err := os.Open(cfg.Inputs.Solutions)
	if err != nil {
		return fmt.Errorf("failed to open solutions file: %w", err)
	}
	defer func() { _ = solutionsFile.Close() }()

	batch := orchestrators.NewBatchOrchestrator(
		services.NewSolutionService(cfg.Epsilon),
		logger,
		orchestrators.BatchOrchestratorConfig{Limits: cfg.Limits, OnError: cfg.OnError},
	)
	report, runErr := batch.Run(ctx, text.NewMatrixReader(systemsFile), text.NewSolutionReader(solutionsFile))

	// Step 4: Render what was processed, even after an abort
	if report != nil && len(report.Results) > 0 {
		if err := writeReport(cfg.Report, report, stdout); err != nil {
			return err
		}
		if cfg.Report.Chart != "" {
			var renderer reportgw.ChartRenderer = chart.NewResidualChart()
			if err := renderer.Render(report, cfg.Report.Chart); err != nil {
				return err
			}
			logger.Info("residual chart written", interfaces.F("path", cfg.Report.Chart))
		}
	}

	if runErr != nil {
		return runErr
	}
	logger.Info("batch finished",
		interfaces.F("verified", report.Summary.Verified),
		interfaces.F("skipped", report.Summary.Skipped),
		interfaces.F("duration", report.Duration),
	)

	if opts.strict && report.Summary.FailedVectors > 0 {
		return errNotSolution
	}
	return nil
}

// loadRunConfig layers defaults, the config file and explicit flags, in that order
func loadRunConfig(opts checkOptions) (*entities.RunConfig, error) {
	parser := yaml.NewConfigParser()

	path := opts.configPath
	if path == "" {
		path = os.Getenv(configEnvVar)
	}
	if path == "" && fileExists(defaultConfigFile) {
		path = defaultConfigFile
	}

	cfg := entities.DefaultRunConfig()
	if path != "" {
		parsed, err := parser.ParseFile(path)
		if err != nil {
			return nil, err
		}
		cfg = *parsed
	}

	if opts.systems != "" {
		cfg.Inputs.Systems = opts.systems
	}
	if opts.solutions != "" {
		cfg.Inputs.Solutions = opts.solutions
	}
	if opts.set["epsilon"] {
		cfg.Epsilon = opts.epsilon
	}
	if opts.onError != "" {
		cfg.OnError = entities.ErrorPolicy(opts.onError)
	}
	if opts.format != "" {
		cfg.Report.Format = entities.ReportFormat(opts.format)
	}
	if opts.output != "" {
		cfg.Report.Output = opts.output
	}
	if opts.chart != "" {
		cfg.Report.Chart = opts.chart
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}

	if err := yaml.ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func writeReport(cfg entities.ReportConfig, report *entities.BatchReport, stdout io.Writer) error {
	var formatter reportgw.ReportFormatter = text.NewReportFormatter()
	if cfg.Format == entities.FormatYAML {
		formatter = yaml.NewReportWriter()
	}

	if cfg.Output == "" {
		return formatter.Format(stdout, report)
	}

	//nolint:gosec // G304: output path is user-selected
	out, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	if err := formatter.Format(out, report); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
