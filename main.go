//go:build !js
// +build !js

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

type flags struct {
	fs       *flag.FlagSet
	config   *string
	script   *string
	runs     *int
	parallel *int
	template *string
	color    *string
	verbose  *bool
}

func newFlags(fs *flag.FlagSet) *flags {
	return &flags{
		fs:       fs,
		config:   fs.String("config", "", "YAML config file; flags given on the command line override it"),
		script:   fs.String("script", "", "txtar assertion script (default: the built-in initializer sequence)"),
		runs:     fs.Int("runs", DefaultConfig.Runs, "number of runs, each against a fresh module"),
		parallel: fs.Int("parallel", DefaultConfig.Parallel, "maximum number of concurrent runs"),
		template: fs.String("template", "", "txtar file with a custom report.tmpl"),
		color:    fs.String("color", DefaultConfig.Color, "colorize the report: auto, always or never"),
		verbose:  fs.Bool("v", false, "enable debug logging"),
	}
}

var commandLine = newFlags(flag.CommandLine)

func main() {
	flag.Parse()
	os.Exit(realMain())
}

// realMain returns the exit status: 1 when a run fails, 2 on usage or
// configuration errors.
func realMain() int {
	cfg, err := commandLine.configure()
	if err != nil {
		fmt.Fprintln(os.Stderr, "export-fixture:", err)
		return 2
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, "export-fixture:", err)
		return 2
	}
	defer logger.Sync()

	passed, err := run(context.Background(), os.Stdout, cfg, colorEnabled(cfg.Color, os.Stdout), logger)
	if err != nil {
		logger.Error("fixture run failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "export-fixture:", err)
		return 2
	}
	if !passed {
		return 1
	}
	return 0
}

// configure merges the config file, if any, with explicitly set flags and
// validates the result.
func (f *flags) configure() (*Config, error) {
	cfg := &Config{}
	*cfg = DefaultConfig
	if *f.config != "" {
		var err error
		if cfg, err = loadConfig(*f.config); err != nil {
			return nil, err
		}
	}
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "script":
			cfg.Script = *f.script
		case "runs":
			cfg.Runs = *f.runs
		case "parallel":
			cfg.Parallel = *f.parallel
		case "template":
			cfg.Template = *f.template
		case "color":
			cfg.Color = *f.color
		case "v":
			cfg.Verbose = *f.verbose
		}
	})
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

// colorEnabled resolves the color mode; auto colors only terminals.
func colorEnabled(mode string, f *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
