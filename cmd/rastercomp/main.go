// Package main provides the CLI entry point for rastercomp.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/rastercomp/pkg/adapters/filesink"
	"github.com/user/rastercomp/pkg/adapters/gofonts"
	"github.com/user/rastercomp/pkg/adapters/imagedecoder"
	"github.com/user/rastercomp/pkg/adapters/imageencoder"
	"github.com/user/rastercomp/pkg/adapters/logger"
	"github.com/user/rastercomp/pkg/adapters/nullsink"
	"github.com/user/rastercomp/pkg/adapters/osfilesystem"
	"github.com/user/rastercomp/pkg/config"
	"github.com/user/rastercomp/pkg/orchestrator"
	"github.com/user/rastercomp/pkg/ports"
	"github.com/user/rastercomp/pkg/stages/composite"
	"github.com/user/rastercomp/pkg/stages/decode"
	"github.com/user/rastercomp/pkg/stages/encode"
	"github.com/user/rastercomp/pkg/stages/extract"
	"github.com/user/rastercomp/pkg/summarizer"
)

// Environment variables read in addition to the flags.
const (
	envConfig   = "RASTERCOMP_CONFIG"
	envLogLevel = "RASTERCOMP_LOG_LEVEL"
	envDebugDir = "RASTERCOMP_DEBUG_DIR"
)

// summaryFile is written to the debug directory after a successful run.
const summaryFile = "summary.md"

// CLI defines the command-line interface.
type CLI struct {
	Input  string `short:"i" required:"" help:"Input image path."`
	Output string `short:"o" default:"result.png" help:"Output image path."`
}

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("rastercomp"),
		kong.Description(l10n.T("Composite an image with a text overlay and report render latency.")),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the render.
func (cmd *CLI) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Create logger
	log := newLogger(cfg)

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		if _, ok := <-sigCh; ok {
			log.Warn(l10n.T("Interrupted, shutting down..."))
			cancel()
		}
	}()

	// Create adapters
	fs := osfilesystem.New()
	decoder := imagedecoder.New()
	encoder := imageencoder.New()
	fonts := gofonts.New()

	// Create debug sink
	var sink ports.DebugSink
	if cfg.DebugDir != "" {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.DebugDir, fs, encoder)
		if data, err := cfg.Marshal(); err == nil {
			if err := sink.SaveConfig(data); err != nil {
				log.Warn(l10n.F("Failed to save debug output: %s", err))
			}
		}
	} else {
		sink = nullsink.New()
	}

	orchConfig, err := cfg.ToOrchestratorConfig(cmd.Input, cmd.Output)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Create orchestrator
	orch := orchestrator.New(
		decode.NewStage(fs, decoder, sink, log),
		composite.NewStage(sink, log),
		extract.NewStage(log),
		encode.NewStage(encoder, fs, log),
		fonts,
		log,
	)

	result, err := orch.Run(ctx, orchConfig)
	if err != nil {
		return err
	}

	summary := summarizer.NewBuilder().
		WithSource(result.InputPath, result.Container, result.Width, result.Height).
		WithRender(summarizer.RenderInfo{
			Scale:      result.Scale,
			FontFamily: result.FontFamily,
			FontSize:   result.FontSize,
			DurationMs: result.RenderMs(),
		}).
		WithOutput(result.OutputPath, result.FileSize).
		Build()

	fmt.Println(summarizer.NewTextFormatter().Format(summary))
	log.Info(l10n.F("Output saved to %s", result.OutputPath))

	if sink.Enabled() {
		path := filepath.Join(cfg.DebugDir, summaryFile)
		if err := summarizer.NewWriter(summarizer.NewMarkdownFormatter(), fs).Write(path, summary); err != nil {
			log.Warn(l10n.F("Failed to write summary: %s", err))
		} else {
			log.Info(l10n.F("Summary saved to %s", path))
		}
	}

	return nil
}

// loadConfig reads the YAML named by RASTERCOMP_CONFIG, if set, and applies
// the remaining environment overrides.
func loadConfig() (config.Config, error) {
	cfg := config.Defaults()
	if path := os.Getenv(envConfig); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
		cfg = loaded
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(envDebugDir); v != "" {
		cfg.DebugDir = v
	}
	return cfg, nil
}

func newLogger(cfg config.Config) ports.Logger {
	level, ok := ports.ParseLogLevel(cfg.LogLevel)
	if level == ports.LevelQuiet {
		return logger.NewNoop()
	}
	log := logger.NewConsole(level)
	if !ok && cfg.LogLevel != "" {
		log.Warn(l10n.F("Unknown log level %q, using %s", cfg.LogLevel, level))
	}
	return log
}
