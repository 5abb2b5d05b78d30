// surfacegen regenerates the v1/contextitems export surface from the
// canonical v1 package. Run it from the repository root after changing any
// v1 declaration:
//
//	go run ./cmd/surfacegen
//
// Settings come from surfacegen.toml, MEGASCRIPT_-prefixed environment
// variables, or command-line flags, in ascending order of precedence.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Infigo-Official/types-for-megascript/internal/surfacegen"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "surfacegen",
		Short:        "Regenerate the contextitems export surface from the canonical package",
		SilenceUsage: true,
		RunE:         run,
	}

	cmd.Flags().String("source", "", "canonical package directory")
	cmd.Flags().String("output", "", "directory receiving the generated files")
	cmd.Flags().String("package", "", "name of the generated package")
	cmd.Flags().String("import-path", "", "import path of the canonical package")

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := surfacegen.LoadConfig(cmd.Flags())
	if err != nil {
		fallbackLogger().Error("Failed to load configuration", zap.Error(err))
		return err
	}

	logger := newLogger(cfg.LogLevel)
	defer logger.Sync() //nolint:errcheck

	written, err := surfacegen.Generate(surfacegen.Options{
		SourceDir:  cfg.SourceDir,
		OutputDir:  cfg.OutputDir,
		Package:    cfg.Package,
		ImportPath: cfg.ImportPath,
	})
	if err != nil {
		logger.Error("Generation failed", zap.Error(err))
		return err
	}

	logger.Info("Surface generated",
		zap.String("source", cfg.SourceDir),
		zap.String("output", cfg.OutputDir),
		zap.Int("files", len(written)),
		zap.Strings("written", written),
	)
	return nil
}

func newLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	logger, err := cfg.Build()
	if err != nil {
		return fallbackLogger()
	}
	return logger
}

func fallbackLogger() *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig()),
		zapcore.Lock(os.Stderr),
		zapcore.InfoLevel,
	)
	return zap.New(core)
}
