package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/scanparse"
	"github.com/msto63/scanparse/ast"
	"github.com/msto63/scanparse/core/config"
	splog "github.com/msto63/scanparse/core/log"
)

var (
	cfgFile   string
	verbose   bool
	color     bool
	keepGoing bool
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "scanparse <file>",
	Short: "Tokenize and parse arithmetic expressions",
	Long: `scanparse reads a file of arithmetic expressions, one per line,
and prints the parse tree of each line level by level.

The expression grammar supports identifiers, numbers, addition,
multiplication, and parentheses:

  ab12 + (c*3)

Each parse tree is printed breadth-first, one tree level per output
line, followed by a blank line.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.ArbitraryArgs,
	RunE:          runRoot,
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: discovered scanparse.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&color, "color", false, "colorize parse tree output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (text, json, console)")
	rootCmd.Flags().BoolVarP(&keepGoing, "keep-going", "k", false, "continue past syntax errors")
}

func runRoot(cmd *cobra.Command, args []string) error {
	// the historical usage path is not an error
	if len(args) != 1 {
		return cmd.Usage()
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	logger, err := buildLogger(settings)
	if err != nil {
		return err
	}

	engine, err := scanparse.NewEngine(scanparse.Options{
		Logger:        logger,
		MaxLineLength: settings.MaxLineLength,
		KeepGoing:     settings.KeepGoing,
		Renderer:      ast.NewRenderer(ast.RenderOptions{Color: settings.Color}),
	})
	if err != nil {
		return err
	}

	_, err = engine.RunFile(context.Background(), args[0], cmd.OutOrStdout())
	return err
}

// loadSettings merges the configuration file with command line overrides
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	path := cfgFile
	if path == "" {
		path = config.Discover()
	}

	settings := config.DefaultSettings()
	if path != "" {
		cfg, err := config.LoadFile(path)
		if err != nil {
			return settings, err
		}
		settings = cfg.Settings()
	}

	if verbose {
		settings.LogLevel = "debug"
	}
	if logLevel != "" {
		settings.LogLevel = logLevel
	}
	if logFormat != "" {
		settings.LogFormat = logFormat
	}
	if cmd.Flags().Changed("color") {
		settings.Color = color
	}
	if cmd.Flags().Changed("keep-going") {
		settings.KeepGoing = keepGoing
	}

	return settings, nil
}

// buildLogger constructs the logger from the resolved settings
func buildLogger(settings config.Settings) (*splog.Logger, error) {
	level, err := splog.ParseLevel(settings.LogLevel)
	if err != nil {
		return nil, err
	}

	format, err := splog.ParseFormat(settings.LogFormat)
	if err != nil {
		return nil, err
	}

	return splog.New().
		WithName("scanparse").
		WithLevel(level).
		WithFormat(format), nil
}
