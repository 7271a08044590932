package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/dsh/internal/config"
	"github.com/msto63/dsh/internal/editor"
	"github.com/msto63/dsh/internal/output"
	"github.com/msto63/dsh/internal/prompt"
	"github.com/msto63/dsh/internal/shell"
	"github.com/msto63/dsh/internal/store/docstore"
	"github.com/msto63/dsh/pkg/log"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "dsh FILE",
	Short: "dsh - interactive shell for structured data files",
	Long: `dsh opens a structured data file (YAML, JSON or TOML) and presents its
contents as a navigable namespace: mappings become groups, values become
datasets, YAML aliases become links. Move around with cd, inspect with ls,
cat and attr, search with find.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShell(args[0])
	},
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func loadConfig() config.Config {
	if cfgFile == "" {
		return config.LoadDefault()
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v, using defaults\n", err)
	}
	return cfg
}

func newLogger(cfg config.Config) *log.Logger {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = log.DefaultLevel()
	}
	if verbose {
		level = log.LevelDebug
	}
	format, err := log.ParseFormat(cfg.Log.Format)
	if err != nil {
		format = log.FormatText
	}
	return log.NewWithConfig(log.Config{
		Level:     level,
		Format:    format,
		Output:    os.Stderr,
		Name:      "dsh",
		SessionID: uuid.NewString(),
	})
}

func runShell(filename string) error {
	cfg := loadConfig()
	logger := newLogger(cfg)
	log.SetDefault(logger)

	store, err := docstore.Open(filename, logger)
	if err != nil {
		return fmt.Errorf("opening %s: %w", filename, err)
	}

	styles := output.DefaultStyles().WithColors(
		cfg.Colors.Group, cfg.Colors.Dataset, cfg.Colors.Attribute, cfg.Colors.Link)
	printer := output.NewPrinter(os.Stdout, styles)

	sh := shell.New(store, printer, shell.Options{
		Logger:        logger,
		MaxCandidates: cfg.Completion.MaxCandidates,
	})
	renderer := prompt.New(filepath.Base(filename), cfg.Prompt.Sigil, styles)

	ed, err := editor.New(editor.Options{
		Prompt:           renderer.Render(sh.WorkingGroup().String()),
		HistoryFile:      cfg.HistoryFile(),
		CompleteCommands: sh.CompleteCommands,
		CompletePaths:    sh.Complete,
	})
	if err != nil {
		return fmt.Errorf("initializing line editor: %w", err)
	}
	defer ed.Close()

	logger.Info("session started", log.Fields{"file": filename})

	for {
		ed.SetPrompt(renderer.Render(sh.WorkingGroup().String()))
		line, event := ed.Poll()
		switch event {
		case editor.EventSkip:
			continue
		case editor.EventExit:
			return nil
		}

		switch sh.Execute(line) {
		case shell.ExitSuccess:
			return nil
		case shell.ExitFailure:
			return fmt.Errorf("shell exited with failure")
		}
	}
}
