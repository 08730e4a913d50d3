package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	reflections "github.com/unowned-ai/reflections/pkg"
	"github.com/unowned-ai/reflections/pkg/config"
	pkgdb "github.com/unowned-ai/reflections/pkg/db"
	"github.com/unowned-ai/reflections/pkg/journal"
	"github.com/unowned-ai/reflections/pkg/logging"
	"github.com/unowned-ai/reflections/pkg/storage"
)

var (
	configPath string
	backend    string
	dbPath     string
	walMode    bool
	syncMode   string
	logLevel   string

	cfg    *config.Config
	logger = logging.NewNop()
)

var rootCmd = &cobra.Command{
	Use:     "reflections",
	Short:   "A daily self-reflection journal with mood trends and recurring themes.",
	Long:    ``,
	Version: fmt.Sprintf("v%s", reflections.Version),
	// Output of failed commands is printed once by main.
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// loadConfig reads file and environment settings, then applies any flags
// the user set explicitly.
func loadConfig(cmd *cobra.Command) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("backend") {
		loaded.Storage.Backend = backend
	}
	if flags.Changed("db") {
		loaded.Storage.Path = dbPath
	}
	if flags.Changed("wal") {
		loaded.Storage.WAL = walMode
	}
	if flags.Changed("sync") {
		loaded.Storage.Sync = syncMode
	}
	if flags.Changed("log-level") {
		loaded.Log.Level = logLevel
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	l, err := logging.New(loaded.Log)
	if err != nil {
		return err
	}
	cfg, logger = loaded, l
	return nil
}

// openStore opens the configured backend and loads the journal from it.
// Callers must close the returned backend.
func openStore(ctx context.Context) (*journal.Store, storage.Backend, error) {
	return openStoreWithLogger(ctx, logger)
}

// openStoreWithLogger opens the journal with l receiving storage and save
// diagnostics.
func openStoreWithLogger(ctx context.Context, l *logging.Logger) (*journal.Store, storage.Backend, error) {
	b, err := storage.Open(ctx, cfg.Storage, l)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Backend, err)
	}
	l.Debug(ctx, "storage opened",
		zap.String("backend", cfg.Storage.Backend),
		zap.String("path", cfg.Storage.ResolvedPath()))

	store := journal.NewStore(b, journal.WithLogger(l))
	store.Load(ctx)
	return store, b, nil
}

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

var completionCmd = &cobra.Command{
	Use:   fmt.Sprintf("completion %s", strings.Join(completionShells, "|")),
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for reflections.

The command prints a completion script to stdout. You can source it in your shell
or install it to the appropriate location for your shell to enable completions permanently.

Examples:

  Bash (current shell):
    $ source <(reflections completion bash)

  Zsh:
    $ reflections completion zsh > "${fpath[1]}/_reflections"

  Fish:
    $ reflections completion fish > ~/.config/fish/completions/reflections.fish

  PowerShell:
    PS> reflections completion powershell | Out-String | Invoke-Expression`,
	DisableFlagsInUseLine: true,
	ValidArgs:             completionShells,
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	PersistentPreRunE:     func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return rootCmd.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell: %s", args[0])
		}
	},
}

var versionCmd = &cobra.Command{
	Use:               "version",
	Short:             "Print the version number of reflections",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), reflections.Version)
	},
}

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the reflections SQLite database",
}

var dbUpgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Create or upgrade the SQLite journal schema",
	Long: `Connects to the SQLite database at the configured path (--db or storage.path) and
brings the journal schema to the current version. A missing database is created.
Only applies to the sqlite storage backend.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Storage.Backend != storage.BackendSQLite {
			return errors.New("db upgrade only applies to the sqlite backend (use --backend sqlite)")
		}
		path := cfg.Storage.ResolvedPath()
		fmt.Fprintf(cmd.OutOrStdout(), "Upgrading journal schema in database at: %s (WAL: %t, Sync: %s)\n",
			path, cfg.Storage.WAL, cfg.Storage.Sync)

		// storage.Open runs the upgrade.
		b, err := storage.Open(cmd.Context(), cfg.Storage, logger)
		if err != nil {
			return err
		}
		defer b.Close()

		fmt.Fprintf(cmd.OutOrStdout(), "Schema is at version %d.\n", pkgdb.TargetSchemaVersion)
		return nil
	},
}

func initCmd() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Path to a YAML config file (default ~/.config/reflections/config.yaml)")
	pf.StringVar(&backend, "backend", storage.BackendJSON, "Storage backend: json or sqlite")
	pf.StringVar(&dbPath, "db", "", "Path to the journal file (uses a system-specific default if not provided)")
	pf.BoolVar(&walMode, "wal", false, "Enable SQLite WAL (Write-Ahead Logging) mode")
	pf.StringVar(&syncMode, "sync", "FULL", "SQLite synchronous pragma (OFF, NORMAL, FULL, EXTRA)")
	pf.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	dbCmd.AddCommand(dbUpgradeCmd)

	initEntriesCmd()
	initInsightsCmds()
	initShareCmds()
	rootCmd.AddCommand(completionCmd, versionCmd, dbCmd, entriesCmd, mcpCmd, tuiCmd)
}

func main() {
	initCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
