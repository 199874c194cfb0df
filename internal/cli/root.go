package cli

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/routeaudit/routeaudit/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
)

// Execute runs the root command with the provided context
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd creates the root command
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "routeaudit",
		Short: "Routeaudit - OpenShift route auditing tool",
		Long: `Routeaudit inventories the routes exposed by every namespace in an
OpenShift cluster. It fans one route query per namespace out over a bounded
worker pool and assembles a complete report: every namespace is accounted
for even when some queries fail.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
	}

	// Define persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.routeaudit.yaml)")
	rootCmd.PersistentFlags().String("kubeconfig", "", "path to kubeconfig file (default is $HOME/.kube/config)")
	rootCmd.PersistentFlags().String("context", "", "kubeconfig context to use (default is the current context)")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "output format (text, table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output with debug logging")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().Duration("timeout", config.DefaultTimeout, "timeout for the whole run")
	rootCmd.PersistentFlags().Duration("fetch-timeout", config.DefaultFetchTimeout, "timeout for a single namespace query")
	rootCmd.PersistentFlags().IntP("concurrency", "c", config.DefaultConcurrency, "number of namespaces queried in parallel (1 means sequential)")

	// Bind flags to viper
	viper.BindPFlag("kubeconfig", rootCmd.PersistentFlags().Lookup("kubeconfig"))
	viper.BindPFlag("context", rootCmd.PersistentFlags().Lookup("context"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag("fetch-timeout", rootCmd.PersistentFlags().Lookup("fetch-timeout"))
	viper.BindPFlag("concurrency", rootCmd.PersistentFlags().Lookup("concurrency"))

	// Add subcommands
	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newNamespacesCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// initConfig initializes configuration and logging
func initConfig(cmd *cobra.Command) error {
	manager := config.NewManager(cfgFile)

	cfg, err := manager.Load()
	if err != nil {
		return err
	}

	// Config-file values apply only where the flag was left untouched and
	// the key was actually present in the file. Keys that applyDefaults
	// filled in stay unset here so ROUTEAUDIT_* env overrides keep their
	// place in the precedence chain (flag > file > env > default).
	flags := cmd.Flags()
	if !flags.Changed("concurrency") && manager.InConfigFile("defaults.concurrency") {
		viper.Set("concurrency", cfg.Defaults.Concurrency)
	}
	if !flags.Changed("timeout") && manager.InConfigFile("defaults.timeout") {
		viper.Set("timeout", cfg.Defaults.Timeout)
	}
	if !flags.Changed("fetch-timeout") && manager.InConfigFile("defaults.fetchTimeout") {
		viper.Set("fetch-timeout", cfg.Defaults.FetchTimeout)
	}
	if !flags.Changed("output") && manager.InConfigFile("defaults.outputFormat") {
		viper.Set("output", cfg.Defaults.OutputFormat)
	}
	if !flags.Changed("no-color") && manager.InConfigFile("defaults.noColor") {
		viper.Set("no-color", cfg.Defaults.NoColor)
	}
	if !flags.Changed("context") && cfg.Context != "" {
		viper.Set("context", cfg.Context)
	}

	// Read environment variables
	viper.SetEnvPrefix("ROUTEAUDIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Setup structured logging
	setupLogging(cmd)

	return nil
}

// setupLogging configures structured logging with slog
func setupLogging(cmd *cobra.Command) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	noColor, _ := cmd.Flags().GetBool("no-color")

	// Set log level based on verbose flag
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var handler slog.Handler
	if noColor {
		// Use JSON handler for no-color mode
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		// Use text handler for colored output
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	// Set default logger
	logger := slog.New(handler)
	slog.SetDefault(logger)

	if verbose {
		slog.Debug("verbose logging enabled")
	}
}
