package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/routeaudit/routeaudit/internal/cluster"
	"github.com/routeaudit/routeaudit/internal/collector"
	"github.com/routeaudit/routeaudit/internal/config"
	"github.com/routeaudit/routeaudit/internal/output"
	"github.com/routeaudit/routeaudit/internal/routes"
	"github.com/routeaudit/routeaudit/internal/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Audit routes across all namespaces",
		Long: `Scan queries every namespace in the cluster for its route objects and
prints a complete per-namespace report.

Namespaces are queried concurrently over a bounded worker pool. A failed
query is contained to its namespace: the run continues, the failure is
logged, and the namespace still appears in the report.`,
		Example: `  # Audit all namespaces with the default settings
  routeaudit scan

  # Sequential audit against a specific context
  routeaudit scan --context prod -c 1

  # Machine-readable report
  routeaudit scan -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd.Context())
		},
	}

	return cmd
}

func runScan(ctx context.Context) error {
	logger := slog.Default()

	client, err := connectCluster(ctx, logger)
	if err != nil {
		return err
	}

	routeClient := routes.NewClient(client.Clientset, client.Dynamic, logger)

	namespaces, err := routeClient.ListNamespaces(ctx)
	if err != nil {
		return fmt.Errorf("cannot audit: %w", err)
	}
	if len(namespaces) == 0 {
		return util.ErrNoNamespaces
	}

	logger.Info("starting audit",
		"namespaces", len(namespaces),
		"concurrency", viper.GetInt("concurrency"))

	coll := collector.New(viper.GetInt("concurrency"), logger,
		collector.WithFetchTimeout(viper.GetDuration("fetch-timeout")),
		collector.WithProgress(func(namespace string, phase collector.Phase) {
			logger.Debug("fetch progress", "namespace", namespace, "phase", phase)
		}))

	runCtx, cancel := context.WithTimeout(ctx, viper.GetDuration("timeout"))
	defer cancel()

	report, outcomes := coll.Collect(runCtx, routeClient, namespaces)

	summary := collector.Summarize(outcomes)
	logger.Info("audit complete",
		"namespaces", summary.Total,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
		"routes", summary.Routes)

	formatter := output.NewFormatter(
		output.Format(viper.GetString("output")),
		output.WithNoColor(viper.GetBool("no-color")))

	return formatter.Format(os.Stdout, report, outcomes)
}

// connectCluster resolves the kubeconfig, builds the cluster client for the
// selected context and verifies the control plane answers.
func connectCluster(ctx context.Context, logger *slog.Logger) (*cluster.Client, error) {
	loader := config.NewKubeconfigLoader(viper.GetString("kubeconfig"))

	contextName := viper.GetString("context")
	if contextName == "" {
		current, err := loader.GetCurrentContext()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve kubeconfig context: %w", err)
		}
		contextName = current
	}

	restConfig, err := loader.BuildClientConfig(contextName)
	if err != nil {
		return nil, err
	}

	client, err := cluster.NewClient(contextName, restConfig, logger)
	if err != nil {
		return nil, err
	}

	if err := client.HealthCheck(ctx); err != nil {
		return nil, fmt.Errorf("%w: cluster %q: %v", util.ErrConnectionFailed, contextName, err)
	}

	logger.Debug("connected to cluster", "context", contextName)

	return client, nil
}
