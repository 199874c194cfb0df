package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/routeaudit/routeaudit/internal/output"
	"github.com/routeaudit/routeaudit/internal/routes"
	"github.com/routeaudit/routeaudit/internal/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func newNamespacesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "namespaces",
		Aliases: []string{"ns"},
		Short:   "List the namespaces an audit would cover",
		Long: `List every namespace in the cluster, sorted by name.

This is the exact namespace set a scan fans out over; it is useful for
checking connectivity and scope before running a full audit.`,
		Example: `  # List namespaces in the current context
  routeaudit namespaces

  # List namespaces in JSON format
  routeaudit namespaces -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNamespaces(cmd.Context())
		},
	}

	return cmd
}

func runNamespaces(ctx context.Context) error {
	logger := slog.Default()

	client, err := connectCluster(ctx, logger)
	if err != nil {
		return err
	}

	routeClient := routes.NewClient(client.Clientset, client.Dynamic, logger)

	namespaces, err := routeClient.ListNamespaces(ctx)
	if err != nil {
		return err
	}
	if len(namespaces) == 0 {
		return util.ErrNoNamespaces
	}

	sort.Strings(namespaces)

	switch viper.GetString("output") {
	case "json":
		data, err := json.MarshalIndent(namespaces, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal namespaces to JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	case "yaml":
		data, err := yaml.Marshal(namespaces)
		if err != nil {
			return fmt.Errorf("failed to marshal namespaces to YAML: %w", err)
		}
		fmt.Print(string(data))
		return nil
	default:
		return printNamespacesTable(namespaces)
	}
}

func printNamespacesTable(namespaces []string) error {
	colors := output.NewColorScheme(os.Stdout, viper.GetBool("no-color"))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, colors.Header("NAME"))
	for _, ns := range namespaces {
		fmt.Fprintln(w, colors.Namespace("%s", ns))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "\nTotal: %d namespaces\n", len(namespaces))

	return nil
}
