package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/routeaudit/routeaudit/pkg/version"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// newVersionCmd creates the version command
func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Display detailed version information for the routeaudit CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion(cmd)
		},
	}

	return cmd
}

func runVersion(cmd *cobra.Command) error {
	info := version.Get()
	w := cmd.OutOrStdout()
	format, _ := cmd.Flags().GetString("output")

	switch format {
	case "json":
		out, err := info.JSON()
		if err != nil {
			return fmt.Errorf("failed to marshal version info to JSON: %w", err)
		}
		fmt.Fprintln(w, out)

	case "yaml":
		data, err := yaml.Marshal(info)
		if err != nil {
			return fmt.Errorf("failed to marshal version info to YAML: %w", err)
		}
		fmt.Fprint(w, string(data))

	case "table":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "COMPONENT\tVALUE")
		fmt.Fprintf(tw, "Version\t%s\n", info.Version)
		fmt.Fprintf(tw, "Commit\t%s\n", info.Commit)
		fmt.Fprintf(tw, "Build Time\t%s\n", info.BuildTime)
		fmt.Fprintf(tw, "Go Version\t%s\n", info.GoVersion)
		fmt.Fprintf(tw, "Platform\t%s\n", info.Platform)
		return tw.Flush()

	default:
		fmt.Fprintln(w, info.String())
	}

	return nil
}
