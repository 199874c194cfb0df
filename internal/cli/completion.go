package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// newCompletionCmd creates the completion command for generating shell completions
func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for the routeaudit CLI.

To load completions in the current shell session:

  Bash:        source <(routeaudit completion bash)
  Zsh:         source <(routeaudit completion zsh)
  Fish:        routeaudit completion fish | source
  PowerShell:  routeaudit completion powershell | Out-String | Invoke-Expression

To load completions in every new session, write the script to your shell's
completion directory once:

  routeaudit completion bash > /etc/bash_completion.d/routeaudit
  routeaudit completion zsh > "${fpath[1]}/_routeaudit"
  routeaudit completion fish > ~/.config/fish/completions/routeaudit.fish

For zsh, completion must already be enabled in your environment:

  echo "autoload -U compinit; compinit" >> ~/.zshrc
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		// Completion needs no cluster or config access; skip the parent's setup
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompletion(cmd, args[0])
		},
	}

	return cmd
}

// runCompletion generates the completion script for the specified shell
func runCompletion(cmd *cobra.Command, shell string) error {
	switch shell {
	case "bash":
		return cmd.Root().GenBashCompletion(os.Stdout)
	case "zsh":
		return cmd.Root().GenZshCompletion(os.Stdout)
	case "fish":
		return cmd.Root().GenFishCompletion(os.Stdout, true)
	case "powershell":
		return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
	default:
		return fmt.Errorf("unsupported shell type %q", shell)
	}
}
