package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modu-ai/scaffold/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Scaffold new software projects",
	Long: `scaffold creates the skeleton of a new software project.

It asks for the project's name, license, visibility and language, then
writes a license file, a language-specific skeleton and a README, and
optionally initializes a git repository registered with a VCS host.

Every question can be answered ahead of time with --decision or a
configuration file, which makes unattended runs possible.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// @MX:ANCHOR: [AUTO] Execute is the main entry point for the scaffold CLI
// @MX:REASON: [AUTO] fan_in=2, called from cmd/scaffold/main.go and root_test.go
// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("scaffold %s\n", version.GetFullVersion()))
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log every scaffolding step to stderr")

	rootCmd.AddCommand(newCmd)
}
