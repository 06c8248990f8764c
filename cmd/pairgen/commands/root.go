// Package commands contains the pairgen CLI command tree.
package commands

import "github.com/spf13/cobra"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pairgen",
	Short: "Pairgen - constraint-satisfying pair generator",
	Long: `Pairgen partitions a roster into two-person pairs where both members
belong to different organizational groups and different teams.

It reads a roster CSV (name, group columns) and a wide-format team CSV
(one column per team, cells are member names), then runs a randomized
greedy search with restarts until a complete valid pairing is found or
the attempt budget is exhausted.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// ExitError carries an explicit process exit code out of a command.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
