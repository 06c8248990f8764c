package commands

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ryosuke-horie/group-generator/internal/pairing"
	"github.com/ryosuke-horie/group-generator/internal/report"
	"github.com/ryosuke-horie/group-generator/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	generateRoster      string
	generateTeams       string
	generateExclude     []string
	generateOutput      string
	generateMaxAttempts int
	generateSeed        int64
	generateVerbose     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a pairing from roster and team CSV files",
	Long: `Generate runs one pairing search over the CSV inputs and writes the
result file on success.

Exit codes:
  0  a complete valid pairing was found
  1  fatal input error (missing file, missing column, odd population)
  2  no pairing found within the attempt budget

Examples:
  # Pair everyone from the two CSVs
  pairgen generate --roster people.csv --teams teams.csv

  # Exclude two people and cap the search at 500 attempts
  pairgen generate --roster people.csv --teams teams.csv \
    --exclude "Akiho Mitome" --exclude "Aya Shida" --max-attempts 500`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateRoster, "roster", "", "Roster CSV path with name and group columns (required)")
	generateCmd.Flags().StringVar(&generateTeams, "teams", "", "Wide-format team CSV path (required)")
	generateCmd.Flags().StringArrayVar(&generateExclude, "exclude", nil, "Name to exclude from pairing (repeatable)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Report file path (default: timestamped pairing_result_*.txt)")
	generateCmd.Flags().IntVar(&generateMaxAttempts, "max-attempts", pairing.DefaultMaxAttempts, "Attempt budget for the randomized search")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 0, "Random seed (0 seeds from the clock)")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Enable debug logging")
	_ = generateCmd.MarkFlagRequired("roster")
	_ = generateCmd.MarkFlagRequired("teams")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := zap.NewNop().Sugar()
	if generateVerbose {
		var err error
		log, err = logger.New("debug")
		if err != nil {
			return err
		}
	}

	var engine *pairing.Engine
	if generateSeed != 0 {
		engine = pairing.NewWithRand(log, rand.New(rand.NewSource(generateSeed)))
	} else {
		engine = pairing.New(log)
	}

	res, path, err := engine.SearchAndReport(pairing.FileParams{
		RosterPath:  generateRoster,
		TeamsPath:   generateTeams,
		Exclusions:  generateExclude,
		OutputPath:  generateOutput,
		MaxAttempts: generateMaxAttempts,
	})
	if err != nil {
		return &ExitError{Code: 1, Message: err.Error()}
	}

	if !res.Found {
		fmt.Fprint(cmd.OutOrStdout(), report.RenderFailure(res.Attempts, time.Now()))
		return &ExitError{Code: 2}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Pairing found (%d pairs, %d attempts):\n", len(res.Pairs), res.Attempts)
	for i, p := range res.Pairs {
		fmt.Fprintf(cmd.OutOrStdout(), "  Pair %d: %s, %s\n", i+1, p.First, p.Second)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved report to %s\n", path)
	return nil
}
