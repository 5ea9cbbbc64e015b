// Command longhorn loads a student population and answers questions about
// it: connection graph, roommate assignments, referral paths and pods.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "longhorn",
		Short: "Student connection graph, roommate matching and referral paths",
		Long: `longhorn scores how strongly students are connected, pairs them into
roommates from their preference lists, and finds the strongest chain of
acquaintance to someone who interned at a given company.

The population comes from --data (text or YAML) or one of the built-in
test cases selected with --case.`,
		SilenceUsage: true,
	}
	addPersistentFlags(rootCmd)

	rootCmd.AddCommand(
		newCasesCmd(),
		newStudentsCmd(),
		newStudentCmd(),
		newGraphCmd(),
		newRoommatesCmd(),
		newReferralCmd(),
		newPodsCmd(),
		newWatchCmd(),
	)

	return rootCmd
}

func addPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("config", "", "YAML configuration file")
	cmd.PersistentFlags().String("data", "", "population file (.txt or .yaml)")
	cmd.PersistentFlags().Int("case", 0, "built-in test case to load when --data is not set")
	cmd.PersistentFlags().Bool("json", false, "output as JSON")
}
