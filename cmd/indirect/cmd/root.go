package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "indirect",
	Short: "demo driver for the indirect memory library",
	Long: `indirect runs small demo programs against the typed indirection
and arena-allocation library: swap by value/reference/pointer, sequential
array fill, salary-rule evaluation, and indirect calls through a function
table.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commonlog.Configure(verbosity, nil)
	},
}

var verbosity int

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase log verbosity (repeatable)")
}
