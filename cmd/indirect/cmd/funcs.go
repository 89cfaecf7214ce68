package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mahithakrar/indirect/functab"
)

// funcsCmd represents the funcs command
var funcsCmd = &cobra.Command{
	Use:   "funcs [name]",
	Short: "invoke a handler from the demo function table by name",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table := demoTable()

		name := "inc"
		if len(args) == 1 {
			name = args[0]
		}

		fmt.Printf("registered: %v\n", table.Names())
		result, err := table.Invoke(name, funcArg)
		if err != nil {
			return err
		}
		fmt.Printf("%s(%d) = %v\n", name, funcArg, result)
		return nil
	},
}

// demoTable registers the integer handlers the demo dispatches through.
func demoTable() *functab.Table {
	table := functab.NewTable()

	unary := func(name string, f func(int) int) {
		if err := table.Register(name, func(args ...any) (any, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("%s expects 1 argument, got %d", name, len(args))
			}
			n, ok := args[0].(int)
			if !ok {
				return nil, fmt.Errorf("%s expects an int, got %T", name, args[0])
			}
			return f(n), nil
		}); err != nil {
			panic(err)
		}
	}

	unary("inc", func(n int) int { return n + 1 })
	unary("dec", func(n int) int { return n - 1 })
	unary("double", func(n int) int { return n * 2 })
	unary("square", func(n int) int { return n * n })

	return table
}

var funcArg int

func init() {
	rootCmd.AddCommand(funcsCmd)

	funcsCmd.Flags().IntVarP(&funcArg, "arg", "x", 5, "integer argument")
}
