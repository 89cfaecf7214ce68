package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mahithakrar/indirect/mem"
	"github.com/mahithakrar/indirect/scenario"
)

// swapCmd represents the swap command
var swapCmd = &cobra.Command{
	Use:   "swap",
	Short: "swap two values by value, by reference, and by pointer",
	RunE: func(cmd *cobra.Command, args []string) error {
		// By value: the originals stay put.
		a, b := swapFirst, swapSecond
		ra, rb := scenario.SwapValues(a, b)
		fmt.Printf("by value:     returned (%d, %d), originals still (%d, %d)\n",
			ra, rb, a, b)

		// By reference: the callee takes refs itself.
		x := mem.NewCell(swapFirst)
		y := mem.NewCell(swapSecond)
		if err := scenario.SwapCells(x, y); err != nil {
			return err
		}
		fmt.Printf("by reference: cells now (%d, %d)\n", x.Get(), y.Get())

		// By pointer: the caller hands over refs.
		p := mem.NewCell(swapFirst)
		q := mem.NewCell(swapSecond)
		if err := scenario.SwapRefs(p.Ref(), q.Ref()); err != nil {
			return err
		}
		fmt.Printf("by pointer:   cells now (%d, %d)\n", p.Get(), q.Get())
		return nil
	},
}

var swapFirst int
var swapSecond int

func init() {
	rootCmd.AddCommand(swapCmd)

	swapCmd.Flags().IntVarP(&swapFirst, "first", "a", 5, "first value")
	swapCmd.Flags().IntVarP(&swapSecond, "second", "b", 10, "second value")
}
