package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mahithakrar/indirect/mem"
	"github.com/mahithakrar/indirect/scenario"
)

// fillCmd represents the fill command
var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "allocate an array in an arena and fill it through ref arithmetic",
	RunE: func(cmd *cobra.Command, args []string) error {
		arena := mem.NewArena[int]()
		defer arena.Teardown()

		h, values, err := scenario.FillSequence(arena, fillLength, fillStart, fillStep)
		if err != nil {
			return err
		}
		fmt.Printf("%s handle %d: %v\n", arena.ID(), h, values)

		if snapshotOut != "" {
			data, err := arena.Snapshot()
			if err != nil {
				return err
			}
			if err := os.WriteFile(snapshotOut, data, 0o644); err != nil {
				return err
			}
			fmt.Printf("snapshot: %d bytes -> %s\n", len(data), snapshotOut)
		}

		if err := arena.Release(h); err != nil {
			return err
		}
		fmt.Printf("released handle %d, %d allocations live\n", h, arena.Live())
		return nil
	},
}

var fillLength int
var fillStart int
var fillStep int
var snapshotOut string

func init() {
	rootCmd.AddCommand(fillCmd)

	fillCmd.Flags().IntVarP(&fillLength, "length", "n", 5, "array length")
	fillCmd.Flags().IntVarP(&fillStart, "start", "s", 10, "first value")
	fillCmd.Flags().IntVarP(&fillStep, "step", "t", 10, "value increment")
	fillCmd.Flags().StringVarP(&snapshotOut, "snapshot", "o", "",
		"write an arena snapshot to this file before releasing")
}
