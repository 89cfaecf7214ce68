package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mahithakrar/indirect/mem"
	"github.com/mahithakrar/indirect/scenario"
)

// raiseCmd represents the raise command
var raiseCmd = &cobra.Command{
	Use:   "raise",
	Short: "evaluate salary-raise eligibility against an employee record",
	RunE: func(cmd *cobra.Command, args []string) error {
		rules := scenario.DefaultRules
		if rulesFile != "" {
			var err error
			rules, err = scenario.LoadRules(rulesFile)
			if err != nil {
				return err
			}
		}

		cell := mem.NewCell(scenario.Employee{
			Name:   empName,
			Years:  empYears,
			Salary: empSalary,
		})
		defer cell.Release()

		raised, err := scenario.ApplyRaise(cell, rules)
		if err != nil {
			return err
		}

		e := cell.Get()
		if raised {
			fmt.Printf("%s raised to %g\n", e.Name, e.Salary)
		} else {
			fmt.Printf("%s not eligible, salary stays at %g\n", e.Name, e.Salary)
		}
		return nil
	},
}

var rulesFile string
var empName string
var empYears int
var empSalary float64

func init() {
	rootCmd.AddCommand(raiseCmd)

	raiseCmd.Flags().StringVarP(&rulesFile, "rules", "r", "",
		"path to a rules TOML file (defaults to built-in rules)")
	raiseCmd.Flags().StringVar(&empName, "name", "employee", "employee name")
	raiseCmd.Flags().IntVar(&empYears, "years", 5, "years of tenure")
	raiseCmd.Flags().Float64Var(&empSalary, "salary", 50000, "current salary")
}
