package cmd

import (
	"fmt"

	"schedfinder/pkg/dataset"
	"schedfinder/pkg/timetable"
	"schedfinder/pkg/view"

	"github.com/spf13/cobra"
)

var examsCmd = &cobra.Command{
	Use:   "exams <roll>",
	Short: "Show a roll number's exam schedule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}

		cycleFlag, _ := cmd.Flags().GetString("cycle")
		cycle, err := dataset.ParseCycle(cycleFlag)
		if err != nil {
			return err
		}

		results, err := a.svc.Exams(cycle, args[0])
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Printf("No %s exams found for %s.\n", cycle, timetable.NormalizeRoll(args[0]))
			return nil
		}

		for _, r := range results {
			fmt.Printf("%-12s %-10s %-15s %-10s %s\n", r.Date, r.Day, r.Time, r.Course, r.Location)
		}

		cd, ok, err := timetable.NextExam(results, a.now())
		if err != nil {
			return err
		}
		if ok {
			fmt.Printf("\n%s (%dh %dm)\n", view.CountdownLine(cd), cd.Hours, cd.Minutes)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(examsCmd)
	examsCmd.Flags().StringP("cycle", "c", string(dataset.CycleMidsem), "Exam cycle (midsem or endsem)")
}
