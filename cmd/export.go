package cmd

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"schedfinder/pkg/dataset"
	"schedfinder/pkg/exporter"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a timetable or exam schedule to an ICS file",
	Long: `Export a student's weekly timetable (--name) or a roll number's exams
(--roll) to an ICS file without using the interactive TUI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		roll, _ := cmd.Flags().GetString("roll")
		output, _ := cmd.Flags().GetString("output")
		weeks, _ := cmd.Flags().GetInt("weeks")
		cycleFlag, _ := cmd.Flags().GetString("cycle")

		if (name == "") == (roll == "") {
			return fmt.Errorf("specify exactly one of --name or --roll")
		}
		if !strings.HasSuffix(output, ".ics") {
			output += ".ics"
		}

		a, err := loadApp(cmd)
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		if name != "" {
			st, week, err := a.svc.Week(name)
			if err != nil {
				return err
			}
			if err := exporter.GenerateTimetableICS(week, a.now(), weeks, &buf); err != nil {
				return fmt.Errorf("failed to generate ICS: %w", err)
			}
			if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			fmt.Printf("Successfully exported %d week(s) of classes for %s to %s\n", weeks, st.Name, output)
			return nil
		}

		cycle, err := dataset.ParseCycle(cycleFlag)
		if err != nil {
			return err
		}
		results, err := a.svc.Exams(cycle, roll)
		if err != nil {
			return err
		}
		if err := exporter.GenerateExamICS(results, a.loc, &buf); err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}
		if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Printf("Successfully exported %d exams to %s\n", len(results), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("name", "n", "", "Student name whose weekly timetable to export")
	exportCmd.Flags().StringP("roll", "r", "", "Roll number whose exams to export")
	exportCmd.Flags().StringP("cycle", "c", string(dataset.CycleMidsem), "Exam cycle for --roll (midsem or endsem)")
	exportCmd.Flags().IntP("weeks", "w", 1, "Number of weeks of classes to export")
	exportCmd.Flags().StringP("output", "o", "schedule.ics", "Output file path")
}
