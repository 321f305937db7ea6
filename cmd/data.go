package cmd

import (
	"fmt"
	"os"

	"schedfinder/pkg/dataset"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <seating-plan.html>",
	Short: "Convert an HTML exam seating plan into an exam dataset",
	Long: `Read an HTML seating plan table (date, day, shift, room, course, roll numbers)
and write the exam JSON dataset used by the exams command.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		in, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open seating plan: %w", err)
		}
		defer in.Close()

		records, err := dataset.ParseExamTable(in)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			return fmt.Errorf("no exam rows found in %s", args[0])
		}

		out, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer out.Close()

		if err := dataset.WriteExams(out, records); err != nil {
			return err
		}

		fmt.Printf("Successfully imported %d exam slots to %s\n", len(records), output)
		return nil
	},
}

var mergeCmd = &cobra.Command{
	Use:   "merge <dir>",
	Short: "Merge per-weekday schedule files into schedule.json",
	Long: `Fold monday.json ... friday.json in <dir> into a single ` + dataset.MergedScheduleName + `.
Missing weekdays are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		merged, err := dataset.MergeDayFiles(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Merged %d day(s) into %s: %v\n", len(merged), dataset.MergedScheduleName, merged)
		return nil
	},
}

var clearCacheCmd = &cobra.Command{
	Use:   "clear-cache",
	Short: "Delete cached copies of remote datasets",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := dataset.ClearCache(); err != nil {
			return err
		}
		fmt.Println("Cache cleared.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(clearCacheCmd)

	importCmd.Flags().StringP("output", "o", "examSchdl.json", "Output file path")
}
