package cmd

import (
	"fmt"
	"strings"

	"schedfinder/pkg/timetable"
	"schedfinder/pkg/view"

	"github.com/spf13/cobra"
)

var timetableCmd = &cobra.Command{
	Use:     "timetable <name>",
	Aliases: []string{"tt"},
	Short:   "Show a student's classes for one day",
	Long:    `Show a student's classes for one weekday. Without --day, today is used (Monday on weekends).`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}

		day, _ := cmd.Flags().GetString("day")
		if day == "" {
			day = timetable.DefaultDay(a.now())
		}
		day = strings.ToLower(day)

		st, tt, err := a.svc.Timetable(strings.Join(args, " "), day)
		if err != nil {
			return err
		}
		d, err := view.BuildDay(tt, day, a.now())
		if err != nil {
			return err
		}

		fmt.Printf("%s (group %d, %s) · %s\n\n", st.Name, st.Group, st.RollNumber, d.Title)
		fmt.Println(d.Text())
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Find students by part of their name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}

		found, err := a.svc.Search(strings.Join(args, " "))
		if err != nil {
			return err
		}
		if len(found) == 0 {
			fmt.Println("No matching names.")
			return nil
		}
		for _, st := range found {
			fmt.Printf("%-30s group %-4d %s\n", st.Name, st.Group, st.RollNumber)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(timetableCmd)
	rootCmd.AddCommand(searchCmd)

	timetableCmd.Flags().StringP("day", "d", "", "Weekday to show (monday..friday)")
}
