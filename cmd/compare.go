package cmd

import (
	"fmt"
	"strings"

	"schedfinder/pkg/timetable"
	"schedfinder/pkg/view"

	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare <name> <name> [name...]",
	Short: "Show the classes several students share",
	Long: `Show only the classes every listed student attends. Quote names that
contain spaces. Elective (name-listed) classes are not compared.`,
	Args: cobra.MinimumNArgs(2),
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

		students, tt, err := a.svc.Compare(args, day)
		if err != nil {
			return err
		}
		d, err := view.BuildDay(tt, day, a.now())
		if err != nil {
			return err
		}

		names := make([]string, len(students))
		for i, st := range students {
			names[i] = st.Name
		}
		fmt.Printf("Shared by %s · %s\n\n", strings.Join(names, ", "), d.Title)
		fmt.Println(d.Text())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().StringP("day", "d", "", "Weekday to compare (monday..friday)")
}
