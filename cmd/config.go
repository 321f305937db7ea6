package cmd

import (
	"fmt"

	"schedfinder/pkg/config"
	"schedfinder/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage schedfinder configuration",
	Long:  "View or edit your local configuration settings (data directory, saved students, opted-out roll numbers).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		changed := false
		if dir, _ := cmd.Flags().GetString("set-data-dir"); dir != "" {
			cfg.DataDir = dir
			changed = true
		}
		if names, _ := cmd.Flags().GetStringSlice("add-student"); len(names) > 0 {
			for _, n := range names {
				if !containsString(cfg.SavedStudents, n) {
					cfg.SavedStudents = append(cfg.SavedStudents, n)
				}
			}
			changed = true
		}
		if rolls, _ := cmd.Flags().GetStringSlice("opt-out"); len(rolls) > 0 {
			for _, r := range rolls {
				if !cfg.OptedOut(r) {
					cfg.OptOutRolls = append(cfg.OptOutRolls, r)
				}
			}
			changed = true
		}

		if !changed {
			// If no flags are given, launch the interactive TUI flow
			return tui.RunConfigTUI()
		}

		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Println("✅ Configuration saved.")
		return nil
	},
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().String("set-data-dir", "", "Set the directory holding the dataset JSON files")
	configCmd.Flags().StringSlice("add-student", nil, "Add a saved student (repeatable)")
	configCmd.Flags().StringSlice("opt-out", nil, "Hide a roll number from exam lookups (repeatable)")
}
