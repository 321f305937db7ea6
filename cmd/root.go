package cmd

import (
	"fmt"
	"log"
	"os"
	"time"

	"schedfinder/pkg/config"
	"schedfinder/pkg/dataset"
	"schedfinder/pkg/lookup"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "schedfinder",
	Short: "Class and exam timetables from the student directory",
	Long: `schedfinder looks up a student's class timetable and exam schedule,
compares timetables between friends, and serves the same data over HTTP
and Telegram.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("data-dir", "", "Directory holding the dataset JSON files (overrides the config)")
	rootCmd.PersistentFlags().Bool("no-cache", false, "Always re-download remote datasets")
}

// app bundles what most commands need.
type app struct {
	cfg *config.AppConfig
	svc *lookup.Service
	loc *time.Location
}

func (a *app) now() time.Time {
	return time.Now().In(a.loc)
}

func loadApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if dir, _ := cmd.Flags().GetString("data-dir"); dir != "" {
		cfg.DataDir = dir
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	client := dataset.NewClient()
	if noCache, _ := cmd.Flags().GetBool("no-cache"); noCache {
		client = client.WithoutCache()
	}

	svc, err := lookup.FromConfig(cfg, client)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, svc: svc, loc: loc}, nil
}

// refreshEvery reloads the datasets on a ticker until stop is called.
// A failed reload keeps the previous data.
func refreshEvery(store *dataset.Store, interval time.Duration) (stop func()) {
	if interval <= 0 {
		return func() {}
	}

	ticker := time.NewTicker(interval)
	quit := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				log.Println("refreshing datasets...")
				if err := store.Reload(); err != nil {
					log.Printf("dataset refresh failed: %v", err)
					continue
				}
				log.Println("datasets refreshed")
			case <-quit:
				ticker.Stop()
				return
			}
		}
	}()

	return func() { close(quit) }
}
