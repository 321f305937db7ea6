package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"schedfinder/pkg/server"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web pages and JSON lookup endpoints",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}

		if err := a.svc.Store().Preload(); err != nil {
			return err
		}
		log.Println("datasets loaded")

		refresh, _ := cmd.Flags().GetDuration("refresh")
		stop := refreshEvery(a.svc.Store(), refresh)
		defer stop()

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = a.cfg.Addr()
		}

		srv := server.New(server.Config{Service: a.svc, Location: a.loc})

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-sig
			log.Println("shutting down...")
			if err := srv.Shutdown(); err != nil {
				log.Printf("shutdown: %v", err)
			}
		}()

		return srv.Listen(addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "Listen address (default from config or SCHEDFINDER_ADDR, else :3000)")
	serveCmd.Flags().Duration("refresh", 30*time.Minute, "Reload datasets this often (0 disables)")
}
