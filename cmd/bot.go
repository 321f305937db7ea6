package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"schedfinder/pkg/bot"

	"github.com/spf13/cobra"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run the Telegram bot",
	Long:  `Run a long-polling Telegram bot. The token comes from TELEGRAM_TOKEN or telegram_token in the config.`,
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

		b, err := bot.New(a.cfg.Token(), bot.NewReplies(a.svc, a.now))
		if err != nil {
			return err
		}

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-sig
			log.Println("stopping bot...")
			b.Stop()
		}()

		b.Start()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(botCmd)
	botCmd.Flags().Duration("refresh", 30*time.Minute, "Reload datasets this often (0 disables)")
}
