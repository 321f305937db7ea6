// Package bot serves timetables over Telegram.
package bot

import (
	"fmt"
	"log"
	"time"

	"schedfinder/pkg/dataset"

	"gopkg.in/telebot.v3"
)

// Bot is a long-polling Telegram bot.
type Bot struct {
	tb      *telebot.Bot
	replies *Replies
}

// New connects to Telegram with token and registers the command handlers.
func New(token string, replies *Replies) (*Bot, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram token is empty (set TELEGRAM_TOKEN or telegram_token in the config)")
	}

	pref := telebot.Settings{
		Token:  token,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c telebot.Context) {
			log.Printf("bot: update failed: %v", err)
		},
	}

	tb, err := telebot.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("could not start telegram bot: %w", err)
	}

	b := &Bot{tb: tb, replies: replies}
	b.register()
	return b, nil
}

func (b *Bot) register() {
	r := b.replies
	payload := func(c telebot.Context) string {
		if m := c.Message(); m != nil {
			return m.Payload
		}
		return ""
	}

	b.tb.Handle("/start", func(c telebot.Context) error {
		return c.Send("Welcome! I can show your class and exam timetables.\n\n" + r.Help())
	})
	b.tb.Handle("/help", func(c telebot.Context) error {
		return c.Send(r.Help())
	})
	b.tb.Handle("/today", func(c telebot.Context) error {
		return c.Send(r.Today(payload(c)))
	})
	b.tb.Handle("/day", func(c telebot.Context) error {
		return c.Send(r.Day(payload(c)))
	})
	b.tb.Handle("/compare", func(c telebot.Context) error {
		return c.Send(r.Compare(payload(c)))
	})
	b.tb.Handle("/find", func(c telebot.Context) error {
		return c.Send(r.Find(payload(c)))
	})
	b.tb.Handle("/midsem", func(c telebot.Context) error {
		return c.Send(r.Exams(dataset.CycleMidsem, payload(c)))
	})
	b.tb.Handle("/endsem", func(c telebot.Context) error {
		return c.Send(r.Exams(dataset.CycleEndsem, payload(c)))
	})
	b.tb.Handle("/countdown", func(c telebot.Context) error {
		return c.Send(r.Countdown(payload(c)))
	})
}

// Start polls for updates until Stop is called.
func (b *Bot) Start() {
	log.Printf("bot: polling as @%s", b.tb.Me.Username)
	b.tb.Start()
}

// Stop ends polling.
func (b *Bot) Stop() {
	b.tb.Stop()
}
