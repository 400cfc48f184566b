package telegram

import (
	"context"
	"log/slog"

	"doglivebot/internal/pkg/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/sync/errgroup"
)

// Bot long-polls Telegram and hands each update to the dispatcher on a bounded worker pool.
type Bot struct {
	api        *tgbotapi.BotAPI
	dispatcher *Dispatcher
	cfg        config.TelegramConfig
	logger     *slog.Logger
}

func NewBot(api *tgbotapi.BotAPI, dispatcher *Dispatcher, cfg config.TelegramConfig, logger *slog.Logger) *Bot {
	return &Bot{api: api, dispatcher: dispatcher, cfg: cfg, logger: logger}
}

// Run blocks until ctx is cancelled and in-flight updates finish.
func (b *Bot) Run(ctx context.Context) error {
	uc := tgbotapi.NewUpdate(0)
	uc.Timeout = b.cfg.PollTimeout
	updates := b.api.GetUpdatesChan(uc)
	b.logger.Info("telegram bot polling", "username", b.api.Self.UserName, "workers", b.cfg.Workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(b.cfg.Workers, 1))

	defer func() {
		b.api.StopReceivingUpdates()
		_ = g.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case upd, ok := <-updates:
			if !ok {
				return nil
			}
			u, ok := fromTelegram(upd)
			if !ok {
				continue
			}
			g.Go(func() error {
				b.dispatcher.Handle(gctx, u)
				return nil
			})
		}
	}
}
