package bootstrap

import (
	"context"
	"log/slog"

	"doglivebot/internal/handler/telegram"
	"doglivebot/internal/pkg/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/fx"
)

var TelegramModule = fx.Module("telegram",
	fx.Provide(
		NewBotAPI,
		telegram.NewMessenger,
		telegram.NewDispatcher,
		func(api *tgbotapi.BotAPI, d *telegram.Dispatcher, cfg config.Config, logger *slog.Logger) *telegram.Bot {
			return telegram.NewBot(api, d, cfg.Telegram, logger)
		},
	),
	fx.Invoke(startBot),
)

func NewBotAPI(cfg config.Config) (*tgbotapi.BotAPI, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, err
	}
	api.Debug = cfg.Telegram.Debug
	return api, nil
}

func startBot(lc fx.Lifecycle, bot *telegram.Bot, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				if err := bot.Run(ctx); err != nil {
					logger.Error("telegram bot stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
