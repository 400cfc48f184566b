package telegram

import (
	"doglivebot/internal/pkg/errs"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Button struct {
	Label string
	Data  string
}

// Keyboard is an inline keyboard, one slice per row.
type Keyboard [][]Button

// Messenger is the outbound side of the chat transport.
type Messenger interface {
	SendText(chatID int64, text string, kb Keyboard) error
	RequestContact(chatID int64, text string) error
	AnswerCallback(callbackID, text string) error
}

type botAPIMessenger struct {
	api *tgbotapi.BotAPI
}

func NewMessenger(api *tgbotapi.BotAPI) Messenger {
	return &botAPIMessenger{api: api}
}

func (m *botAPIMessenger) SendText(chatID int64, text string, kb Keyboard) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if len(kb) > 0 {
		rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(kb))
		for _, r := range kb {
			row := make([]tgbotapi.InlineKeyboardButton, 0, len(r))
			for _, b := range r {
				row = append(row, tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Data))
			}
			rows = append(rows, row)
		}
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	}
	if _, err := m.api.Send(msg); err != nil {
		return errs.Wrap(err, "send message")
	}
	return nil
}

func (m *botAPIMessenger) RequestContact(chatID int64, text string) error {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButtonContact("Share phone number")),
	)
	kb.OneTimeKeyboard = true

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := m.api.Send(msg); err != nil {
		return errs.Wrap(err, "request contact")
	}
	return nil
}

// AnswerCallback stops the client's loading spinner; Telegram wants it within seconds.
func (m *botAPIMessenger) AnswerCallback(callbackID, text string) error {
	if _, err := m.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		return errs.Wrap(err, "answer callback")
	}
	return nil
}
