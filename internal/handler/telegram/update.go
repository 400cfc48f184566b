package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Contact struct {
	UserID int64
	Phone  string
}

// Update is the transport-neutral form of an inbound Telegram update.
type Update struct {
	UserID    int64
	ChatID    int64
	FirstName string
	Text      string
	Contact   *Contact

	CallbackID   string
	CallbackData string
}

func (u Update) IsCallback() bool { return u.CallbackID != "" }

// fromTelegram returns false for updates the bot does not handle.
func fromTelegram(upd tgbotapi.Update) (Update, bool) {
	switch {
	case upd.CallbackQuery != nil:
		cq := upd.CallbackQuery
		if cq.From == nil || cq.Message == nil {
			return Update{}, false
		}
		return Update{
			UserID:       cq.From.ID,
			ChatID:       cq.Message.Chat.ID,
			FirstName:    cq.From.FirstName,
			CallbackID:   cq.ID,
			CallbackData: cq.Data,
		}, true

	case upd.Message != nil:
		msg := upd.Message
		if msg.From == nil || msg.Chat == nil {
			return Update{}, false
		}
		u := Update{
			UserID:    msg.From.ID,
			ChatID:    msg.Chat.ID,
			FirstName: msg.From.FirstName,
			Text:      msg.Text,
		}
		if msg.Contact != nil {
			u.Contact = &Contact{UserID: msg.Contact.UserID, Phone: msg.Contact.PhoneNumber}
		}
		return u, true
	}
	return Update{}, false
}
