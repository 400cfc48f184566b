package telegram

import (
	"fmt"
	"log/slog"
	"strings"

	"doglivebot/internal/domain/booking"
	"doglivebot/internal/domain/callback"
	"doglivebot/internal/domain/navigation"
	"doglivebot/internal/usecase"
	"doglivebot/internal/usecase/queries"
)

const (
	textMainMenu       = "What would you like to do?"
	textRegister       = "Please share your phone number to register."
	textRegistered     = "Thanks, you are registered. Add your dog with /adddog <name>."
	textForeignContact = "Please share your own contact."
	textFailure        = "Something went wrong. Please try again."
	textAddDogUsage    = "Send /adddog <name> to add a dog."
	textNoBookings     = "You have no upcoming classes."
	textNoDogs         = "You have no dogs yet. Send /adddog <name> to add one."
	textPickDay        = "Pick a day:"
	textNoDays         = "There are no free classes left this week."
	textPickTime       = "Pick a time:"
	textPickDog        = "Which dog is coming?"
)

var noticeTexts = map[usecase.Notice]string{
	usecase.NoticeNoSlots:   "No free slots left on that day. Pick another day.",
	usecase.NoticeRestarted: "That selection is no longer valid. Let's start over.",
	usecase.NoticeSlotTaken: "Sorry, that slot is no longer available.",
	usecase.NoticeNoDogs:    "Add a dog first with /adddog <name>.",
}

func button(label string, cmd navigation.Command, p booking.Payload) (Button, bool) {
	data, err := callback.New(cmd, p).Encode()
	if err != nil {
		slog.Error("callback data does not fit a button", "command", cmd, "error", err)
		return Button{}, false
	}
	return Button{Label: label, Data: data}, true
}

func appendButton(kb Keyboard, label string, cmd navigation.Command, p booking.Payload) Keyboard {
	if b, ok := button(label, cmd, p); ok {
		kb = append(kb, []Button{b})
	}
	return kb
}

func backRow(kb Keyboard) Keyboard {
	return appendButton(kb, "« Back", navigation.CommandBack, booking.Payload{})
}

func mainMenuKeyboard() Keyboard {
	var kb Keyboard
	kb = appendButton(kb, "Book a class", navigation.CommandBookClass, booking.Payload{})
	kb = appendButton(kb, "My bookings", navigation.CommandMyBookings, booking.Payload{})
	kb = appendButton(kb, "My dogs", navigation.CommandMyDogs, booking.Payload{})
	return kb
}

func renderPrompt(p *usecase.Prompt) (string, Keyboard) {
	var lines []string
	if n, ok := noticeTexts[p.Notice]; ok {
		lines = append(lines, n)
	}

	if p.Notice == usecase.NoticeBooked && p.Booked != nil {
		lines = append(lines, fmt.Sprintf("Booked: %s %s, %s for %s.",
			p.Booked.Day, p.Booked.Date.Format("02.01"), p.Booked.Label(), p.BookedDog))
		return strings.Join(lines, "\n"), mainMenuKeyboard()
	}

	switch p.Step {
	case booking.StepSelectTime:
		lines = append(lines, textPickTime)
	case booking.StepSelectDog:
		lines = append(lines, textPickDog)
	default:
		if len(p.Options) == 0 {
			lines = append(lines, textNoDays)
		} else {
			lines = append(lines, textPickDay)
		}
	}

	var kb Keyboard
	for _, o := range p.Options {
		if b, ok := button(o.Label, o.Data.Command, o.Data.Payload()); ok {
			kb = append(kb, []Button{b})
		}
	}
	return strings.Join(lines, "\n"), backRow(kb)
}

func renderBookings(bookings []*queries.BookingView) string {
	if len(bookings) == 0 {
		return textNoBookings
	}
	var sb strings.Builder
	sb.WriteString("Your upcoming classes:")
	for _, b := range bookings {
		fmt.Fprintf(&sb, "\n%s %s, %s-%s: %s", b.Day, b.Date.Format("02.01"), b.Start, b.End, b.DogName)
	}
	return sb.String()
}

func renderDogs(dogs []*queries.DogView) string {
	if len(dogs) == 0 {
		return textNoDogs
	}
	var sb strings.Builder
	sb.WriteString("Your dogs:")
	for _, d := range dogs {
		sb.WriteString("\n- " + d.Name)
	}
	return sb.String()
}
