package telegram

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"doglivebot/internal/domain/booking"
	"doglivebot/internal/domain/callback"
	"doglivebot/internal/domain/navigation"
	"doglivebot/internal/domain/user"
	"doglivebot/internal/pkg/errs"
	"doglivebot/internal/pkg/metrics"
	"doglivebot/internal/usecase"
	"doglivebot/internal/usecase/commands"
	"doglivebot/internal/usecase/queries"
)

const (
	cmdStart  = "/start"
	cmdBook   = "/book"
	cmdAddDog = "/adddog"
)

type routeFunc func(ctx context.Context, u Update, data callback.Data) error

// Dispatcher turns updates into use case calls and replies.
type Dispatcher struct {
	flow     usecase.BookingFlow
	nav      commands.NavigationCommands
	reg      commands.RegistrationCommands
	account  queries.AccountQueries
	out      Messenger
	metrics  *metrics.Metrics
	logger   *slog.Logger
	handlers map[navigation.Command]routeFunc
}

func NewDispatcher(
	flow usecase.BookingFlow,
	nav commands.NavigationCommands,
	reg commands.RegistrationCommands,
	account queries.AccountQueries,
	out Messenger,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Dispatcher {
	d := &Dispatcher{
		flow:    flow,
		nav:     nav,
		reg:     reg,
		account: account,
		out:     out,
		metrics: m,
		logger:  logger,
	}
	d.handlers = map[navigation.Command]routeFunc{
		navigation.CommandMainMenu:   d.showMainMenu,
		navigation.CommandBookClass:  d.startBooking,
		navigation.CommandSelectTime: d.selectTime,
		navigation.CommandSelectDog:  d.selectDog,
		navigation.CommandReserve:    d.advance,
		navigation.CommandMyBookings: d.showBookings,
		navigation.CommandMyDogs:     d.showDogs,
		navigation.CommandAddDog:     d.addDogHint,
	}
	return d
}

// Handle processes one update. Failures are reported to the user, never returned.
func (d *Dispatcher) Handle(ctx context.Context, u Update) {
	started := time.Now()
	kind := metrics.UpdateMessage
	var err error
	if u.IsCallback() {
		kind = metrics.UpdateCallback
		err = d.handleCallback(ctx, u)
	} else {
		err = d.handleMessage(ctx, u)
	}
	d.metrics.ObserveUpdate(kind, started)

	if err != nil {
		d.metrics.IncError()
		d.logger.Error("update handling failed", "user_id", u.UserID, "kind", kind, "error", err)
		if sendErr := d.out.SendText(u.ChatID, textFailure, mainMenuKeyboard()); sendErr != nil {
			d.logger.Warn("failed to report error to user", "user_id", u.UserID, "error", sendErr)
		}
	}
}

func (d *Dispatcher) handleCallback(ctx context.Context, u Update) error {
	if err := d.out.AnswerCallback(u.CallbackID, ""); err != nil {
		d.logger.Warn("failed to answer callback", "user_id", u.UserID, "error", err)
	}

	data, err := callback.Decode(u.CallbackData)
	if err != nil {
		prompt, err := d.flow.AdvanceRaw(ctx, u.UserID, u.CallbackData)
		if err != nil {
			return err
		}
		return d.sendPrompt(u, prompt)
	}

	if data.Command == navigation.CommandBack {
		target, err := d.nav.BackTarget(ctx, u.UserID)
		if err != nil {
			return err
		}
		return d.route(ctx, u, callback.Data{Command: target})
	}

	if err := d.nav.Record(ctx, u.UserID, data.Command); err != nil {
		d.logger.Warn("failed to record last command", "user_id", u.UserID, "command", data.Command, "error", err)
	}
	return d.route(ctx, u, data)
}

func (d *Dispatcher) route(ctx context.Context, u Update, data callback.Data) error {
	h, ok := d.handlers[data.Command]
	if !ok {
		return d.showMainMenu(ctx, u, data)
	}
	return h(ctx, u, data)
}

func (d *Dispatcher) handleMessage(ctx context.Context, u Update) error {
	if u.Contact != nil {
		return d.registerContact(ctx, u)
	}

	text := strings.TrimSpace(u.Text)
	switch {
	case text == cmdStart:
		registered, err := d.account.IsRegistered(ctx, u.UserID)
		if err != nil {
			return err
		}
		if !registered {
			return d.out.RequestContact(u.ChatID, textRegister)
		}
		return d.recordAndRoute(ctx, u, navigation.CommandMainMenu)
	case text == cmdBook:
		return d.recordAndRoute(ctx, u, navigation.CommandBookClass)
	case text == cmdAddDog || strings.HasPrefix(text, cmdAddDog+" "):
		return d.addDog(ctx, u, strings.TrimSpace(strings.TrimPrefix(text, cmdAddDog)))
	default:
		return d.showMainMenu(ctx, u, callback.Data{})
	}
}

func (d *Dispatcher) recordAndRoute(ctx context.Context, u Update, cmd navigation.Command) error {
	if err := d.nav.Record(ctx, u.UserID, cmd); err != nil {
		d.logger.Warn("failed to record last command", "user_id", u.UserID, "command", cmd, "error", err)
	}
	return d.route(ctx, u, callback.Data{Command: cmd})
}

func (d *Dispatcher) registerContact(ctx context.Context, u Update) error {
	if u.Contact.UserID != 0 && u.Contact.UserID != u.UserID {
		return d.out.SendText(u.ChatID, textForeignContact, nil)
	}
	err := d.reg.RegisterContact(ctx, commands.RegisterContactRequest{
		UserID:    u.UserID,
		ChatID:    u.ChatID,
		Phone:     u.Contact.Phone,
		FirstName: u.FirstName,
	})
	if err != nil {
		if errs.Is(err, user.ErrInvalidPhone) {
			return d.out.RequestContact(u.ChatID, textRegister)
		}
		return err
	}
	return d.out.SendText(u.ChatID, textRegistered, mainMenuKeyboard())
}

func (d *Dispatcher) addDog(ctx context.Context, u Update, name string) error {
	if name == "" {
		return d.out.SendText(u.ChatID, textAddDogUsage, nil)
	}
	_, err := d.reg.AddDog(ctx, u.UserID, name)
	switch {
	case errs.Is(err, commands.ErrNotRegistered):
		return d.out.RequestContact(u.ChatID, textRegister)
	case errs.Is(err, user.ErrEmptyDogName), errs.Is(err, user.ErrDogNameTooLong):
		return d.out.SendText(u.ChatID, err.Error(), nil)
	case err != nil:
		return err
	}
	return d.recordAndRoute(ctx, u, navigation.CommandMyDogs)
}

func (d *Dispatcher) showMainMenu(_ context.Context, u Update, _ callback.Data) error {
	return d.out.SendText(u.ChatID, textMainMenu, mainMenuKeyboard())
}

func (d *Dispatcher) startBooking(ctx context.Context, u Update, _ callback.Data) error {
	registered, err := d.account.IsRegistered(ctx, u.UserID)
	if err != nil {
		return err
	}
	if !registered {
		return d.out.RequestContact(u.ChatID, textRegister)
	}
	return d.advance(ctx, u, callback.Data{})
}

// selectTime without a day comes from back navigation.
func (d *Dispatcher) selectTime(ctx context.Context, u Update, data callback.Data) error {
	if data.Day.Valid() {
		return d.advance(ctx, u, data)
	}
	prompt, err := d.flow.ResumeTimeSelection(ctx, u.UserID)
	if err != nil {
		return err
	}
	return d.sendPrompt(u, prompt)
}

// selectDog without a slot comes from back navigation; the slot has to be picked again.
func (d *Dispatcher) selectDog(ctx context.Context, u Update, data callback.Data) error {
	if data.SlotID > 0 {
		return d.advance(ctx, u, data)
	}
	return d.selectTime(ctx, u, callback.Data{})
}

func (d *Dispatcher) advance(ctx context.Context, u Update, data callback.Data) error {
	prompt, err := d.flow.Advance(ctx, u.UserID, data.Payload())
	if err != nil {
		return err
	}
	return d.sendPrompt(u, prompt)
}

func (d *Dispatcher) sendPrompt(u Update, prompt *usecase.Prompt) error {
	text, kb := renderPrompt(prompt)
	return d.out.SendText(u.ChatID, text, kb)
}

func (d *Dispatcher) showBookings(ctx context.Context, u Update, _ callback.Data) error {
	bookings, err := d.account.ListBookings(ctx, u.UserID)
	if err != nil {
		return err
	}
	return d.out.SendText(u.ChatID, renderBookings(bookings), backRow(nil))
}

func (d *Dispatcher) showDogs(ctx context.Context, u Update, _ callback.Data) error {
	dogs, err := d.account.ListDogs(ctx, u.UserID)
	if err != nil {
		return err
	}
	kb := appendButton(nil, "Add a dog", navigation.CommandAddDog, booking.Payload{})
	return d.out.SendText(u.ChatID, renderDogs(dogs), backRow(kb))
}

func (d *Dispatcher) addDogHint(_ context.Context, u Update, _ callback.Data) error {
	return d.out.SendText(u.ChatID, textAddDogUsage, backRow(nil))
}
