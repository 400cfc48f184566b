package usecase

import (
	"context"
	"log/slog"

	"doglivebot/internal/domain/booking"
	"doglivebot/internal/domain/callback"
	"doglivebot/internal/domain/navigation"
	"doglivebot/internal/domain/schedule"
	"doglivebot/internal/pkg/errs"
	"doglivebot/internal/usecase/commands"
	"doglivebot/internal/usecase/queries"
)

// Notice is a one-line message shown above a prompt.
type Notice int

const (
	NoticeNone Notice = iota
	NoticeNoSlots
	NoticeRestarted
	NoticeSlotTaken
	NoticeNoDogs
	NoticeBooked
)

type Option struct {
	Label string
	Data  callback.Data
}

// Prompt is the next screen of the booking conversation.
type Prompt struct {
	Step    booking.Step
	Notice  Notice
	Options []Option
	// Set only when a reservation succeeded.
	Booked    *queries.SlotView
	BookedDog string
}

// FlowStore keeps the picked day between taps.
type FlowStore interface {
	SaveDay(ctx context.Context, userID int64, day schedule.Weekday) error
	LoadDay(ctx context.Context, userID int64) (schedule.Weekday, error)
	Clear(ctx context.Context, userID int64) error
}

type BookingFlow interface {
	// Advance moves the conversation one step based on which payload fields are set.
	Advance(ctx context.Context, userID int64, p booking.Payload) (*Prompt, error)
	// AdvanceRaw decodes callback data first; undecodable data restarts the flow.
	AdvanceRaw(ctx context.Context, userID int64, raw string) (*Prompt, error)
	// ResumeTimeSelection reopens the time picker for the remembered day.
	ResumeTimeSelection(ctx context.Context, userID int64) (*Prompt, error)
}

type bookingFlowImpl struct {
	availability queries.AvailabilityQueries
	account      queries.AccountQueries
	reserver     commands.ReservationCommands
	store        FlowStore
	logger       *slog.Logger
}

func NewBookingFlow(
	availability queries.AvailabilityQueries,
	account queries.AccountQueries,
	reserver commands.ReservationCommands,
	store FlowStore,
	logger *slog.Logger,
) BookingFlow {
	return &bookingFlowImpl{
		availability: availability,
		account:      account,
		reserver:     reserver,
		store:        store,
		logger:       logger,
	}
}

func (f *bookingFlowImpl) Advance(ctx context.Context, userID int64, p booking.Payload) (*Prompt, error) {
	switch p.Step() {
	case booking.StepSelectTime:
		return f.selectTime(ctx, userID, p.Day)
	case booking.StepSelectDog:
		return f.selectDog(ctx, userID, p)
	case booking.StepReserve:
		return f.reserve(ctx, userID, p)
	default:
		return f.restart(ctx, NoticeNone)
	}
}

func (f *bookingFlowImpl) AdvanceRaw(ctx context.Context, userID int64, raw string) (*Prompt, error) {
	data, err := callback.Decode(raw)
	if err != nil {
		f.logger.Warn("discarding malformed booking callback", "user_id", userID, "error", err)
		return f.restart(ctx, NoticeRestarted)
	}
	return f.Advance(ctx, userID, data.Payload())
}

func (f *bookingFlowImpl) ResumeTimeSelection(ctx context.Context, userID int64) (*Prompt, error) {
	day, err := f.store.LoadDay(ctx, userID)
	if err != nil {
		f.logger.Warn("booking flow cache unavailable", "user_id", userID, "error", err)
	}
	if !day.Valid() {
		return f.restart(ctx, NoticeNone)
	}
	return f.selectTime(ctx, userID, day)
}

func (f *bookingFlowImpl) restart(ctx context.Context, notice Notice) (*Prompt, error) {
	days, err := f.availability.AvailableDays(ctx)
	if err != nil {
		return nil, err
	}

	options := make([]Option, 0, len(days))
	for _, d := range days {
		options = append(options, Option{
			Label: d.String(),
			Data:  callback.New(navigation.CommandSelectTime, booking.Payload{Day: d}),
		})
	}
	return &Prompt{Step: booking.StepRestart, Notice: notice, Options: options}, nil
}

func (f *bookingFlowImpl) selectTime(ctx context.Context, userID int64, day schedule.Weekday) (*Prompt, error) {
	slots, err := f.availability.FreeSlots(ctx, day)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return f.restart(ctx, NoticeNoSlots)
	}

	if err := f.store.SaveDay(ctx, userID, day); err != nil {
		f.logger.Warn("booking flow cache unavailable", "user_id", userID, "error", err)
	}

	options := make([]Option, 0, len(slots))
	for _, s := range slots {
		options = append(options, Option{
			Label: s.Label(),
			Data:  callback.New(navigation.CommandSelectDog, booking.Payload{Day: day, SlotID: s.ID}),
		})
	}
	return &Prompt{Step: booking.StepSelectTime, Options: options}, nil
}

func (f *bookingFlowImpl) selectDog(ctx context.Context, userID int64, p booking.Payload) (*Prompt, error) {
	slot, err := f.availability.FindSlot(ctx, p.Day, p.SlotID)
	if err != nil {
		if errs.Is(err, queries.ErrSlotNotFound) {
			return f.restart(ctx, NoticeRestarted)
		}
		return nil, err
	}
	if slot.IsReserved {
		return f.restart(ctx, NoticeSlotTaken)
	}

	dogs, err := f.account.ListDogs(ctx, userID)
	if err != nil {
		return nil, err
	}

	switch len(dogs) {
	case 0:
		return f.restart(ctx, NoticeNoDogs)
	case 1:
		p.DogID = dogs[0].ID
		return f.book(ctx, userID, p, slot, dogs[0].Name)
	}

	options := make([]Option, 0, len(dogs))
	for _, d := range dogs {
		options = append(options, Option{
			Label: d.Name,
			Data:  callback.New(navigation.CommandReserve, booking.Payload{Day: p.Day, SlotID: p.SlotID, DogID: d.ID}),
		})
	}
	return &Prompt{Step: booking.StepSelectDog, Options: options}, nil
}

func (f *bookingFlowImpl) reserve(ctx context.Context, userID int64, p booking.Payload) (*Prompt, error) {
	dogs, err := f.account.ListDogs(ctx, userID)
	if err != nil {
		return nil, err
	}
	var dogName string
	for _, d := range dogs {
		if d.ID == p.DogID {
			dogName = d.Name
			break
		}
	}
	if dogName == "" {
		f.logger.Warn("dog does not belong to user", "user_id", userID, "dog_id", p.DogID)
		return f.restart(ctx, NoticeRestarted)
	}

	slot, err := f.availability.FindSlot(ctx, p.Day, p.SlotID)
	if err != nil {
		if errs.Is(err, queries.ErrSlotNotFound) {
			return f.restart(ctx, NoticeRestarted)
		}
		return nil, err
	}
	return f.book(ctx, userID, p, slot, dogName)
}

// book runs the reservation for a slot and dog that were already resolved.
func (f *bookingFlowImpl) book(ctx context.Context, userID int64, p booking.Payload, slot *queries.SlotView, dogName string) (*Prompt, error) {
	if !f.reserver.TryReserveSlot(ctx, userID, p.DogID, p.Day, p.SlotID) {
		return f.restart(ctx, NoticeSlotTaken)
	}

	if err := f.store.Clear(ctx, userID); err != nil {
		f.logger.Warn("booking flow cache unavailable", "user_id", userID, "error", err)
	}

	slot.IsReserved = true
	return &Prompt{
		Step:      booking.StepReserve,
		Notice:    NoticeBooked,
		Booked:    slot,
		BookedDog: dogName,
	}, nil
}
