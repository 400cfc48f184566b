//go:build unit

package telegram_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"doglivebot/internal/domain/booking"
	"doglivebot/internal/domain/callback"
	"doglivebot/internal/domain/navigation"
	"doglivebot/internal/domain/schedule"
	"doglivebot/internal/domain/user"
	"doglivebot/internal/handler/telegram"
	"doglivebot/internal/pkg/metrics"
	"doglivebot/internal/usecase"
	"doglivebot/internal/usecase/commands"
	"doglivebot/tests/common/builder"
	"doglivebot/tests/common/testutil"
	commandsmock "doglivebot/tests/mock/commands"
	queriesmock "doglivebot/tests/mock/queries"
	telegrammock "doglivebot/tests/mock/telegram"
	usecasemock "doglivebot/tests/mock/usecase"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	chatID int64 = 555
	userID int64 = 1001
)

type DispatcherTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	flow       *usecasemock.MockBookingFlow
	nav        *commandsmock.MockNavigationCommands
	reg        *commandsmock.MockRegistrationCommands
	account    *queriesmock.MockAccountQueries
	out        *telegrammock.MockMessenger
	metrics    *metrics.Metrics
	dispatcher *telegram.Dispatcher
	ctx        context.Context
}

func (s *DispatcherTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.flow = usecasemock.NewMockBookingFlow(s.mockCtrl)
	s.nav = commandsmock.NewMockNavigationCommands(s.mockCtrl)
	s.reg = commandsmock.NewMockRegistrationCommands(s.mockCtrl)
	s.account = queriesmock.NewMockAccountQueries(s.mockCtrl)
	s.out = telegrammock.NewMockMessenger(s.mockCtrl)
	s.metrics = testutil.NewMetrics()
	s.dispatcher = telegram.NewDispatcher(s.flow, s.nav, s.reg, s.account, s.out, s.metrics, testutil.DiscardLogger())
	s.ctx = context.Background()
}

func (s *DispatcherTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDispatcherSuite(t *testing.T) {
	suite.Run(t, new(DispatcherTestSuite))
}

func message(text string) telegram.Update {
	return telegram.Update{UserID: userID, ChatID: chatID, FirstName: "Alex", Text: text}
}

func (s *DispatcherTestSuite) tap(cmd navigation.Command, p booking.Payload) telegram.Update {
	raw, err := callback.New(cmd, p).Encode()
	s.Require().NoError(err)
	return telegram.Update{UserID: userID, ChatID: chatID, CallbackID: "cb-1", CallbackData: raw}
}

// commandsOf decodes every button of kb in order.
func (s *DispatcherTestSuite) commandsOf(kb telegram.Keyboard) []navigation.Command {
	var out []navigation.Command
	for _, row := range kb {
		for _, b := range row {
			d, err := callback.Decode(b.Data)
			s.Require().NoError(err)
			out = append(out, d.Command)
		}
	}
	return out
}

func (s *DispatcherTestSuite) expectAnswer() {
	s.out.EXPECT().AnswerCallback("cb-1", "").Return(nil)
}

// expectSend captures the next outgoing message.
func (s *DispatcherTestSuite) expectSend(text *string, kb *telegram.Keyboard) {
	s.out.EXPECT().SendText(chatID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ int64, t string, k telegram.Keyboard) error {
			if text != nil {
				*text = t
			}
			if kb != nil {
				*kb = k
			}
			return nil
		})
}

var mainMenu = []navigation.Command{navigation.CommandBookClass, navigation.CommandMyBookings, navigation.CommandMyDogs}

// ================================================================================
// Messages
// ================================================================================

func (s *DispatcherTestSuite) TestStart() {
	s.Run("unregistered user is asked for contact", func() {
		s.account.EXPECT().IsRegistered(gomock.Any(), userID).Return(false, nil)
		s.out.EXPECT().RequestContact(chatID, gomock.Any()).Return(nil)

		s.dispatcher.Handle(s.ctx, message("/start"))
	})

	s.Run("registered user gets main menu", func() {
		s.account.EXPECT().IsRegistered(gomock.Any(), userID).Return(true, nil)
		s.nav.EXPECT().Record(gomock.Any(), userID, navigation.CommandMainMenu).Return(nil)
		var kb telegram.Keyboard
		s.expectSend(nil, &kb)

		s.dispatcher.Handle(s.ctx, message("/start"))

		s.Equal(mainMenu, s.commandsOf(kb))
	})
}

func (s *DispatcherTestSuite) TestContact() {
	s.Run("own contact registers", func() {
		s.reg.EXPECT().RegisterContact(gomock.Any(), commands.RegisterContactRequest{
			UserID: userID, ChatID: chatID, Phone: "+15550100200", FirstName: "Alex",
		}).Return(nil)
		var kb telegram.Keyboard
		s.expectSend(nil, &kb)

		u := message("")
		u.Contact = &telegram.Contact{UserID: userID, Phone: "+15550100200"}
		s.dispatcher.Handle(s.ctx, u)

		s.Equal(mainMenu, s.commandsOf(kb))
	})

	s.Run("foreign contact is rejected", func() {
		s.reg.EXPECT().RegisterContact(gomock.Any(), gomock.Any()).Times(0)
		s.expectSend(nil, nil)

		u := message("")
		u.Contact = &telegram.Contact{UserID: 9999, Phone: "+15550100200"}
		s.dispatcher.Handle(s.ctx, u)
	})

	s.Run("invalid phone asks again", func() {
		s.reg.EXPECT().RegisterContact(gomock.Any(), gomock.Any()).Return(user.ErrInvalidPhone)
		s.out.EXPECT().RequestContact(chatID, gomock.Any()).Return(nil)

		u := message("")
		u.Contact = &telegram.Contact{Phone: "abc"}
		s.dispatcher.Handle(s.ctx, u)
	})
}

func (s *DispatcherTestSuite) TestAddDog() {
	s.Run("success shows dogs", func() {
		s.reg.EXPECT().AddDog(gomock.Any(), userID, "Bella").Return(int64(5), nil)
		s.nav.EXPECT().Record(gomock.Any(), userID, navigation.CommandMyDogs).Return(nil)
		s.account.EXPECT().ListDogs(gomock.Any(), userID).Return(builder.Dogs("Bella"), nil)
		var text string
		var kb telegram.Keyboard
		s.expectSend(&text, &kb)

		s.dispatcher.Handle(s.ctx, message("/adddog  Bella "))

		s.Contains(text, "Bella")
		s.Equal([]navigation.Command{navigation.CommandAddDog, navigation.CommandBack}, s.commandsOf(kb))
	})

	s.Run("missing name shows usage", func() {
		s.reg.EXPECT().AddDog(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		var text string
		s.expectSend(&text, nil)

		s.dispatcher.Handle(s.ctx, message("/adddog"))

		s.Contains(text, "/adddog")
	})

	s.Run("unregistered owner is asked for contact", func() {
		s.reg.EXPECT().AddDog(gomock.Any(), userID, "Rex").Return(int64(0), commands.ErrNotRegistered)
		s.out.EXPECT().RequestContact(chatID, gomock.Any()).Return(nil)

		s.dispatcher.Handle(s.ctx, message("/adddog Rex"))
	})

	s.Run("name too long is echoed", func() {
		s.reg.EXPECT().AddDog(gomock.Any(), userID, gomock.Any()).Return(int64(0), user.ErrDogNameTooLong)
		var text string
		s.expectSend(&text, nil)

		s.dispatcher.Handle(s.ctx, message("/adddog "+strings.Repeat("x", 80)))

		s.Equal(user.ErrDogNameTooLong.Error(), text)
	})
}

func (s *DispatcherTestSuite) TestUnknownTextShowsMainMenu() {
	var kb telegram.Keyboard
	s.expectSend(nil, &kb)

	s.dispatcher.Handle(s.ctx, message("hello"))

	s.Equal(mainMenu, s.commandsOf(kb))
	s.Equal(1.0, promtest.ToFloat64(s.metrics.UpdatesProcessed.WithLabelValues(metrics.UpdateMessage)))
}

// ================================================================================
// Booking callbacks
// ================================================================================

func (s *DispatcherTestSuite) TestBookClass() {
	s.Run("registered user gets day picker", func() {
		s.expectAnswer()
		s.nav.EXPECT().Record(gomock.Any(), userID, navigation.CommandBookClass).Return(nil)
		s.account.EXPECT().IsRegistered(gomock.Any(), userID).Return(true, nil)
		s.flow.EXPECT().Advance(gomock.Any(), userID, booking.Payload{}).Return(&usecase.Prompt{
			Step: booking.StepRestart,
			Options: []usecase.Option{
				{Label: "Thursday", Data: callback.New(navigation.CommandSelectTime, booking.Payload{Day: schedule.Thursday})},
			},
		}, nil)
		var kb telegram.Keyboard
		s.expectSend(nil, &kb)

		s.dispatcher.Handle(s.ctx, s.tap(navigation.CommandBookClass, booking.Payload{}))

		s.Equal([]navigation.Command{navigation.CommandSelectTime, navigation.CommandBack}, s.commandsOf(kb))
	})

	s.Run("unregistered user is asked for contact", func() {
		s.expectAnswer()
		s.nav.EXPECT().Record(gomock.Any(), userID, navigation.CommandBookClass).Return(nil)
		s.account.EXPECT().IsRegistered(gomock.Any(), userID).Return(false, nil)
		s.out.EXPECT().RequestContact(chatID, gomock.Any()).Return(nil)

		s.dispatcher.Handle(s.ctx, s.tap(navigation.CommandBookClass, booking.Payload{}))
	})
}

func (s *DispatcherTestSuite) TestReserveTapAdvancesWithFullPayload() {
	p := booking.Payload{Day: schedule.Thursday, SlotID: 42, DogID: 2}
	s.expectAnswer()
	s.nav.EXPECT().Record(gomock.Any(), userID, navigation.CommandReserve).Return(nil)
	s.flow.EXPECT().Advance(gomock.Any(), userID, p).Return(&usecase.Prompt{
		Step:      booking.StepReserve,
		Notice:    usecase.NoticeBooked,
		Booked:    builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) { b.IsReserved = true }).BuildView(),
		BookedDog: "Bella",
	}, nil)
	var text string
	var kb telegram.Keyboard
	s.expectSend(&text, &kb)

	s.dispatcher.Handle(s.ctx, s.tap(navigation.CommandReserve, p))

	s.Contains(text, "Thursday 22.10, 10:00-11:00 for Bella")
	s.Equal(mainMenu, s.commandsOf(kb))
	s.Equal(1.0, promtest.ToFloat64(s.metrics.UpdatesProcessed.WithLabelValues(metrics.UpdateCallback)))
}

func (s *DispatcherTestSuite) TestMalformedCallbackGoesToFlow() {
	s.expectAnswer()
	s.nav.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.flow.EXPECT().AdvanceRaw(gomock.Any(), userID, "garbage").
		Return(&usecase.Prompt{Step: booking.StepRestart, Notice: usecase.NoticeRestarted}, nil)
	s.expectSend(nil, nil)

	s.dispatcher.Handle(s.ctx, telegram.Update{UserID: userID, ChatID: chatID, CallbackID: "cb-1", CallbackData: "garbage"})
}

// ================================================================================
// Back navigation
// ================================================================================

func (s *DispatcherTestSuite) TestBack() {
	s.Run("from dog picker reopens time picker", func() {
		s.expectAnswer()
		s.nav.EXPECT().BackTarget(gomock.Any(), userID).Return(navigation.CommandSelectTime, nil)
		s.flow.EXPECT().ResumeTimeSelection(gomock.Any(), userID).
			Return(&usecase.Prompt{Step: booking.StepSelectTime}, nil)
		s.expectSend(nil, nil)

		s.dispatcher.Handle(s.ctx, s.tap(navigation.CommandBack, booking.Payload{}))
	})

	s.Run("to main menu", func() {
		s.expectAnswer()
		s.nav.EXPECT().BackTarget(gomock.Any(), userID).Return(navigation.CommandMainMenu, nil)
		var kb telegram.Keyboard
		s.expectSend(nil, &kb)

		s.dispatcher.Handle(s.ctx, s.tap(navigation.CommandBack, booking.Payload{}))

		s.Equal(mainMenu, s.commandsOf(kb))
	})

	s.Run("no history reports failure", func() {
		s.expectAnswer()
		s.nav.EXPECT().BackTarget(gomock.Any(), userID).Return(navigation.CommandUnknown, commands.ErrNoConversation)
		var kb telegram.Keyboard
		s.expectSend(nil, &kb)

		s.dispatcher.Handle(s.ctx, s.tap(navigation.CommandBack, booking.Payload{}))

		s.Equal(mainMenu, s.commandsOf(kb))
		s.Equal(1.0, promtest.ToFloat64(s.metrics.ErrorsTotal))
	})
}

func (s *DispatcherTestSuite) TestMyBookings() {
	s.expectAnswer()
	s.nav.EXPECT().Record(gomock.Any(), userID, navigation.CommandMyBookings).Return(nil)
	s.account.EXPECT().ListBookings(gomock.Any(), userID).Return(nil, errors.New("db down"))
	var text string
	s.expectSend(&text, nil)

	s.dispatcher.Handle(s.ctx, s.tap(navigation.CommandMyBookings, booking.Payload{}))

	s.Contains(text, "Something went wrong")
}

func (s *DispatcherTestSuite) TestRecordFailureDoesNotBlockNavigation() {
	s.expectAnswer()
	s.nav.EXPECT().Record(gomock.Any(), userID, navigation.CommandMainMenu).Return(errors.New("db down"))
	s.expectSend(nil, nil)

	s.dispatcher.Handle(s.ctx, s.tap(navigation.CommandMainMenu, booking.Payload{}))

	s.Zero(promtest.ToFloat64(s.metrics.ErrorsTotal))
}
