package navigation

import "doglivebot/internal/pkg/errs"

// Command identifies a screen or action of the bot menu.
type Command int

const (
	CommandUnknown Command = iota
	CommandMainMenu
	CommandBookClass
	CommandSelectTime
	CommandSelectDog
	CommandReserve
	CommandMyBookings
	CommandMyDogs
	CommandAddDog
	CommandBack
)

var ErrUnknownCommand = errs.New("unknown command")

// descriptions is the persisted form of each command; it must stay stable.
var descriptions = map[Command]string{
	CommandMainMenu:   "main_menu",
	CommandBookClass:  "book_class",
	CommandSelectTime: "select_time",
	CommandSelectDog:  "select_dog",
	CommandReserve:    "reserve",
	CommandMyBookings: "my_bookings",
	CommandMyDogs:     "my_dogs",
	CommandAddDog:     "add_dog",
	CommandBack:       "back",
}

var byDescription = func() map[string]Command {
	m := make(map[string]Command, len(descriptions))
	for c, d := range descriptions {
		m[d] = c
	}
	return m
}()

// parents declares where "back" leads from each command.
var parents = map[Command]Command{
	CommandMainMenu:   CommandMainMenu,
	CommandBookClass:  CommandMainMenu,
	CommandSelectTime: CommandBookClass,
	CommandSelectDog:  CommandSelectTime,
	CommandReserve:    CommandSelectDog,
	CommandMyBookings: CommandMainMenu,
	CommandMyDogs:     CommandMainMenu,
	CommandAddDog:     CommandMyDogs,
	CommandBack:       CommandMainMenu,
}

func (c Command) Description() string {
	return descriptions[c]
}

func (c Command) String() string {
	if d, ok := descriptions[c]; ok {
		return d
	}
	return "unknown"
}

func (c Command) Valid() bool {
	_, ok := descriptions[c]
	return ok
}

// Parent returns the command shown when the user goes back from c.
func (c Command) Parent() Command {
	if p, ok := parents[c]; ok {
		return p
	}
	return CommandMainMenu
}

// Recordable reports whether the command should be remembered as the user's last step.
func (c Command) Recordable() bool {
	return c.Valid() && c != CommandBack
}

func FromDescription(desc string) (Command, error) {
	c, ok := byDescription[desc]
	if !ok {
		return CommandUnknown, errs.Wrapf(ErrUnknownCommand, "description %q", desc)
	}
	return c, nil
}
