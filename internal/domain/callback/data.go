package callback

import (
	"encoding/json"

	"doglivebot/internal/domain/booking"
	"doglivebot/internal/domain/navigation"
	"doglivebot/internal/domain/schedule"
	"doglivebot/internal/pkg/errs"
)

// MaxSize is the Telegram limit for inline button callback data, in bytes.
const MaxSize = 64

var (
	ErrTooLarge  = errs.New("callback data exceeds 64 bytes")
	ErrMalformed = errs.New("malformed callback data")
)

// Data is the compact button payload: {"c":2,"d":3,"s":42,"g":7}.
type Data struct {
	Command navigation.Command `json:"c"`
	Day     schedule.Weekday   `json:"d,omitempty"`
	SlotID  int64              `json:"s,omitempty"`
	DogID   int64              `json:"g,omitempty"`
}

func New(cmd navigation.Command, p booking.Payload) Data {
	return Data{Command: cmd, Day: p.Day, SlotID: p.SlotID, DogID: p.DogID}
}

func (d Data) Payload() booking.Payload {
	return booking.Payload{Day: d.Day, SlotID: d.SlotID, DogID: d.DogID}
}

func (d Data) Encode() (string, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return "", errs.Wrap(err, "encode callback data")
	}
	if len(b) > MaxSize {
		return "", errs.Wrapf(ErrTooLarge, "callback data is %d bytes", len(b))
	}
	return string(b), nil
}

func Decode(raw string) (Data, error) {
	if raw == "" || len(raw) > MaxSize {
		return Data{}, ErrMalformed
	}
	var d Data
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return Data{}, errs.Wrapf(ErrMalformed, "%v", err)
	}
	if !d.Command.Valid() || d.SlotID < 0 || d.DogID < 0 || (d.Day != 0 && !d.Day.Valid()) {
		return Data{}, ErrMalformed
	}
	return d, nil
}
