package user

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type Phone struct {
	value string
}

// NewPhone keeps digits and a leading plus sign, as Telegram contacts vary in formatting.
func NewPhone(raw string) (Phone, error) {
	raw = strings.TrimSpace(raw)
	var b strings.Builder
	for i, r := range raw {
		switch {
		case unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return Phone{}, ErrInvalidPhone
		}
	}
	v := b.String()
	digits := strings.TrimPrefix(v, "+")
	if len(digits) < 7 || len(digits) > 15 {
		return Phone{}, ErrInvalidPhone
	}
	if !strings.HasPrefix(v, "+") {
		v = "+" + v
	}
	return Phone{value: v}, nil
}

func (p Phone) String() string { return p.value }

type DogName struct {
	value string
}

func NewDogName(s string) (DogName, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return DogName{}, ErrEmptyDogName
	}
	if utf8.RuneCountInString(t) > MaxDogNameLength {
		return DogName{}, ErrDogNameTooLong
	}
	return DogName{value: t}, nil
}

func (n DogName) String() string { return n.value }
