package user

import "doglivebot/internal/pkg/errs"

const MaxDogNameLength = 64

var (
	ErrInvalidPhone   = errs.New("invalid phone number")
	ErrInvalidUserID  = errs.New("invalid telegram user id")
	ErrEmptyDogName   = errs.New("dog name is empty")
	ErrDogNameTooLong = errs.New("dog name is too long")
)
