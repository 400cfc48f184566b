package commands

import (
	"context"
	"log/slog"

	"doglivebot/internal/domain/user"
	"doglivebot/internal/infra"
	"doglivebot/internal/pkg/clock"
	"doglivebot/internal/pkg/errs"
	"doglivebot/internal/usecase/shared"
)

var ErrNotRegistered = errs.New("user is not registered")

type RegisterContactRequest struct {
	UserID    int64
	ChatID    int64
	Phone     string
	FirstName string
}

type RegistrationCommands interface {
	// RegisterContact creates the user or refreshes their phone and chat.
	RegisterContact(ctx context.Context, req RegisterContactRequest) error
	AddDog(ctx context.Context, userID int64, name string) (int64, error)
}

type registrationUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewRegistrationCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) RegistrationCommands {
	return &registrationUseCaseImpl{uow: uow, clock: clk, logger: logger}
}

func (uc *registrationUseCaseImpl) RegisterContact(ctx context.Context, req RegisterContactRequest) error {
	phone, err := user.NewPhone(req.Phone)
	if err != nil {
		return err
	}
	u, err := user.NewUser(req.UserID, req.ChatID, phone, req.FirstName, uc.clock.Now())
	if err != nil {
		return err
	}

	if err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Upsert(ctx, tx.DB(), u)
	}); err != nil {
		return err
	}

	uc.logger.Info("user registered", "user_id", req.UserID)
	return nil
}

func (uc *registrationUseCaseImpl) AddDog(ctx context.Context, userID int64, name string) (int64, error) {
	dogName, err := user.NewDogName(name)
	if err != nil {
		return 0, err
	}
	dog, err := user.NewDog(userID, dogName, uc.clock.Now())
	if err != nil {
		return 0, err
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		id, err = tx.Dogs().Create(ctx, tx.DB(), dog)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return 0, errs.Mark(err, ErrNotRegistered)
		}
		return 0, err
	}

	uc.logger.Info("dog added", "user_id", userID, "dog_id", id)
	return id, nil
}
