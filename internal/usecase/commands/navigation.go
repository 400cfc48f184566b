package commands

import (
	"context"
	"log/slog"

	"doglivebot/internal/domain/navigation"
	"doglivebot/internal/infra"
	"doglivebot/internal/pkg/clock"
	"doglivebot/internal/pkg/errs"
	"doglivebot/internal/pkg/metrics"
	"doglivebot/internal/usecase/shared"
)

var ErrNoConversation = errs.New("no recorded command for user")

type NavigationCommands interface {
	// Record stores cmd as the user's last command. Back and unknown commands are not stored.
	Record(ctx context.Context, userID int64, cmd navigation.Command) error
	// BackTarget resolves the parent of the user's last command and records it,
	// so repeated back taps walk up the menu.
	BackTarget(ctx context.Context, userID int64) (navigation.Command, error)
}

type navigationUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewNavigationCommands(uow shared.UnitOfWork, clk clock.Clock, m *metrics.Metrics, logger *slog.Logger) NavigationCommands {
	return &navigationUseCaseImpl{uow: uow, clock: clk, metrics: m, logger: logger}
}

func (uc *navigationUseCaseImpl) Record(ctx context.Context, userID int64, cmd navigation.Command) error {
	if !cmd.Recordable() {
		return nil
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Conversations().Upsert(ctx, tx.DB(), userID, cmd, uc.clock.Now())
	})
}

func (uc *navigationUseCaseImpl) BackTarget(ctx context.Context, userID int64) (navigation.Command, error) {
	var target navigation.Command
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rec, err := tx.Conversations().Find(ctx, tx.DB(), userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrNoConversation)
			}
			return err
		}
		target = rec.Command.Parent()
		return tx.Conversations().Upsert(ctx, tx.DB(), userID, target, uc.clock.Now())
	})
	if err != nil {
		uc.metrics.IncNavigationError()
		uc.logger.Error("cannot resolve back navigation", "user_id", userID, "error", err)
		return navigation.CommandUnknown, err
	}
	return target, nil
}
