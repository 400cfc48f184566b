package repository

import (
	"context"
	"time"

	"doglivebot/internal/domain/navigation"
	"doglivebot/internal/infra"
	"doglivebot/internal/infra/db"
	"doglivebot/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

const (
	upsertLastCallbackSQL = `
INSERT INTO last_callbacks (user_id, command, created_at, updated_at)
VALUES ($1, $2, $3, $3)
ON CONFLICT (user_id) DO UPDATE
SET command = EXCLUDED.command,
    updated_at = EXCLUDED.updated_at`

	findLastCallbackSQL = `
SELECT user_id, command, updated_at
FROM last_callbacks
WHERE user_id = $1`
)

type ConversationRepository struct{}

func NewConversationRepository() *ConversationRepository {
	return &ConversationRepository{}
}

func (r *ConversationRepository) Upsert(ctx context.Context, tx db.DBTX, userID int64, cmd navigation.Command, at time.Time) error {
	if _, err := tx.Exec(ctx, upsertLastCallbackSQL, userID, cmd.Description(), pgconv.TimeToPgtype(at)); err != nil {
		return infra.WrapRepoErr("failed to record last command", err)
	}
	return nil
}

func (r *ConversationRepository) Find(ctx context.Context, tx db.DBTX, userID int64) (*navigation.Record, error) {
	var (
		id        int64
		desc      string
		updatedAt pgtype.Timestamptz
	)
	if err := tx.QueryRow(ctx, findLastCallbackSQL, userID).Scan(&id, &desc, &updatedAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("last command not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find last command", err)
	}

	cmd, err := navigation.FromDescription(desc)
	if err != nil {
		return nil, infra.WrapRepoErr("stored command is not recognised", err, infra.KindConflict)
	}
	return &navigation.Record{UserID: id, Command: cmd, UpdatedAt: pgconv.TimeFromPgtype(updatedAt)}, nil
}
