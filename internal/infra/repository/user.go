package repository

import (
	"context"

	"doglivebot/internal/domain/user"
	"doglivebot/internal/infra"
	"doglivebot/internal/infra/db"
	"doglivebot/internal/pkg/pgconv"
)

const (
	upsertUserSQL = `
INSERT INTO users (id, chat_id, phone, first_name, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
ON CONFLICT (id) DO UPDATE
SET chat_id = EXCLUDED.chat_id,
    phone = EXCLUDED.phone,
    first_name = EXCLUDED.first_name,
    updated_at = EXCLUDED.updated_at`

	createDogSQL = `
INSERT INTO dogs (user_id, name, created_at)
VALUES ($1, $2, $3)
RETURNING id`
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Upsert(ctx context.Context, tx db.DBTX, u *user.User) error {
	_, err := tx.Exec(ctx, upsertUserSQL,
		u.ID(), u.ChatID(), u.Phone().String(), u.FirstName(), pgconv.TimeToPgtype(u.CreatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert user", err)
	}
	return nil
}

type DogRepository struct{}

func NewDogRepository() *DogRepository {
	return &DogRepository{}
}

func (r *DogRepository) Create(ctx context.Context, tx db.DBTX, d *user.Dog) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, createDogSQL, d.UserID(), d.Name().String(), pgconv.TimeToPgtype(d.CreatedAt())).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create dog", err)
	}
	return id, nil
}
