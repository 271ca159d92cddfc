package readstore

import (
	"context"

	"tour-booking-api/internal/domain/user"
	"tour-booking-api/internal/infra/db"
	"tour-booking-api/internal/pkg/pgconv"
	"tour-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (s *UserReadStore) FindByEmail(ctx context.Context, email user.Email) (*queries.AuthorizedUserView, string, error) {
	const query = `
		SELECT id, email, full_name, role, is_active, password_hash
		FROM users
		WHERE email = $1`

	view, hash, err := s.scanUser(s.db.QueryRow(ctx, query, email.Value()))
	if err != nil {
		return nil, "", wrapReadErr("find user by email", err)
	}
	return view, hash, nil
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, email, full_name, role, is_active, password_hash
		FROM users
		WHERE id = $1`

	view, _, err := s.scanUser(s.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)))
	if err != nil {
		return nil, wrapReadErr("find user by id", err)
	}
	return view, nil
}

func (s *UserReadStore) scanUser(row pgx.Row) (*queries.AuthorizedUserView, string, error) {
	var (
		userID   pgtype.UUID
		email    string
		fullName string
		role     string
		isActive bool
		hash     string
	)
	if err := row.Scan(&userID, &email, &fullName, &role, &isActive, &hash); err != nil {
		return nil, "", err
	}

	return &queries.AuthorizedUserView{
		ID:       uuid.UUID(userID.Bytes),
		Email:    email,
		FullName: fullName,
		Role:     role,
		IsActive: isActive,
	}, hash, nil
}
