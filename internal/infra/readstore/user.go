package readstore

import (
	"context"

	"foodies-api/internal/infra"
	"foodies-api/internal/infra/db"
	"foodies-api/internal/pkg/pgconv"
	"foodies-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const userByIDSQL = `
SELECT id, name, email, role, birth_date, is_active
FROM users
WHERE id = $1`

const userByEmailSQL = `
SELECT id, name, email, role, birth_date, is_active, password_hash
FROM users
WHERE email = $1`

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var v queries.AuthorizedUserView
	var birthDate pgtype.Timestamptz
	err := r.db.QueryRow(ctx, userByIDSQL, id).Scan(
		&v.ID, &v.Name, &v.Email, &v.Role, &birthDate, &v.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get user by id", err)
	}
	v.BirthDate = pgconv.TimePtrFromPgtype(birthDate)
	return &v, nil
}

// FindByEmail also returns the password hash for credential checks.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var v queries.AuthorizedUserView
	var birthDate pgtype.Timestamptz
	var passwordHash string
	err := r.db.QueryRow(ctx, userByEmailSQL, email).Scan(
		&v.ID, &v.Name, &v.Email, &v.Role, &birthDate, &v.IsActive, &passwordHash,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to get user by email", err)
	}
	v.BirthDate = pgconv.TimePtrFromPgtype(birthDate)
	return &v, passwordHash, nil
}
