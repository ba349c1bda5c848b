package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"

	"github.com/xenking/kart-checkout/internal/domain/user"
)

const (
	userColumns = `id::text, email, name, role`

	getUserSQL        = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	getUserByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	upsertUserSQL     = `INSERT INTO users (id, email, name, role) VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, role = EXCLUDED.role
		RETURNING id::text`
)

var _ user.Directory = (*UserRepository)(nil)

// UserRepository implements user.Directory backed by PostgreSQL.
type UserRepository struct {
	db DBTX
}

// NewUserRepository returns a UserRepository that uses db.
func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// Get returns user.ErrNotFound for unknown or malformed ids.
func (r *UserRepository) Get(ctx context.Context, id string) (*user.User, error) {
	return r.one(ctx, getUserSQL, id)
}

// FindByEmail looks a user up by lowercased email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.one(ctx, getUserByEmailSQL, strings.ToLower(strings.TrimSpace(email)))
}

// Upsert stores u keyed by email and returns the id of the stored row, which
// differs from u.ID when the email already existed.
func (r *UserRepository) Upsert(ctx context.Context, u user.User) (string, error) {
	var id string
	err := r.db.QueryRow(ctx, upsertUserSQL, u.ID, strings.ToLower(u.Email), u.Name, string(u.Role)).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("upserting user %q: %w", u.Email, err)
	}
	return id, nil
}

func (r *UserRepository) one(ctx context.Context, query, arg string) (*user.User, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		if isBadID(err) {
			return nil, user.ErrNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	u, err := pgx.CollectExactlyOneRow(rows, scanUser)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isBadID(err) {
			return nil, user.ErrNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return &u, nil
}

func scanUser(row pgx.CollectableRow) (user.User, error) {
	var (
		u    user.User
		role string
	)
	err := row.Scan(&u.ID, &u.Email, &u.Name, &role)
	u.Role = user.Role(role)
	return u, err
}
