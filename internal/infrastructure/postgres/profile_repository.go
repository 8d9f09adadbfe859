package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementación del puerto ProfileRepository sobre PostgreSQL.
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository construye el adaptador de cuentas.
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

const profileColumns = `
	id::text,
	COALESCE(email, ''),
	COALESCE(password_hash, ''),
	COALESCE(first_name, ''),
	COALESCE(second_name, ''),
	COALESCE(role, ''),
	COALESCE(created_at, now()),
	COALESCE(updated_at, created_at, now())`

// FindByEmail obtiene una cuenta por email (sin distinguir mayúsculas).
func (r *ProfileRepo) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE lower(email) = lower($1) LIMIT 1`
	return r.findOne(ctx, "profiles.FindByEmail", query, email)
}

// FindByID obtiene una cuenta por ID.
func (r *ProfileRepo) FindByID(ctx context.Context, id string) (*entity.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id::text = $1`
	return r.findOne(ctx, "profiles.FindByID", query, id)
}

func (r *ProfileRepo) findOne(ctx context.Context, op, query string, arg string) (*entity.Profile, error) {
	var p entity.Profile
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.Email, &p.PasswordHash, &p.FirstName, &p.SecondName, &p.Role,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}
