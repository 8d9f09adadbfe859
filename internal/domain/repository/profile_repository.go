package repository

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// ProfileRepository define el puerto de lectura de cuentas para auth.
type ProfileRepository interface {
	// FindByEmail devuelve (nil, nil) si no existe.
	FindByEmail(ctx context.Context, email string) (*entity.Profile, error)
	// FindByID devuelve (nil, nil) si no existe.
	FindByID(ctx context.Context, id string) (*entity.Profile, error)
}
