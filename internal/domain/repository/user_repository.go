package repository

import (
	"context"

	"github.com/jhoicas/Empresas-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Las lecturas devuelven (nil, nil) cuando el registro no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	// UpdatePassword persiste el nuevo hash y el estado del flag de primer login.
	UpdatePassword(ctx context.Context, id, passwordHash string, isFirstLogin bool) error
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) error
	// Membresías usuario ↔ empresa (el "set de empresas" del usuario).
	AddToCompany(ctx context.Context, userID, companyID string) error
	RemoveFromCompany(ctx context.Context, userID, companyID string) error
}
