package repository

import (
	"context"

	"github.com/jhoicas/Empresas-api/internal/domain/entity"
)

// EmploymentRepository define el puerto de persistencia para Employment (DIP).
type EmploymentRepository interface {
	Create(ctx context.Context, employment *entity.Employment) error
	GetByID(ctx context.Context, id string) (*entity.Employment, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Employment, error)
	Delete(ctx context.Context, id string) error
	DeleteByCompany(ctx context.Context, companyID string) error
}
