package repository

import (
	"context"

	"github.com/jhoicas/Empresas-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// GetByID y List devuelven la empresa con departamentos y referencias de
// empleo pobladas; las lecturas devuelven (nil, nil) cuando no existe.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	GetByEmail(ctx context.Context, email string) (*entity.Company, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	ReplaceDepartments(ctx context.Context, companyID string, departments []entity.Department) error
	Delete(ctx context.Context, id string) error
}
