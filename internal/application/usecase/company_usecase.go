package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Empresas-api/internal/application/dto"
	"github.com/jhoicas/Empresas-api/internal/application/provisioning"
	"github.com/jhoicas/Empresas-api/internal/domain"
	"github.com/jhoicas/Empresas-api/internal/domain/entity"
	"github.com/jhoicas/Empresas-api/internal/domain/repository"
)

// CompanyUseCase lecturas y actualización parcial de empresas. El alta y la
// baja viven en provisioning (son operaciones multi-registro).
type CompanyUseCase struct {
	repo repository.CompanyRepository
	tx   provisioning.TxRunner
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia y
// el runner transaccional para la actualización perfil+departamentos.
func NewCompanyUseCase(repo repository.CompanyRepository, tx provisioning.TxRunner) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, tx: tx}
}

// GetByID obtiene una empresa por ID.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return entityToCompanyResponse(company), nil
}

// List lista empresas con paginación.
func (uc *CompanyUseCase) List(ctx context.Context, limit, offset int) (*dto.CompanyListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update aplica una actualización parcial (name/email/address/phone/
// departments). Devuelve Conflict si el nuevo email ya pertenece a otra
// empresa.
func (uc *CompanyUseCase) Update(ctx context.Context, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	if in.Email != nil && *in.Email != company.Email {
		other, err := uc.repo.GetByEmail(ctx, *in.Email)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, fmt.Errorf("%s (%s): %w", "email de empresa en uso", *in.Email, domain.ErrCompanyEmailExists)
		}
		company.Email = *in.Email
	}
	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.Address != nil {
		company.Address = *in.Address
	}
	if in.Phone != nil {
		company.Phone = *in.Phone
	}
	company.UpdatedAt = time.Now()

	var departments []entity.Department
	if in.Departments != nil {
		departments = make([]entity.Department, 0, len(*in.Departments))
		for _, d := range *in.Departments {
			departments = append(departments, entity.Department{Name: d.Name, Description: d.Description})
		}
	}

	// Perfil y departamentos se escriben en la misma transacción: un fallo al
	// reemplazar departamentos no debe dejar el perfil actualizado a medias.
	err = uc.tx.Run(ctx, func(_ repository.UserRepository, companies repository.CompanyRepository, _ repository.EmploymentRepository) error {
		if err := companies.Update(ctx, company); err != nil {
			return err
		}
		if in.Departments != nil {
			return companies.ReplaceDepartments(ctx, id, departments)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if in.Departments != nil {
		company.Departments = departments
	}
	return entityToCompanyResponse(company), nil
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	employees := c.EmployeeIDs
	if employees == nil {
		employees = []string{}
	}
	departments := make([]dto.DepartmentDTO, 0, len(c.Departments))
	for _, d := range c.Departments {
		departments = append(departments, dto.DepartmentDTO{Name: d.Name, Description: d.Description})
	}
	return &dto.CompanyResponse{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Address:      c.Address,
		Phone:        c.Phone,
		CompanyAdmin: c.AdminUserID,
		Employees:    employees,
		Departments:  departments,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
