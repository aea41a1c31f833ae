package reports

import (
	"context"
	"time"

	"github.com/jhoicas/Empresas-api/internal/domain"
	"github.com/jhoicas/Empresas-api/internal/domain/entity"
	"github.com/jhoicas/Empresas-api/internal/domain/repository"
)

// EmployeeForRoster fila del reporte de plantilla.
type EmployeeForRoster struct {
	Name       string
	Email      string
	Department string
	Since      time.Time
}

// RosterPDFGenerator puerto del generador del PDF de plantilla. La
// implementación (Maroto) vive en infrastructure.
type RosterPDFGenerator interface {
	GenerateRosterPDF(ctx context.Context, company *entity.Company, rows []EmployeeForRoster) ([]byte, error)
}

// RosterUseCase arma el reporte de plantilla de una empresa: sus empleos con
// el usuario vinculado, listos para la representación PDF.
type RosterUseCase struct {
	companyRepo    repository.CompanyRepository
	employmentRepo repository.EmploymentRepository
	userRepo       repository.UserRepository
	generator      RosterPDFGenerator
}

// NewRosterUseCase construye el caso de uso del reporte.
func NewRosterUseCase(companyRepo repository.CompanyRepository, employmentRepo repository.EmploymentRepository, userRepo repository.UserRepository, generator RosterPDFGenerator) *RosterUseCase {
	return &RosterUseCase{companyRepo: companyRepo, employmentRepo: employmentRepo, userRepo: userRepo, generator: generator}
}

// GenerateCompanyRoster genera el PDF de plantilla de la empresa.
func (uc *RosterUseCase) GenerateCompanyRoster(ctx context.Context, companyID string) ([]byte, error) {
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	employments, err := uc.employmentRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	rows := make([]EmployeeForRoster, 0, len(employments))
	for _, e := range employments {
		row := EmployeeForRoster{Department: e.Department, Since: e.CreatedAt}
		user, err := uc.userRepo.GetByID(ctx, e.UserID)
		if err != nil {
			return nil, err
		}
		if user != nil {
			row.Name = user.Name
			row.Email = user.Email
		}
		rows = append(rows, row)
	}
	return uc.generator.GenerateRosterPDF(ctx, company, rows)
}
