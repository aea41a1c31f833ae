package provisioning

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Empresas-api/internal/application/dto"
	"github.com/jhoicas/Empresas-api/internal/domain"
	"github.com/jhoicas/Empresas-api/internal/domain/entity"
	"github.com/jhoicas/Empresas-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UseCase orquesta el aprovisionamiento de tenants: alta/baja de empresas y
// de empleados como operaciones atómicas multi-registro sobre los tres
// stores (usuarios, empresas, empleos).
type UseCase struct {
	tx             TxRunner
	userRepo       repository.UserRepository
	companyRepo    repository.CompanyRepository
	employmentRepo repository.EmploymentRepository
}

// NewUseCase construye el caso de uso de aprovisionamiento.
func NewUseCase(tx TxRunner, userRepo repository.UserRepository, companyRepo repository.CompanyRepository, employmentRepo repository.EmploymentRepository) *UseCase {
	return &UseCase{tx: tx, userRepo: userRepo, companyRepo: companyRepo, employmentRepo: employmentRepo}
}

// CreateCompany crea una empresa junto con su usuario admin en una sola
// transacción. Precondiciones: ni el email de la empresa ni el del admin
// pueden estar en uso. Si falla cualquier paso, ningún registro queda
// visible. Sin departamentos explícitos se aplican los por defecto.
func (uc *UseCase) CreateCompany(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CreateCompanyResponse, error) {
	existingCompany, err := uc.companyRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existingCompany != nil {
		return nil, fmt.Errorf("%s (%s): %w", "email de empresa en uso", in.Email, domain.ErrCompanyEmailExists)
	}
	existingAdmin, err := uc.userRepo.GetByEmail(ctx, in.AdminEmail)
	if err != nil {
		return nil, err
	}
	if existingAdmin != nil {
		return nil, fmt.Errorf("%s (%s): %w", "email de admin en uso", in.AdminEmail, domain.ErrEmailAlreadyExists)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	departments := departmentsFromDTO(in.Departments)
	if len(departments) == 0 {
		departments = entity.DefaultDepartments()
	}

	now := time.Now()
	admin := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.AdminName,
		Email:        in.AdminEmail,
		PasswordHash: string(hash),
		Role:         entity.RoleCompanyAdmin,
		IsFirstLogin: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	company := &entity.Company{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Email:       in.Email,
		Address:     in.Address,
		Phone:       in.Phone,
		AdminUserID: admin.ID,
		Departments: departments,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = uc.tx.Run(ctx, func(users repository.UserRepository, companies repository.CompanyRepository, _ repository.EmploymentRepository) error {
		if err := users.Create(ctx, admin); err != nil {
			return err
		}
		if err := companies.Create(ctx, company); err != nil {
			return err
		}
		return users.AddToCompany(ctx, admin.ID, company.ID)
	})
	if err != nil {
		return nil, err
	}

	admin.CompanyIDs = []string{company.ID}
	return &dto.CreateCompanyResponse{
		Company: *companyToResponse(company),
		Admin:   *userToResponse(admin),
	}, nil
}

// DeleteCompany elimina el tenant completo en una sola transacción: los
// empleos de la empresa, los usuarios de esos empleos, el usuario admin y la
// empresa. Devuelve la instantánea de la empresa eliminada.
func (uc *UseCase) DeleteCompany(ctx context.Context, companyID string) (*dto.CompanyResponse, error) {
	var snapshot *entity.Company
	err := uc.tx.Run(ctx, func(users repository.UserRepository, companies repository.CompanyRepository, employments repository.EmploymentRepository) error {
		company, err := companies.GetByID(ctx, companyID)
		if err != nil {
			return err
		}
		if company == nil {
			return domain.ErrNotFound
		}

		records, err := employments.ListByCompany(ctx, companyID)
		if err != nil {
			return err
		}
		userIDs := make([]string, 0, len(records))
		for _, e := range records {
			userIDs = append(userIDs, e.UserID)
		}

		if err := employments.DeleteByCompany(ctx, companyID); err != nil {
			return err
		}
		if len(userIDs) > 0 {
			if err := users.DeleteMany(ctx, userIDs); err != nil {
				return err
			}
		}
		if err := users.Delete(ctx, company.AdminUserID); err != nil {
			return err
		}
		if err := companies.Delete(ctx, companyID); err != nil {
			return err
		}
		snapshot = company
		return nil
	})
	if err != nil {
		return nil, err
	}
	return companyToResponse(snapshot), nil
}

// AddEmployee da de alta un empleado: usuario nuevo (rol employee, primer
// login forzado) más su registro de empleo, en una sola transacción. El
// departamento debe existir en la empresa (sin distinguir mayúsculas).
func (uc *UseCase) AddEmployee(ctx context.Context, companyID string, in dto.AddEmployeeRequest) (*dto.AddEmployeeResponse, error) {
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if !company.HasDepartment(in.Department) {
		return nil, fmt.Errorf("departamento '%s': %w", in.Department, domain.ErrDepartmentNotFound)
	}
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%s (%s): %w", "email en uso", in.Email, domain.ErrEmailAlreadyExists)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         entity.RoleEmployee,
		IsFirstLogin: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	employment := &entity.Employment{
		ID:         uuid.New().String(),
		UserID:     user.ID,
		CompanyID:  companyID,
		Department: in.Department,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = uc.tx.Run(ctx, func(users repository.UserRepository, _ repository.CompanyRepository, employments repository.EmploymentRepository) error {
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		if err := employments.Create(ctx, employment); err != nil {
			return err
		}
		return users.AddToCompany(ctx, user.ID, companyID)
	})
	if err != nil {
		return nil, err
	}

	user.CompanyIDs = []string{companyID}
	return &dto.AddEmployeeResponse{
		User:       *userToResponse(user),
		Employment: *employmentToResponse(employment),
	}, nil
}

// RemoveEmployee elimina el registro de empleo y el usuario vinculado en una
// sola transacción.
func (uc *UseCase) RemoveEmployee(ctx context.Context, companyID, employmentID string) error {
	return uc.tx.Run(ctx, func(users repository.UserRepository, _ repository.CompanyRepository, employments repository.EmploymentRepository) error {
		employment, err := employments.GetByID(ctx, employmentID)
		if err != nil {
			return err
		}
		if employment == nil || employment.CompanyID != companyID {
			return domain.ErrNotFound
		}
		if err := employments.Delete(ctx, employmentID); err != nil {
			return err
		}
		if err := users.RemoveFromCompany(ctx, employment.UserID, companyID); err != nil {
			return err
		}
		return users.Delete(ctx, employment.UserID)
	})
}

// ListEmployees devuelve los empleos de la empresa con su usuario vinculado.
func (uc *UseCase) ListEmployees(ctx context.Context, companyID string) ([]dto.EmployeeDetailResponse, error) {
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	records, err := uc.employmentRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeDetailResponse, 0, len(records))
	for _, e := range records {
		user, err := uc.userRepo.GetByID(ctx, e.UserID)
		if err != nil {
			return nil, err
		}
		detail := dto.EmployeeDetailResponse{Employment: *employmentToResponse(e)}
		if user != nil {
			detail.User = *userToResponse(user)
		}
		out = append(out, detail)
	}
	return out, nil
}

// GetEmployee devuelve un empleo concreto de la empresa con su usuario.
func (uc *UseCase) GetEmployee(ctx context.Context, companyID, employmentID string) (*dto.EmployeeDetailResponse, error) {
	employment, err := uc.employmentRepo.GetByID(ctx, employmentID)
	if err != nil {
		return nil, err
	}
	if employment == nil || employment.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	user, err := uc.userRepo.GetByID(ctx, employment.UserID)
	if err != nil {
		return nil, err
	}
	detail := &dto.EmployeeDetailResponse{Employment: *employmentToResponse(employment)}
	if user != nil {
		detail.User = *userToResponse(user)
	}
	return detail, nil
}

func departmentsFromDTO(in []dto.DepartmentDTO) []entity.Department {
	if len(in) == 0 {
		return nil
	}
	out := make([]entity.Department, 0, len(in))
	for _, d := range in {
		out = append(out, entity.Department{Name: d.Name, Description: d.Description})
	}
	return out
}

func departmentsToDTO(in []entity.Department) []dto.DepartmentDTO {
	out := make([]dto.DepartmentDTO, 0, len(in))
	for _, d := range in {
		out = append(out, dto.DepartmentDTO{Name: d.Name, Description: d.Description})
	}
	return out
}

func userToResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	companies := u.CompanyIDs
	if companies == nil {
		companies = []string{}
	}
	return &dto.UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		IsFirstLogin: u.IsFirstLogin,
		Companies:    companies,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func companyToResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	employees := c.EmployeeIDs
	if employees == nil {
		employees = []string{}
	}
	return &dto.CompanyResponse{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Address:      c.Address,
		Phone:        c.Phone,
		CompanyAdmin: c.AdminUserID,
		Employees:    employees,
		Departments:  departmentsToDTO(c.Departments),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func employmentToResponse(e *entity.Employment) *dto.EmploymentResponse {
	if e == nil {
		return nil
	}
	return &dto.EmploymentResponse{
		ID:         e.ID,
		UserID:     e.UserID,
		CompanyID:  e.CompanyID,
		Department: e.Department,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
