package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Empresas-api/internal/domain"
	"github.com/jhoicas/Empresas-api/internal/domain/entity"
	"github.com/jhoicas/Empresas-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
// Acepta el pool o una tx (ver Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id, name, email, address, phone, admin_user_id, created_at, updated_at`

// Create persiste la empresa y sus departamentos.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, email, address, phone, admin_user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		company.ID, company.Name, company.Email, company.Address,
		company.Phone, company.AdminUserID, company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCompanyEmailExists
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return r.insertDepartments(ctx, company.ID, company.Departments)
}

// GetByID obtiene una empresa por ID, con departamentos y referencias de
// empleo pobladas.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	return r.getOne(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
}

// GetByEmail obtiene una empresa por email.
func (r *CompanyRepo) GetByEmail(ctx context.Context, email string) (*entity.Company, error) {
	return r.getOne(ctx, `SELECT `+companyColumns+` FROM companies WHERE email = $1`, email)
}

func (r *CompanyRepo) getOne(ctx context.Context, query string, arg any) (*entity.Company, error) {
	var c entity.Company
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&c.ID, &c.Name, &c.Email, &c.Address, &c.Phone, &c.AdminUserID,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	if err := r.populate(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CompanyRepo) populate(ctx context.Context, c *entity.Company) error {
	rows, err := r.q.Query(ctx, `SELECT name, COALESCE(description, '') FROM departments WHERE company_id = $1 ORDER BY name`, c.ID)
	if err != nil {
		return fmt.Errorf("load departments: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var d entity.Department
		if err := rows.Scan(&d.Name, &d.Description); err != nil {
			return fmt.Errorf("scan department: %w", err)
		}
		c.Departments = append(c.Departments, d)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	empRows, err := r.q.Query(ctx, `SELECT id FROM employments WHERE company_id = $1 ORDER BY created_at`, c.ID)
	if err != nil {
		return fmt.Errorf("load employment refs: %w", err)
	}
	defer empRows.Close()
	for empRows.Next() {
		var id string
		if err := empRows.Scan(&id); err != nil {
			return fmt.Errorf("scan employment ref: %w", err)
		}
		c.EmployeeIDs = append(c.EmployeeIDs, id)
	}
	return empRows.Err()
}

// List devuelve empresas con paginación, pobladas.
func (r *CompanyRepo) List(ctx context.Context, limit, offset int) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Address, &c.Phone, &c.AdminUserID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, c := range list {
		if err := r.populate(ctx, c); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Update actualiza los campos de perfil de la empresa.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, email = $3, address = $4, phone = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		company.ID, company.Name, company.Email, company.Address, company.Phone, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCompanyEmailExists
		}
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// ReplaceDepartments reemplaza la lista de departamentos de la empresa.
func (r *CompanyRepo) ReplaceDepartments(ctx context.Context, companyID string, departments []entity.Department) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM departments WHERE company_id = $1`, companyID); err != nil {
		return fmt.Errorf("clear departments: %w", err)
	}
	return r.insertDepartments(ctx, companyID, departments)
}

func (r *CompanyRepo) insertDepartments(ctx context.Context, companyID string, departments []entity.Department) error {
	for _, d := range departments {
		_, err := r.q.Exec(ctx,
			`INSERT INTO departments (company_id, name, description) VALUES ($1, $2, $3)`,
			companyID, d.Name, nullIfEmpty(d.Description),
		)
		if err != nil {
			return fmt.Errorf("insert department %s: %w", d.Name, err)
		}
	}
	return nil
}

// Delete elimina la empresa y sus departamentos.
func (r *CompanyRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM departments WHERE company_id = $1`, id); err != nil {
		return fmt.Errorf("delete departments: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}
