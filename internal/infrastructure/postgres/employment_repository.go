package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Empresas-api/internal/domain"
	"github.com/jhoicas/Empresas-api/internal/domain/entity"
	"github.com/jhoicas/Empresas-api/internal/domain/repository"
)

var _ repository.EmploymentRepository = (*EmploymentRepo)(nil)

// EmploymentRepo implementación del puerto EmploymentRepository sobre
// PostgreSQL. El índice único (user_id, company_id) garantiza a lo sumo un
// empleo por usuario y empresa.
type EmploymentRepo struct {
	q Querier
}

// NewEmploymentRepository construye el adaptador de persistencia para empleos.
func NewEmploymentRepository(q Querier) *EmploymentRepo {
	return &EmploymentRepo{q: q}
}

const employmentColumns = `id, user_id, company_id, department, created_at, updated_at`

// Create persiste un registro de empleo.
func (r *EmploymentRepo) Create(ctx context.Context, employment *entity.Employment) error {
	query := `
		INSERT INTO employments (id, user_id, company_id, department, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		employment.ID, employment.UserID, employment.CompanyID,
		employment.Department, employment.CreatedAt, employment.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEmployment
		}
		return fmt.Errorf("insert employment: %w", err)
	}
	return nil
}

// GetByID obtiene un empleo por ID.
func (r *EmploymentRepo) GetByID(ctx context.Context, id string) (*entity.Employment, error) {
	var e entity.Employment
	err := r.q.QueryRow(ctx, `SELECT `+employmentColumns+` FROM employments WHERE id = $1`, id).Scan(
		&e.ID, &e.UserID, &e.CompanyID, &e.Department, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employment: %w", err)
	}
	return &e, nil
}

// ListByCompany devuelve los empleos de una empresa.
func (r *EmploymentRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Employment, error) {
	query := `SELECT ` + employmentColumns + ` FROM employments WHERE company_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list employments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employment
	for rows.Next() {
		var e entity.Employment
		if err := rows.Scan(&e.ID, &e.UserID, &e.CompanyID, &e.Department, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan employment: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete elimina un empleo por ID.
func (r *EmploymentRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM employments WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete employment: %w", err)
	}
	return nil
}

// DeleteByCompany elimina todos los empleos de la empresa.
func (r *EmploymentRepo) DeleteByCompany(ctx context.Context, companyID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM employments WHERE company_id = $1`, companyID); err != nil {
		return fmt.Errorf("delete employments: %w", err)
	}
	return nil
}
