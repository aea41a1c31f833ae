package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Empresas-api/internal/domain/entity"
	"github.com/jhoicas/Empresas-api/internal/domain/repository"
)

var _ repository.LeadRepository = (*LeadRepo)(nil)

// LeadRepo implementación del puerto LeadRepository sobre PostgreSQL.
// estimated_value es NUMERIC; el codec shopspring se registra en el pool.
type LeadRepo struct {
	q Querier
}

// NewLeadRepository construye el adaptador de persistencia para prospectos.
func NewLeadRepository(q Querier) *LeadRepo {
	return &LeadRepo{q: q}
}

const leadColumns = `id, company_id, created_by, name, email, phone, COALESCE(address, ''), COALESCE(company_name, ''), estimated_value, created_at, updated_at`

// Create persiste un prospecto.
func (r *LeadRepo) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, company_id, created_by, name, email, phone, address, company_name, estimated_value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		lead.ID, lead.CompanyID, lead.CreatedBy, lead.Name, lead.Email, lead.Phone,
		nullIfEmpty(lead.Address), nullIfEmpty(lead.CompanyName), lead.EstimatedValue,
		lead.CreatedAt, lead.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// GetByID obtiene un prospecto por ID.
func (r *LeadRepo) GetByID(ctx context.Context, id string) (*entity.Lead, error) {
	var l entity.Lead
	err := r.q.QueryRow(ctx, `SELECT `+leadColumns+` FROM leads WHERE id = $1`, id).Scan(
		&l.ID, &l.CompanyID, &l.CreatedBy, &l.Name, &l.Email, &l.Phone,
		&l.Address, &l.CompanyName, &l.EstimatedValue, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return &l, nil
}

// ListByCreator devuelve los prospectos creados por un usuario.
func (r *LeadRepo) ListByCreator(ctx context.Context, userID string) ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE created_by = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lead
	for rows.Next() {
		var l entity.Lead
		if err := rows.Scan(&l.ID, &l.CompanyID, &l.CreatedBy, &l.Name, &l.Email, &l.Phone, &l.Address, &l.CompanyName, &l.EstimatedValue, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Update actualiza un prospecto.
func (r *LeadRepo) Update(ctx context.Context, lead *entity.Lead) error {
	query := `
		UPDATE leads SET name = $2, email = $3, phone = $4, address = $5, company_name = $6, estimated_value = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		lead.ID, lead.Name, lead.Email, lead.Phone,
		nullIfEmpty(lead.Address), nullIfEmpty(lead.CompanyName), lead.EstimatedValue, lead.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update lead: %w", err)
	}
	return nil
}

// Delete elimina un prospecto por ID.
func (r *LeadRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM leads WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	return nil
}
