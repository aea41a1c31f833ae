package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Empresas-api/internal/application/dto"
	"github.com/jhoicas/Empresas-api/internal/domain"
	"github.com/jhoicas/Empresas-api/internal/domain/entity"
	"github.com/jhoicas/Empresas-api/internal/domain/repository"
)

// LeadUseCase prospectos comerciales de un admin de empresa. Solo el creador
// puede actualizar o eliminar sus prospectos.
type LeadUseCase struct {
	repo repository.LeadRepository
}

// NewLeadUseCase construye el caso de uso con el puerto de persistencia.
func NewLeadUseCase(repo repository.LeadRepository) *LeadUseCase {
	return &LeadUseCase{repo: repo}
}

// Create registra un prospecto a nombre del usuario creador.
func (uc *LeadUseCase) Create(ctx context.Context, companyID, createdBy string, in dto.CreateLeadRequest) (*dto.LeadResponse, error) {
	now := time.Now()
	lead := &entity.Lead{
		ID:             uuid.New().String(),
		CompanyID:      companyID,
		CreatedBy:      createdBy,
		Name:           in.Name,
		Email:          in.Email,
		Phone:          in.Phone,
		Address:        in.Address,
		CompanyName:    in.CompanyName,
		EstimatedValue: in.EstimatedValue,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, lead); err != nil {
		return nil, err
	}
	return entityToLeadResponse(lead), nil
}

// ListByCreator devuelve los prospectos creados por el usuario.
func (uc *LeadUseCase) ListByCreator(ctx context.Context, userID string) ([]dto.LeadResponse, error) {
	list, err := uc.repo.ListByCreator(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LeadResponse, 0, len(list))
	for _, l := range list {
		out = append(out, *entityToLeadResponse(l))
	}
	return out, nil
}

// Update actualiza un prospecto. Solo el creador está autorizado.
func (uc *LeadUseCase) Update(ctx context.Context, leadID, userID string, in dto.UpdateLeadRequest) (*dto.LeadResponse, error) {
	lead, err := uc.repo.GetByID(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, domain.ErrNotFound
	}
	if lead.CreatedBy != userID {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		lead.Name = *in.Name
	}
	if in.Email != nil {
		lead.Email = *in.Email
	}
	if in.Phone != nil {
		lead.Phone = *in.Phone
	}
	if in.Address != nil {
		lead.Address = *in.Address
	}
	if in.CompanyName != nil {
		lead.CompanyName = *in.CompanyName
	}
	if in.EstimatedValue != nil {
		lead.EstimatedValue = *in.EstimatedValue
	}
	lead.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, lead); err != nil {
		return nil, err
	}
	return entityToLeadResponse(lead), nil
}

// Delete elimina un prospecto. Solo el creador está autorizado.
func (uc *LeadUseCase) Delete(ctx context.Context, leadID, userID string) error {
	lead, err := uc.repo.GetByID(ctx, leadID)
	if err != nil {
		return err
	}
	if lead == nil {
		return domain.ErrNotFound
	}
	if lead.CreatedBy != userID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(ctx, leadID)
}

func entityToLeadResponse(l *entity.Lead) *dto.LeadResponse {
	if l == nil {
		return nil
	}
	return &dto.LeadResponse{
		ID:             l.ID,
		CompanyID:      l.CompanyID,
		CreatedBy:      l.CreatedBy,
		Name:           l.Name,
		Email:          l.Email,
		Phone:          l.Phone,
		Address:        l.Address,
		CompanyName:    l.CompanyName,
		EstimatedValue: l.EstimatedValue,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}
