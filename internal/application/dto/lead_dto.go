package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateLeadRequest entrada para registrar un prospecto.
type CreateLeadRequest struct {
	Name           string              `json:"name"`
	Email          string              `json:"email"`
	Phone          string              `json:"phone"`
	Address        string              `json:"address"`
	CompanyName    string              `json:"companyName"`
	EstimatedValue decimal.NullDecimal `json:"estimatedValue"`
}

// UpdateLeadRequest entrada para actualizar un prospecto (campos opcionales).
type UpdateLeadRequest struct {
	Name           *string              `json:"name"`
	Email          *string              `json:"email"`
	Phone          *string              `json:"phone"`
	Address        *string              `json:"address"`
	CompanyName    *string              `json:"companyName"`
	EstimatedValue *decimal.NullDecimal `json:"estimatedValue"`
}

// LeadResponse salida de un prospecto.
type LeadResponse struct {
	ID             string              `json:"id"`
	CompanyID      string              `json:"companyId"`
	CreatedBy      string              `json:"createdBy"`
	Name           string              `json:"name"`
	Email          string              `json:"email"`
	Phone          string              `json:"phone"`
	Address        string              `json:"address,omitempty"`
	CompanyName    string              `json:"companyName,omitempty"`
	EstimatedValue decimal.NullDecimal `json:"estimatedValue"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}
