package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lead es un prospecto comercial creado por un admin de empresa. Solo su
// creador puede modificarlo o eliminarlo.
type Lead struct {
	ID             string
	CompanyID      string
	CreatedBy      string // User (companyadmin) que lo registró
	Name           string
	Email          string
	Phone          string
	Address        string
	CompanyName    string
	EstimatedValue decimal.NullDecimal // valor estimado del negocio (opcional)
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
