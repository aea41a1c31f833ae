package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Empresas-api/internal/application/provisioning"
	"github.com/jhoicas/Empresas-api/internal/domain/repository"
)

// Ensure TxRunner implements provisioning.TxRunner.
var _ provisioning.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Es la
// unidad de trabajo del aprovisionamiento: begin → escrituras → commit o
// rollback, sin que ningún otro componente pueda intercalar un commit.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Un duplicado concurrente revienta en el commit con
// violación de unicidad, nunca con sobreescritura silenciosa.
func (r *TxRunner) Run(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
	employmentRepo repository.EmploymentRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	userRepo := NewUserRepository(tx)
	companyRepo := NewCompanyRepository(tx)
	employmentRepo := NewEmploymentRepository(tx)

	if err := fn(userRepo, companyRepo, employmentRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
