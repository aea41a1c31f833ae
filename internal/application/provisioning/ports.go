package provisioning

import (
	"context"

	"github.com/jhoicas/Empresas-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que cada operación de
// aprovisionamiento sea todo-o-nada: o todos los registros quedan visibles,
// o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		companyRepo repository.CompanyRepository,
		employmentRepo repository.EmploymentRepository,
	) error) error
}
