package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Empresas-api/internal/application/dto"
	"github.com/jhoicas/Empresas-api/internal/application/usecase"
	"github.com/jhoicas/Empresas-api/internal/domain"
)

func TestUserCreate_RolPorDefectoYPrimerLogin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name: "Carlos", Email: "carlos@acme.com", Password: "secreta123",
	})
	require.NoError(t, err)
	assert.Equal(t, "employee", out.Role, "sin rol explícito se asigna employee")
	assert.True(t, out.IsFirstLogin)

	stored := repo.users[out.ID]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta123")))
}

func TestUserCreate_RolInvalido_Validacion(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name: "Carlos", Email: "carlos@acme.com", Password: "secreta123", Role: "dios",
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestUserCreate_EmailEnUso_Conflicto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name: "Carlos", Email: "carlos@acme.com", Password: "secreta123",
	})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateUserRequest{
		Name: "Otro", Email: "carlos@acme.com", Password: "secreta123",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Len(t, repo.users, 1)
}

func TestUserUpdate_CambioDePassword_SeRehashea(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)
	created, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name: "Carlos", Email: "carlos@acme.com", Password: "secreta123",
	})
	require.NoError(t, err)

	password := "nueva-secreta"
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateUserRequest{Password: &password})
	require.NoError(t, err)

	stored := repo.users[created.ID]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("nueva-secreta")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta123")))
}

func TestUserDelete_Inexistente_NotFound(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())
	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
