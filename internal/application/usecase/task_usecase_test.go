package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empresas-api/internal/application/dto"
	"github.com/jhoicas/Empresas-api/internal/application/usecase"
	"github.com/jhoicas/Empresas-api/internal/domain"
	"github.com/jhoicas/Empresas-api/internal/domain/entity"
)

func newTaskTestUseCase() (*usecase.TaskUseCase, *fakeTaskRepo, *fakeUserRepo) {
	taskRepo := newFakeTaskRepo()
	userRepo := newFakeUserRepo()
	return usecase.NewTaskUseCase(taskRepo, userRepo), taskRepo, userRepo
}

func TestTaskCreate_EmpiezaPendiente(t *testing.T) {
	uc, _, userRepo := newTaskTestUseCase()
	require.NoError(t, userRepo.Create(context.Background(), &entity.User{ID: "u1", Role: "employee"}))

	out, err := uc.Create(context.Background(), dto.CreateTaskRequest{
		Name:       "Preparar informe",
		AssignedTo: "u1",
		CompanyID:  "c1",
		DueDate:    time.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", out.Status, "toda tarea nueva empieza pendiente")
	assert.Equal(t, "u1", out.AssignedTo)
}

func TestTaskCreate_AsignadoInexistente_NotFound(t *testing.T) {
	uc, taskRepo, _ := newTaskTestUseCase()

	_, err := uc.Create(context.Background(), dto.CreateTaskRequest{
		Name: "Preparar informe", AssignedTo: "fantasma", CompanyID: "c1",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, taskRepo.tasks)
}

func TestTaskUpdateStatus_EnumValido(t *testing.T) {
	uc, _, userRepo := newTaskTestUseCase()
	require.NoError(t, userRepo.Create(context.Background(), &entity.User{ID: "u1"}))
	out, err := uc.Create(context.Background(), dto.CreateTaskRequest{
		Name: "Preparar informe", AssignedTo: "u1", CompanyID: "c1",
	})
	require.NoError(t, err)

	updated, err := uc.UpdateStatus(context.Background(), out.ID, "in-progress")
	require.NoError(t, err)
	assert.Equal(t, "in-progress", updated.Status)

	updated, err = uc.UpdateStatus(context.Background(), out.ID, "completed")
	require.NoError(t, err)
	assert.Equal(t, "completed", updated.Status)
}

func TestTaskUpdateStatus_EstadoInvalido_Validacion(t *testing.T) {
	uc, taskRepo, userRepo := newTaskTestUseCase()
	require.NoError(t, userRepo.Create(context.Background(), &entity.User{ID: "u1"}))
	out, err := uc.Create(context.Background(), dto.CreateTaskRequest{
		Name: "Preparar informe", AssignedTo: "u1", CompanyID: "c1",
	})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(context.Background(), out.ID, "done")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTaskStatus)
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, "pending", taskRepo.tasks[out.ID].Status, "un estado inválido no debe persistirse")
}

func TestTaskDelete_Inexistente_NotFound(t *testing.T) {
	uc, _, _ := newTaskTestUseCase()
	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
