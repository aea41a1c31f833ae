package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Empresas-api/internal/application/dto"
	"github.com/jhoicas/Empresas-api/internal/domain"
	"github.com/jhoicas/Empresas-api/internal/domain/entity"
	"github.com/jhoicas/Empresas-api/internal/domain/repository"
)

// TaskUseCase tareas asignadas a usuarios dentro de una empresa.
type TaskUseCase struct {
	repo     repository.TaskRepository
	userRepo repository.UserRepository
}

// NewTaskUseCase construye el caso de uso con sus puertos de persistencia.
func NewTaskUseCase(repo repository.TaskRepository, userRepo repository.UserRepository) *TaskUseCase {
	return &TaskUseCase{repo: repo, userRepo: userRepo}
}

// Create crea una tarea. El usuario asignado debe existir.
func (uc *TaskUseCase) Create(ctx context.Context, in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	assignee, err := uc.userRepo.GetByID(ctx, in.AssignedTo)
	if err != nil {
		return nil, err
	}
	if assignee == nil {
		return nil, fmt.Errorf("usuario asignado: %w", domain.ErrNotFound)
	}
	now := time.Now()
	task := &entity.Task{
		ID:          uuid.New().String(),
		CompanyID:   in.CompanyID,
		AssignedTo:  in.AssignedTo,
		Name:        in.Name,
		Description: in.Description,
		DueDate:     in.DueDate,
		Status:      entity.TaskStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	return entityToTaskResponse(task), nil
}

// ListByCompany devuelve las tareas de una empresa.
func (uc *TaskUseCase) ListByCompany(ctx context.Context, companyID string) ([]dto.TaskResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TaskResponse, 0, len(list))
	for _, t := range list {
		out = append(out, *entityToTaskResponse(t))
	}
	return out, nil
}

// UpdateStatus cambia el estado de una tarea, validando el enum.
func (uc *TaskUseCase) UpdateStatus(ctx context.Context, taskID, status string) (*dto.TaskResponse, error) {
	if !entity.ValidTaskStatus(status) {
		return nil, fmt.Errorf("estado '%s': %w", status, domain.ErrInvalidTaskStatus)
	}
	task, err := uc.repo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.UpdateStatus(ctx, taskID, status); err != nil {
		return nil, err
	}
	task.Status = status
	task.UpdatedAt = time.Now()
	return entityToTaskResponse(task), nil
}

// Delete elimina una tarea por ID.
func (uc *TaskUseCase) Delete(ctx context.Context, taskID string) error {
	task, err := uc.repo.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	if task == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, taskID)
}

func entityToTaskResponse(t *entity.Task) *dto.TaskResponse {
	if t == nil {
		return nil
	}
	return &dto.TaskResponse{
		ID:          t.ID,
		CompanyID:   t.CompanyID,
		AssignedTo:  t.AssignedTo,
		Name:        t.Name,
		Description: t.Description,
		DueDate:     t.DueDate,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
