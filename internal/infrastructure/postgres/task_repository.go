package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Empresas-api/internal/domain/entity"
	"github.com/jhoicas/Empresas-api/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

// TaskRepo implementación del puerto TaskRepository sobre PostgreSQL.
type TaskRepo struct {
	q Querier
}

// NewTaskRepository construye el adaptador de persistencia para tareas.
func NewTaskRepository(q Querier) *TaskRepo {
	return &TaskRepo{q: q}
}

const taskColumns = `id, company_id, assigned_to, name, COALESCE(description, ''), due_date, status, created_at, updated_at`

// Create persiste una tarea.
func (r *TaskRepo) Create(ctx context.Context, task *entity.Task) error {
	query := `
		INSERT INTO tasks (id, company_id, assigned_to, name, description, due_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		task.ID, task.CompanyID, task.AssignedTo, task.Name, nullIfEmpty(task.Description),
		task.DueDate, task.Status, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// GetByID obtiene una tarea por ID.
func (r *TaskRepo) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	var t entity.Task
	err := r.q.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id).Scan(
		&t.ID, &t.CompanyID, &t.AssignedTo, &t.Name, &t.Description,
		&t.DueDate, &t.Status, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return &t, nil
}

// ListByCompany devuelve las tareas de una empresa.
func (r *TaskRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE company_id = $1 ORDER BY due_date`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Task
	for rows.Next() {
		var t entity.Task
		if err := rows.Scan(&t.ID, &t.CompanyID, &t.AssignedTo, &t.Name, &t.Description, &t.DueDate, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de la tarea.
func (r *TaskRepo) UpdateStatus(ctx context.Context, id, status string) error {
	if _, err := r.q.Exec(ctx, `UPDATE tasks SET status = $2, updated_at = now() WHERE id = $1`, id, status); err != nil {
		return fmt.Errorf("update task status: %w", err)
	}
	return nil
}

// Delete elimina una tarea por ID.
func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
