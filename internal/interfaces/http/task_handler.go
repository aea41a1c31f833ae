package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empresas-api/internal/application/dto"
	"github.com/jhoicas/Empresas-api/internal/application/usecase"
)

// TaskHandler maneja las tareas asignadas dentro de una empresa.
type TaskHandler struct {
	uc     *usecase.TaskUseCase
	userUC *usecase.UserUseCase
}

// NewTaskHandler construye el handler de tareas.
func NewTaskHandler(uc *usecase.TaskUseCase, userUC *usecase.UserUseCase) *TaskHandler {
	return &TaskHandler{uc: uc, userUC: userUC}
}

// Create godoc
// @Summary      Crear tarea
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateTaskRequest  true  "Datos de la tarea"
// @Success      201   {object}  dto.APIResponse{data=dto.TaskResponse}
// @Failure      400   {object}  dto.APIResponse
// @Router       /api/tasks [post]
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.Name == "" || in.AssignedTo == "" || in.CompanyID == "" {
		return fail(c, fiber.StatusBadRequest, "name, assignedTo y companyId son requeridos")
	}
	ok, err := allowedForCompany(c, h.userUC, in.CompanyID)
	if err != nil {
		return handleError(c, err)
	}
	if !ok {
		return fail(c, fiber.StatusForbidden, "no puede operar sobre otra empresa")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return respondMsg(c, fiber.StatusCreated, "tarea creada", out)
}

// List godoc
// @Summary      Listar tareas de una empresa
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        companyId  query  string  true  "ID de la empresa"
// @Success      200  {object}  dto.APIResponse{data=[]dto.TaskResponse}
// @Router       /api/tasks [get]
func (h *TaskHandler) List(c *fiber.Ctx) error {
	companyID := c.Query("companyId")
	if companyID == "" {
		return fail(c, fiber.StatusBadRequest, "companyId es requerido")
	}
	ok, err := allowedForCompany(c, h.userUC, companyID)
	if err != nil {
		return handleError(c, err)
	}
	if !ok {
		return fail(c, fiber.StatusForbidden, "no puede operar sobre otra empresa")
	}
	out, err := h.uc.ListByCompany(c.Context(), companyID)
	if err != nil {
		return handleError(c, err)
	}
	return respond(c, fiber.StatusOK, out)
}

// UpdateStatus godoc
// @Summary      Cambiar el estado de una tarea
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                       true  "ID de la tarea"
// @Param        body  body  dto.UpdateTaskStatusRequest  true  "pending | in-progress | completed"
// @Success      200   {object}  dto.APIResponse{data=dto.TaskResponse}
// @Failure      400   {object}  dto.APIResponse
// @Router       /api/tasks/{id}/status [put]
func (h *TaskHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateTaskStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.UpdateStatus(c.Context(), c.Params("id"), in.Status)
	if err != nil {
		return handleError(c, err)
	}
	return respondMsg(c, fiber.StatusOK, "estado actualizado", out)
}

// Delete godoc
// @Summary      Eliminar tarea
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la tarea"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/tasks/{id} [delete]
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return respondMsg(c, fiber.StatusOK, "tarea eliminada", nil)
}
