package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empresas-api/internal/application/dto"
	"github.com/jhoicas/Empresas-api/internal/application/usecase"
	"github.com/jhoicas/Empresas-api/internal/domain/entity"
)

// UserHandler maneja el CRUD de usuarios.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create godoc
// @Summary      Crear usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateUserRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.APIResponse{data=dto.UserResponse}
// @Failure      400   {object}  dto.APIResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.Name == "" || in.Email == "" {
		return fail(c, fiber.StatusBadRequest, "name y email son requeridos")
	}
	if len(in.Password) < 6 {
		return fail(c, fiber.StatusBadRequest, "password debe tener al menos 6 caracteres")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return respondMsg(c, fiber.StatusCreated, "usuario creado", out)
}

// GetByID godoc
// @Summary      Obtener usuario por ID
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.APIResponse{data=dto.UserResponse}
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	// Un usuario sin privilegios solo puede verse a sí mismo.
	if role := GetRole(c); role != entity.RoleSuperAdmin && role != entity.RoleCompanyAdmin && id != GetUserID(c) {
		return fail(c, fiber.StatusForbidden, "solo puede consultar su propio usuario")
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return handleError(c, err)
	}
	return respond(c, fiber.StatusOK, out)
}

// List godoc
// @Summary      Listar usuarios
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.APIResponse{data=dto.UserListResponse}
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return fail(c, fiber.StatusBadRequest, "parámetros de paginación inválidos")
	}
	page.DefaultPage()
	out, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return handleError(c, err)
	}
	return respond(c, fiber.StatusOK, out)
}

// Update godoc
// @Summary      Actualizar usuario (parcial)
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                 true  "ID del usuario"
// @Param        body  body  dto.UpdateUserRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.APIResponse{data=dto.UserResponse}
// @Failure      404   {object}  dto.APIResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if role := GetRole(c); role != entity.RoleSuperAdmin && role != entity.RoleCompanyAdmin && id != GetUserID(c) {
		return fail(c, fiber.StatusForbidden, "solo puede actualizar su propio usuario")
	}
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.Password != nil && len(*in.Password) < 6 {
		return fail(c, fiber.StatusBadRequest, "password debe tener al menos 6 caracteres")
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return handleError(c, err)
	}
	return respondMsg(c, fiber.StatusOK, "usuario actualizado", out)
}

// Delete godoc
// @Summary      Eliminar usuario
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return respondMsg(c, fiber.StatusOK, "usuario eliminado", nil)
}
