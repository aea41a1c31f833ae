package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empresas-api/internal/application/dto"
	"github.com/jhoicas/Empresas-api/internal/application/usecase"
)

// LeadHandler maneja los prospectos comerciales del admin autenticado.
type LeadHandler struct {
	uc     *usecase.LeadUseCase
	userUC *usecase.UserUseCase
}

// NewLeadHandler construye el handler de prospectos.
func NewLeadHandler(uc *usecase.LeadUseCase, userUC *usecase.UserUseCase) *LeadHandler {
	return &LeadHandler{uc: uc, userUC: userUC}
}

// Create godoc
// @Summary      Registrar prospecto
// @Tags         leads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateLeadRequest  true  "Datos del prospecto"
// @Success      201   {object}  dto.APIResponse{data=dto.LeadResponse}
// @Failure      400   {object}  dto.APIResponse
// @Router       /api/leads [post]
func (h *LeadHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.Name == "" || in.Email == "" {
		return fail(c, fiber.StatusBadRequest, "name y email son requeridos")
	}
	// El prospecto queda asociado a la empresa del admin autenticado.
	user, err := h.userUC.GetByID(c.Context(), GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	if len(user.Companies) == 0 {
		return fail(c, fiber.StatusForbidden, "el usuario no pertenece a ninguna empresa")
	}
	out, err := h.uc.Create(c.Context(), user.Companies[0], user.ID, in)
	if err != nil {
		return handleError(c, err)
	}
	return respondMsg(c, fiber.StatusCreated, "prospecto registrado", out)
}

// List godoc
// @Summary      Listar los prospectos creados por el admin autenticado
// @Tags         leads
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.APIResponse{data=[]dto.LeadResponse}
// @Router       /api/leads [get]
func (h *LeadHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByCreator(c.Context(), GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return respond(c, fiber.StatusOK, out)
}

// Update godoc
// @Summary      Actualizar prospecto (solo su creador)
// @Tags         leads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                 true  "ID del prospecto"
// @Param        body  body  dto.UpdateLeadRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.APIResponse{data=dto.LeadResponse}
// @Failure      403   {object}  dto.APIResponse
// @Router       /api/leads/{id} [put]
func (h *LeadHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return respondMsg(c, fiber.StatusOK, "prospecto actualizado", out)
}

// Delete godoc
// @Summary      Eliminar prospecto (solo su creador)
// @Tags         leads
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del prospecto"
// @Success      200  {object}  dto.APIResponse
// @Failure      403  {object}  dto.APIResponse
// @Router       /api/leads/{id} [delete]
func (h *LeadHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id"), GetUserID(c)); err != nil {
		return handleError(c, err)
	}
	return respondMsg(c, fiber.StatusOK, "prospecto eliminado", nil)
}
