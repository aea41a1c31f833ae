package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empresas-api/internal/application/dto"
	"github.com/jhoicas/Empresas-api/internal/application/provisioning"
	"github.com/jhoicas/Empresas-api/internal/application/usecase"
)

// CompanyHandler maneja las peticiones HTTP para el recurso Company.
// El alta y la baja (multi-registro) van por el caso de uso de provisioning;
// lectura y actualización por el caso de uso CRUD.
type CompanyHandler struct {
	uc     *usecase.CompanyUseCase
	prov   *provisioning.UseCase
	userUC *usecase.UserUseCase
}

// NewCompanyHandler construye el handler inyectando los casos de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase, prov *provisioning.UseCase, userUC *usecase.UserUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc, prov: prov, userUC: userUC}
}

// Create godoc
// @Summary      Crear empresa con su usuario admin (atómico)
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateCompanyRequest  true  "Datos de la empresa y su admin"
// @Success      201   {object}  dto.APIResponse{data=dto.CreateCompanyResponse}
// @Failure      400   {object}  dto.APIResponse
// @Router       /api/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.Name == "" || in.Email == "" || in.Address == "" || in.Phone == "" || in.AdminName == "" || in.AdminEmail == "" {
		return fail(c, fiber.StatusBadRequest, "name, email, address, phone, adminName y adminEmail son requeridos")
	}
	if len(in.AdminPassword) < 6 {
		return fail(c, fiber.StatusBadRequest, "adminPassword debe tener al menos 6 caracteres")
	}
	out, err := h.prov.CreateCompany(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return respondMsg(c, fiber.StatusCreated, "empresa creada", out)
}

// GetByID godoc
// @Summary      Obtener empresa por ID
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.APIResponse{data=dto.CompanyResponse}
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return handleError(c, err)
	}
	return respond(c, fiber.StatusOK, out)
}

// List godoc
// @Summary      Listar empresas
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.APIResponse{data=dto.CompanyListResponse}
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
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
// @Summary      Actualizar empresa (parcial)
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                    true  "ID de la empresa"
// @Param        body  body  dto.UpdateCompanyRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.APIResponse{data=dto.CompanyResponse}
// @Failure      404   {object}  dto.APIResponse
// @Router       /api/companies/{id} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	ok, err := allowedForCompany(c, h.userUC, id)
	if err != nil {
		return handleError(c, err)
	}
	if !ok {
		return fail(c, fiber.StatusForbidden, "no puede operar sobre otra empresa")
	}
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return handleError(c, err)
	}
	return respondMsg(c, fiber.StatusOK, "empresa actualizada", out)
}

// Delete godoc
// @Summary      Eliminar empresa en cascada (empleados, admin, membresías)
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.APIResponse{data=dto.CompanyResponse}
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/companies/{id} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.prov.DeleteCompany(c.Context(), id)
	if err != nil {
		return handleError(c, err)
	}
	return respondMsg(c, fiber.StatusOK, "empresa eliminada", out)
}
