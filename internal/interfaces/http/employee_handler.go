package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empresas-api/internal/application/dto"
	"github.com/jhoicas/Empresas-api/internal/application/provisioning"
	"github.com/jhoicas/Empresas-api/internal/application/reports"
	"github.com/jhoicas/Empresas-api/internal/application/usecase"
)

// EmployeeHandler maneja los empleados de una empresa (anidados bajo
// /companies/:id/employees). Alta y baja son flujos multi-registro que van
// por provisioning.
type EmployeeHandler struct {
	prov   *provisioning.UseCase
	roster *reports.RosterUseCase
	userUC *usecase.UserUseCase
}

// NewEmployeeHandler construye el handler de empleados.
func NewEmployeeHandler(prov *provisioning.UseCase, roster *reports.RosterUseCase, userUC *usecase.UserUseCase) *EmployeeHandler {
	return &EmployeeHandler{prov: prov, roster: roster, userUC: userUC}
}

// scope corta la petición si el usuario no puede operar sobre la empresa.
func (h *EmployeeHandler) scope(c *fiber.Ctx, companyID string) (bool, error) {
	ok, err := allowedForCompany(c, h.userUC, companyID)
	if err != nil {
		return false, handleError(c, err)
	}
	if !ok {
		return false, fail(c, fiber.StatusForbidden, "no puede operar sobre otra empresa")
	}
	return true, nil
}

// List godoc
// @Summary      Listar empleados de una empresa
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.APIResponse{data=[]dto.EmployeeDetailResponse}
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/companies/{id}/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	companyID := c.Params("id")
	if ok, err := h.scope(c, companyID); !ok {
		return err
	}
	out, err := h.prov.ListEmployees(c.Context(), companyID)
	if err != nil {
		return handleError(c, err)
	}
	return respond(c, fiber.StatusOK, out)
}

// Get godoc
// @Summary      Obtener un empleado de una empresa
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id          path  string  true  "ID de la empresa"
// @Param        employeeId  path  string  true  "ID del empleo"
// @Success      200  {object}  dto.APIResponse{data=dto.EmployeeDetailResponse}
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/companies/{id}/employees/{employeeId} [get]
func (h *EmployeeHandler) Get(c *fiber.Ctx) error {
	companyID := c.Params("id")
	if ok, err := h.scope(c, companyID); !ok {
		return err
	}
	out, err := h.prov.GetEmployee(c.Context(), companyID, c.Params("employeeId"))
	if err != nil {
		return handleError(c, err)
	}
	return respond(c, fiber.StatusOK, out)
}

// Add godoc
// @Summary      Dar de alta un empleado (usuario + empleo + membresía, atómico)
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                  true  "ID de la empresa"
// @Param        body  body  dto.AddEmployeeRequest  true  "Datos del empleado"
// @Success      201   {object}  dto.APIResponse{data=dto.AddEmployeeResponse}
// @Failure      400   {object}  dto.APIResponse
// @Router       /api/companies/{id}/employees [post]
func (h *EmployeeHandler) Add(c *fiber.Ctx) error {
	companyID := c.Params("id")
	if ok, err := h.scope(c, companyID); !ok {
		return err
	}
	var in dto.AddEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.Name == "" || in.Email == "" || in.Department == "" {
		return fail(c, fiber.StatusBadRequest, "name, email y department son requeridos")
	}
	if len(in.Password) < 6 {
		return fail(c, fiber.StatusBadRequest, "password debe tener al menos 6 caracteres")
	}
	out, err := h.prov.AddEmployee(c.Context(), companyID, in)
	if err != nil {
		return handleError(c, err)
	}
	return respondMsg(c, fiber.StatusCreated, "empleado dado de alta", out)
}

// Remove godoc
// @Summary      Dar de baja un empleado (empleo + membresía + usuario, atómico)
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id          path  string  true  "ID de la empresa"
// @Param        employeeId  path  string  true  "ID del empleo"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/companies/{id}/employees/{employeeId} [delete]
func (h *EmployeeHandler) Remove(c *fiber.Ctx) error {
	companyID := c.Params("id")
	if ok, err := h.scope(c, companyID); !ok {
		return err
	}
	if err := h.prov.RemoveEmployee(c.Context(), companyID, c.Params("employeeId")); err != nil {
		return handleError(c, err)
	}
	return respondMsg(c, fiber.StatusOK, "empleado dado de baja", nil)
}

// Report godoc
// @Summary      Reporte PDF de la plantilla de la empresa
// @Tags         employees
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/companies/{id}/employees/report [get]
func (h *EmployeeHandler) Report(c *fiber.Ctx) error {
	companyID := c.Params("id")
	if ok, err := h.scope(c, companyID); !ok {
		return err
	}
	pdfBytes, err := h.roster.GenerateCompanyRoster(c.Context(), companyID)
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="plantilla.pdf"`)
	return c.Status(fiber.StatusOK).Send(pdfBytes)
}
