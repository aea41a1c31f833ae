package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empresas-api/internal/application/auth"
	"github.com/jhoicas/Empresas-api/internal/application/provisioning"
	"github.com/jhoicas/Empresas-api/internal/application/reports"
	"github.com/jhoicas/Empresas-api/internal/application/usecase"
	"github.com/jhoicas/Empresas-api/pkg/authz"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.UseCase
	ProvisioningUC *provisioning.UseCase
	CompanyUC      *usecase.CompanyUseCase
	UserUC         *usecase.UserUseCase
	LeadUC         *usecase.LeadUseCase
	TaskUC         *usecase.TaskUseCase
	RosterUC       *reports.RosterUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login es público; el resto requiere Bearer Token.
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/change-password", AuthMiddleware(deps.JWTSecret), authHandler.ChangePassword)
	// Recursos visibles para el rol del token; el cliente arma sus menús con esto.
	authGroup.Get("/permissions", AuthMiddleware(deps.JWTSecret), func(c *fiber.Ctx) error {
		role := GetRole(c)
		return respond(c, fiber.StatusOK, fiber.Map{
			"role":      role,
			"resources": authz.Resources(role),
		})
	})

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Companies
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.ProvisioningUC, deps.UserUC)
	companies.Get("/", RequirePermission(authz.ResourceCompanies, authz.ActionList), companyHandler.List)
	companies.Post("/", RequirePermission(authz.ResourceCompanies, authz.ActionCreate), companyHandler.Create)
	companies.Get("/:id", RequirePermission(authz.ResourceCompanies, authz.ActionRead), companyHandler.GetByID)
	companies.Put("/:id", RequirePermission(authz.ResourceCompanies, authz.ActionUpdate), companyHandler.Update)
	companies.Delete("/:id", RequirePermission(authz.ResourceCompanies, authz.ActionDelete), companyHandler.Delete)

	// Employees (anidados bajo la empresa). "/report" se registra antes de
	// "/:employeeId" para que Fiber no lo capture como parámetro.
	employeeHandler := NewEmployeeHandler(deps.ProvisioningUC, deps.RosterUC, deps.UserUC)
	companies.Get("/:id/employees", RequirePermission(authz.ResourceEmployees, authz.ActionList), employeeHandler.List)
	companies.Post("/:id/employees", RequirePermission(authz.ResourceEmployees, authz.ActionCreate), employeeHandler.Add)
	companies.Get("/:id/employees/report", RequirePermission(authz.ResourceReports, authz.ActionRead), employeeHandler.Report)
	companies.Get("/:id/employees/:employeeId", RequirePermission(authz.ResourceEmployees, authz.ActionRead), employeeHandler.Get)
	companies.Delete("/:id/employees/:employeeId", RequirePermission(authz.ResourceEmployees, authz.ActionDelete), employeeHandler.Remove)

	// Users
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", RequirePermission(authz.ResourceUsers, authz.ActionList), userHandler.List)
	users.Post("/", RequirePermission(authz.ResourceUsers, authz.ActionCreate), userHandler.Create)
	users.Get("/:id", RequirePermission(authz.ResourceUsers, authz.ActionRead), userHandler.GetByID)
	users.Put("/:id", RequirePermission(authz.ResourceUsers, authz.ActionUpdate), userHandler.Update)
	users.Delete("/:id", RequirePermission(authz.ResourceUsers, authz.ActionDelete), userHandler.Delete)

	// Leads (prospectos, propiedad del admin que los crea)
	leads := protected.Group("/leads")
	leadHandler := NewLeadHandler(deps.LeadUC, deps.UserUC)
	leads.Get("/", RequirePermission(authz.ResourceLeads, authz.ActionList), leadHandler.List)
	leads.Post("/", RequirePermission(authz.ResourceLeads, authz.ActionCreate), leadHandler.Create)
	leads.Put("/:id", RequirePermission(authz.ResourceLeads, authz.ActionUpdate), leadHandler.Update)
	leads.Delete("/:id", RequirePermission(authz.ResourceLeads, authz.ActionDelete), leadHandler.Delete)

	// Tasks
	tasks := protected.Group("/tasks")
	taskHandler := NewTaskHandler(deps.TaskUC, deps.UserUC)
	tasks.Get("/", RequirePermission(authz.ResourceTasks, authz.ActionList), taskHandler.List)
	tasks.Post("/", RequirePermission(authz.ResourceTasks, authz.ActionCreate), taskHandler.Create)
	tasks.Put("/:id/status", RequirePermission(authz.ResourceTasks, authz.ActionUpdate), taskHandler.UpdateStatus)
	tasks.Delete("/:id", RequirePermission(authz.ResourceTasks, authz.ActionDelete), taskHandler.Delete)
}
