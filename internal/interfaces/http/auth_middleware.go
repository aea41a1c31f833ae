package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empresas-api/internal/application/usecase"
	"github.com/jhoicas/Empresas-api/internal/domain/entity"
	"github.com/jhoicas/Empresas-api/pkg/authz"
	"github.com/jhoicas/Empresas-api/pkg/jwt"
)

// Locals keys para UserID y Role en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// AuthMiddleware valida el Bearer Token JWT y extrae UserID y Role a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fail(c, fiber.StatusUnauthorized, "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fail(c, fiber.StatusUnauthorized, "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return fail(c, fiber.StatusUnauthorized, "token vacío")
		}
		userID, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return fail(c, fiber.StatusUnauthorized, "token inválido o expirado")
		}
		if role == "" {
			return fail(c, fiber.StatusUnauthorized, "token sin rol")
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// RequirePermission autoriza contra la tabla declarativa de authz. Debe
// usarse DESPUÉS de AuthMiddleware (necesita LocalRole).
func RequirePermission(resource, action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return fail(c, fiber.StatusUnauthorized, "rol no encontrado en el token")
		}
		if !authz.Allowed(role, resource, action) {
			return fail(c, fiber.StatusForbidden, "acceso denegado para el rol '"+role+"'")
		}
		return c.Next()
	}
}

// RequireRole autoriza por lista explícita de roles permitidos.
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return fail(c, fiber.StatusUnauthorized, "rol no encontrado en el token")
		}
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		return fail(c, fiber.StatusForbidden, "acceso denegado para el rol '"+role+"'")
	}
}

// allowedForCompany verifica que el usuario del token pueda operar sobre la
// empresa indicada: superadmin siempre; cualquier otro rol solo si pertenece
// a la empresa (membership).
func allowedForCompany(c *fiber.Ctx, userUC *usecase.UserUseCase, companyID string) (bool, error) {
	if GetRole(c) == entity.RoleSuperAdmin {
		return true, nil
	}
	user, err := userUC.GetByID(c.Context(), GetUserID(c))
	if err != nil {
		return false, err
	}
	for _, id := range user.Companies {
		if id == companyID {
			return true, nil
		}
	}
	return false, nil
}
