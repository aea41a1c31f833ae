package domain

import "errors"

// Errores de dominio (sin dependencias externas). La capa HTTP es la única
// que los traduce a códigos de estado.
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrValidation          = errors.New("entrada inválida")
	ErrEmailAlreadyExists  = errors.New("ya existe un usuario con ese email")
	ErrCompanyEmailExists  = errors.New("ya existe una empresa con ese email")
	ErrDuplicateEmployment = errors.New("el usuario ya es empleado de esta empresa")
	ErrDepartmentNotFound  = errors.New("el departamento no existe en esta empresa")
	ErrInvalidCredentials  = errors.New("credenciales inválidas")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrInvalidTaskStatus   = errors.New("estado de tarea inválido")
)

// IsConflict informa si el error pertenece a la clase Conflict (duplicados).
func IsConflict(err error) bool {
	return errors.Is(err, ErrEmailAlreadyExists) ||
		errors.Is(err, ErrCompanyEmailExists) ||
		errors.Is(err, ErrDuplicateEmployment)
}

// IsValidation informa si el error pertenece a la clase ValidationError.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrDepartmentNotFound) ||
		errors.Is(err, ErrInvalidTaskStatus)
}
