package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse salida con token JWT y proyección del usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ChangePasswordRequest entrada para el cambio de contraseña forzado del
// primer login.
type ChangePasswordRequest struct {
	NewPassword string `json:"newPassword"`
}
