package dto

import "time"

// LoginRequest credenciales de la cuenta Appwrite del administrador.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token de la consola y datos del administrador.
type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
	User      AdminResponse `json:"user"`
}

// AdminResponse administrador autenticado.
type AdminResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
