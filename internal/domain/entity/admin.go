package entity

import "time"

// AdminUser cuenta de Appwrite con acceso a la consola.
type AdminUser struct {
	ID     string
	Name   string
	Email  string
	Labels []string
}

// HasLabel indica si la cuenta lleva el label indicado.
func (u *AdminUser) HasLabel(label string) bool {
	for _, l := range u.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// AdminSession sesión activa de la consola (guardada en Redis).
// AppwriteSecret es el secreto de la sesión de Appwrite creada en el login.
type AdminSession struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	AppwriteSecret string    `json:"appwrite_secret"`
	CreatedAt      time.Time `json:"created_at"`
	ExpiresAt      time.Time `json:"expires_at"`
}
