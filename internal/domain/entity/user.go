package entity

import "time"

// Roles de los usuarios administradores de un restaurante.
const (
	RoleAdmin     = "admin"
	RoleEncargado = "encargado"
)

// User usuario administrador asociado a un restaurante.
type User struct {
	ID           string
	RestaurantID string
	Email        string
	PasswordHash string
	Name         string
	Role         string // ver constantes Role*
	Status       string // active, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
