package repository

import "github.com/jhoicas/reservas-api/internal/domain/entity"

// UserRepository contrato de persistencia de usuarios administradores.
type UserRepository interface {
	Create(u *entity.User) error
	FindByEmail(email string) (*entity.User, error)
	GetByEmailAndRestaurant(email, restaurantID string) (*entity.User, error)
}
