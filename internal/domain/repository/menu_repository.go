package repository

import "github.com/jhoicas/reservas-api/internal/domain/entity"

// MenuRepository contrato de persistencia del menú.
type MenuRepository interface {
	Create(item *entity.MenuItem) error
	ListByRestaurant(restaurantID string) ([]*entity.MenuItem, error)
	DeleteByRestaurant(restaurantID string) error
}
