package repository

import (
	"context"

	"github.com/jhoicas/reservas-api/internal/domain/entity"
)

// RestaurantRepository contrato de persistencia de restaurantes y sus módulos.
type RestaurantRepository interface {
	Create(r *entity.Restaurant) error
	GetByID(id string) (*entity.Restaurant, error)
	List(limit, offset int) ([]*entity.Restaurant, error)
	Update(r *entity.Restaurant) error
	// UpdateHours reemplaza los horarios estructurados del restaurante.
	UpdateHours(restaurantID string, hours []entity.OpeningHours) error
	// HasActiveModule verifica si el restaurante tiene el módulo activo y no vencido.
	HasActiveModule(ctx context.Context, restaurantID, moduleName string) (bool, error)
}
