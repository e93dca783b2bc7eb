package usecase

import (
	"context"

	"github.com/jhoicas/reservas-api/internal/domain/repository"
)

// ModuleService verifica qué módulos (chatbot, reservas_online, menu_digital)
// tiene activos cada restaurante. Lo consume el middleware RequireModule.
type ModuleService struct {
	repo repository.RestaurantRepository
}

// NewModuleService construye el servicio.
func NewModuleService(repo repository.RestaurantRepository) *ModuleService {
	return &ModuleService{repo: repo}
}

// HasActiveModule indica si el restaurante tiene el módulo activo y sin vencer.
func (s *ModuleService) HasActiveModule(ctx context.Context, restaurantID, moduleName string) (bool, error) {
	return s.repo.HasActiveModule(ctx, restaurantID, moduleName)
}
