package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/reservas-api/internal/application/dto"
	"github.com/jhoicas/reservas-api/internal/domain"
	"github.com/jhoicas/reservas-api/internal/domain/entity"
	"github.com/jhoicas/reservas-api/internal/domain/repository"
)

// MenuTxRunner ejecuta el reemplazo del menú dentro de una transacción.
// Lo implementa postgres.TxRunner.
type MenuTxRunner interface {
	ReplaceMenu(ctx context.Context, fn func(menuRepo repository.MenuRepository) error) error
}

// MenuUseCase casos de uso del menú del restaurante.
type MenuUseCase struct {
	repo repository.MenuRepository
	tx   MenuTxRunner
}

// NewMenuUseCase construye el caso de uso.
func NewMenuUseCase(repo repository.MenuRepository, tx MenuTxRunner) *MenuUseCase {
	return &MenuUseCase{repo: repo, tx: tx}
}

// List devuelve el menú del restaurante (endpoint público).
func (uc *MenuUseCase) List(restaurantID string) ([]*dto.ItemMenuResponse, error) {
	items, err := uc.repo.ListByRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ItemMenuResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemMenuResponse(it))
	}
	return out, nil
}

// Replace reemplaza el menú completo de forma atómica: borra los ítems
// actuales e inserta los nuevos dentro de una misma transacción, para que
// ningún lector vea un menú a medias.
func (uc *MenuUseCase) Replace(ctx context.Context, restaurantID string, in dto.ReemplazarMenuRequest) ([]*dto.ItemMenuResponse, error) {
	now := time.Now()
	nuevos := make([]*entity.MenuItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Nombre == "" || it.Precio.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		nuevos = append(nuevos, &entity.MenuItem{
			ID:           uuid.New().String(),
			RestaurantID: restaurantID,
			Nombre:       it.Nombre,
			Descripcion:  it.Descripcion,
			Precio:       it.Precio,
			Categoria:    it.Categoria,
			Disponible:   it.Disponible,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	err := uc.tx.ReplaceMenu(ctx, func(menuRepo repository.MenuRepository) error {
		if err := menuRepo.DeleteByRestaurant(restaurantID); err != nil {
			return err
		}
		for _, it := range nuevos {
			if err := menuRepo.Create(it); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ItemMenuResponse, 0, len(nuevos))
	for _, it := range nuevos {
		out = append(out, toItemMenuResponse(it))
	}
	return out, nil
}

func toItemMenuResponse(it *entity.MenuItem) *dto.ItemMenuResponse {
	return &dto.ItemMenuResponse{
		ID:          it.ID,
		Nombre:      it.Nombre,
		Descripcion: it.Descripcion,
		Precio:      it.Precio,
		Categoria:   it.Categoria,
		Disponible:  it.Disponible,
	}
}
