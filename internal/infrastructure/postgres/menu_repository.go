package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/reservas-api/internal/domain"
	"github.com/jhoicas/reservas-api/internal/domain/entity"
	"github.com/jhoicas/reservas-api/internal/domain/repository"
)

var _ repository.MenuRepository = (*MenuRepo)(nil)

// MenuRepo implementación del puerto MenuRepository sobre PostgreSQL (usable con pool o tx).
type MenuRepo struct {
	q Querier
}

// NewMenuRepository construye el adaptador de persistencia del menú. Pasar pool o tx (Querier).
func NewMenuRepository(q Querier) *MenuRepo {
	return &MenuRepo{q: q}
}

// Create persiste un ítem del menú. Precio es NUMERIC (codec shopspring/decimal).
func (r *MenuRepo) Create(item *entity.MenuItem) error {
	query := `
		INSERT INTO menu_items (id, restaurant_id, nombre, descripcion, precio, categoria, disponible, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.RestaurantID, item.Nombre, item.Descripcion, item.Precio,
		item.Categoria, item.Disponible, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert menu item: %w", err)
	}
	return nil
}

// ListByRestaurant lista el menú completo de un restaurante.
func (r *MenuRepo) ListByRestaurant(restaurantID string) ([]*entity.MenuItem, error) {
	query := `
		SELECT id, restaurant_id, nombre, descripcion, precio, categoria, disponible, created_at, updated_at
		FROM menu_items WHERE restaurant_id = $1 ORDER BY categoria, nombre`
	rows, err := r.q.Query(context.Background(), query, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	defer rows.Close()

	var out []*entity.MenuItem
	for rows.Next() {
		var m entity.MenuItem
		err := rows.Scan(
			&m.ID, &m.RestaurantID, &m.Nombre, &m.Descripcion, &m.Precio,
			&m.Categoria, &m.Disponible, &m.CreatedAt, &m.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

// DeleteByRestaurant borra todo el menú del restaurante (parte del reemplazo atómico).
func (r *MenuRepo) DeleteByRestaurant(restaurantID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM menu_items WHERE restaurant_id = $1`, restaurantID)
	if err != nil {
		return fmt.Errorf("delete menu: %w", err)
	}
	return nil
}
