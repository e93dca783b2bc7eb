package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/reservas-api/internal/domain"
	"github.com/jhoicas/reservas-api/internal/domain/entity"
	"github.com/jhoicas/reservas-api/internal/domain/repository"
)

var _ repository.RestaurantRepository = (*RestaurantRepo)(nil)

// RestaurantRepo implementación del puerto RestaurantRepository sobre PostgreSQL (usable con pool o tx).
type RestaurantRepo struct {
	q Querier
}

// NewRestaurantRepository construye el adaptador de persistencia de restaurantes. Pasar pool o tx (Querier).
func NewRestaurantRepository(q Querier) *RestaurantRepo {
	return &RestaurantRepo{q: q}
}

// Create persiste un nuevo restaurante.
func (r *RestaurantRepo) Create(rest *entity.Restaurant) error {
	query := `
		INSERT INTO restaurants (id, name, address, phone, email, max_capacity, settings, payment_methods, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		rest.ID, rest.Name, rest.Address, rest.Phone, rest.Email, rest.MaxCapacity,
		rest.Settings, rest.PaymentMeth, rest.Status, rest.CreatedAt, rest.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert restaurant: %w", err)
	}
	return nil
}

// GetByID obtiene un restaurante con sus horarios estructurados. Devuelve (nil, nil) si no existe.
func (r *RestaurantRepo) GetByID(id string) (*entity.Restaurant, error) {
	query := `
		SELECT id, name, address, phone, email, max_capacity, settings, payment_methods, status, created_at, updated_at
		FROM restaurants WHERE id = $1`
	var rest entity.Restaurant
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rest.ID, &rest.Name, &rest.Address, &rest.Phone, &rest.Email, &rest.MaxCapacity,
		&rest.Settings, &rest.PaymentMeth, &rest.Status, &rest.CreatedAt, &rest.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get restaurant: %w", err)
	}
	hours, err := r.loadHours(id)
	if err != nil {
		return nil, err
	}
	rest.Hours = hours
	return &rest, nil
}

// List lista restaurantes paginados.
func (r *RestaurantRepo) List(limit, offset int) ([]*entity.Restaurant, error) {
	query := `
		SELECT id, name, address, phone, email, max_capacity, settings, payment_methods, status, created_at, updated_at
		FROM restaurants ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	defer rows.Close()

	var out []*entity.Restaurant
	for rows.Next() {
		var rest entity.Restaurant
		err := rows.Scan(
			&rest.ID, &rest.Name, &rest.Address, &rest.Phone, &rest.Email, &rest.MaxCapacity,
			&rest.Settings, &rest.PaymentMeth, &rest.Status, &rest.CreatedAt, &rest.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		out = append(out, &rest)
	}
	return out, rows.Err()
}

// Update actualiza los datos básicos del restaurante (no toca horarios ni módulos).
func (r *RestaurantRepo) Update(rest *entity.Restaurant) error {
	query := `
		UPDATE restaurants
		SET name = $1, address = $2, phone = $3, email = $4, max_capacity = $5, settings = $6, payment_methods = $7, status = $8, updated_at = NOW()
		WHERE id = $9`
	tag, err := r.q.Exec(context.Background(), query,
		rest.Name, rest.Address, rest.Phone, rest.Email, rest.MaxCapacity,
		rest.Settings, rest.PaymentMeth, rest.Status, rest.ID,
	)
	if err != nil {
		return fmt.Errorf("update restaurant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateHours reemplaza los horarios estructurados del restaurante.
// Borra e inserta; llamar dentro de una tx cuando se necesite atomicidad.
func (r *RestaurantRepo) UpdateHours(restaurantID string, hours []entity.OpeningHours) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM restaurant_hours WHERE restaurant_id = $1`, restaurantID); err != nil {
		return fmt.Errorf("delete hours: %w", err)
	}
	query := `
		INSERT INTO restaurant_hours (restaurant_id, weekday, closed, lunch_open, lunch_close, dinner_open, dinner_close)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, h := range hours {
		_, err := r.q.Exec(ctx, query,
			restaurantID, int(h.Weekday), h.Closed, h.LunchOpen, h.LunchClose, h.DinnerOpen, h.DinnerClose,
		)
		if err != nil {
			return fmt.Errorf("insert hours: %w", err)
		}
	}
	return nil
}

// HasActiveModule verifica si el restaurante tiene el módulo activo y sin vencer.
func (r *RestaurantRepo) HasActiveModule(ctx context.Context, restaurantID, moduleName string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM restaurant_modules
			WHERE restaurant_id = $1 AND module_name = $2 AND is_active = TRUE
			  AND (expires_at IS NULL OR expires_at > NOW())
		)`
	var active bool
	if err := r.q.QueryRow(ctx, query, restaurantID, moduleName).Scan(&active); err != nil {
		return false, fmt.Errorf("check module: %w", err)
	}
	return active, nil
}

func (r *RestaurantRepo) loadHours(restaurantID string) ([]entity.OpeningHours, error) {
	query := `
		SELECT weekday, closed, lunch_open, lunch_close, dinner_open, dinner_close
		FROM restaurant_hours WHERE restaurant_id = $1 ORDER BY weekday`
	rows, err := r.q.Query(context.Background(), query, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list hours: %w", err)
	}
	defer rows.Close()

	var out []entity.OpeningHours
	for rows.Next() {
		var h entity.OpeningHours
		var weekday int
		if err := rows.Scan(&weekday, &h.Closed, &h.LunchOpen, &h.LunchClose, &h.DinnerOpen, &h.DinnerClose); err != nil {
			return nil, fmt.Errorf("scan hours: %w", err)
		}
		h.Weekday = time.Weekday(weekday)
		out = append(out, h)
	}
	return out, rows.Err()
}
