package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/reservas-api/internal/domain/entity"
	"github.com/jhoicas/reservas-api/internal/domain/repository"
	domreservas "github.com/jhoicas/reservas-api/internal/domain/reservas"
)

var _ repository.ReservationRepository = (*ReservationRepo)(nil)

// ReservationRepo implementación del puerto ReservationRepository sobre PostgreSQL (usable con pool o tx).
// La columna fecha es DATE; la entidad la maneja como DD/MM/YYYY y acá se convierte.
type ReservationRepo struct {
	q Querier
}

// NewReservationRepository construye el adaptador de persistencia de reservas. Pasar pool o tx (Querier).
func NewReservationRepository(q Querier) *ReservationRepo {
	return &ReservationRepo{q: q}
}

// Create persiste una nueva reserva.
func (r *ReservationRepo) Create(res *entity.Reservation) error {
	fechaISO, err := domreservas.FechaAISO(res.Fecha)
	if err != nil {
		return fmt.Errorf("fecha de reserva: %w", err)
	}
	query := `
		INSERT INTO reservations (id, restaurant_id, nombre, fecha, hora, personas, telefono, email, comentarios, origen, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = r.q.Exec(context.Background(), query,
		res.ID, res.RestaurantID, res.Nombre, fechaISO, res.Hora, res.Personas,
		res.Telefono, res.Email, res.Comentarios, res.Origen, string(res.Status),
		res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert reservation: reserva duplicada: %w", err)
		}
		return fmt.Errorf("insert reservation: %w", err)
	}
	return nil
}

// GetByID obtiene una reserva por ID. Devuelve (nil, nil) si no existe.
func (r *ReservationRepo) GetByID(id string) (*entity.Reservation, error) {
	query := `
		SELECT id, restaurant_id, nombre, fecha, hora, personas, telefono, email, comentarios, origen, status, created_at, updated_at
		FROM reservations WHERE id = $1`
	res, err := scanReservation(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	return res, nil
}

// ListByRestaurantAndDate lista las reservas de un restaurante para una fecha (DD/MM/YYYY).
func (r *ReservationRepo) ListByRestaurantAndDate(restaurantID, fecha string) ([]*entity.Reservation, error) {
	fechaISO, err := domreservas.FechaAISO(fecha)
	if err != nil {
		return nil, fmt.Errorf("fecha de listado: %w", err)
	}
	query := `
		SELECT id, restaurant_id, nombre, fecha, hora, personas, telefono, email, comentarios, origen, status, created_at, updated_at
		FROM reservations
		WHERE restaurant_id = $1 AND fecha = $2
		ORDER BY hora, created_at`
	rows, err := r.q.Query(context.Background(), query, restaurantID, fechaISO)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	var out []*entity.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// SumConfirmedByDate suma las personas de las reservas Confirmadas del día.
func (r *ReservationRepo) SumConfirmedByDate(restaurantID, fecha string) (int, error) {
	fechaISO, err := domreservas.FechaAISO(fecha)
	if err != nil {
		return 0, fmt.Errorf("fecha de capacidad: %w", err)
	}
	query := `
		SELECT COALESCE(SUM(personas), 0)
		FROM reservations
		WHERE restaurant_id = $1 AND fecha = $2 AND status = $3`
	var total int
	err = r.q.QueryRow(context.Background(), query, restaurantID, fechaISO, string(entity.StatusConfirmada)).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum confirmed: %w", err)
	}
	return total, nil
}

// UpdateStatus cambia el estado de la reserva.
func (r *ReservationRepo) UpdateStatus(id string, status entity.ReservationStatus) error {
	query := `UPDATE reservations SET status = $1, updated_at = NOW() WHERE id = $2`
	tag, err := r.q.Exec(context.Background(), query, string(status), id)
	if err != nil {
		return fmt.Errorf("update reservation status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update reservation status: reserva %s no encontrada", id)
	}
	return nil
}

// scanReservation mapea una fila a la entidad, convirtiendo DATE -> DD/MM/YYYY.
func scanReservation(row pgx.Row) (*entity.Reservation, error) {
	var res entity.Reservation
	var fecha time.Time
	var status string
	err := row.Scan(
		&res.ID, &res.RestaurantID, &res.Nombre, &fecha, &res.Hora, &res.Personas,
		&res.Telefono, &res.Email, &res.Comentarios, &res.Origen, &status,
		&res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	res.Fecha = fecha.Format("02/01/2006")
	res.Status = entity.ReservationStatus(status)
	return &res, nil
}
