package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/reservas-api/internal/application/dto"
	"github.com/jhoicas/reservas-api/internal/domain"
	"github.com/jhoicas/reservas-api/internal/domain/entity"
	"github.com/jhoicas/reservas-api/internal/domain/repository"
	domreservas "github.com/jhoicas/reservas-api/internal/domain/reservas"
)

// RestaurantUseCase casos de uso de restaurantes (alta, consulta, horarios).
type RestaurantUseCase struct {
	repo repository.RestaurantRepository
}

// NewRestaurantUseCase construye el caso de uso.
func NewRestaurantUseCase(repo repository.RestaurantRepository) *RestaurantUseCase {
	return &RestaurantUseCase{repo: repo}
}

// Create da de alta un restaurante.
func (uc *RestaurantUseCase) Create(in dto.CrearRestauranteRequest) (*dto.RestauranteResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	r := &entity.Restaurant{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Address:     in.Address,
		Phone:       in.Phone,
		Email:       in.Email,
		MaxCapacity: in.MaxCapacity,
		PaymentMeth: in.MetodosPago,
		Settings:    map[string]string{},
		Status:      "active",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(r); err != nil {
		return nil, err
	}
	return toRestauranteResponse(r), nil
}

// GetByID obtiene un restaurante.
func (uc *RestaurantUseCase) GetByID(id string) (*dto.RestauranteResponse, error) {
	r, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	return toRestauranteResponse(r), nil
}

// List lista restaurantes con paginación.
func (uc *RestaurantUseCase) List(limit, offset int) ([]*dto.RestauranteResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RestauranteResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toRestauranteResponse(r))
	}
	return out, nil
}

// UpdateHours reemplaza los horarios estructurados del restaurante.
// Valida formato HH:MM de cada franja declarada antes de persistir.
func (uc *RestaurantUseCase) UpdateHours(restaurantID string, in dto.ActualizarHorariosRequest) error {
	r, err := uc.repo.GetByID(restaurantID)
	if err != nil {
		return err
	}
	if r == nil {
		return domain.ErrNotFound
	}

	hours := make([]entity.OpeningHours, 0, len(in.Horarios))
	for _, h := range in.Horarios {
		if h.Dia < 0 || h.Dia > 6 {
			return domain.ErrInvalidInput
		}
		if !h.Cerrado {
			for _, hora := range []string{h.AlmuerzoAbre, h.AlmuerzoCierra, h.CenaAbre, h.CenaCierra} {
				if hora == "" {
					continue
				}
				if ok, _ := domreservas.ValidarPaso(domreservas.PasoHora, hora, time.Now()); !ok {
					return domain.ErrInvalidInput
				}
			}
		}
		hours = append(hours, entity.OpeningHours{
			Weekday:     time.Weekday(h.Dia),
			Closed:      h.Cerrado,
			LunchOpen:   h.AlmuerzoAbre,
			LunchClose:  h.AlmuerzoCierra,
			DinnerOpen:  h.CenaAbre,
			DinnerClose: h.CenaCierra,
		})
	}
	return uc.repo.UpdateHours(restaurantID, hours)
}

func toRestauranteResponse(r *entity.Restaurant) *dto.RestauranteResponse {
	horarios := make([]dto.HorarioDiaDTO, 0, len(r.Hours))
	for _, h := range r.Hours {
		horarios = append(horarios, dto.HorarioDiaDTO{
			Dia:            int(h.Weekday),
			Cerrado:        h.Closed,
			AlmuerzoAbre:   h.LunchOpen,
			AlmuerzoCierra: h.LunchClose,
			CenaAbre:       h.DinnerOpen,
			CenaCierra:     h.DinnerClose,
		})
	}
	return &dto.RestauranteResponse{
		ID:          r.ID,
		Name:        r.Name,
		Address:     r.Address,
		Phone:       r.Phone,
		Email:       r.Email,
		MaxCapacity: r.MaxCapacity,
		MetodosPago: r.PaymentMeth,
		Horarios:    horarios,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
	}
}
