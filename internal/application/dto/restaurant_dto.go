package dto

import "time"

// CrearRestauranteRequest alta de un restaurante.
type CrearRestauranteRequest struct {
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email"`
	MaxCapacity int      `json:"max_capacity"`
	MetodosPago []string `json:"metodos_pago"`
}

// HorarioDiaDTO horario estructurado de un día (0 = domingo, como time.Weekday).
type HorarioDiaDTO struct {
	Dia            int    `json:"dia"`
	Cerrado        bool   `json:"cerrado"`
	AlmuerzoAbre   string `json:"almuerzo_abre,omitempty"`
	AlmuerzoCierra string `json:"almuerzo_cierra,omitempty"`
	CenaAbre       string `json:"cena_abre,omitempty"`
	CenaCierra     string `json:"cena_cierra,omitempty"`
}

// ActualizarHorariosRequest reemplazo de los horarios del restaurante.
type ActualizarHorariosRequest struct {
	Horarios []HorarioDiaDTO `json:"horarios"`
}

// RestauranteResponse restaurante expuesto por la API.
type RestauranteResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Address     string          `json:"address"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email"`
	MaxCapacity int             `json:"max_capacity"`
	MetodosPago []string        `json:"metodos_pago,omitempty"`
	Horarios    []HorarioDiaDTO `json:"horarios,omitempty"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}
