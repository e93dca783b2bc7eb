package entity

import "time"

// Restaurant representa un restaurante/tenant del sistema.
type Restaurant struct {
	ID          string
	Name        string
	Address     string
	Phone       string
	Email       string
	MaxCapacity int               // cupo máximo de comensales por día; 0 = sin configurar
	Settings    map[string]string // pares clave/valor legados (ej. "capacidad_maxima")
	PaymentMeth []string          // métodos de pago aceptados
	Hours       []OpeningHours    // horarios estructurados por día de semana
	Status      string            // active, suspended, inactive
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OpeningHours franjas de almuerzo y cena de un día de la semana.
// Las horas van en formato "HH:MM"; cadena vacía = sin servicio en esa franja.
type OpeningHours struct {
	Weekday     time.Weekday
	Closed      bool
	LunchOpen   string
	LunchClose  string
	DinnerOpen  string
	DinnerClose string
}

// Módulos contratables por restaurante (deben coincidir con el CHECK de restaurant_modules).
const (
	ModuleChatbot        = "chatbot"
	ModuleReservasOnline = "reservas_online"
	ModuleMenuDigital    = "menu_digital"
)

// RestaurantModule representa la activación de un módulo en un restaurante.
type RestaurantModule struct {
	ID           string
	RestaurantID string
	ModuleName   string // ver constantes Module*
	IsActive     bool
	ActivatedAt  time.Time
	ExpiresAt    *time.Time // nil = sin vencimiento
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
