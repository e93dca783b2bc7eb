package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem un plato o bebida del menú del restaurante.
type MenuItem struct {
	ID           string
	RestaurantID string
	Nombre       string
	Descripcion  string
	Precio       decimal.Decimal
	Categoria    string // entradas, principales, postres, bebidas
	Disponible   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
