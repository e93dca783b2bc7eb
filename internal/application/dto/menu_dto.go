package dto

import "github.com/shopspring/decimal"

// ItemMenuRequest un ítem del menú en la petición de reemplazo.
type ItemMenuRequest struct {
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion,omitempty"`
	Precio      decimal.Decimal `json:"precio"`
	Categoria   string          `json:"categoria"` // entradas, principales, postres, bebidas
	Disponible  bool            `json:"disponible"`
}

// ReemplazarMenuRequest reemplaza el menú completo del restaurante en una transacción.
type ReemplazarMenuRequest struct {
	Items []ItemMenuRequest `json:"items"`
}

// ItemMenuResponse un ítem del menú expuesto por la API.
type ItemMenuResponse struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion,omitempty"`
	Precio      decimal.Decimal `json:"precio"`
	Categoria   string          `json:"categoria"`
	Disponible  bool            `json:"disponible"`
}
