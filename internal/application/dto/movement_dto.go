package dto

import (
	"time"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// RecordMovementRequest body para POST /api/inventory/movements.
// ProductName es opcional: si el producto existe se toma el snapshot de su
// nombre actual; si no existe (movimiento huérfano) se usa el provisto.
type RecordMovementRequest struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name,omitempty"`
	Type        string `json:"type"`
	Reason      string `json:"reason"`
	Quantity    int    `json:"quantity"`
	Responsible string `json:"responsible"`
	Notes       string `json:"notes,omitempty"`
}

// MovementResponse salida de un movimiento.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Type        string    `json:"type"`
	Reason      string    `json:"reason"`
	Quantity    int       `json:"quantity"`
	Responsible string    `json:"responsible"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// MovementListResponse lista de movimientos (más reciente primero).
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}

// NewMovementResponse convierte la entidad al DTO de salida.
func NewMovementResponse(m entity.Movement) MovementResponse {
	return MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Type:        m.Type,
		Reason:      m.Reason,
		Quantity:    m.Quantity,
		Responsible: m.Responsible,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
	}
}

// NewMovementResponses convierte un slice de entidades.
func NewMovementResponses(movements []entity.Movement) []MovementResponse {
	out := make([]MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, NewMovementResponse(m))
	}
	return out
}

// MovementFilter filtros del historial. Se componen con AND; los de texto son
// substring case-insensitive.
type MovementFilter struct {
	Type        string `query:"type"`
	Search      string `query:"search"`
	Responsible string `query:"responsible"`
	WithinHours int    `query:"within_hours"`
	Limit       int    `query:"limit"`
}
