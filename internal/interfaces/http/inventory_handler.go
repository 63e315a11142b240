package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/application/query"
	"github.com/jhoicas/estoque-api/internal/domain"
)

// InventoryHandler maneja las peticiones HTTP de movimientos, historial y alertas.
type InventoryHandler struct {
	uc      *inventory.RecordMovementUseCase
	queries *query.QueryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.RecordMovementUseCase, queries *query.QueryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc, queries: queries}
}

// RecordMovement godoc
// @Summary      Registrar movimiento de stock
// @Description  Una salida mayor al stock disponible no falla: el stock queda
//               en 0. Un product_id inexistente registra el movimiento sin
//               ajuste de stock.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "product_id, type (entrada|saida), reason, quantity, responsible"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RecordMovement(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Record(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo, motivo (acorde al tipo), cantidad positiva, product_id y responsible son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMovements godoc
// @Summary      Historial de movimientos (más reciente primero)
// @Tags         inventory
// @Produce      json
// @Param        type          query  string  false  "entrada o saida"
// @Param        search        query  string  false  "Substring sobre nombre de producto o motivo"
// @Param        responsible   query  string  false  "Substring sobre responsable"
// @Param        within_hours  query  int     false  "Solo movimientos de las últimas N horas"
// @Param        limit         query  int     false  "Máximo de resultados"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	f := dto.MovementFilter{
		Type:        c.Query("type"),
		Search:      c.Query("search"),
		Responsible: c.Query("responsible"),
		WithinHours: c.QueryInt("within_hours", 0),
		Limit:       c.QueryInt("limit", 0),
	}
	out, err := h.queries.FilterMovements(c.Context(), f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Alertas de stock bajo
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/inventory/alerts [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.queries.LowStockProducts(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
