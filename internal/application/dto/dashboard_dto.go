package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO resumen del estado del inventario para el tablero:
// totales, alertas de stock bajo, actividad de las últimas 24h y valor total
// del stock a precio de venta.
type DashboardSummaryDTO struct {
	TotalProducts    int                `json:"total_products"`
	LowStockCount    int                `json:"low_stock_count"`
	MovementsLast24h int                `json:"movements_last_24h"`
	TotalValue       decimal.Decimal    `json:"total_value"`
	RecentMovements  []MovementResponse `json:"recent_movements"`
	LowStock         []ProductResponse  `json:"low_stock"`
}
