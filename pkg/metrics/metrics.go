package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MovementsRecordedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stock_movements_recorded_total",
		Help: "Total de movimientos de stock registrados, por tipo",
	}, []string{"type"})

	OrphanMovementsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stock_movements_orphan_total",
		Help: "Movimientos registrados cuyo producto ya no existe",
	})

	ProductsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_created_total",
		Help: "Total de productos creados",
	})

	ProductsDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_deleted_total",
		Help: "Total de productos eliminados",
	})

	LowStockProducts = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "low_stock_products",
		Help: "Productos con stock en o por debajo de su mínimo",
	})
)
