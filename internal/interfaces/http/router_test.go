package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/application/analytics"
	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/application/query"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/estoque-api/internal/interfaces/http"
)

func newTestApp() (*fiber.App, repository.EntityStore) {
	store := storage.NewJSONStore(storage.NewMemoryBlobStore())
	app := fiber.New()
	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:      usecase.NewProductUseCase(store),
		RecordMovement: inventory.NewRecordMovementUseCase(store),
		QueryUC:        query.NewQueryUseCase(store),
		DashboardUC:    analytics.NewDashboardUseCase(store),
	})
	return app, store
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, []byte) {
	t.Helper()
	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func TestProductEndpoints_CicloCompleto(t *testing.T) {
	app, _ := newTestApp()

	// Crear
	status, raw := doJSON(t, app, fiber.MethodPost, "/api/products", fiber.Map{
		"name": "iPhone 14 Pro", "category": "smartphone", "sku": "IPH14P-256-BLK",
		"quantity": 8, "min_quantity": 5, "sale_price": "6999",
	})
	require.Equal(t, fiber.StatusCreated, status, string(raw))
	var created dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &created))
	require.NotEmpty(t, created.ID)

	// Obtener
	status, raw = doJSON(t, app, fiber.MethodGet, "/api/products/"+created.ID, nil)
	require.Equal(t, fiber.StatusOK, status)
	var got dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "iPhone 14 Pro", got.Name)

	// Actualizar solo la cantidad
	status, raw = doJSON(t, app, fiber.MethodPut, "/api/products/"+created.ID, fiber.Map{"quantity": 20})
	require.Equal(t, fiber.StatusOK, status, string(raw))
	var updated dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &updated))
	assert.Equal(t, 20, updated.Quantity)
	assert.Equal(t, "IPH14P-256-BLK", updated.SKU)

	// Eliminar
	status, _ = doJSON(t, app, fiber.MethodDelete, "/api/products/"+created.ID, nil)
	assert.Equal(t, fiber.StatusNoContent, status)

	status, _ = doJSON(t, app, fiber.MethodGet, "/api/products/"+created.ID, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestCreateProduct_DatosInvalidos(t *testing.T) {
	app, _ := newTestApp()

	status, raw := doJSON(t, app, fiber.MethodPost, "/api/products", fiber.Map{
		"name": "", "category": "smartphone", "sku": "X",
	})
	require.Equal(t, fiber.StatusBadRequest, status)
	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &errResp))
	assert.Equal(t, "VALIDATION", errResp.Code)
}

func TestRecordMovement_AjustaElStock(t *testing.T) {
	app, _ := newTestApp()

	status, raw := doJSON(t, app, fiber.MethodPost, "/api/products", fiber.Map{
		"name": "MacBook Air M2", "category": "notebook", "sku": "MBA-M2-512-SLV", "quantity": 8,
	})
	require.Equal(t, fiber.StatusCreated, status, string(raw))
	var product dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &product))

	status, raw = doJSON(t, app, fiber.MethodPost, "/api/inventory/movements", fiber.Map{
		"product_id": product.ID, "type": "saida", "reason": "venda",
		"quantity": 20, "responsible": "Maria Santos",
	})
	require.Equal(t, fiber.StatusCreated, status, string(raw))

	status, raw = doJSON(t, app, fiber.MethodGet, "/api/products/"+product.ID, nil)
	require.Equal(t, fiber.StatusOK, status)
	var after dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &after))
	assert.Equal(t, 0, after.Quantity, "la salida mayor al stock deja 0")
}

func TestRecordMovement_MotivoIncompatibleConElTipo(t *testing.T) {
	app, _ := newTestApp()

	status, raw := doJSON(t, app, fiber.MethodPost, "/api/inventory/movements", fiber.Map{
		"product_id": "p1", "type": "entrada", "reason": "venda",
		"quantity": 1, "responsible": "x",
	})
	require.Equal(t, fiber.StatusBadRequest, status)
	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &errResp))
	assert.Equal(t, "VALIDATION", errResp.Code)
}

func TestListMovements_FiltrosPorQuery(t *testing.T) {
	app, _ := newTestApp()

	for i := 0; i < 3; i++ {
		status, raw := doJSON(t, app, fiber.MethodPost, "/api/inventory/movements", fiber.Map{
			"product_id": fmt.Sprintf("p%d", i), "product_name": "Produto Avulso",
			"type": "entrada", "reason": "compra", "quantity": 1, "responsible": "João Silva",
		})
		require.Equal(t, fiber.StatusCreated, status, string(raw))
	}

	status, raw := doJSON(t, app, fiber.MethodGet, "/api/inventory/movements?type=entrada&limit=2", nil)
	require.Equal(t, fiber.StatusOK, status)
	var out dto.MovementListResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Len(t, out.Items, 2)
	assert.Equal(t, 3, out.Total)

	status, raw = doJSON(t, app, fiber.MethodGet, "/api/inventory/movements?type=saida", nil)
	require.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, 0, out.Total)
}

func TestAlerts_DevuelveProductosBajoElMinimo(t *testing.T) {
	app, store := newTestApp()

	status, raw := doJSON(t, app, fiber.MethodPost, "/api/products", fiber.Map{
		"name": "Samsung Smart TV 65", "category": "smart-tv", "sku": "SSTV-65-4K-NEO",
		"quantity": 2, "min_quantity": 4,
	})
	require.Equal(t, fiber.StatusCreated, status, string(raw))

	products, err := store.LoadProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)

	status, raw = doJSON(t, app, fiber.MethodGet, "/api/inventory/alerts", nil)
	require.Equal(t, fiber.StatusOK, status)
	var alerts []dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &alerts))
	require.Len(t, alerts, 1)
	assert.Equal(t, "Samsung Smart TV 65", alerts[0].Name)
}

func TestDashboardSummary(t *testing.T) {
	app, _ := newTestApp()

	status, raw := doJSON(t, app, fiber.MethodPost, "/api/products", fiber.Map{
		"name": "AirPods Pro 2", "category": "acessorio", "sku": "APP2-WHT-USB",
		"quantity": 15, "min_quantity": 10, "sale_price": "1699",
	})
	require.Equal(t, fiber.StatusCreated, status, string(raw))

	status, raw = doJSON(t, app, fiber.MethodGet, "/api/dashboard/summary", nil)
	require.Equal(t, fiber.StatusOK, status)
	var summary dto.DashboardSummaryDTO
	require.NoError(t, json.Unmarshal(raw, &summary))
	assert.Equal(t, 1, summary.TotalProducts)
	assert.Equal(t, 0, summary.LowStockCount)
	assert.Equal(t, 0, summary.MovementsLast24h)
	assert.True(t, summary.TotalValue.Equal(decimal.NewFromInt(25485)), "total %s", summary.TotalValue)
}
