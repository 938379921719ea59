package repository_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/electro-inventory/internal/adapter/repository"
	"github.com/hugohenrick/electro-inventory/internal/domain/category"
	"github.com/hugohenrick/electro-inventory/internal/domain/product"
	"github.com/hugohenrick/electro-inventory/internal/domain/transaction"
	"github.com/hugohenrick/electro-inventory/pkg/httpclient"
	"github.com/hugohenrick/electro-inventory/pkg/logger"
	"github.com/hugohenrick/electro-inventory/pkg/session"
)

// recordingClient devolve um cliente apontado para um servidor que só
// registra método e caminho de cada requisição. Fixa o contrato de
// caminhos que o backend real expõe.
func recordingClient(t *testing.T) (*httpclient.Client, *[]string) {
	t.Helper()

	var calls []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("{}"))
	}))
	t.Cleanup(server.Close)

	client := httpclient.New(&httpclient.Config{
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	}, session.New(), logger.NewLogger())

	return client, &calls
}

func TestRestRepositoryPaths(t *testing.T) {
	ctx := context.Background()

	t.Run("produtos", func(t *testing.T) {
		client, calls := recordingClient(t)
		repo := repository.NewRestProductRepository(client)

		_, err := repo.List(ctx, product.ListFilter{})
		require.NoError(t, err)
		_, _ = repo.FindByID(ctx, "p1")
		_ = repo.Create(ctx, &product.Product{})
		_ = repo.Update(ctx, &product.Product{ID: "p1"})
		_ = repo.Delete(ctx, "p1")

		assert.Equal(t, []string{
			"GET /products",
			"GET /products/p1",
			"POST /products",
			"PUT /products/p1",
			"DELETE /products/p1",
		}, *calls)
	})

	t.Run("categorias", func(t *testing.T) {
		client, calls := recordingClient(t)
		repo := repository.NewRestCategoryRepository(client)

		_, err := repo.List(ctx)
		require.NoError(t, err)
		_, _ = repo.FindByID(ctx, "c1")
		_ = repo.Create(ctx, &category.Category{Name: "Lighting"})
		_ = repo.Update(ctx, &category.Category{ID: "c1", Name: "Lighting"})
		_ = repo.Delete(ctx, "c1")

		assert.Equal(t, []string{
			"GET /categories",
			"GET /categories/c1",
			"POST /categories",
			"PUT /categories/c1",
			"DELETE /categories/c1",
		}, *calls)
	})

	t.Run("vendas e compras", func(t *testing.T) {
		client, calls := recordingClient(t)
		sales := repository.NewRestSaleRepository(client)
		purchases := repository.NewRestPurchaseRepository(client)

		_, err := sales.List(ctx, transaction.ListFilter{})
		require.NoError(t, err)
		_, _ = sales.FindByID(ctx, "s1")
		_ = sales.Delete(ctx, "s1")
		_, _ = purchases.List(ctx, transaction.ListFilter{})
		_, _ = purchases.FindByID(ctx, "po1")
		_ = purchases.Delete(ctx, "po1")

		assert.Equal(t, []string{
			"GET /inventory/sales",
			"GET /inventory/sales/s1",
			"DELETE /inventory/sales/s1",
			"GET /inventory/purchases",
			"GET /inventory/purchases/po1",
			"DELETE /inventory/purchases/po1",
		}, *calls)
	})

	t.Run("autenticação", func(t *testing.T) {
		client, calls := recordingClient(t)
		authService := repository.NewRestAuthService(client, session.New())

		_, err := authService.Login(ctx, "admin@electroinventory.local", "admin123")
		require.NoError(t, err)
		_, _ = authService.ForgotPassword(ctx, "admin@electroinventory.local")
		_ = authService.ResetPassword(ctx, "token-123", "nova-senha")

		assert.Equal(t, []string{
			"POST /auth/login",
			"POST /auth/forgot-password",
			"POST /auth/reset-password/token-123",
		}, *calls)
	})
}
