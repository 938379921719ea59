package repository_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/electro-inventory/internal/adapter/api/controller"
	"github.com/hugohenrick/electro-inventory/internal/adapter/api/route"
	"github.com/hugohenrick/electro-inventory/internal/adapter/repository"
	"github.com/hugohenrick/electro-inventory/internal/domain/category"
	"github.com/hugohenrick/electro-inventory/internal/domain/product"
	"github.com/hugohenrick/electro-inventory/internal/domain/transaction"
	"github.com/hugohenrick/electro-inventory/pkg/auth"
	"github.com/hugohenrick/electro-inventory/pkg/httpclient"
	"github.com/hugohenrick/electro-inventory/pkg/logger"
	"github.com/hugohenrick/electro-inventory/pkg/session"
)

// newTestServer monta o servidor de desenvolvimento completo, com os
// repositórios em memória populados, e devolve um cliente autenticado.
func newTestServer(t *testing.T) (*httpclient.Client, *session.Session, repository.SeedStores) {
	t.Helper()
	t.Setenv("JWT_SECRET_KEY", "integration-test-secret")
	gin.SetMode(gin.TestMode)

	log := logger.NewLogger()

	stores := repository.SeedStores{
		Products:   repository.NewMemoryProductRepository(),
		Categories: repository.NewMemoryCategoryRepository(),
		Sales:      repository.NewMemorySaleRepository(),
		Purchases:  repository.NewMemoryPurchaseRepository(),
		Users:      repository.NewMemoryUserRepository(),
	}
	require.NoError(t, repository.Seed(context.Background(), stores))

	jwtService, err := auth.NewJWTService()
	require.NoError(t, err)

	router := gin.New()
	api := router.Group("/api")
	route.RegisterAuthRoutes(api, controller.NewAuthController(stores.Users, jwtService, log))
	route.RegisterProductRoutes(api, jwtService, controller.NewProductController(stores.Products, log))
	route.RegisterCategoryRoutes(api, jwtService, controller.NewCategoryController(stores.Categories, stores.Products, log))
	route.RegisterTransactionRoutes(api, jwtService, controller.NewTransactionController(stores.Sales, stores.Purchases, stores.Products, log))

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	sess := session.New()
	client := httpclient.New(&httpclient.Config{
		BaseURL: server.URL + "/api",
		Timeout: 5 * time.Second,
	}, sess, log)

	return client, sess, stores
}

func login(t *testing.T, client *httpclient.Client, sess *session.Session) {
	t.Helper()
	authService := repository.NewRestAuthService(client, sess)
	resp, err := authService.Login(context.Background(), "admin@electroinventory.local", "admin123")
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
}

func childByName(parent *category.Category, name string) *category.Category {
	for _, child := range parent.Children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

func TestRestProductRepository(t *testing.T) {
	client, sess, _ := newTestServer(t)
	login(t, client, sess)

	repo := repository.NewRestProductRepository(client)
	ctx := context.Background()

	t.Run("lista o catálogo populado", func(t *testing.T) {
		products, err := repo.List(ctx, product.ListFilter{Limit: 50})
		require.NoError(t, err)
		assert.Len(t, products, 6)
	})

	t.Run("busca por nome", func(t *testing.T) {
		products, err := repo.List(ctx, product.ListFilter{Search: "osaka"})
		require.NoError(t, err)
		require.NotEmpty(t, products)
		for _, p := range products {
			assert.Contains(t, p.Brand, "Osaka")
		}
	})

	t.Run("cria, atualiza e remove um produto", func(t *testing.T) {
		p, err := product.NewProduct("TST-001", "Test Breaker 20A", "Siemens",
			product.Price{PurchasePrice: 30, SellingPrice: 55},
			product.Stock{Quantity: 12, MinThreshold: 4},
		)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, p))

		created, err := repo.List(ctx, product.ListFilter{Search: "TST-001"})
		require.NoError(t, err)
		require.Len(t, created, 1)

		created[0].Price.SellingPrice = 60
		require.NoError(t, repo.Update(ctx, created[0]))

		fetched, err := repo.FindByID(ctx, created[0].ID)
		require.NoError(t, err)
		assert.Equal(t, 60.0, fetched.Price.SellingPrice)

		require.NoError(t, repo.Delete(ctx, created[0].ID))
		_, err = repo.FindByID(ctx, created[0].ID)
		assert.Error(t, err)
	})

	t.Run("ajusta o estoque", func(t *testing.T) {
		before, err := repo.FindByID(ctx, "prod-philips-7w")
		require.NoError(t, err)

		require.NoError(t, repo.AdjustStock(ctx, "prod-philips-7w", -5))

		after, err := repo.FindByID(ctx, "prod-philips-7w")
		require.NoError(t, err)
		assert.Equal(t, before.Stock.Quantity-5, after.Stock.Quantity)
	})
}

func TestProductSearch(t *testing.T) {
	client, sess, _ := newTestServer(t)
	login(t, client, sess)

	search := repository.NewProductSearch(repository.NewRestProductRepository(client))

	var delivered []*product.Product
	search.Query(context.Background(), product.ListFilter{Search: "philips"}, func(products []*product.Product, err error) {
		require.NoError(t, err)
		delivered = products
	})

	require.Len(t, delivered, 1)
	assert.Equal(t, "PHL-B7W", delivered[0].SKU)
}

func TestRestCategoryRepository(t *testing.T) {
	client, sess, _ := newTestServer(t)
	login(t, client, sess)

	repo := repository.NewRestCategoryRepository(client)
	ctx := context.Background()

	t.Run("lista a árvore com agregados", func(t *testing.T) {
		tree, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, 11, category.CountNodes(tree))

		var lighting *category.Category
		for _, root := range tree {
			if root.Name == "Lighting" {
				lighting = root
			}
		}
		require.NotNil(t, lighting)
		// 4 produtos (bulbs + tube) pendurados sob Lighting
		assert.Equal(t, 4, lighting.ProductCount)
		assert.Greater(t, lighting.StockValue, 0.0)

		// Os agregados sobem nível a nível até a raiz
		bulbs := childByName(lighting, "Bulbs")
		require.NotNil(t, bulbs)
		assert.Equal(t, 3, bulbs.ProductCount)

		osaka := childByName(bulbs, "Osaka")
		require.NotNil(t, osaka)
		assert.Equal(t, 2, osaka.ProductCount)
		// 45 lâmpadas de 10W a 180 + 8 de 12W a 210
		assert.Equal(t, 45*180.0+8*210.0, osaka.StockValue)
	})

	t.Run("recusa remover categoria com filhos", func(t *testing.T) {
		err := repo.Delete(ctx, "cat-bulbs")
		require.Error(t, err)
	})

	t.Run("cria subcategoria e remove", func(t *testing.T) {
		c, err := category.NewCategory("Fans", "Ventiladores", "")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, c))

		tree, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, 12, category.CountNodes(tree))

		var created *category.Category
		for _, root := range tree {
			if root.Name == "Fans" {
				created = root
			}
		}
		require.NotNil(t, created)
		require.NoError(t, repo.Delete(ctx, created.ID))
	})
}

func TestRestSaleRepository(t *testing.T) {
	client, sess, stores := newTestServer(t)
	login(t, client, sess)

	repo := repository.NewRestSaleRepository(client)
	ctx := context.Background()

	t.Run("registro de venda baixa o estoque", func(t *testing.T) {
		before, err := stores.Products.FindByID(ctx, "prod-switch-std")
		require.NoError(t, err)

		sale, err := transaction.NewSale("SALE-TEST01", "Cliente Teste", transaction.PaymentCash, "", []transaction.Item{
			{ProductID: "prod-switch-std", ProductName: "Standard Switch 10A", ProductSKU: "SWT-STD", Quantity: 4, Price: 25, Total: 100},
		})
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, sale))

		after, err := stores.Products.FindByID(ctx, "prod-switch-std")
		require.NoError(t, err)
		assert.Equal(t, before.Stock.Quantity-4, after.Stock.Quantity)
	})

	t.Run("venda sem estoque é recusada", func(t *testing.T) {
		sale, err := transaction.NewSale("SALE-TEST02", "", transaction.PaymentDigital, "", []transaction.Item{
			{ProductID: "prod-tube-20w", ProductName: "Osaka Tube Light 20W", ProductSKU: "OSK-T20W", Quantity: 1, Price: 320, Total: 320},
		})
		require.NoError(t, err)
		assert.Error(t, repo.Create(ctx, sale))
	})

	t.Run("lista da mais recente para a mais antiga", func(t *testing.T) {
		sales, err := repo.List(ctx, transaction.ListFilter{})
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(sales), 2)
		for i := 1; i < len(sales); i++ {
			assert.False(t, sales[i].CreatedAt.After(sales[i-1].CreatedAt))
		}
	})
}

func TestRestPurchaseRepository(t *testing.T) {
	client, sess, stores := newTestServer(t)
	login(t, client, sess)

	repo := repository.NewRestPurchaseRepository(client)
	ctx := context.Background()

	t.Run("registro de compra repõe o estoque", func(t *testing.T) {
		before, err := stores.Products.FindByID(ctx, "prod-tube-20w")
		require.NoError(t, err)

		purchase, err := transaction.NewPurchase("PO-TEST01", "Osaka Distribuidora", "", []transaction.Item{
			{ProductID: "prod-tube-20w", ProductName: "Osaka Tube Light 20W", ProductSKU: "OSK-T20W", Quantity: 15, Price: 200, Total: 3000},
		})
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, purchase))

		after, err := stores.Products.FindByID(ctx, "prod-tube-20w")
		require.NoError(t, err)
		assert.Equal(t, before.Stock.Quantity+15, after.Stock.Quantity)
	})

	t.Run("referências de compra seguem o prefixo PO-", func(t *testing.T) {
		purchases, err := repo.List(ctx, transaction.ListFilter{})
		require.NoError(t, err)
		require.NotEmpty(t, purchases)
		for _, p := range purchases {
			assert.True(t, strings.HasPrefix(p.Reference, "PO-"), "referência %s", p.Reference)
		}
	})
}

func TestUnauthenticatedRequestInvalidatesSession(t *testing.T) {
	client, sess, _ := newTestServer(t)

	// Sem login: o token está vazio e o servidor responde 401
	var unauthorizedSeen bool
	client.OnUnauthorized(func() { unauthorizedSeen = true })

	repo := repository.NewRestProductRepository(client)
	_, err := repo.List(context.Background(), product.ListFilter{})

	require.Error(t, err)
	assert.ErrorIs(t, err, httpclient.ErrUnauthorized)
	assert.True(t, unauthorizedSeen)
	assert.Empty(t, sess.Token())
}

func TestRestAuthService(t *testing.T) {
	client, sess, _ := newTestServer(t)
	authService := repository.NewRestAuthService(client, sess)
	ctx := context.Background()

	t.Run("login com credenciais inválidas", func(t *testing.T) {
		_, err := authService.Login(ctx, "admin@electroinventory.local", "senha-errada")
		require.Error(t, err)
		assert.Empty(t, sess.Token())
	})

	t.Run("fluxo de redefinição de senha", func(t *testing.T) {
		resp, err := authService.ForgotPassword(ctx, "admin@electroinventory.local")
		require.NoError(t, err)
		require.NotEmpty(t, resp.ResetToken)

		require.NoError(t, authService.ResetPassword(ctx, resp.ResetToken, "nova-senha"))

		_, err = authService.Login(ctx, "admin@electroinventory.local", "admin123")
		require.Error(t, err)

		loginResp, err := authService.Login(ctx, "admin@electroinventory.local", "nova-senha")
		require.NoError(t, err)
		assert.Equal(t, loginResp.Token, sess.Token())
	})

	t.Run("logout limpa a sessão", func(t *testing.T) {
		authService.Logout()
		assert.Empty(t, sess.Token())
	})
}
