package main

import (
	"context"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/electro-inventory/internal/adapter/api/controller"
	"github.com/hugohenrick/electro-inventory/internal/adapter/api/route"
	"github.com/hugohenrick/electro-inventory/internal/adapter/repository"
	"github.com/hugohenrick/electro-inventory/pkg/auth"
	"github.com/hugohenrick/electro-inventory/pkg/logger"
)

// App representa a aplicação e suas dependências
type App struct {
	router                *gin.Engine
	jwtService            *auth.JWTService
	authController        *controller.AuthController
	productController     *controller.ProductController
	categoryController    *controller.CategoryController
	transactionController *controller.TransactionController
}

// NewApp cria uma nova instância do aplicativo com os
// repositórios em memória já populados
func NewApp() (*App, error) {
	log := logger.NewLogger()

	// Criar repositórios em memória
	stores := repository.SeedStores{
		Products:   repository.NewMemoryProductRepository(),
		Categories: repository.NewMemoryCategoryRepository(),
		Sales:      repository.NewMemorySaleRepository(),
		Purchases:  repository.NewMemoryPurchaseRepository(),
		Users:      repository.NewMemoryUserRepository(),
	}
	if err := repository.Seed(context.Background(), stores); err != nil {
		return nil, err
	}

	// Configurar serviço de JWT
	jwtService, err := auth.NewJWTService()
	if err != nil {
		return nil, err
	}

	// Criar controllers
	authController := controller.NewAuthController(stores.Users, jwtService, log)
	productController := controller.NewProductController(stores.Products, log)
	categoryController := controller.NewCategoryController(stores.Categories, stores.Products, log)
	transactionController := controller.NewTransactionController(stores.Sales, stores.Purchases, stores.Products, log)

	// Configurar router
	router := gin.Default()
	router.Use(gin.Recovery())

	// Configurar CORS para o painel em desenvolvimento
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	return &App{
		router:                router,
		jwtService:            jwtService,
		authController:        authController,
		productController:     productController,
		categoryController:    categoryController,
		transactionController: transactionController,
	}, nil
}

// SetupRoutes configura as rotas da aplicação
func (a *App) SetupRoutes(basePath string) {
	api := a.router.Group(basePath)

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	route.RegisterAuthRoutes(api, a.authController)
	route.RegisterProductRoutes(api, a.jwtService, a.productController)
	route.RegisterCategoryRoutes(api, a.jwtService, a.categoryController)
	route.RegisterTransactionRoutes(api, a.jwtService, a.transactionController)
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Start configura as rotas e inicia o servidor HTTP
func (a *App) Start() error {
	a.SetupRoutes("/api")

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	return a.router.Run(":" + port)
}
