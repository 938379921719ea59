package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/electro-inventory/internal/adapter/api/controller"
	"github.com/hugohenrick/electro-inventory/pkg/auth"
)

// RegisterProductRoutes registra as rotas do módulo de produtos
func RegisterProductRoutes(r *gin.RouterGroup, jwtService *auth.JWTService, productController *controller.ProductController) {
	products := r.Group("/products")
	products.Use(auth.JWTAuthMiddleware(jwtService))
	{
		products.POST("", productController.Create)
		products.GET("", productController.List)
		products.GET("/:id", productController.GetByID)
		products.PUT("/:id", productController.Update)
		products.DELETE("/:id", productController.Delete)
	}
}
