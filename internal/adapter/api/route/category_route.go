package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/electro-inventory/internal/adapter/api/controller"
	"github.com/hugohenrick/electro-inventory/pkg/auth"
)

// RegisterCategoryRoutes registra as rotas do módulo de categorias
func RegisterCategoryRoutes(r *gin.RouterGroup, jwtService *auth.JWTService, categoryController *controller.CategoryController) {
	categories := r.Group("/categories")
	categories.Use(auth.JWTAuthMiddleware(jwtService))
	{
		categories.POST("", categoryController.Create)
		categories.GET("", categoryController.List)
		categories.GET("/:id", categoryController.GetByID)
		categories.PUT("/:id", categoryController.Update)
		categories.DELETE("/:id", categoryController.Delete)
	}
}
