package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/electro-inventory/internal/adapter/api/controller"
	"github.com/hugohenrick/electro-inventory/pkg/auth"
)

// RegisterTransactionRoutes registra as rotas de vendas e compras
func RegisterTransactionRoutes(r *gin.RouterGroup, jwtService *auth.JWTService, transactionController *controller.TransactionController) {
	sales := r.Group("/inventory/sales")
	sales.Use(auth.JWTAuthMiddleware(jwtService))
	{
		sales.POST("", transactionController.CreateSale)
		sales.GET("", transactionController.ListSales)
		sales.GET("/:id", transactionController.GetSale)
		sales.DELETE("/:id", transactionController.DeleteSale)
	}

	purchases := r.Group("/inventory/purchases")
	purchases.Use(auth.JWTAuthMiddleware(jwtService))
	{
		purchases.POST("", transactionController.CreatePurchase)
		purchases.GET("", transactionController.ListPurchases)
		purchases.GET("/:id", transactionController.GetPurchase)
		purchases.DELETE("/:id", transactionController.DeletePurchase)
	}
}
