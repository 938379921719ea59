package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/electro-inventory/internal/adapter/api/dto"
	productdomain "github.com/hugohenrick/electro-inventory/internal/domain/product"
	"github.com/hugohenrick/electro-inventory/internal/domain/transaction"
	"github.com/hugohenrick/electro-inventory/pkg/logger"
)

// TransactionController gerencia as requisições de vendas e compras
type TransactionController struct {
	saleRepo     transaction.SaleRepository
	purchaseRepo transaction.PurchaseRepository
	productRepo  productdomain.Repository
	logger       logger.Logger
}

// NewTransactionController cria uma nova instância de TransactionController
func NewTransactionController(
	saleRepo transaction.SaleRepository,
	purchaseRepo transaction.PurchaseRepository,
	productRepo productdomain.Repository,
	logger logger.Logger,
) *TransactionController {
	return &TransactionController{
		saleRepo:     saleRepo,
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
		logger:       logger,
	}
}

func listFilterFromQuery(ctx *gin.Context) transaction.ListFilter {
	limit, _ := strconv.Atoi(ctx.Query("limit"))
	offset, _ := strconv.Atoi(ctx.Query("offset"))
	pagination := dto.GetPagination(limit, offset)

	return transaction.ListFilter{
		Search: ctx.Query("search"),
		Limit:  pagination.Limit,
		Offset: pagination.Offset,
	}
}

// checkStock confere se há estoque para todos os itens da venda
func (c *TransactionController) checkStock(ctx *gin.Context, items []transaction.Item) error {
	for _, it := range items {
		p, err := c.productRepo.FindByID(ctx, it.ProductID)
		if err != nil {
			return fmt.Errorf("produto %s: %w", it.ProductID, err)
		}
		if p.Stock.Quantity < it.Quantity {
			return fmt.Errorf("produto %s sem estoque suficiente (%d disponível)", p.Name, p.Stock.Quantity)
		}
	}
	return nil
}

// CreateSale registra uma nova venda e baixa o estoque dos itens
// @Summary Registrar venda
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param sale body dto.SaleRequest true "Dados da venda"
// @Success 201 {object} transaction.Sale
// @Failure 400 {object} dto.ErrorResponse
// @Router /inventory/sales [post]
func (c *TransactionController) CreateSale(ctx *gin.Context) {
	var req dto.SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	sale, err := req.ToSale()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao registrar venda", err.Error()))
		return
	}

	if err := c.checkStock(ctx, sale.Items); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "estoque insuficiente", err.Error()))
		return
	}

	if err := c.saleRepo.Create(ctx, sale); err != nil {
		c.logger.Error("erro ao salvar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar venda", err.Error()))
		return
	}

	for _, it := range sale.Items {
		if err := c.productRepo.AdjustStock(ctx, it.ProductID, -it.Quantity); err != nil {
			c.logger.Warn("erro ao baixar estoque do item", "product", it.ProductID, "error", err)
		}
	}

	ctx.JSON(http.StatusCreated, sale)
}

// ListSales lista as vendas registradas
// @Summary Listar vendas
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param search query string false "Busca por referência ou cliente"
// @Success 200 {object} dto.SaleListResponse
// @Router /inventory/sales [get]
func (c *TransactionController) ListSales(ctx *gin.Context) {
	sales, err := c.saleRepo.List(ctx, listFilterFromQuery(ctx))
	if err != nil {
		c.logger.Error("erro ao listar vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.SaleListResponse{Sales: sales, Total: len(sales)})
}

// GetSale busca uma venda pelo ID
// @Summary Buscar venda
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Success 200 {object} transaction.Sale
// @Failure 404 {object} dto.ErrorResponse
// @Router /inventory/sales/{id} [get]
func (c *TransactionController) GetSale(ctx *gin.Context) {
	sale, err := c.saleRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, sale)
}

// DeleteSale remove uma venda e devolve o estoque dos itens
// @Summary Remover venda
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /inventory/sales/{id} [delete]
func (c *TransactionController) DeleteSale(ctx *gin.Context) {
	sale, err := c.saleRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar venda", err.Error()))
		return
	}

	if err := c.saleRepo.Delete(ctx, sale.ID); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover venda", err.Error()))
		return
	}

	for _, it := range sale.Items {
		if err := c.productRepo.AdjustStock(ctx, it.ProductID, it.Quantity); err != nil {
			c.logger.Warn("erro ao devolver estoque do item", "product", it.ProductID, "error", err)
		}
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("venda removida com sucesso", nil))
}

// CreatePurchase registra uma nova compra e repõe o estoque dos itens
// @Summary Registrar compra
// @Tags purchases
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param purchase body dto.PurchaseRequest true "Dados da compra"
// @Success 201 {object} transaction.Purchase
// @Failure 400 {object} dto.ErrorResponse
// @Router /inventory/purchases [post]
func (c *TransactionController) CreatePurchase(ctx *gin.Context) {
	var req dto.PurchaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	purchase, err := req.ToPurchase()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao registrar compra", err.Error()))
		return
	}

	if err := c.purchaseRepo.Create(ctx, purchase); err != nil {
		c.logger.Error("erro ao salvar compra", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar compra", err.Error()))
		return
	}

	for _, it := range purchase.Items {
		if err := c.productRepo.AdjustStock(ctx, it.ProductID, it.Quantity); err != nil {
			c.logger.Warn("erro ao repor estoque do item", "product", it.ProductID, "error", err)
		}
	}

	ctx.JSON(http.StatusCreated, purchase)
}

// ListPurchases lista as compras registradas
// @Summary Listar compras
// @Tags purchases
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param search query string false "Busca por referência ou fornecedor"
// @Success 200 {object} dto.PurchaseListResponse
// @Router /inventory/purchases [get]
func (c *TransactionController) ListPurchases(ctx *gin.Context) {
	purchases, err := c.purchaseRepo.List(ctx, listFilterFromQuery(ctx))
	if err != nil {
		c.logger.Error("erro ao listar compras", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar compras", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.PurchaseListResponse{Purchases: purchases, Total: len(purchases)})
}

// GetPurchase busca uma compra pelo ID
// @Summary Buscar compra
// @Tags purchases
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da compra"
// @Success 200 {object} transaction.Purchase
// @Failure 404 {object} dto.ErrorResponse
// @Router /inventory/purchases/{id} [get]
func (c *TransactionController) GetPurchase(ctx *gin.Context) {
	purchase, err := c.purchaseRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "compra não encontrada", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar compra", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, purchase)
}

// DeletePurchase remove uma compra
// @Summary Remover compra
// @Tags purchases
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da compra"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /inventory/purchases/{id} [delete]
func (c *TransactionController) DeletePurchase(ctx *gin.Context) {
	if err := c.purchaseRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "compra não encontrada", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover compra", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("compra removida com sucesso", nil))
}
