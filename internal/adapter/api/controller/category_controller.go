package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/electro-inventory/internal/adapter/api/dto"
	categorydomain "github.com/hugohenrick/electro-inventory/internal/domain/category"
	productdomain "github.com/hugohenrick/electro-inventory/internal/domain/product"
	"github.com/hugohenrick/electro-inventory/pkg/logger"
)

// CategoryController gerencia as requisições relacionadas a categorias
type CategoryController struct {
	categoryRepo categorydomain.Repository
	productRepo  productdomain.Repository
	logger       logger.Logger
}

// NewCategoryController cria uma nova instância de CategoryController
func NewCategoryController(categoryRepo categorydomain.Repository, productRepo productdomain.Repository, logger logger.Logger) *CategoryController {
	return &CategoryController{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		logger:       logger,
	}
}

// Create cria uma nova categoria
// @Summary Criar categoria
// @Description Cria uma nova categoria, opcionalmente como filha de outra
// @Tags categories
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param category body dto.CategoryRequest true "Dados da categoria"
// @Success 201 {object} category.Category
// @Failure 400 {object} dto.ErrorResponse
// @Router /categories [post]
func (c *CategoryController) Create(ctx *gin.Context) {
	var req dto.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	cat, err := req.ToCategory()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar categoria", err.Error()))
		return
	}

	if err := c.categoryRepo.Create(ctx, cat); err != nil {
		if errors.Is(err, categorydomain.ErrParentAbsent) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "categoria pai não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao salvar categoria", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, cat)
}

// aggregate propaga contagem de produtos e valor de estoque das
// folhas para as raízes
func (c *CategoryController) aggregate(roots []*categorydomain.Category, products []*productdomain.Product) {
	direct := make(map[string]struct {
		count int
		value float64
	})
	for _, p := range products {
		agg := direct[p.Category.ID]
		agg.count++
		agg.value += p.StockValue()
		direct[p.Category.ID] = agg
	}

	// Percorre as linhas achatadas de trás para frente: filhos aparecem
	// depois dos pais na ordem em profundidade, então os agregados deles
	// já estão prontos quando o pai é visitado. A travessia achatada
	// carrega o guarda de ciclos, então árvores malformadas não estouram
	// a pilha aqui.
	rows := categorydomain.Flatten(roots)
	for i := len(rows) - 1; i >= 0; i-- {
		node := rows[i].Category
		agg := direct[node.ID]
		count, value := agg.count, agg.value
		for _, child := range node.Children {
			count += child.ProductCount
			value += child.StockValue
		}
		node.ProductCount = count
		node.StockValue = value
	}
}

// List retorna a árvore de categorias com os agregados calculados
// @Summary Listar categorias
// @Description Lista as raízes da árvore de categorias com filhos e agregados
// @Tags categories
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.CategoryListResponse
// @Router /categories [get]
func (c *CategoryController) List(ctx *gin.Context) {
	roots, err := c.categoryRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao listar categorias", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar categorias", err.Error()))
		return
	}

	products, err := c.productRepo.List(ctx, productdomain.ListFilter{})
	if err != nil {
		c.logger.Error("erro ao listar produtos para agregados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao calcular agregados", err.Error()))
		return
	}
	c.aggregate(roots, products)

	ctx.JSON(http.StatusOK, dto.CategoryListResponse{
		Categories: roots,
		Total:      categorydomain.CountNodes(roots),
	})
}

// GetByID busca uma categoria pelo ID
// @Summary Buscar categoria
// @Tags categories
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da categoria"
// @Success 200 {object} category.Category
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories/{id} [get]
func (c *CategoryController) GetByID(ctx *gin.Context) {
	cat, err := c.categoryRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, categorydomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "categoria não encontrada", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, cat)
}

// Update atualiza uma categoria existente
// @Summary Atualizar categoria
// @Tags categories
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da categoria"
// @Param category body dto.CategoryRequest true "Dados da categoria"
// @Success 200 {object} category.Category
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories/{id} [put]
func (c *CategoryController) Update(ctx *gin.Context) {
	var req dto.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	cat, err := c.categoryRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, categorydomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "categoria não encontrada", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar categoria", err.Error()))
		return
	}

	if err := cat.Update(req.Name, req.Description); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar categoria", err.Error()))
		return
	}

	if err := c.categoryRepo.Update(ctx, cat); err != nil {
		c.logger.Error("erro ao atualizar categoria", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, cat)
}

// Delete remove uma categoria sem subcategorias
// @Summary Remover categoria
// @Tags categories
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da categoria"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories/{id} [delete]
func (c *CategoryController) Delete(ctx *gin.Context) {
	if err := c.categoryRepo.Delete(ctx, ctx.Param("id")); err != nil {
		switch {
		case errors.Is(err, categorydomain.ErrNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "categoria não encontrada", err.Error()))
		case errors.Is(err, categorydomain.ErrHasChildren):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "categoria possui subcategorias", err.Error()))
		default:
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover categoria", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("categoria removida com sucesso", nil))
}
