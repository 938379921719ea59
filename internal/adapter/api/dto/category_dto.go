package dto

import (
	"github.com/hugohenrick/electro-inventory/internal/domain/category"
)

// CategoryRequest representa a requisição de criação/edição de categoria
type CategoryRequest struct {
	Name        string `json:"name" binding:"required" validate:"required"`
	Description string `json:"description"`
	ParentID    string `json:"parentId"`
}

// CategoryListResponse representa a resposta de listagem de categorias,
// com as raízes da árvore e os filhos já montados
type CategoryListResponse struct {
	Categories []*category.Category `json:"categories"`
	Total      int                  `json:"total"`
}

// ToCategory converte a requisição em uma entidade de categoria
func (r *CategoryRequest) ToCategory() (*category.Category, error) {
	return category.NewCategory(r.Name, r.Description, r.ParentID)
}
