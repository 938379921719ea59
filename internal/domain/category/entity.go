package category

import (
	"errors"
	"time"
)

var (
	ErrEmptyName    = errors.New("nome não pode ser vazio")
	ErrNotFound     = errors.New("categoria não encontrada")
	ErrHasChildren  = errors.New("categoria possui subcategorias")
	ErrParentSelf   = errors.New("categoria não pode ser filha de si mesma")
	ErrParentAbsent = errors.New("categoria pai não encontrada")
)

// Category representa um nó da árvore de categorias
// (categoria → subcategoria → marca → variante)
type Category struct {
	ID           string      `json:"_id"`                   // ID da Categoria
	Name         string      `json:"name"`                  // Nome
	Description  string      `json:"description,omitempty"` // Descrição
	ParentID     string      `json:"parentId,omitempty"`    // ID da categoria pai (vazio para raiz)
	Children     []*Category `json:"children,omitempty"`    // Subcategorias diretas
	ProductCount int         `json:"productCount"`          // Quantidade agregada de produtos
	StockValue   float64     `json:"stockValue"`            // Valor agregado do estoque
	CreatedAt    time.Time   `json:"createdAt"`             // Data de Criação
	UpdatedAt    time.Time   `json:"updatedAt"`             // Data de Atualização
}

// NewCategory cria uma nova categoria
func NewCategory(name, description, parentID string) (*Category, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &Category{
		Name:        name,
		Description: description,
		ParentID:    parentID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Update atualiza os dados editáveis da categoria
func (c *Category) Update(name, description string) error {
	if name == "" {
		return ErrEmptyName
	}
	c.Name = name
	c.Description = description
	c.UpdatedAt = time.Now()
	return nil
}

// IsRoot indica se a categoria é raiz da árvore
func (c *Category) IsRoot() bool {
	return c.ParentID == ""
}
