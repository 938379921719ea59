package category

import (
	"context"
)

// Repository define a interface para operações de repositório de categorias
type Repository interface {
	// Create cria uma nova categoria
	Create(ctx context.Context, c *Category) error

	// FindByID busca uma categoria pelo ID
	FindByID(ctx context.Context, id string) (*Category, error)

	// List retorna as raízes da árvore de categorias com os filhos montados
	List(ctx context.Context) ([]*Category, error)

	// Update atualiza os dados de uma categoria existente
	Update(ctx context.Context, c *Category) error

	// Delete remove uma categoria sem subcategorias
	Delete(ctx context.Context, id string) error
}
