package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hugohenrick/electro-inventory/internal/domain/category"
)

// MemoryCategoryRepository implementa category.Repository em memória.
// Os nós são guardados de forma plana e a árvore é montada na listagem.
type MemoryCategoryRepository struct {
	mu         sync.RWMutex
	categories map[string]*category.Category
	order      []string
}

// NewMemoryCategoryRepository cria uma nova instância de MemoryCategoryRepository
func NewMemoryCategoryRepository() *MemoryCategoryRepository {
	return &MemoryCategoryRepository{
		categories: make(map[string]*category.Category),
	}
}

// Create cria uma nova categoria
func (r *MemoryCategoryRepository) Create(ctx context.Context, c *category.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ParentID != "" {
		if _, ok := r.categories[c.ParentID]; !ok {
			return category.ErrParentAbsent
		}
	}

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	copied := *c
	copied.Children = nil
	r.categories[c.ID] = &copied
	r.order = append(r.order, c.ID)
	return nil
}

// FindByID busca uma categoria pelo ID
func (r *MemoryCategoryRepository) FindByID(ctx context.Context, id string) (*category.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.categories[id]
	if !ok {
		return nil, category.ErrNotFound
	}
	copied := *c
	copied.Children = nil
	return &copied, nil
}

// List retorna as raízes da árvore com os filhos montados,
// na ordem de criação entre irmãos
func (r *MemoryCategoryRepository) List(ctx context.Context) ([]*category.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	flat := make([]*category.Category, 0, len(r.order))
	for _, id := range r.order {
		copied := *r.categories[id]
		copied.Children = nil
		flat = append(flat, &copied)
	}
	return category.BuildTree(flat), nil
}

// Update atualiza os dados de uma categoria existente
func (r *MemoryCategoryRepository) Update(ctx context.Context, c *category.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.categories[c.ID]
	if !ok {
		return category.ErrNotFound
	}
	if c.ParentID == c.ID {
		return category.ErrParentSelf
	}

	current.Name = c.Name
	current.Description = c.Description
	current.ProductCount = c.ProductCount
	current.StockValue = c.StockValue
	current.UpdatedAt = time.Now()
	return nil
}

// Delete remove uma categoria sem subcategorias
func (r *MemoryCategoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[id]; !ok {
		return category.ErrNotFound
	}
	for _, c := range r.categories {
		if c.ParentID == id {
			return category.ErrHasChildren
		}
	}

	delete(r.categories, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
