package repository

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/hugohenrick/electro-inventory/internal/adapter/api/dto"
	"github.com/hugohenrick/electro-inventory/internal/domain/category"
	"github.com/hugohenrick/electro-inventory/pkg/httpclient"
)

const categoryTreeKey = "categories|tree"

// RestCategoryRepository implementa category.Repository sobre a API REST
type RestCategoryRepository struct {
	client *httpclient.Client
	cache  *gocache.Cache
}

// NewRestCategoryRepository cria uma nova instância de RestCategoryRepository
func NewRestCategoryRepository(client *httpclient.Client) *RestCategoryRepository {
	return &RestCategoryRepository{
		client: client,
		cache:  gocache.New(listCacheTTL, time.Minute),
	}
}

// Create cria uma nova categoria via API
func (r *RestCategoryRepository) Create(ctx context.Context, c *category.Category) error {
	req := dto.CategoryRequest{
		Name:        c.Name,
		Description: c.Description,
		ParentID:    c.ParentID,
	}

	var created category.Category
	if err := r.client.Post(ctx, "/categories", req, &created); err != nil {
		return err
	}
	*c = created
	r.cache.Flush()
	return nil
}

// FindByID busca uma categoria pelo ID via API
func (r *RestCategoryRepository) FindByID(ctx context.Context, id string) (*category.Category, error) {
	var c category.Category
	if err := r.client.Get(ctx, "/categories/"+id, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// List retorna as raízes da árvore de categorias via API,
// com cache transitório
func (r *RestCategoryRepository) List(ctx context.Context) ([]*category.Category, error) {
	if cached, ok := r.cache.Get(categoryTreeKey); ok {
		return cached.([]*category.Category), nil
	}

	var resp dto.CategoryListResponse
	if err := r.client.Get(ctx, "/categories", &resp); err != nil {
		return nil, err
	}

	r.cache.Set(categoryTreeKey, resp.Categories, gocache.DefaultExpiration)
	return resp.Categories, nil
}

// Update atualiza uma categoria via API
func (r *RestCategoryRepository) Update(ctx context.Context, c *category.Category) error {
	req := dto.CategoryRequest{
		Name:        c.Name,
		Description: c.Description,
		ParentID:    c.ParentID,
	}

	var updated category.Category
	if err := r.client.Put(ctx, "/categories/"+c.ID, req, &updated); err != nil {
		return err
	}
	*c = updated
	r.cache.Flush()
	return nil
}

// Delete remove uma categoria via API
func (r *RestCategoryRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Delete(ctx, "/categories/"+id); err != nil {
		return err
	}
	r.cache.Flush()
	return nil
}
