package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hugohenrick/electro-inventory/internal/domain/user"
)

// MemoryUserRepository implementa user.Repository em memória
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]*user.User
}

// NewMemoryUserRepository cria uma nova instância de MemoryUserRepository
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]*user.User)}
}

// Create cria um novo usuário
func (r *MemoryUserRepository) Create(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	copied := *u
	r.users[u.ID] = &copied
	return nil
}

// FindByEmail busca um usuário pelo email de login
func (r *MemoryUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, user.ErrNotFound
}

// UpdatePassword atualiza a senha (já em hash) de um usuário
func (r *MemoryUserRepository) UpdatePassword(ctx context.Context, id, hashedPassword string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return user.ErrNotFound
	}
	u.Password = hashedPassword
	u.UpdatedAt = time.Now()
	return nil
}

// UpdateLastLogin atualiza o timestamp de último login do usuário
func (r *MemoryUserRepository) UpdateLastLogin(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return user.ErrNotFound
	}
	u.LastLoginAt = time.Now()
	return nil
}
