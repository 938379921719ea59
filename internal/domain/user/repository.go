package user

import (
	"context"
)

// Repository define a interface para operações de repositório de usuários
type Repository interface {
	// Create cria um novo usuário
	Create(ctx context.Context, u *User) error

	// FindByEmail busca um usuário pelo email de login
	FindByEmail(ctx context.Context, email string) (*User, error)

	// UpdatePassword atualiza a senha (já em hash) de um usuário
	UpdatePassword(ctx context.Context, id, hashedPassword string) error

	// UpdateLastLogin atualiza o timestamp de último login do usuário
	UpdateLastLogin(ctx context.Context, id string) error
}
