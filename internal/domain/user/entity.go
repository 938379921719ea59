package user

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyEmail         = errors.New("email não pode ser vazio")
	ErrEmptyName          = errors.New("nome não pode ser vazio")
	ErrNotFound           = errors.New("usuário não encontrado")
	ErrInvalidCredentials = errors.New("email ou senha inválidos")
	ErrInvalidResetToken  = errors.New("token de redefinição inválido ou expirado")
)

// User representa um usuário do painel
type User struct {
	ID          string    `json:"_id"`         // ID do Usuário
	Name        string    `json:"name"`        // Nome
	Email       string    `json:"email"`       // Email de login
	Password    string    `json:"-"`           // Hash da senha, nunca serializado
	LastLoginAt time.Time `json:"lastLoginAt"` // Data do último login
	CreatedAt   time.Time `json:"createdAt"`   // Data de Criação
	UpdatedAt   time.Time `json:"updatedAt"`   // Data de Atualização
}

// NewUser cria um novo usuário com a senha já em hash
func NewUser(name, email, password string) (*User, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if email == "" {
		return nil, ErrEmptyEmail
	}

	now := time.Now()
	u := &User{
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

// SetPassword configura a senha do usuário com hash
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	u.UpdatedAt = time.Now()
	return nil
}

// CheckPassword verifica se a senha fornecida é válida
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}
