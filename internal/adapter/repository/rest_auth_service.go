package repository

import (
	"context"

	"github.com/hugohenrick/electro-inventory/internal/adapter/api/dto"
	"github.com/hugohenrick/electro-inventory/pkg/httpclient"
	"github.com/hugohenrick/electro-inventory/pkg/session"
	"github.com/hugohenrick/electro-inventory/pkg/validator"
)

// RestAuthService autentica o usuário contra a API e guarda o token
// na sessão. A validação dos formulários é de melhor esforço; a
// validação autoritativa é a do servidor.
type RestAuthService struct {
	client    *httpclient.Client
	session   *session.Session
	validator validator.Validator
}

// NewRestAuthService cria uma nova instância de RestAuthService
func NewRestAuthService(client *httpclient.Client, sess *session.Session) *RestAuthService {
	return &RestAuthService{
		client:    client,
		session:   sess,
		validator: validator.NewDefaultValidator(),
	}
}

// Login autentica o usuário e armazena o token retornado na sessão
func (s *RestAuthService) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	req := dto.LoginRequest{Email: email, Password: password}
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	var resp dto.LoginResponse
	if err := s.client.Post(ctx, "/auth/login", req, &resp); err != nil {
		return nil, err
	}

	if err := s.session.SetToken(resp.Token); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ForgotPassword solicita o link de redefinição de senha
func (s *RestAuthService) ForgotPassword(ctx context.Context, email string) (*dto.ForgotPasswordResponse, error) {
	req := dto.ForgotPasswordRequest{Email: email}
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	var resp dto.ForgotPasswordResponse
	if err := s.client.Post(ctx, "/auth/forgot-password", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ResetPassword troca a senha usando o token de redefinição recebido
func (s *RestAuthService) ResetPassword(ctx context.Context, token, password string) error {
	req := dto.ResetPasswordRequest{Password: password}
	if err := s.validator.Validate(req); err != nil {
		return err
	}
	return s.client.Post(ctx, "/auth/reset-password/"+token, req, nil)
}

// Logout descarta a sessão local
func (s *RestAuthService) Logout() {
	s.session.Invalidate()
}
