package dto

// LoginRequest representa os dados para login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
}

// LoginResponse representa a resposta de login bem-sucedido
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse representa os dados públicos do usuário autenticado
type UserResponse struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ForgotPasswordRequest representa o pedido de redefinição de senha
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email" validate:"required,email"`
}

// ForgotPasswordResponse confirma o envio do link de redefinição.
// O token só aparece na resposta do servidor de desenvolvimento,
// que não envia emails.
type ForgotPasswordResponse struct {
	Message    string `json:"message"`
	ResetToken string `json:"resetToken,omitempty"`
}

// ResetPasswordRequest representa a troca de senha com o token recebido
type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=6" validate:"required,min=6"`
}
