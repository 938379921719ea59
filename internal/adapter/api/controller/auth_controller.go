package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/electro-inventory/internal/adapter/api/dto"
	"github.com/hugohenrick/electro-inventory/internal/domain/user"
	"github.com/hugohenrick/electro-inventory/pkg/auth"
	"github.com/hugohenrick/electro-inventory/pkg/logger"
)

// AuthController gerencia as requisições de autenticação
type AuthController struct {
	userRepo   user.Repository
	jwtService *auth.JWTService
	logger     logger.Logger
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(userRepo user.Repository, jwtService *auth.JWTService, logger logger.Logger) *AuthController {
	return &AuthController{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login autentica um usuário com email e senha
// @Summary Login de usuário
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credenciais de acesso"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	u, err := c.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "credenciais inválidas", user.ErrInvalidCredentials.Error()))
			return
		}
		c.logger.Error("erro ao buscar usuário", "email", req.Email, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao autenticar", err.Error()))
		return
	}

	if !u.CheckPassword(req.Password) {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "credenciais inválidas", user.ErrInvalidCredentials.Error()))
		return
	}

	token, err := c.jwtService.GenerateToken(u)
	if err != nil {
		c.logger.Error("erro ao gerar token", "email", req.Email, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar token", err.Error()))
		return
	}

	if err := c.userRepo.UpdateLastLogin(ctx, u.ID); err != nil {
		c.logger.Warn("erro ao atualizar último login", "user", u.ID, "error", err)
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
		},
	})
}

// ForgotPassword inicia a redefinição de senha de um usuário.
// O token de redefinição é devolvido no corpo porque este servidor
// de desenvolvimento não envia emails.
// @Summary Solicitar redefinição de senha
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ForgotPasswordRequest true "Email do usuário"
// @Success 200 {object} dto.ForgotPasswordResponse
// @Router /auth/forgot-password [post]
func (c *AuthController) ForgotPassword(ctx *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	// Resposta idêntica para email conhecido ou não, para não
	// revelar quais contas existem.
	resp := dto.ForgotPasswordResponse{Message: "se o email existir, o link de redefinição foi enviado"}

	if _, err := c.userRepo.FindByEmail(ctx, req.Email); err == nil {
		token, err := c.jwtService.GenerateResetToken(req.Email)
		if err != nil {
			c.logger.Error("erro ao gerar token de redefinição", "email", req.Email, "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar token", err.Error()))
			return
		}
		resp.ResetToken = token
	}

	ctx.JSON(http.StatusOK, resp)
}

// ResetPassword troca a senha do usuário usando o token de redefinição
// @Summary Redefinir senha
// @Tags auth
// @Accept json
// @Produce json
// @Param token path string true "Token de redefinição"
// @Param request body dto.ResetPasswordRequest true "Nova senha"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /auth/reset-password/{token} [post]
func (c *AuthController) ResetPassword(ctx *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	email, err := c.jwtService.ValidateResetToken(ctx.Param("token"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "token inválido", user.ErrInvalidResetToken.Error()))
		return
	}

	u, err := c.userRepo.FindByEmail(ctx, email)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "token inválido", user.ErrInvalidResetToken.Error()))
		return
	}

	if err := u.SetPassword(req.Password); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao redefinir senha", err.Error()))
		return
	}

	if err := c.userRepo.UpdatePassword(ctx, u.ID, u.Password); err != nil {
		c.logger.Error("erro ao atualizar senha", "user", u.ID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao redefinir senha", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("senha redefinida com sucesso", nil))
}
