package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hugohenrick/electro-inventory/pkg/logger"
	"github.com/hugohenrick/electro-inventory/pkg/session"
)

var (
	// ErrUnauthorized indica resposta 401: a sessão foi invalidada e o
	// usuário precisa autenticar novamente
	ErrUnauthorized = errors.New("não autorizado")
)

// Config contém as configurações do cliente HTTP da API
type Config struct {
	BaseURL string        // URL base da API (ex: http://localhost:5000/api)
	Timeout time.Duration // Tempo limite por requisição
}

// NewConfigFromEnv cria uma nova configuração a partir de variáveis de ambiente
func NewConfigFromEnv() *Config {
	timeoutSecs, _ := strconv.Atoi(getEnv("API_TIMEOUT_SECONDS", "10"))

	return &Config{
		BaseURL: getEnv("API_BASE_URL", "http://localhost:5000/api"),
		Timeout: time.Duration(timeoutSecs) * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// APIError representa um erro retornado pela API
type APIError struct {
	StatusCode int    `json:"-"`       // Status HTTP da resposta
	Code       int    `json:"code"`    // Código informado no corpo
	Message    string `json:"message"` // Mensagem do servidor
	Details    string `json:"details"` // Detalhes adicionais
}

// Error retorna a mensagem do erro
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("api: requisição falhou com status %d", e.StatusCode)
}

// Client é o cliente HTTP da API: injeta o token Bearer da sessão em
// toda requisição e trata 401 globalmente invalidando a sessão
type Client struct {
	baseURL        string
	httpClient     *http.Client
	session        *session.Session
	logger         logger.Logger
	onUnauthorized func()
}

// New cria uma nova instância do cliente da API
func New(config *Config, sess *session.Session, log logger.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		httpClient: &http.Client{Timeout: config.Timeout},
		session:    sess,
		logger:     log,
	}
}

// OnUnauthorized registra o callback disparado em respostas 401,
// depois de a sessão ser invalidada (equivale ao redirecionamento
// para a tela de login)
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// Get executa uma requisição GET e decodifica a resposta em out
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post executa uma requisição POST com corpo JSON
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put executa uma requisição PUT com corpo JSON
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete executa uma requisição DELETE
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("erro ao serializar corpo da requisição: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	url := c.baseURL + "/" + strings.TrimLeft(path, "/")
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("erro ao montar requisição: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.Error("erro de rede na requisição", "method", method, "url", url, "error", err)
		}
		return fmt.Errorf("erro de rede: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// 401 é tratado globalmente: limpa a sessão e notifica
		c.session.Invalidate()
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return fmt.Errorf("%w: %s", ErrUnauthorized, readErrorMessage(resp.Body, resp.StatusCode))
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return readAPIError(resp.Body, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("erro ao decodificar resposta: %w", err)
	}
	return nil
}

// readAPIError decodifica o corpo de erro padrão da API; corpos fora
// do padrão degradam para uma mensagem genérica com o status
func readAPIError(body io.Reader, statusCode int) *APIError {
	apiErr := &APIError{StatusCode: statusCode}

	data, err := io.ReadAll(io.LimitReader(body, 1<<16))
	if err == nil && len(data) > 0 {
		_ = json.Unmarshal(data, apiErr)
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(statusCode)
	}
	return apiErr
}

func readErrorMessage(body io.Reader, statusCode int) string {
	return readAPIError(body, statusCode).Message
}
