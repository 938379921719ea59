package session

import (
	"errors"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoToken      = errors.New("sessão sem token de autenticação")
	ErrInvalidToken = errors.New("token de autenticação inválido")
)

// Session guarda o token de autenticação do usuário de forma explícita,
// substituindo o estado global de token do navegador. A sessão pode
// persistir o token em um arquivo para uso entre execuções da CLI.
type Session struct {
	mu    sync.RWMutex
	token string
	path  string
}

// New cria uma sessão vazia, sem persistência
func New() *Session {
	return &Session{}
}

// NewFromFile cria uma sessão persistida no arquivo informado,
// carregando o token existente se houver
func NewFromFile(path string) (*Session, error) {
	s := &Session{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}

	s.token = string(data)
	return s, nil
}

// Token retorna o token atual da sessão (vazio se não autenticada)
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken armazena o token e o persiste quando a sessão tem arquivo
func (s *Session) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	if s.path == "" {
		return nil
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

// Invalidate limpa o token da sessão e remove o arquivo persistido.
// É chamada quando o servidor responde 401.
func (s *Session) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	if s.path != "" {
		os.Remove(s.path)
	}
}

// IsAuthenticated indica se a sessão possui um token
func (s *Session) IsAuthenticated() bool {
	return s.Token() != ""
}

// ExpiresAt decodifica as claims do token sem verificar a assinatura
// (o cliente não possui a chave) e retorna o instante de expiração
func (s *Session) ExpiresAt() (time.Time, error) {
	token := s.Token()
	if token == "" {
		return time.Time{}, ErrNoToken
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, ErrInvalidToken
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, ErrInvalidToken
	}
	return exp.Time, nil
}

// IsExpired indica se o token da sessão já expirou. Um token sem
// claims decodificáveis é tratado como expirado.
func (s *Session) IsExpired() bool {
	exp, err := s.ExpiresAt()
	if err != nil {
		return true
	}
	return time.Now().After(exp)
}
