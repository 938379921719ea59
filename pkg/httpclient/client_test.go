package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/electro-inventory/pkg/session"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.Session) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	sess := session.New()
	client := New(&Config{BaseURL: server.URL + "/api", Timeout: 5 * time.Second}, sess, nil)
	return client, sess
}

func TestClientTokenInjection(t *testing.T) {
	t.Run("token da sessão vai no cabeçalho Authorization", func(t *testing.T) {
		var gotAuth string
		client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(`{}`))
		}))
		require.NoError(t, sess.SetToken("abc123"))

		var out map[string]interface{}
		require.NoError(t, client.Get(context.Background(), "/products", &out))

		assert.Equal(t, "Bearer abc123", gotAuth)
	})

	t.Run("sessão sem token não envia cabeçalho", func(t *testing.T) {
		var gotAuth string
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(`{}`))
		}))

		var out map[string]interface{}
		require.NoError(t, client.Get(context.Background(), "/products", &out))

		assert.Empty(t, gotAuth)
	})
}

func TestClientUnauthorized(t *testing.T) {
	t.Run("401 invalida a sessão e dispara o callback", func(t *testing.T) {
		client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"code":401,"message":"Token expirado"}`))
		}))
		require.NoError(t, sess.SetToken("velho"))

		called := false
		client.OnUnauthorized(func() { called = true })

		err := client.Get(context.Background(), "/products", nil)

		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.True(t, called)
		assert.False(t, sess.IsAuthenticated())
	})
}

func TestClientErrors(t *testing.T) {
	t.Run("corpo de erro padrão vira APIError", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"code":400,"message":"dados inválidos","details":"campo name é obrigatório"}`))
		}))

		err := client.Post(context.Background(), "/products", map[string]string{}, nil)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, "dados inválidos", apiErr.Message)
		assert.Equal(t, "campo name é obrigatório", apiErr.Details)
	})

	t.Run("corpo fora do padrão degrada para o texto do status", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`boom`))
		}))

		err := client.Get(context.Background(), "/products", nil)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Internal Server Error", apiErr.Message)
	})

	t.Run("contexto cancelado interrompe a requisição", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		err := client.Get(ctx, "/products", nil)

		require.Error(t, err)
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	})
}
