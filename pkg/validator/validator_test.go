package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

func TestDefaultValidator(t *testing.T) {
	v := NewDefaultValidator()

	t.Run("estrutura válida passa", func(t *testing.T) {
		err := v.Validate(loginForm{Email: "admin@electroinventory.local", Password: "admin123"})
		assert.NoError(t, err)
	})

	t.Run("campos inválidos são reportados", func(t *testing.T) {
		err := v.Validate(loginForm{Email: "não-é-email", Password: "123"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		msgs := Messages(err)
		require.Len(t, msgs, 2)
		assert.Equal(t, "email: deve ser um email válido", msgs[0])
		assert.Equal(t, "password: deve ser no mínimo 6", msgs[1])
	})
}

func TestIsValidationError(t *testing.T) {
	assert.False(t, IsValidationError(errors.New("erro de rede")))
}

func TestMessagesWithPlainError(t *testing.T) {
	msgs := Messages(errors.New("erro de rede"))
	assert.Equal(t, []string{"erro de rede"}, msgs)
}
