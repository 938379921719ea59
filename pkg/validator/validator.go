package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator valida as estruturas de formulário antes da submissão.
// É uma validação de melhor esforço no cliente: a validação
// autoritativa permanece no servidor.
type Validator interface {
	// Validate valida a estrutura informada
	Validate(s interface{}) error
}

// DefaultValidator é a implementação padrão sobre o validator/v10
type DefaultValidator struct {
	v *validator.Validate
}

// NewDefaultValidator cria um novo validador padrão
func NewDefaultValidator() *DefaultValidator {
	return &DefaultValidator{v: validator.New()}
}

// Validate valida a estrutura informada
func (v *DefaultValidator) Validate(s interface{}) error {
	return v.v.Struct(s)
}

// IsValidationError verifica se o erro veio da validação de campos
func IsValidationError(err error) bool {
	_, ok := err.(validator.ValidationErrors)
	return ok
}

// Messages converte um erro de validação em mensagens por campo,
// adequadas para exibição em formulários
func Messages(err error) []string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	out := make([]string, 0, len(errs))
	for _, fe := range errs {
		out = append(out, fmt.Sprintf("%s: %s", strings.ToLower(fe.Field()), fieldMessage(fe)))
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "email":
		return "deve ser um email válido"
	case "min":
		return fmt.Sprintf("deve ser no mínimo %s", fe.Param())
	case "max":
		return fmt.Sprintf("deve ser no máximo %s", fe.Param())
	case "gte":
		return fmt.Sprintf("deve ser maior ou igual a %s", fe.Param())
	case "lte":
		return fmt.Sprintf("deve ser menor ou igual a %s", fe.Param())
	case "gt":
		return fmt.Sprintf("deve ser maior que %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("deve ser um de [%s]", fe.Param())
	default:
		return "valor inválido"
	}
}
