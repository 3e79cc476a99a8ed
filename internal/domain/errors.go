package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound     = errors.New("recurso não encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
)

// ValidationError indica falha de validação em um campo específico.
// Satisfaz errors.Is(err, ErrInvalidInput) para que handlers tratem
// todas as falhas de validação de forma uniforme.
type ValidationError struct {
	Campo  string
	Motivo string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("campo %q inválido: %s", e.Campo, e.Motivo)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError constrói um erro de validação para um campo.
func NewValidationError(campo, motivo string) error {
	return &ValidationError{Campo: campo, Motivo: motivo}
}
