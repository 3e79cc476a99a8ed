package repository

import (
	"context"

	"github.com/almoxeletrico/estoque-api/internal/domain/entity"
)

// MaterialRepository porta de persistência do cadastro de materiais.
type MaterialRepository interface {
	// Create insere o material se o código ainda não existir (insert-if-absent).
	// Código duplicado é um no-op benigno: o primeiro cadastro prevalece.
	// Retorna true se uma linha foi de fato inserida.
	Create(ctx context.Context, m *entity.Material) (bool, error)

	// GetByCodigo busca um material pelo código. Retorna nil (sem erro) se não existir.
	GetByCodigo(ctx context.Context, codigo int64) (*entity.Material, error)

	// List retorna todos os materiais cadastrados, ordenados por código.
	List(ctx context.Context) ([]*entity.Material, error)
}
