package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/almoxeletrico/estoque-api/internal/domain/entity"
	"github.com/almoxeletrico/estoque-api/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo implementação do cadastro de materiais sobre PostgreSQL
// (usável com pool ou tx).
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

// Create insere o material com ON CONFLICT DO NOTHING: código duplicado é um
// no-op e o primeiro cadastro prevalece. Retorna true se inseriu.
func (r *MaterialRepo) Create(ctx context.Context, m *entity.Material) (bool, error) {
	query := `
		INSERT INTO materiais (codigo, descricao, unidade)
		VALUES ($1, $2, $3)
		ON CONFLICT (codigo) DO NOTHING`
	tag, err := r.q.Exec(ctx, query, m.Codigo, m.Descricao, m.Unidade)
	if err != nil {
		if isUniqueViolation(err) {
			return false, nil
		}
		return false, fmt.Errorf("create material: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// GetByCodigo busca um material pelo código. Retorna nil, nil se não existir.
func (r *MaterialRepo) GetByCodigo(ctx context.Context, codigo int64) (*entity.Material, error) {
	query := `SELECT codigo, descricao, unidade FROM materiais WHERE codigo = $1`
	var m entity.Material
	err := r.q.QueryRow(ctx, query, codigo).Scan(&m.Codigo, &m.Descricao, &m.Unidade)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	return &m, nil
}

// List retorna o cadastro completo ordenado por código.
func (r *MaterialRepo) List(ctx context.Context) ([]*entity.Material, error) {
	query := `SELECT codigo, descricao, unidade FROM materiais ORDER BY codigo`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list materiais: %w", err)
	}
	defer rows.Close()

	var list []*entity.Material
	for rows.Next() {
		var m entity.Material
		if err := rows.Scan(&m.Codigo, &m.Descricao, &m.Unidade); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
