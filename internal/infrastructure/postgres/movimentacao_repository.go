package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/almoxeletrico/estoque-api/internal/domain"
	"github.com/almoxeletrico/estoque-api/internal/domain/entity"
	"github.com/almoxeletrico/estoque-api/internal/domain/repository"
)

var _ repository.MovimentacaoRepository = (*MovimentacaoRepo)(nil)

// MovimentacaoRepo implementação do razão de movimentações sobre PostgreSQL
// (usável com pool ou tx). O razão é append-only: só há INSERT e SELECT.
type MovimentacaoRepo struct {
	q Querier
}

// NewMovimentacaoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovimentacaoRepository(q Querier) *MovimentacaoRepo {
	return &MovimentacaoRepo{q: q}
}

// Create grava a movimentação e retorna o ID da sequência. O timestamp fica
// por conta do DEFAULT now() da tabela. Violação de FK (código não
// cadastrado) vira ErrNotFound.
func (r *MovimentacaoRepo) Create(ctx context.Context, mov *entity.Movimentacao) (int64, error) {
	query := `
		INSERT INTO movimentacoes (codigo, descricao, quantidade, tipo, projeto, equipe)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	projeto := nullIfEmpty(mov.Projeto)
	equipe := nullIfEmpty(mov.Equipe)
	var id int64
	err := r.q.QueryRow(ctx, query,
		mov.Codigo, mov.Descricao, mov.Quantidade, mov.Tipo, projeto, equipe,
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("create movimentação: %w", err)
	}
	return id, nil
}

// Saldo agrega o saldo atual direto no banco: entradas, devoluções e ajustes
// somam; saídas subtraem; baixa_eqtl e estorno ficam fora da fórmula.
func (r *MovimentacaoRepo) Saldo(ctx context.Context, codigo int64) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(CASE
			WHEN tipo IN ('entrada', 'devolução', 'ajuste_inventario') THEN quantidade
			WHEN tipo = 'saída' THEN -quantidade
			ELSE 0
		END), 0)
		FROM movimentacoes WHERE codigo = $1`
	var saldo decimal.Decimal
	if err := r.q.QueryRow(ctx, query, codigo).Scan(&saldo); err != nil {
		return decimal.Zero, fmt.Errorf("saldo: %w", err)
	}
	return saldo, nil
}

// ResumoEstoque agrega as quantidades por tipo, por material. LEFT JOIN
// garante que material sem movimentação apareça com agregados zerados.
func (r *MovimentacaoRepo) ResumoEstoque(ctx context.Context, codigo *int64) ([]repository.ResumoEstoque, error) {
	query := `
		SELECT m.codigo,
		       m.descricao,
		       COALESCE(SUM(CASE WHEN mov.tipo = 'entrada' THEN mov.quantidade ELSE 0 END), 0)           AS entradas,
		       COALESCE(SUM(CASE WHEN mov.tipo = 'saída' THEN mov.quantidade ELSE 0 END), 0)             AS saidas,
		       COALESCE(SUM(CASE WHEN mov.tipo = 'baixa_eqtl' THEN mov.quantidade ELSE 0 END), 0)        AS baixas_eqtl,
		       COALESCE(SUM(CASE WHEN mov.tipo = 'devolução' THEN mov.quantidade ELSE 0 END), 0)         AS devolucoes,
		       COALESCE(SUM(CASE WHEN mov.tipo = 'ajuste_inventario' THEN mov.quantidade ELSE 0 END), 0) AS ajustes
		FROM materiais m
		LEFT JOIN movimentacoes mov ON m.codigo = mov.codigo`
	args := []any{}
	if codigo != nil {
		query += " WHERE m.codigo = $1"
		args = append(args, *codigo)
	}
	query += " GROUP BY m.codigo, m.descricao ORDER BY m.codigo"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("resumo estoque: %w", err)
	}
	defer rows.Close()

	var list []repository.ResumoEstoque
	for rows.Next() {
		var res repository.ResumoEstoque
		if err := rows.Scan(&res.Codigo, &res.Descricao,
			&res.Entradas, &res.Saidas, &res.BaixasEQTL, &res.Devolucoes, &res.Ajustes); err != nil {
			return nil, fmt.Errorf("scan resumo estoque: %w", err)
		}
		list = append(list, res)
	}
	return list, rows.Err()
}

// ResumoPorProjeto agrega saídas, baixas EQTL, devoluções e estornos por
// material dentro de um projeto. A descrição vem do próprio razão (snapshot),
// como na tela de projetos original.
func (r *MovimentacaoRepo) ResumoPorProjeto(ctx context.Context, projeto string) ([]repository.ResumoProjeto, error) {
	query := `
		SELECT codigo,
		       MAX(descricao) AS descricao,
		       COALESCE(SUM(CASE WHEN tipo = 'saída' THEN quantidade ELSE 0 END), 0)      AS saidas,
		       COALESCE(SUM(CASE WHEN tipo = 'baixa_eqtl' THEN quantidade ELSE 0 END), 0) AS baixas_eqtl,
		       COALESCE(SUM(CASE WHEN tipo = 'devolução' THEN quantidade ELSE 0 END), 0)  AS devolucoes,
		       COALESCE(SUM(CASE WHEN tipo = 'estorno' THEN quantidade ELSE 0 END), 0)    AS estornos
		FROM movimentacoes
		WHERE projeto = $1
		GROUP BY codigo
		ORDER BY codigo`
	rows, err := r.q.Query(ctx, query, projeto)
	if err != nil {
		return nil, fmt.Errorf("resumo projeto: %w", err)
	}
	defer rows.Close()

	var list []repository.ResumoProjeto
	for rows.Next() {
		var res repository.ResumoProjeto
		if err := rows.Scan(&res.Codigo, &res.Descricao,
			&res.Saidas, &res.BaixasEQTL, &res.Devolucoes, &res.Estornos); err != nil {
			return nil, fmt.Errorf("scan resumo projeto: %w", err)
		}
		list = append(list, res)
	}
	return list, rows.Err()
}

// Projetos retorna os projetos distintos com movimentação e suas equipes.
func (r *MovimentacaoRepo) Projetos(ctx context.Context) ([]repository.Projeto, error) {
	query := `
		SELECT projeto, equipe
		FROM movimentacoes
		WHERE projeto IS NOT NULL
		GROUP BY projeto, equipe
		ORDER BY projeto, equipe`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("projetos: %w", err)
	}
	defer rows.Close()

	var list []repository.Projeto
	indice := map[string]int{}
	for rows.Next() {
		var nome string
		var equipe *string
		if err := rows.Scan(&nome, &equipe); err != nil {
			return nil, fmt.Errorf("scan projeto: %w", err)
		}
		i, ok := indice[nome]
		if !ok {
			i = len(list)
			indice[nome] = i
			list = append(list, repository.Projeto{Nome: nome})
		}
		if equipe != nil && *equipe != "" {
			list[i].Equipes = append(list[i].Equipes, *equipe)
		}
	}
	return list, rows.Err()
}

// List consulta movimentações com filtros opcionais compostos por AND,
// ordenadas por data decrescente. Datas comparadas na granularidade de dia.
func (r *MovimentacaoRepo) List(ctx context.Context, filtro repository.FiltroMovimentacao) ([]*entity.Movimentacao, error) {
	query := `
		SELECT id, codigo, descricao, quantidade, tipo, projeto, equipe, data_movimentacao
		FROM movimentacoes WHERE 1=1`
	args := []any{}
	pos := 1
	if filtro.Codigo != nil {
		query += fmt.Sprintf(" AND codigo = $%d", pos)
		args = append(args, *filtro.Codigo)
		pos++
	}
	if filtro.Tipo != nil {
		query += fmt.Sprintf(" AND tipo = $%d", pos)
		args = append(args, *filtro.Tipo)
		pos++
	}
	if filtro.DataInicial != nil {
		query += fmt.Sprintf(" AND data_movimentacao::date >= $%d::date", pos)
		args = append(args, *filtro.DataInicial)
		pos++
	}
	if filtro.DataFinal != nil {
		query += fmt.Sprintf(" AND data_movimentacao::date <= $%d::date", pos)
		args = append(args, *filtro.DataFinal)
		pos++
	}
	query += " ORDER BY data_movimentacao DESC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimentações: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movimentacao
	for rows.Next() {
		var m entity.Movimentacao
		var projeto, equipe *string
		if err := rows.Scan(&m.ID, &m.Codigo, &m.Descricao, &m.Quantidade, &m.Tipo,
			&projeto, &equipe, &m.DataMovimentacao); err != nil {
			return nil, fmt.Errorf("scan movimentação: %w", err)
		}
		if projeto != nil {
			m.Projeto = *projeto
		}
		if equipe != nil {
			m.Equipe = *equipe
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
