package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/almoxeletrico/estoque-api/internal/domain/entity"
)

// ResumoEstoque agregados por material para a visão geral do estoque.
// Materiais sem movimentação aparecem com agregados zerados.
type ResumoEstoque struct {
	Codigo     int64
	Descricao  string
	Entradas   decimal.Decimal
	Saidas     decimal.Decimal
	BaixasEQTL decimal.Decimal
	Devolucoes decimal.Decimal
	Ajustes    decimal.Decimal
}

// ResumoProjeto agregados por material no escopo de um projeto.
type ResumoProjeto struct {
	Codigo     int64
	Descricao  string
	Saidas     decimal.Decimal
	BaixasEQTL decimal.Decimal
	Devolucoes decimal.Decimal
	Estornos   decimal.Decimal
}

// Projeto nome do projeto e equipes que movimentaram material nele.
type Projeto struct {
	Nome    string
	Equipes []string
}

// FiltroMovimentacao filtros opcionais da consulta de movimentação.
// Todos compõem com AND; datas são comparadas na granularidade de dia.
type FiltroMovimentacao struct {
	Codigo      *int64
	Tipo        *string
	DataInicial *time.Time
	DataFinal   *time.Time
}

// MovimentacaoRepository porta de persistência do razão de movimentações.
// O razão é append-only: não há update nem delete.
type MovimentacaoRepository interface {
	// Create grava uma movimentação e retorna o ID atribuído pelo banco.
	// O timestamp é atribuído pelo banco no insert.
	Create(ctx context.Context, mov *entity.Movimentacao) (int64, error)

	// Saldo retorna o saldo atual de um material pela fórmula canônica
	// (entradas − saídas + devoluções + ajustes). Sem movimentações, zero.
	Saldo(ctx context.Context, codigo int64) (decimal.Decimal, error)

	// ResumoEstoque retorna os agregados por material (LEFT JOIN contra o
	// cadastro). Com codigo não-nil, restringe a um único material.
	ResumoEstoque(ctx context.Context, codigo *int64) ([]ResumoEstoque, error)

	// ResumoPorProjeto retorna os agregados por material de um projeto.
	ResumoPorProjeto(ctx context.Context, projeto string) ([]ResumoProjeto, error)

	// Projetos retorna os projetos distintos com movimentação, com suas equipes.
	Projetos(ctx context.Context) ([]Projeto, error)

	// List consulta movimentações pelos filtros, ordenadas por data decrescente.
	// Resultado vazio não é erro.
	List(ctx context.Context, filtro FiltroMovimentacao) ([]*entity.Movimentacao, error)
}
