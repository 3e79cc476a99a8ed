package estoque

import (
	"context"

	"github.com/shopspring/decimal"

	domestoque "github.com/almoxeletrico/estoque-api/internal/domain/estoque"
	"github.com/almoxeletrico/estoque-api/internal/domain/repository"
)

// SaldoUseCase calcula saldos e a visão geral do estoque a partir do razão.
type SaldoUseCase struct {
	movRepo repository.MovimentacaoRepository
}

// NewSaldoUseCase constrói o caso de uso.
func NewSaldoUseCase(movRepo repository.MovimentacaoRepository) *SaldoUseCase {
	return &SaldoUseCase{movRepo: movRepo}
}

// LinhaEstoque uma linha da visão geral: agregados por tipo e saldo derivado.
type LinhaEstoque struct {
	Codigo     int64
	Descricao  string
	Entradas   decimal.Decimal
	Saidas     decimal.Decimal
	BaixasEQTL decimal.Decimal
	Devolucoes decimal.Decimal
	Ajustes    decimal.Decimal
	Saldo      decimal.Decimal
}

// SaldoAtual retorna o saldo corrente de um material. Material sem
// movimentação tem saldo zero.
func (uc *SaldoUseCase) SaldoAtual(ctx context.Context, codigo int64) (decimal.Decimal, error) {
	return uc.movRepo.Saldo(ctx, codigo)
}

// VisaoGeral retorna uma linha por material cadastrado, com os agregados de
// cada tipo e o saldo pela fórmula canônica. Materiais sem movimentação
// aparecem zerados. Com codigo não-nil, restringe a um material.
func (uc *SaldoUseCase) VisaoGeral(ctx context.Context, codigo *int64) ([]LinhaEstoque, error) {
	resumos, err := uc.movRepo.ResumoEstoque(ctx, codigo)
	if err != nil {
		return nil, err
	}
	linhas := make([]LinhaEstoque, 0, len(resumos))
	for _, r := range resumos {
		linhas = append(linhas, LinhaEstoque{
			Codigo:     r.Codigo,
			Descricao:  r.Descricao,
			Entradas:   r.Entradas,
			Saidas:     r.Saidas,
			BaixasEQTL: r.BaixasEQTL,
			Devolucoes: r.Devolucoes,
			Ajustes:    r.Ajustes,
			Saldo:      domestoque.Saldo(r.Entradas, r.Saidas, r.Devolucoes, r.Ajustes),
		})
	}
	return linhas, nil
}
