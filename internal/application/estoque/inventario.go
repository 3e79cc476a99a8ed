package estoque

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/almoxeletrico/estoque-api/internal/domain"
	"github.com/almoxeletrico/estoque-api/internal/domain/entity"
	"github.com/almoxeletrico/estoque-api/internal/domain/repository"
	"github.com/almoxeletrico/estoque-api/pkg/logger"
)

// InventarioUseCase concilia contagens físicas com o saldo derivado do razão:
// a diferença vira uma única movimentação de ajuste_inventario, gravada na
// mesma transação em que o saldo foi lido.
type InventarioUseCase struct {
	txRunner     TxRunner
	materialRepo repository.MaterialRepository
	log          *logger.Logger
}

// NewInventarioUseCase constrói o caso de uso.
func NewInventarioUseCase(txRunner TxRunner, materialRepo repository.MaterialRepository, log *logger.Logger) *InventarioUseCase {
	return &InventarioUseCase{txRunner: txRunner, materialRepo: materialRepo, log: log}
}

// Ajuste resultado de uma conciliação de contagem. MovimentacaoID é nil
// quando o saldo já estava correto e nada foi gravado.
type Ajuste struct {
	Codigo         int64
	SaldoAnterior  decimal.Decimal
	NovaQuantidade decimal.Decimal
	Ajuste         decimal.Decimal
	MovimentacaoID *int64
}

// LinhaInventario uma linha da planilha de contagem importada.
type LinhaInventario struct {
	Codigo         int64
	Descricao      string
	NovaQuantidade decimal.Decimal
}

// ResultadoInventario resultado da conciliação em lote.
type ResultadoInventario struct {
	Lote      string
	Ajustes   []Ajuste
	Ignorados []int64
}

// Ajustar compara a contagem declarada com o saldo atual e, se diferirem,
// grava um ajuste_inventario com a diferença (projeto e equipe nulos).
// Ajuste zero não grava nada: rodar duas vezes com a mesma contagem produz
// exatamente um ajuste no total.
func (uc *InventarioUseCase) Ajustar(ctx context.Context, codigo int64, novaQuantidade decimal.Decimal) (*Ajuste, error) {
	material, err := uc.materialRepo.GetByCodigo(ctx, codigo)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}
	return uc.ajustar(ctx, codigo, material.Descricao, novaQuantidade)
}

// AjustarLote aplica a conciliação linha a linha. Cada linha é independente e
// durável assim que gravada; códigos não cadastrados são pulados com warning.
// A descrição da planilha é encaminhada para o ajuste, como na importação
// original de inventário.
func (uc *InventarioUseCase) AjustarLote(ctx context.Context, linhas []LinhaInventario) (*ResultadoInventario, error) {
	res := &ResultadoInventario{Lote: uuid.New().String()}
	for _, linha := range linhas {
		material, err := uc.materialRepo.GetByCodigo(ctx, linha.Codigo)
		if err != nil {
			return res, err
		}
		if material == nil {
			uc.log.Warn().
				Str("lote", res.Lote).
				Int64("codigo", linha.Codigo).
				Msg("código não cadastrado, linha de inventário ignorada")
			res.Ignorados = append(res.Ignorados, linha.Codigo)
			continue
		}
		descricao := material.Descricao
		if strings.TrimSpace(linha.Descricao) != "" {
			descricao = strings.TrimSpace(linha.Descricao)
		}
		ajuste, err := uc.ajustar(ctx, linha.Codigo, descricao, linha.NovaQuantidade)
		if err != nil {
			return res, err
		}
		res.Ajustes = append(res.Ajustes, *ajuste)
	}
	return res, nil
}

func (uc *InventarioUseCase) ajustar(ctx context.Context, codigo int64, descricao string, novaQuantidade decimal.Decimal) (*Ajuste, error) {
	var out *Ajuste
	err := uc.txRunner.Run(ctx, func(movRepo repository.MovimentacaoRepository) error {
		saldo, err := movRepo.Saldo(ctx, codigo)
		if err != nil {
			return err
		}
		diferenca := novaQuantidade.Sub(saldo)
		out = &Ajuste{
			Codigo:         codigo,
			SaldoAnterior:  saldo,
			NovaQuantidade: novaQuantidade,
			Ajuste:         diferenca,
		}
		if diferenca.IsZero() {
			return nil
		}
		id, err := movRepo.Create(ctx, &entity.Movimentacao{
			Codigo:     codigo,
			Descricao:  descricao,
			Quantidade: diferenca,
			Tipo:       entity.TipoAjusteInventario,
		})
		if err != nil {
			return err
		}
		out.MovimentacaoID = &id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
