package estoque

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/almoxeletrico/estoque-api/internal/domain"
	domestoque "github.com/almoxeletrico/estoque-api/internal/domain/estoque"
	"github.com/almoxeletrico/estoque-api/internal/domain/repository"
)

// ConciliacaoUseCase deriva o status de conciliação por projeto: para cada
// material movimentado no projeto, compara saídas com baixas EQTL e
// devoluções com estornos.
type ConciliacaoUseCase struct {
	movRepo repository.MovimentacaoRepository
}

// NewConciliacaoUseCase constrói o caso de uso.
func NewConciliacaoUseCase(movRepo repository.MovimentacaoRepository) *ConciliacaoUseCase {
	return &ConciliacaoUseCase{movRepo: movRepo}
}

// LinhaProjeto agregados de um material em um projeto com saldo e status.
// Saldo aqui é o do escopo do projeto (saídas − devoluções), distinto do
// saldo global do estoque.
type LinhaProjeto struct {
	Codigo     int64
	Descricao  string
	Saidas     decimal.Decimal
	BaixasEQTL decimal.Decimal
	Devolucoes decimal.Decimal
	Estornos   decimal.Decimal
	Saldo      decimal.Decimal
	Status     string
}

// ResumoProjeto retorna uma linha por material movimentado no projeto, com
// status "Baixado" somente quando saídas == baixas EQTL e devoluções ==
// estornos (igualdade exata nos dois pares).
func (uc *ConciliacaoUseCase) ResumoProjeto(ctx context.Context, projeto string) ([]LinhaProjeto, error) {
	if strings.TrimSpace(projeto) == "" {
		return nil, domain.NewValidationError("projeto", "obrigatório")
	}
	resumos, err := uc.movRepo.ResumoPorProjeto(ctx, projeto)
	if err != nil {
		return nil, err
	}
	linhas := make([]LinhaProjeto, 0, len(resumos))
	for _, r := range resumos {
		linhas = append(linhas, LinhaProjeto{
			Codigo:     r.Codigo,
			Descricao:  r.Descricao,
			Saidas:     r.Saidas,
			BaixasEQTL: r.BaixasEQTL,
			Devolucoes: r.Devolucoes,
			Estornos:   r.Estornos,
			Saldo:      domestoque.SaldoProjeto(r.Saidas, r.Devolucoes),
			Status:     domestoque.StatusProjeto(r.Saidas, r.BaixasEQTL, r.Devolucoes, r.Estornos),
		})
	}
	return linhas, nil
}

// ListarProjetos retorna os projetos com movimentação e suas equipes.
func (uc *ConciliacaoUseCase) ListarProjetos(ctx context.Context) ([]repository.Projeto, error) {
	return uc.movRepo.Projetos(ctx)
}
