package estoque

import (
	"context"

	"github.com/almoxeletrico/estoque-api/internal/domain"
	"github.com/almoxeletrico/estoque-api/internal/domain/entity"
	"github.com/almoxeletrico/estoque-api/internal/domain/repository"
)

// ConsultaUseCase consulta movimentações com filtros opcionais compostos
// por AND, ordenadas da mais recente para a mais antiga.
type ConsultaUseCase struct {
	movRepo repository.MovimentacaoRepository
}

// NewConsultaUseCase constrói o caso de uso.
func NewConsultaUseCase(movRepo repository.MovimentacaoRepository) *ConsultaUseCase {
	return &ConsultaUseCase{movRepo: movRepo}
}

// Consultar aplica os filtros e retorna a sequência ordenada. Resultado vazio
// não é erro: quem exibe decide como apresentar "sem dados".
func (uc *ConsultaUseCase) Consultar(ctx context.Context, filtro repository.FiltroMovimentacao) ([]*entity.Movimentacao, error) {
	if filtro.Tipo != nil && !entity.TipoValido(*filtro.Tipo) {
		return nil, domain.NewValidationError("tipo", "tipo de movimentação desconhecido")
	}
	return uc.movRepo.List(ctx, filtro)
}
