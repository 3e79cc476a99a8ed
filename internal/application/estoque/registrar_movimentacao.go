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

// RegistrarMovimentacaoUseCase valida e grava movimentações no razão
// (entrada, saída, baixa EQTL, devolução, estorno, ajuste de inventário).
type RegistrarMovimentacaoUseCase struct {
	movRepo      repository.MovimentacaoRepository
	materialRepo repository.MaterialRepository
	log          *logger.Logger
}

// NewRegistrarMovimentacaoUseCase constrói o caso de uso.
func NewRegistrarMovimentacaoUseCase(
	movRepo repository.MovimentacaoRepository,
	materialRepo repository.MaterialRepository,
	log *logger.Logger,
) *RegistrarMovimentacaoUseCase {
	return &RegistrarMovimentacaoUseCase{movRepo: movRepo, materialRepo: materialRepo, log: log}
}

// MovimentacaoInput entrada para registrar uma movimentação.
type MovimentacaoInput struct {
	Tipo       string
	Codigo     int64
	Quantidade decimal.Decimal
	Projeto    string
	Equipe     string
}

// LinhaLote uma linha de importação em lote. Descricao só é usada no lote de
// entrada, que encaminha a descrição da planilha (inconsistência tolerada,
// herdada do fluxo de importação original).
type LinhaLote struct {
	Codigo     int64
	Descricao  string
	Quantidade decimal.Decimal
	Projeto    string
	Equipe     string
}

// ResultadoLote resultado de uma importação em lote. Linhas com código não
// cadastrado vão para Ignoradas; linhas reprovadas na validação de campos vão
// para Invalidas. As demais são gravadas de forma independente (sem transação
// all-or-nothing).
type ResultadoLote struct {
	Lote        string
	Registradas int
	Ignoradas   []int64
	Invalidas   []int64
}

// Registrar valida os campos conforme o tipo, resolve a descrição no cadastro
// e grava exatamente uma linha no razão. O timestamp é atribuído pelo banco.
func (uc *RegistrarMovimentacaoUseCase) Registrar(ctx context.Context, in MovimentacaoInput) (int64, error) {
	if err := validar(in); err != nil {
		return 0, err
	}
	material, err := uc.materialRepo.GetByCodigo(ctx, in.Codigo)
	if err != nil {
		return 0, err
	}
	if material == nil {
		return 0, domain.ErrNotFound
	}
	mov := &entity.Movimentacao{
		Codigo:     in.Codigo,
		Descricao:  material.Descricao,
		Quantidade: in.Quantidade,
		Tipo:       in.Tipo,
	}
	if entity.ExigeProjeto(in.Tipo) {
		mov.Projeto = strings.TrimSpace(in.Projeto)
		mov.Equipe = strings.TrimSpace(in.Equipe)
	}
	return uc.movRepo.Create(ctx, mov)
}

// RegistrarLote aplica Registrar linha a linha para um único tipo. Uma linha
// cujo material não existe ou que reprova na validação é pulada com warning;
// as demais seguem. Sucesso parcial é esperado: uma célula ruim não descarta
// o resto da planilha.
func (uc *RegistrarMovimentacaoUseCase) RegistrarLote(ctx context.Context, tipo string, linhas []LinhaLote) (*ResultadoLote, error) {
	if !entity.TipoValido(tipo) {
		return nil, domain.NewValidationError("tipo", "tipo de movimentação desconhecido")
	}
	res := &ResultadoLote{Lote: uuid.New().String()}
	for _, linha := range linhas {
		material, err := uc.materialRepo.GetByCodigo(ctx, linha.Codigo)
		if err != nil {
			return res, err
		}
		if material == nil {
			uc.log.Warn().
				Str("lote", res.Lote).
				Str("tipo", tipo).
				Int64("codigo", linha.Codigo).
				Msg("código não cadastrado, linha ignorada")
			res.Ignoradas = append(res.Ignoradas, linha.Codigo)
			continue
		}
		in := MovimentacaoInput{
			Tipo:       tipo,
			Codigo:     linha.Codigo,
			Quantidade: linha.Quantidade,
			Projeto:    linha.Projeto,
			Equipe:     linha.Equipe,
		}
		if err := validar(in); err != nil {
			uc.log.Warn().
				Str("lote", res.Lote).
				Str("tipo", tipo).
				Int64("codigo", linha.Codigo).
				Err(err).
				Msg("linha reprovada na validação, ignorada")
			res.Invalidas = append(res.Invalidas, linha.Codigo)
			continue
		}
		descricao := material.Descricao
		if tipo == entity.TipoEntrada && strings.TrimSpace(linha.Descricao) != "" {
			descricao = strings.TrimSpace(linha.Descricao)
		}
		mov := &entity.Movimentacao{
			Codigo:     linha.Codigo,
			Descricao:  descricao,
			Quantidade: linha.Quantidade,
			Tipo:       tipo,
		}
		if entity.ExigeProjeto(tipo) {
			mov.Projeto = strings.TrimSpace(linha.Projeto)
			mov.Equipe = strings.TrimSpace(linha.Equipe)
		}
		if _, err := uc.movRepo.Create(ctx, mov); err != nil {
			return res, err
		}
		res.Registradas++
	}
	return res, nil
}

// validar aplica as regras por tipo: projeto/equipe obrigatórios conforme o
// tipo, quantidade > 0 para todos os tipos exceto ajuste de inventário, que
// aceita sinal livre mas nunca zero.
func validar(in MovimentacaoInput) error {
	if !entity.TipoValido(in.Tipo) {
		return domain.NewValidationError("tipo", "tipo de movimentação desconhecido")
	}
	if entity.ExigeProjeto(in.Tipo) && strings.TrimSpace(in.Projeto) == "" {
		return domain.NewValidationError("projeto", "obrigatório para "+in.Tipo)
	}
	if entity.ExigeEquipe(in.Tipo) && strings.TrimSpace(in.Equipe) == "" {
		return domain.NewValidationError("equipe", "obrigatória para "+in.Tipo)
	}
	if in.Tipo == entity.TipoAjusteInventario {
		if in.Quantidade.IsZero() {
			return domain.NewValidationError("quantidade", "ajuste de inventário não pode ser zero")
		}
		return nil
	}
	if !in.Quantidade.GreaterThan(decimal.Zero) {
		return domain.NewValidationError("quantidade", "deve ser maior que zero")
	}
	return nil
}
