package http

import (
	"bytes"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/almoxeletrico/estoque-api/internal/application/dto"
	appestoque "github.com/almoxeletrico/estoque-api/internal/application/estoque"
	"github.com/almoxeletrico/estoque-api/internal/domain"
	"github.com/almoxeletrico/estoque-api/internal/domain/entity"
	"github.com/almoxeletrico/estoque-api/internal/domain/repository"
	"github.com/almoxeletrico/estoque-api/internal/infrastructure/planilha"
)

const formatoDataQuery = "2006-01-02"

// MovimentacaoHandler trata registro, consulta, importação e exportação de
// movimentações.
type MovimentacaoHandler struct {
	registrar *appestoque.RegistrarMovimentacaoUseCase
	consulta  *appestoque.ConsultaUseCase
}

// NewMovimentacaoHandler constrói o handler.
func NewMovimentacaoHandler(registrar *appestoque.RegistrarMovimentacaoUseCase, consulta *appestoque.ConsultaUseCase) *MovimentacaoHandler {
	return &MovimentacaoHandler{registrar: registrar, consulta: consulta}
}

// Registrar grava uma movimentação.
func (h *MovimentacaoHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarMovimentacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	id, err := h.registrar.Registrar(c.Context(), appestoque.MovimentacaoInput{
		Tipo:       in.Tipo,
		Codigo:     in.Codigo,
		Quantidade: in.Quantidade,
		Projeto:    in.Projeto,
		Equipe:     in.Equipe,
	})
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// Consultar aplica os filtros opcionais da query string e devolve as
// movimentações em ordem decrescente de data. Sem resultados, lista vazia.
func (h *MovimentacaoHandler) Consultar(c *fiber.Ctx) error {
	filtro, err := filtroDaQuery(c)
	if err != nil {
		return responderErro(c, err)
	}
	movs, err := h.consulta.Consultar(c.Context(), filtro)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(movimentacoesResponse(movs))
}

// Exportar devolve o resultado da consulta como planilha XLSX.
func (h *MovimentacaoHandler) Exportar(c *fiber.Ctx) error {
	filtro, err := filtroDaQuery(c)
	if err != nil {
		return responderErro(c, err)
	}
	movs, err := h.consulta.Consultar(c.Context(), filtro)
	if err != nil {
		return responderErro(c, err)
	}
	f, err := planilha.EscreverMovimentacoes(movs)
	if err != nil {
		return responderErro(c, err)
	}
	return responderXLSX(c, f, "movimentacoes.xlsx")
}

// Importar grava movimentações em lote a partir de uma planilha. O tipo vem
// na query string; linhas com código não cadastrado são puladas.
func (h *MovimentacaoHandler) Importar(c *fiber.Ctx) error {
	tipo := c.Query("tipo")
	colunas, err := colunasLote(tipo)
	if err != nil {
		return responderErro(c, err)
	}
	nome, conteudo, err := abrirUpload(c)
	if err != nil {
		return responderErro(c, err)
	}
	linhas, err := planilha.Ler(nome, bytes.NewReader(conteudo), colunas...)
	if err != nil {
		return responderErro(c, err)
	}
	lote := make([]appestoque.LinhaLote, 0, len(linhas))
	for _, linha := range linhas {
		codigo, err := linha.Codigo("codigo")
		if err != nil {
			return responderErro(c, err)
		}
		quantidade, err := linha.Quantidade("quantidade")
		if err != nil {
			return responderErro(c, err)
		}
		lote = append(lote, appestoque.LinhaLote{
			Codigo:     codigo,
			Descricao:  linha["descricao"],
			Quantidade: quantidade,
			Projeto:    linha["projeto"],
			Equipe:     linha["equipe"],
		})
	}
	res, err := h.registrar.RegistrarLote(c.Context(), tipo, lote)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(dto.ResultadoLoteResponse{
		Lote:        res.Lote,
		Registradas: res.Registradas,
		Ignoradas:   res.Ignoradas,
		Invalidas:   res.Invalidas,
	})
}

// colunasLote devolve as colunas obrigatórias da planilha conforme o tipo.
func colunasLote(tipo string) ([]string, error) {
	switch tipo {
	case entity.TipoEntrada:
		return []string{"codigo", "descricao", "quantidade"}, nil
	case entity.TipoSaida, entity.TipoBaixaEQTL, entity.TipoEstorno:
		return []string{"codigo", "quantidade", "projeto", "equipe"}, nil
	case entity.TipoDevolucao:
		return []string{"codigo", "quantidade", "projeto"}, nil
	default:
		return nil, domain.NewValidationError("tipo", "tipo de movimentação desconhecido")
	}
}

func filtroDaQuery(c *fiber.Ctx) (repository.FiltroMovimentacao, error) {
	var filtro repository.FiltroMovimentacao
	if v := c.Query("codigo"); v != "" {
		codigo, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filtro, domain.NewValidationError("codigo", "código inválido")
		}
		filtro.Codigo = &codigo
	}
	if v := c.Query("tipo"); v != "" {
		filtro.Tipo = &v
	}
	if v := c.Query("data_inicial"); v != "" {
		data, err := time.Parse(formatoDataQuery, v)
		if err != nil {
			return filtro, domain.NewValidationError("data_inicial", "use o formato AAAA-MM-DD")
		}
		filtro.DataInicial = &data
	}
	if v := c.Query("data_final"); v != "" {
		data, err := time.Parse(formatoDataQuery, v)
		if err != nil {
			return filtro, domain.NewValidationError("data_final", "use o formato AAAA-MM-DD")
		}
		filtro.DataFinal = &data
	}
	return filtro, nil
}

func movimentacoesResponse(movs []*entity.Movimentacao) []dto.MovimentacaoResponse {
	out := make([]dto.MovimentacaoResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.MovimentacaoResponse{
			ID:         m.ID,
			Data:       m.DataMovimentacao.Format(time.RFC3339),
			Codigo:     m.Codigo,
			Descricao:  m.Descricao,
			Tipo:       m.Tipo,
			Quantidade: m.Quantidade,
			Projeto:    m.Projeto,
			Equipe:     m.Equipe,
		})
	}
	return out
}
