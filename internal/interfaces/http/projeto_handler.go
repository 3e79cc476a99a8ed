package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/almoxeletrico/estoque-api/internal/application/dto"
	appestoque "github.com/almoxeletrico/estoque-api/internal/application/estoque"
	"github.com/almoxeletrico/estoque-api/internal/infrastructure/planilha"
)

// ProjetoHandler trata a conciliação por projeto.
type ProjetoHandler struct {
	conciliacao *appestoque.ConciliacaoUseCase
}

// NewProjetoHandler constrói o handler.
func NewProjetoHandler(conciliacao *appestoque.ConciliacaoUseCase) *ProjetoHandler {
	return &ProjetoHandler{conciliacao: conciliacao}
}

// Listar devolve os projetos com movimentação e suas equipes.
func (h *ProjetoHandler) Listar(c *fiber.Ctx) error {
	projetos, err := h.conciliacao.ListarProjetos(c.Context())
	if err != nil {
		return responderErro(c, err)
	}
	out := make([]dto.ProjetoResponse, 0, len(projetos))
	for _, p := range projetos {
		out = append(out, dto.ProjetoResponse{Nome: p.Nome, Equipes: p.Equipes})
	}
	return c.JSON(out)
}

// Resumo devolve a conciliação de um projeto: agregados por material, saldo
// do projeto e status Baixado/Pendente.
func (h *ProjetoHandler) Resumo(c *fiber.Ctx) error {
	linhas, err := h.conciliacao.ResumoProjeto(c.Context(), projetoDaRota(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(linhasProjetoResponse(linhas))
}

// Exportar devolve a conciliação do projeto como planilha XLSX.
func (h *ProjetoHandler) Exportar(c *fiber.Ctx) error {
	projeto := projetoDaRota(c)
	linhas, err := h.conciliacao.ResumoProjeto(c.Context(), projeto)
	if err != nil {
		return responderErro(c, err)
	}
	f, err := planilha.EscreverProjeto(linhas)
	if err != nil {
		return responderErro(c, err)
	}
	return responderXLSX(c, f, "projeto_"+projeto+".xlsx")
}

// projetoDaRota decodifica o nome do projeto vindo do path: o fiber não faz
// unescape de segmentos, e nomes reais têm espaço e acento.
func projetoDaRota(c *fiber.Ctx) string {
	bruto := c.Params("projeto")
	nome, err := url.PathUnescape(bruto)
	if err != nil {
		return bruto
	}
	return nome
}

func linhasProjetoResponse(linhas []appestoque.LinhaProjeto) []dto.LinhaProjetoResponse {
	out := make([]dto.LinhaProjetoResponse, 0, len(linhas))
	for _, l := range linhas {
		out = append(out, dto.LinhaProjetoResponse{
			Codigo:     l.Codigo,
			Descricao:  l.Descricao,
			Saidas:     l.Saidas,
			BaixasEQTL: l.BaixasEQTL,
			Devolucoes: l.Devolucoes,
			Estornos:   l.Estornos,
			Saldo:      l.Saldo,
			Status:     l.Status,
		})
	}
	return out
}
