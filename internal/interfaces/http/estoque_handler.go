package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/almoxeletrico/estoque-api/internal/application/dto"
	appestoque "github.com/almoxeletrico/estoque-api/internal/application/estoque"
	"github.com/almoxeletrico/estoque-api/internal/domain"
	"github.com/almoxeletrico/estoque-api/internal/infrastructure/planilha"
)

// EstoqueHandler trata a visão geral do estoque e sua exportação.
type EstoqueHandler struct {
	saldo *appestoque.SaldoUseCase
}

// NewEstoqueHandler constrói o handler.
func NewEstoqueHandler(saldo *appestoque.SaldoUseCase) *EstoqueHandler {
	return &EstoqueHandler{saldo: saldo}
}

// VisaoGeral devolve uma linha por material com agregados e saldo.
// Query param codigo (opcional) restringe a um material.
func (h *EstoqueHandler) VisaoGeral(c *fiber.Ctx) error {
	linhas, err := h.visaoGeral(c)
	if err != nil {
		return responderErro(c, err)
	}
	out := make([]dto.LinhaEstoqueResponse, 0, len(linhas))
	for _, l := range linhas {
		out = append(out, dto.LinhaEstoqueResponse{
			Codigo:     l.Codigo,
			Descricao:  l.Descricao,
			Entradas:   l.Entradas,
			Saidas:     l.Saidas,
			BaixasEQTL: l.BaixasEQTL,
			Devolucoes: l.Devolucoes,
			Ajustes:    l.Ajustes,
			Saldo:      l.Saldo,
		})
	}
	return c.JSON(out)
}

// Exportar devolve a visão geral como planilha XLSX (aba "Estoque").
func (h *EstoqueHandler) Exportar(c *fiber.Ctx) error {
	linhas, err := h.visaoGeral(c)
	if err != nil {
		return responderErro(c, err)
	}
	f, err := planilha.EscreverEstoque(linhas)
	if err != nil {
		return responderErro(c, err)
	}
	return responderXLSX(c, f, "estoque.xlsx")
}

func (h *EstoqueHandler) visaoGeral(c *fiber.Ctx) ([]appestoque.LinhaEstoque, error) {
	var codigo *int64
	if v := c.Query("codigo"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, domain.NewValidationError("codigo", "código inválido")
		}
		codigo = &parsed
	}
	return h.saldo.VisaoGeral(c.Context(), codigo)
}
