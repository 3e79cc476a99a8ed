package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/almoxeletrico/estoque-api/internal/application/dto"
	appestoque "github.com/almoxeletrico/estoque-api/internal/application/estoque"
	"github.com/almoxeletrico/estoque-api/internal/infrastructure/planilha"
)

// InventarioHandler trata a conciliação de contagem física (inventário).
type InventarioHandler struct {
	inventario *appestoque.InventarioUseCase
}

// NewInventarioHandler constrói o handler.
func NewInventarioHandler(inventario *appestoque.InventarioUseCase) *InventarioHandler {
	return &InventarioHandler{inventario: inventario}
}

// Ajustar concilia uma contagem declarada com o saldo derivado. Quando o
// saldo já está correto, nada é gravado e a resposta informa ajuste zero.
func (h *InventarioHandler) Ajustar(c *fiber.Ctx) error {
	var in dto.AjusteInventarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	ajuste, err := h.inventario.Ajustar(c.Context(), in.Codigo, in.NovaQuantidade)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(ajusteResponse(ajuste))
}

// Importar concilia uma planilha de contagem (codigo, descricao, quantidade).
// Linhas independentes; códigos não cadastrados são pulados.
func (h *InventarioHandler) Importar(c *fiber.Ctx) error {
	nome, conteudo, err := abrirUpload(c)
	if err != nil {
		return responderErro(c, err)
	}
	linhas, err := planilha.Ler(nome, bytes.NewReader(conteudo), "codigo", "descricao", "quantidade")
	if err != nil {
		return responderErro(c, err)
	}
	lote := make([]appestoque.LinhaInventario, 0, len(linhas))
	for _, linha := range linhas {
		codigo, err := linha.Codigo("codigo")
		if err != nil {
			return responderErro(c, err)
		}
		quantidade, err := linha.Quantidade("quantidade")
		if err != nil {
			return responderErro(c, err)
		}
		lote = append(lote, appestoque.LinhaInventario{
			Codigo:         codigo,
			Descricao:      linha["descricao"],
			NovaQuantidade: quantidade,
		})
	}
	res, err := h.inventario.AjustarLote(c.Context(), lote)
	if err != nil {
		return responderErro(c, err)
	}
	ajustes := make([]dto.AjusteResponse, 0, len(res.Ajustes))
	for i := range res.Ajustes {
		ajustes = append(ajustes, ajusteResponse(&res.Ajustes[i]))
	}
	return c.JSON(fiber.Map{"lote": res.Lote, "ajustes": ajustes, "ignorados": res.Ignorados})
}

func ajusteResponse(a *appestoque.Ajuste) dto.AjusteResponse {
	return dto.AjusteResponse{
		Codigo:         a.Codigo,
		SaldoAnterior:  a.SaldoAnterior,
		NovaQuantidade: a.NovaQuantidade,
		Ajuste:         a.Ajuste,
		MovimentacaoID: a.MovimentacaoID,
	}
}
