package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/almoxeletrico/estoque-api/internal/application/dto"
	appmaterial "github.com/almoxeletrico/estoque-api/internal/application/material"
	"github.com/almoxeletrico/estoque-api/internal/infrastructure/planilha"
)

// MaterialHandler trata as rotas do cadastro de materiais.
type MaterialHandler struct {
	uc *appmaterial.UseCase
}

// NewMaterialHandler constrói o handler.
func NewMaterialHandler(uc *appmaterial.UseCase) *MaterialHandler {
	return &MaterialHandler{uc: uc}
}

// Cadastrar registra um material. Código já existente é aceito sem efeito.
func (h *MaterialHandler) Cadastrar(c *fiber.Ctx) error {
	var in dto.CadastrarMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.Cadastrar(c.Context(), in.Codigo, in.Descricao, in.Unidade); err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "material cadastrado"})
}

// Listar devolve o cadastro completo.
func (h *MaterialHandler) Listar(c *fiber.Ctx) error {
	materiais, err := h.uc.Listar(c.Context())
	if err != nil {
		return responderErro(c, err)
	}
	out := make([]dto.MaterialResponse, 0, len(materiais))
	for _, m := range materiais {
		out = append(out, dto.MaterialResponse{Codigo: m.Codigo, Descricao: m.Descricao, Unidade: m.Unidade})
	}
	return c.JSON(out)
}

// Importar cadastra materiais a partir de uma planilha (codigo, descricao,
// unidade). Colunas faltando rejeitam a importação inteira.
func (h *MaterialHandler) Importar(c *fiber.Ctx) error {
	nome, conteudo, err := abrirUpload(c)
	if err != nil {
		return responderErro(c, err)
	}
	linhas, err := planilha.Ler(nome, bytes.NewReader(conteudo), "codigo", "descricao", "unidade")
	if err != nil {
		return responderErro(c, err)
	}
	lote := make([]appmaterial.LinhaMaterial, 0, len(linhas))
	for _, linha := range linhas {
		codigo, err := linha.Codigo("codigo")
		if err != nil {
			return responderErro(c, err)
		}
		lote = append(lote, appmaterial.LinhaMaterial{
			Codigo:    codigo,
			Descricao: linha["descricao"],
			Unidade:   linha["unidade"],
		})
	}
	res, err := h.uc.CadastrarLote(c.Context(), lote)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(fiber.Map{"lote": res.Lote, "inseridos": res.Inseridos, "existentes": res.Existentes})
}
