package http

import (
	"github.com/gofiber/fiber/v2"

	appestoque "github.com/almoxeletrico/estoque-api/internal/application/estoque"
	appmaterial "github.com/almoxeletrico/estoque-api/internal/application/material"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	MaterialUC  *appmaterial.UseCase
	Registrar   *appestoque.RegistrarMovimentacaoUseCase
	Consulta    *appestoque.ConsultaUseCase
	Saldo       *appestoque.SaldoUseCase
	Conciliacao *appestoque.ConciliacaoUseCase
	Inventario  *appestoque.InventarioUseCase
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Cadastro de materiais
	materiais := api.Group("/materiais")
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materiais.Post("/", materialHandler.Cadastrar)
	materiais.Get("/", materialHandler.Listar)
	materiais.Post("/importar", materialHandler.Importar)

	// Movimentações do razão
	movs := api.Group("/movimentacoes")
	movHandler := NewMovimentacaoHandler(deps.Registrar, deps.Consulta)
	movs.Post("/", movHandler.Registrar)
	movs.Get("/", movHandler.Consultar)
	movs.Get("/exportar", movHandler.Exportar)
	movs.Post("/importar", movHandler.Importar)

	// Visão geral do estoque
	estoqueGroup := api.Group("/estoque")
	estoqueHandler := NewEstoqueHandler(deps.Saldo)
	estoqueGroup.Get("/", estoqueHandler.VisaoGeral)
	estoqueGroup.Get("/exportar", estoqueHandler.Exportar)

	// Conciliação por projeto
	projetos := api.Group("/projetos")
	projetoHandler := NewProjetoHandler(deps.Conciliacao)
	projetos.Get("/", projetoHandler.Listar)
	projetos.Get("/:projeto", projetoHandler.Resumo)
	projetos.Get("/:projeto/exportar", projetoHandler.Exportar)

	// Inventário (contagem física)
	inventario := api.Group("/inventario")
	inventarioHandler := NewInventarioHandler(deps.Inventario)
	inventario.Post("/", inventarioHandler.Ajustar)
	inventario.Post("/importar", inventarioHandler.Importar)
}
