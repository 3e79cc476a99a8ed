package planilha

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/almoxeletrico/estoque-api/internal/application/estoque"
	"github.com/almoxeletrico/estoque-api/internal/domain/entity"
)

// formato brasileiro de data usado nas exportações de movimentação.
const formatoData = "02/01/2006 15:04:05"

// escrever monta um arquivo XLSX com uma única aba: cabeçalho na primeira
// linha, dados na sequência.
func escrever(aba string, cabecalho []string, linhas [][]any) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", aba); err != nil {
		return nil, fmt.Errorf("renomear aba: %w", err)
	}
	for col, titulo := range cabecalho {
		celula, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(aba, celula, titulo); err != nil {
			return nil, err
		}
	}
	for i, linha := range linhas {
		for col, valor := range linha {
			celula, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(aba, celula, valor); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

// EscreverEstoque exporta a visão geral do estoque na aba "Estoque".
func EscreverEstoque(linhas []estoque.LinhaEstoque) (*excelize.File, error) {
	cabecalho := []string{"Código", "Descrição", "Entradas", "Saídas", "Baixas EQTL", "Devoluções", "Ajustes", "Saldo Atual"}
	dados := make([][]any, 0, len(linhas))
	for _, l := range linhas {
		dados = append(dados, []any{
			l.Codigo, l.Descricao,
			l.Entradas.InexactFloat64(), l.Saidas.InexactFloat64(),
			l.BaixasEQTL.InexactFloat64(), l.Devolucoes.InexactFloat64(),
			l.Ajustes.InexactFloat64(), l.Saldo.InexactFloat64(),
		})
	}
	return escrever("Estoque", cabecalho, dados)
}

// EscreverProjeto exporta a conciliação de um projeto na aba "Movimentacoes".
func EscreverProjeto(linhas []estoque.LinhaProjeto) (*excelize.File, error) {
	cabecalho := []string{"Código", "Descrição", "Saídas", "Baixas EQTL", "Devoluções", "Estornos", "Saldo Atual", "Status"}
	dados := make([][]any, 0, len(linhas))
	for _, l := range linhas {
		dados = append(dados, []any{
			l.Codigo, l.Descricao,
			l.Saidas.InexactFloat64(), l.BaixasEQTL.InexactFloat64(),
			l.Devolucoes.InexactFloat64(), l.Estornos.InexactFloat64(),
			l.Saldo.InexactFloat64(), l.Status,
		})
	}
	return escrever("Movimentacoes", cabecalho, dados)
}

// EscreverMovimentacoes exporta o resultado da consulta na aba
// "Movimentacoes", com a data no formato brasileiro.
func EscreverMovimentacoes(movs []*entity.Movimentacao) (*excelize.File, error) {
	cabecalho := []string{"Data", "Código", "Descrição", "Tipo", "Quantidade", "Projeto", "Equipe"}
	dados := make([][]any, 0, len(movs))
	for _, m := range movs {
		dados = append(dados, []any{
			m.DataMovimentacao.Format(formatoData),
			m.Codigo, m.Descricao, m.Tipo,
			m.Quantidade.InexactFloat64(),
			m.Projeto, m.Equipe,
		})
	}
	return escrever("Movimentacoes", cabecalho, dados)
}
