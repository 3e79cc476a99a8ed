package planilha

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almoxeletrico/estoque-api/internal/application/estoque"
	domestoque "github.com/almoxeletrico/estoque-api/internal/domain/estoque"
	"github.com/almoxeletrico/estoque-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestEscreverEstoque(t *testing.T) {
	f, err := EscreverEstoque([]estoque.LinhaEstoque{
		{
			Codigo: 1001, Descricao: "Cabo 4mm",
			Entradas: dec("100"), Saidas: dec("40"),
			BaixasEQTL: dec("0"), Devolucoes: dec("10"),
			Ajustes: dec("-5"), Saldo: dec("65"),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Estoque"}, f.GetSheetList())

	rows, err := f.GetRows("Estoque")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Código", rows[0][0])
	assert.Equal(t, "Saldo Atual", rows[0][7])
	assert.Equal(t, "1001", rows[1][0])
	assert.Equal(t, "65", rows[1][7])
}

func TestEscreverProjeto(t *testing.T) {
	f, err := EscreverProjeto([]estoque.LinhaProjeto{
		{
			Codigo: 1001, Descricao: "Cabo 4mm",
			Saidas: dec("40"), BaixasEQTL: dec("40"),
			Devolucoes: dec("0"), Estornos: dec("0"),
			Saldo: dec("40"), Status: domestoque.StatusBaixado,
		},
	})
	require.NoError(t, err)

	rows, err := f.GetRows("Movimentacoes")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Status", rows[0][7])
	assert.Equal(t, domestoque.StatusBaixado, rows[1][7])
}

func TestEscreverMovimentacoes_DataNoFormatoBrasileiro(t *testing.T) {
	quando := time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)
	f, err := EscreverMovimentacoes([]*entity.Movimentacao{
		{
			Codigo: 1001, Descricao: "Cabo 4mm",
			Tipo: entity.TipoSaida, Quantidade: dec("40"),
			Projeto: "OBRA-01", Equipe: "EQ-07",
			DataMovimentacao: quando,
		},
	})
	require.NoError(t, err)

	rows, err := f.GetRows("Movimentacoes")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "15/03/2026 09:30:00", rows[1][0])
	assert.Equal(t, entity.TipoSaida, rows[1][3])
	assert.Equal(t, "OBRA-01", rows[1][5])
}

// garante que a escrita e a leitura compartilham o mesmo contrato de colunas.
func TestEstoqueExportadoEhLegivelDeVolta(t *testing.T) {
	f, err := EscreverEstoque([]estoque.LinhaEstoque{
		{Codigo: 1001, Descricao: "Cabo 4mm", Entradas: dec("10"), Saldo: dec("10")},
	})
	require.NoError(t, err)
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	linhas, err := Ler("estoque.xlsx", buf, "código", "saldo atual")
	require.NoError(t, err)
	require.Len(t, linhas, 1)
	codigo, err := linhas[0].Codigo("código")
	require.NoError(t, err)
	assert.Equal(t, int64(1001), codigo)
}
