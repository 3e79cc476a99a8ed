package estoque_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appestoque "github.com/almoxeletrico/estoque-api/internal/application/estoque"
	"github.com/almoxeletrico/estoque-api/internal/domain"
	"github.com/almoxeletrico/estoque-api/internal/domain/entity"
	"github.com/almoxeletrico/estoque-api/pkg/logger"
)

func novoInventario(materiais ...*entity.Material) (*appestoque.InventarioUseCase, *appestoque.RegistrarMovimentacaoUseCase, *fakeMovRepo) {
	materialRepo := newFakeMaterialRepo(materiais...)
	movRepo := newFakeMovRepo(materialRepo)
	registrar := appestoque.NewRegistrarMovimentacaoUseCase(movRepo, materialRepo, logger.Nop())
	inventario := appestoque.NewInventarioUseCase(&fakeTxRunner{movRepo: movRepo}, materialRepo, logger.Nop())
	return inventario, registrar, movRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Cenário de ponta a ponta da conciliação de contagem:
// entrada 100, saída 40, devolução 10 → saldo 70; contagem declara 65
// → ajuste de −5 e saldo final 65.
// ──────────────────────────────────────────────────────────────────────────────

func TestAjustar_CenarioCompleto(t *testing.T) {
	inventario, registrar, movRepo := novoInventario(cabo())
	ctx := context.Background()

	mustRegistrar(t, registrar, appestoque.MovimentacaoInput{Tipo: entity.TipoEntrada, Codigo: 10, Quantidade: d("100")})
	mustRegistrar(t, registrar, appestoque.MovimentacaoInput{Tipo: entity.TipoSaida, Codigo: 10, Quantidade: d("40"), Projeto: "P1", Equipe: "E1"})
	mustRegistrar(t, registrar, appestoque.MovimentacaoInput{Tipo: entity.TipoDevolucao, Codigo: 10, Quantidade: d("10"), Projeto: "P1"})

	saldo, err := movRepo.Saldo(ctx, 10)
	require.NoError(t, err)
	require.True(t, saldo.Equal(d("70")))

	ajuste, err := inventario.Ajustar(ctx, 10, d("65"))
	require.NoError(t, err)
	assert.True(t, ajuste.Ajuste.Equal(d("-5")))
	assert.True(t, ajuste.SaldoAnterior.Equal(d("70")))
	require.NotNil(t, ajuste.MovimentacaoID)

	ultimo := movRepo.movs[len(movRepo.movs)-1]
	assert.Equal(t, entity.TipoAjusteInventario, ultimo.Tipo)
	assert.True(t, ultimo.Quantidade.Equal(d("-5")))
	assert.Empty(t, ultimo.Projeto)
	assert.Empty(t, ultimo.Equipe)

	saldo, err = movRepo.Saldo(ctx, 10)
	require.NoError(t, err)
	assert.True(t, saldo.Equal(d("65")))
}

func TestAjustar_IdempotenteComAjusteZero(t *testing.T) {
	inventario, registrar, movRepo := novoInventario(cabo())
	ctx := context.Background()

	mustRegistrar(t, registrar, appestoque.MovimentacaoInput{Tipo: entity.TipoEntrada, Codigo: 10, Quantidade: d("100")})

	// primeira conciliação grava um ajuste
	primeiro, err := inventario.Ajustar(ctx, 10, d("95"))
	require.NoError(t, err)
	require.NotNil(t, primeiro.MovimentacaoID)
	antes := len(movRepo.movs)

	// segunda conciliação com a mesma contagem calcula ajuste zero e não grava
	segundo, err := inventario.Ajustar(ctx, 10, d("95"))
	require.NoError(t, err)
	assert.Nil(t, segundo.MovimentacaoID)
	assert.True(t, segundo.Ajuste.IsZero())
	assert.Len(t, movRepo.movs, antes, "nenhum registro novo no segundo passe")
}

func TestAjustar_MaterialInexistente(t *testing.T) {
	inventario, _, _ := novoInventario(cabo())

	_, err := inventario.Ajustar(context.Background(), 99, d("10"))
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestAjustarLote_LinhasIndependentes(t *testing.T) {
	parafuso := &entity.Material{Codigo: 20, Descricao: "Parafuso", Unidade: entity.UnidadeUN}
	inventario, registrar, movRepo := novoInventario(cabo(), parafuso)
	ctx := context.Background()

	mustRegistrar(t, registrar, appestoque.MovimentacaoInput{Tipo: entity.TipoEntrada, Codigo: 10, Quantidade: d("50")})
	mustRegistrar(t, registrar, appestoque.MovimentacaoInput{Tipo: entity.TipoEntrada, Codigo: 20, Quantidade: d("30")})

	res, err := inventario.AjustarLote(ctx, []appestoque.LinhaInventario{
		{Codigo: 10, Descricao: "Cabo", NovaQuantidade: d("48")}, // ajuste -2
		{Codigo: 99, NovaQuantidade: d("10")},                    // desconhecido: pulado
		{Codigo: 20, NovaQuantidade: d("30")},                    // saldo correto: nada gravado
	})

	require.NoError(t, err)
	assert.Equal(t, []int64{99}, res.Ignorados)
	require.Len(t, res.Ajustes, 2)
	assert.NotNil(t, res.Ajustes[0].MovimentacaoID)
	assert.Nil(t, res.Ajustes[1].MovimentacaoID)

	saldoCabo, err := movRepo.Saldo(ctx, 10)
	require.NoError(t, err)
	assert.True(t, saldoCabo.Equal(d("48")))
}
