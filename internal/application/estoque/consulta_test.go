package estoque_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appestoque "github.com/almoxeletrico/estoque-api/internal/application/estoque"
	"github.com/almoxeletrico/estoque-api/internal/domain"
	"github.com/almoxeletrico/estoque-api/internal/domain/entity"
	"github.com/almoxeletrico/estoque-api/internal/domain/repository"
)

func TestConsultar_FiltrosCompoemComAND(t *testing.T) {
	parafuso := &entity.Material{Codigo: 20, Descricao: "Parafuso", Unidade: entity.UnidadeUN}
	registrar, movRepo := novoAmbiente(cabo(), parafuso)
	consulta := appestoque.NewConsultaUseCase(movRepo)
	ctx := context.Background()

	mustRegistrar(t, registrar, appestoque.MovimentacaoInput{Tipo: entity.TipoEntrada, Codigo: 10, Quantidade: d("100")})
	mustRegistrar(t, registrar, appestoque.MovimentacaoInput{Tipo: entity.TipoEntrada, Codigo: 20, Quantidade: d("30")})
	mustRegistrar(t, registrar, appestoque.MovimentacaoInput{Tipo: entity.TipoSaida, Codigo: 10, Quantidade: d("40"), Projeto: "P1", Equipe: "E1"})

	codigo := int64(10)
	tipo := entity.TipoEntrada
	movs, err := consulta.Consultar(ctx, repository.FiltroMovimentacao{Codigo: &codigo, Tipo: &tipo})
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, int64(10), movs[0].Codigo)
	assert.Equal(t, entity.TipoEntrada, movs[0].Tipo)
}

func TestConsultar_OrdenadoPorDataDecrescente(t *testing.T) {
	registrar, movRepo := novoAmbiente(cabo())
	consulta := appestoque.NewConsultaUseCase(movRepo)

	mustRegistrar(t, registrar, appestoque.MovimentacaoInput{Tipo: entity.TipoEntrada, Codigo: 10, Quantidade: d("1")})
	mustRegistrar(t, registrar, appestoque.MovimentacaoInput{Tipo: entity.TipoEntrada, Codigo: 10, Quantidade: d("2")})
	mustRegistrar(t, registrar, appestoque.MovimentacaoInput{Tipo: entity.TipoEntrada, Codigo: 10, Quantidade: d("3")})

	movs, err := consulta.Consultar(context.Background(), repository.FiltroMovimentacao{})
	require.NoError(t, err)
	require.Len(t, movs, 3)
	assert.True(t, movs[0].Quantidade.Equal(d("3")), "mais recente primeiro")
	assert.False(t, movs[0].DataMovimentacao.Before(movs[1].DataMovimentacao))
	assert.False(t, movs[1].DataMovimentacao.Before(movs[2].DataMovimentacao))
}

func TestConsultar_SemResultadoNaoEhErro(t *testing.T) {
	_, movRepo := novoAmbiente(cabo())
	consulta := appestoque.NewConsultaUseCase(movRepo)

	codigo := int64(999)
	movs, err := consulta.Consultar(context.Background(), repository.FiltroMovimentacao{Codigo: &codigo})
	require.NoError(t, err)
	assert.Empty(t, movs)
}

func TestConsultar_TipoDesconhecido(t *testing.T) {
	_, movRepo := novoAmbiente(cabo())
	consulta := appestoque.NewConsultaUseCase(movRepo)

	tipo := "inexistente"
	_, err := consulta.Consultar(context.Background(), repository.FiltroMovimentacao{Tipo: &tipo})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "tipo", vErr.Campo)
}
