package estoque_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/almoxeletrico/estoque-api/internal/domain/entity"
	"github.com/almoxeletrico/estoque-api/internal/domain/repository"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória dos ports de persistência. O razão é um slice append-only;
// os agregados reproduzem as mesmas fórmulas SQL do adaptador PostgreSQL.
// ──────────────────────────────────────────────────────────────────────────────

type fakeMaterialRepo struct {
	materiais map[int64]*entity.Material
}

func newFakeMaterialRepo(ms ...*entity.Material) *fakeMaterialRepo {
	repo := &fakeMaterialRepo{materiais: map[int64]*entity.Material{}}
	for _, m := range ms {
		repo.materiais[m.Codigo] = m
	}
	return repo
}

func (f *fakeMaterialRepo) Create(_ context.Context, m *entity.Material) (bool, error) {
	if _, ok := f.materiais[m.Codigo]; ok {
		return false, nil
	}
	copia := *m
	f.materiais[m.Codigo] = &copia
	return true, nil
}

func (f *fakeMaterialRepo) GetByCodigo(_ context.Context, codigo int64) (*entity.Material, error) {
	m, ok := f.materiais[codigo]
	if !ok {
		return nil, nil
	}
	return m, nil
}

func (f *fakeMaterialRepo) List(_ context.Context) ([]*entity.Material, error) {
	var list []*entity.Material
	for _, m := range f.materiais {
		list = append(list, m)
	}
	return list, nil
}

type fakeMovRepo struct {
	materiais *fakeMaterialRepo
	seq       int64
	movs      []*entity.Movimentacao
}

func newFakeMovRepo(materiais *fakeMaterialRepo) *fakeMovRepo {
	return &fakeMovRepo{materiais: materiais}
}

func (f *fakeMovRepo) Create(_ context.Context, mov *entity.Movimentacao) (int64, error) {
	f.seq++
	copia := *mov
	copia.ID = f.seq
	// timestamps monotônicos não-decrescentes na ordem de inserção
	copia.DataMovimentacao = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(f.seq) * time.Second)
	f.movs = append(f.movs, &copia)
	return f.seq, nil
}

func (f *fakeMovRepo) Saldo(_ context.Context, codigo int64) (decimal.Decimal, error) {
	saldo := decimal.Zero
	for _, m := range f.movs {
		if m.Codigo != codigo {
			continue
		}
		switch m.Tipo {
		case entity.TipoEntrada, entity.TipoDevolucao, entity.TipoAjusteInventario:
			saldo = saldo.Add(m.Quantidade)
		case entity.TipoSaida:
			saldo = saldo.Sub(m.Quantidade)
		}
	}
	return saldo, nil
}

func (f *fakeMovRepo) ResumoEstoque(_ context.Context, codigo *int64) ([]repository.ResumoEstoque, error) {
	var list []repository.ResumoEstoque
	for _, material := range f.materiais.materiais {
		if codigo != nil && material.Codigo != *codigo {
			continue
		}
		res := repository.ResumoEstoque{Codigo: material.Codigo, Descricao: material.Descricao}
		for _, m := range f.movs {
			if m.Codigo != material.Codigo {
				continue
			}
			switch m.Tipo {
			case entity.TipoEntrada:
				res.Entradas = res.Entradas.Add(m.Quantidade)
			case entity.TipoSaida:
				res.Saidas = res.Saidas.Add(m.Quantidade)
			case entity.TipoBaixaEQTL:
				res.BaixasEQTL = res.BaixasEQTL.Add(m.Quantidade)
			case entity.TipoDevolucao:
				res.Devolucoes = res.Devolucoes.Add(m.Quantidade)
			case entity.TipoAjusteInventario:
				res.Ajustes = res.Ajustes.Add(m.Quantidade)
			}
		}
		list = append(list, res)
	}
	return list, nil
}

func (f *fakeMovRepo) ResumoPorProjeto(_ context.Context, projeto string) ([]repository.ResumoProjeto, error) {
	porCodigo := map[int64]*repository.ResumoProjeto{}
	var ordem []int64
	for _, m := range f.movs {
		if m.Projeto != projeto {
			continue
		}
		res, ok := porCodigo[m.Codigo]
		if !ok {
			res = &repository.ResumoProjeto{Codigo: m.Codigo, Descricao: m.Descricao}
			porCodigo[m.Codigo] = res
			ordem = append(ordem, m.Codigo)
		}
		switch m.Tipo {
		case entity.TipoSaida:
			res.Saidas = res.Saidas.Add(m.Quantidade)
		case entity.TipoBaixaEQTL:
			res.BaixasEQTL = res.BaixasEQTL.Add(m.Quantidade)
		case entity.TipoDevolucao:
			res.Devolucoes = res.Devolucoes.Add(m.Quantidade)
		case entity.TipoEstorno:
			res.Estornos = res.Estornos.Add(m.Quantidade)
		}
	}
	var list []repository.ResumoProjeto
	for _, codigo := range ordem {
		list = append(list, *porCodigo[codigo])
	}
	return list, nil
}

func (f *fakeMovRepo) Projetos(_ context.Context) ([]repository.Projeto, error) {
	indice := map[string]int{}
	var list []repository.Projeto
	for _, m := range f.movs {
		if m.Projeto == "" {
			continue
		}
		i, ok := indice[m.Projeto]
		if !ok {
			i = len(list)
			indice[m.Projeto] = i
			list = append(list, repository.Projeto{Nome: m.Projeto})
		}
		if m.Equipe != "" && !contem(list[i].Equipes, m.Equipe) {
			list[i].Equipes = append(list[i].Equipes, m.Equipe)
		}
	}
	return list, nil
}

func (f *fakeMovRepo) List(_ context.Context, filtro repository.FiltroMovimentacao) ([]*entity.Movimentacao, error) {
	var list []*entity.Movimentacao
	for _, m := range f.movs {
		if filtro.Codigo != nil && m.Codigo != *filtro.Codigo {
			continue
		}
		if filtro.Tipo != nil && m.Tipo != *filtro.Tipo {
			continue
		}
		if filtro.DataInicial != nil && m.DataMovimentacao.Truncate(24*time.Hour).Before(filtro.DataInicial.Truncate(24*time.Hour)) {
			continue
		}
		if filtro.DataFinal != nil && m.DataMovimentacao.Truncate(24*time.Hour).After(filtro.DataFinal.Truncate(24*time.Hour)) {
			continue
		}
		list = append(list, m)
	}
	// mais recente primeiro
	for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
		list[i], list[j] = list[j], list[i]
	}
	return list, nil
}

func contem(lista []string, v string) bool {
	for _, item := range lista {
		if item == v {
			return true
		}
	}
	return false
}

// fakeTxRunner executa o callback direto sobre o repositório em memória.
type fakeTxRunner struct {
	movRepo *fakeMovRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(movRepo repository.MovimentacaoRepository) error) error {
	return fn(f.movRepo)
}
