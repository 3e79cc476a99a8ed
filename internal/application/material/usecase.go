package material

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/almoxeletrico/estoque-api/internal/domain"
	"github.com/almoxeletrico/estoque-api/internal/domain/entity"
	"github.com/almoxeletrico/estoque-api/internal/domain/repository"
	"github.com/almoxeletrico/estoque-api/pkg/logger"
)

// UseCase cadastro de materiais: insert-if-absent por código, sem operação
// de atualização. Cadastrar o mesmo código duas vezes preserva os atributos
// do primeiro cadastro.
type UseCase struct {
	repo repository.MaterialRepository
	log  *logger.Logger
}

// NewUseCase constrói o caso de uso.
func NewUseCase(repo repository.MaterialRepository, log *logger.Logger) *UseCase {
	return &UseCase{repo: repo, log: log}
}

// LinhaMaterial uma linha da planilha de cadastro.
type LinhaMaterial struct {
	Codigo    int64
	Descricao string
	Unidade   string
}

// ResultadoCadastro resultado de um cadastro em lote.
type ResultadoCadastro struct {
	Lote       string
	Inseridos  int
	Existentes int
}

// Cadastrar valida e insere um material. Código já existente é um no-op
// benigno, não um erro.
func (uc *UseCase) Cadastrar(ctx context.Context, codigo int64, descricao, unidade string) error {
	m, err := validarMaterial(codigo, descricao, unidade)
	if err != nil {
		return err
	}
	_, err = uc.repo.Create(ctx, m)
	return err
}

// CadastrarLote insere os materiais da planilha, um a um. Códigos repetidos
// (na planilha ou já cadastrados) são contabilizados como existentes.
func (uc *UseCase) CadastrarLote(ctx context.Context, linhas []LinhaMaterial) (*ResultadoCadastro, error) {
	res := &ResultadoCadastro{Lote: uuid.New().String()}
	for _, linha := range linhas {
		m, err := validarMaterial(linha.Codigo, linha.Descricao, linha.Unidade)
		if err != nil {
			return res, err
		}
		inserido, err := uc.repo.Create(ctx, m)
		if err != nil {
			return res, err
		}
		if inserido {
			res.Inseridos++
		} else {
			res.Existentes++
		}
	}
	uc.log.Info().
		Str("lote", res.Lote).
		Int("inseridos", res.Inseridos).
		Int("existentes", res.Existentes).
		Msg("importação de materiais concluída")
	return res, nil
}

// Listar retorna o cadastro completo, ordenado por código.
func (uc *UseCase) Listar(ctx context.Context) ([]*entity.Material, error) {
	return uc.repo.List(ctx)
}

// Buscar retorna um material pelo código ou ErrNotFound.
func (uc *UseCase) Buscar(ctx context.Context, codigo int64) (*entity.Material, error) {
	m, err := uc.repo.GetByCodigo(ctx, codigo)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return m, nil
}

func validarMaterial(codigo int64, descricao, unidade string) (*entity.Material, error) {
	if codigo <= 0 {
		return nil, domain.NewValidationError("codigo", "deve ser um inteiro positivo")
	}
	descricao = strings.TrimSpace(descricao)
	if descricao == "" {
		return nil, domain.NewValidationError("descricao", "obrigatória")
	}
	unidade = strings.ToUpper(strings.TrimSpace(unidade))
	if !entity.UnidadeValida(unidade) {
		return nil, domain.NewValidationError("unidade", "deve ser UN, KG, KIT ou M")
	}
	return &entity.Material{Codigo: codigo, Descricao: descricao, Unidade: unidade}, nil
}
