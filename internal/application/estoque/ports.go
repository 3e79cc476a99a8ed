package estoque

import (
	"context"

	"github.com/almoxeletrico/estoque-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação do banco, passando um
// repositório de movimentações atado a essa transação. Garante que a leitura
// do saldo e a gravação do ajuste de inventário enxerguem o mesmo estado.
type TxRunner interface {
	Run(ctx context.Context, fn func(movRepo repository.MovimentacaoRepository) error) error
}
