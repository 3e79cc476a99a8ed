package estoque

import "github.com/shopspring/decimal"

// Status de conciliação de um material dentro de um projeto.
const (
	StatusBaixado  = "Baixado"
	StatusPendente = "Pendente"
)

// Saldo calcula o saldo global de um material a partir dos agregados por tipo.
// Fórmula canônica: entradas − saídas + devoluções + ajustes de inventário.
// Baixas EQTL e estornos são movimentações de conciliação e ficam fora do
// saldo: a saída que as originou já decrementou o estoque.
func Saldo(entradas, saidas, devolucoes, ajustes decimal.Decimal) decimal.Decimal {
	return entradas.Sub(saidas).Add(devolucoes).Add(ajustes)
}

// SaldoProjeto calcula o saldo de um material no escopo de um projeto:
// o que saiu e ainda não voltou. Distinto do saldo global.
func SaldoProjeto(saidas, devolucoes decimal.Decimal) decimal.Decimal {
	return saidas.Sub(devolucoes)
}

// StatusProjeto deriva o status de conciliação de um material em um projeto.
// "Baixado" exige igualdade exata nos dois pares de forma independente:
// saídas == baixas EQTL e devoluções == estornos. Qualquer diferença em
// qualquer dos pares resulta em "Pendente". Não há tolerância.
func StatusProjeto(saidas, baixasEQTL, devolucoes, estornos decimal.Decimal) string {
	if saidas.Equal(baixasEQTL) && devolucoes.Equal(estornos) {
		return StatusBaixado
	}
	return StatusPendente
}
