package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimentação do razão de estoque. Os valores acentuados são os
// gravados no banco e preservam o histórico da planilha original.
const (
	TipoEntrada          = "entrada"
	TipoSaida            = "saída"
	TipoBaixaEQTL        = "baixa_eqtl"
	TipoDevolucao        = "devolução"
	TipoEstorno          = "estorno"
	TipoAjusteInventario = "ajuste_inventario"
)

// Movimentacao é um registro do razão append-only. Descricao é um snapshot
// do cadastro no momento da gravação e não é re-sincronizada depois.
type Movimentacao struct {
	ID               int64
	Codigo           int64
	Descricao        string
	Quantidade       decimal.Decimal
	Tipo             string
	Projeto          string // vazio = NULL no banco
	Equipe           string // vazio = NULL no banco
	DataMovimentacao time.Time
}

// TipoValido verifica se o tipo de movimentação é conhecido.
func TipoValido(tipo string) bool {
	switch tipo {
	case TipoEntrada, TipoSaida, TipoBaixaEQTL, TipoDevolucao, TipoEstorno, TipoAjusteInventario:
		return true
	}
	return false
}

// ExigeProjeto indica se o tipo exige projeto preenchido.
func ExigeProjeto(tipo string) bool {
	switch tipo {
	case TipoSaida, TipoBaixaEQTL, TipoDevolucao, TipoEstorno:
		return true
	}
	return false
}

// ExigeEquipe indica se o tipo exige equipe preenchida. Devolução é registrada
// sem equipe no fluxo original, portanto fica de fora.
func ExigeEquipe(tipo string) bool {
	switch tipo {
	case TipoSaida, TipoBaixaEQTL, TipoEstorno:
		return true
	}
	return false
}
