package dto

import "github.com/shopspring/decimal"

// ErrorResponse resposta padrão de erro da API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Campo   string `json:"campo,omitempty"`
}

// CadastrarMaterialRequest corpo do cadastro de material.
type CadastrarMaterialRequest struct {
	Codigo    int64  `json:"codigo"`
	Descricao string `json:"descricao"`
	Unidade   string `json:"unidade"`
}

// MaterialResponse um material do cadastro.
type MaterialResponse struct {
	Codigo    int64  `json:"codigo"`
	Descricao string `json:"descricao"`
	Unidade   string `json:"unidade"`
}

// RegistrarMovimentacaoRequest corpo do registro de movimentação.
// Projeto e equipe são exigidos conforme o tipo.
type RegistrarMovimentacaoRequest struct {
	Tipo       string          `json:"tipo"`
	Codigo     int64           `json:"codigo"`
	Quantidade decimal.Decimal `json:"quantidade"`
	Projeto    string          `json:"projeto"`
	Equipe     string          `json:"equipe"`
}

// MovimentacaoResponse uma linha do razão.
type MovimentacaoResponse struct {
	ID         int64           `json:"id"`
	Data       string          `json:"data"`
	Codigo     int64           `json:"codigo"`
	Descricao  string          `json:"descricao"`
	Tipo       string          `json:"tipo"`
	Quantidade decimal.Decimal `json:"quantidade"`
	Projeto    string          `json:"projeto,omitempty"`
	Equipe     string          `json:"equipe,omitempty"`
}

// LinhaEstoqueResponse uma linha da visão geral do estoque.
type LinhaEstoqueResponse struct {
	Codigo     int64           `json:"codigo"`
	Descricao  string          `json:"descricao"`
	Entradas   decimal.Decimal `json:"entradas"`
	Saidas     decimal.Decimal `json:"saidas"`
	BaixasEQTL decimal.Decimal `json:"baixas_eqtl"`
	Devolucoes decimal.Decimal `json:"devolucoes"`
	Ajustes    decimal.Decimal `json:"ajustes"`
	Saldo      decimal.Decimal `json:"saldo"`
}

// LinhaProjetoResponse conciliação de um material em um projeto.
type LinhaProjetoResponse struct {
	Codigo     int64           `json:"codigo"`
	Descricao  string          `json:"descricao"`
	Saidas     decimal.Decimal `json:"saidas"`
	BaixasEQTL decimal.Decimal `json:"baixas_eqtl"`
	Devolucoes decimal.Decimal `json:"devolucoes"`
	Estornos   decimal.Decimal `json:"estornos"`
	Saldo      decimal.Decimal `json:"saldo"`
	Status     string          `json:"status"`
}

// ProjetoResponse um projeto e as equipes que movimentaram material nele.
type ProjetoResponse struct {
	Nome    string   `json:"nome"`
	Equipes []string `json:"equipes"`
}

// AjusteInventarioRequest corpo da conciliação manual de contagem.
type AjusteInventarioRequest struct {
	Codigo         int64           `json:"codigo"`
	NovaQuantidade decimal.Decimal `json:"nova_quantidade"`
}

// AjusteResponse resultado de uma conciliação de contagem. MovimentacaoID é
// nulo quando o saldo já estava correto e nada foi gravado.
type AjusteResponse struct {
	Codigo         int64           `json:"codigo"`
	SaldoAnterior  decimal.Decimal `json:"saldo_anterior"`
	NovaQuantidade decimal.Decimal `json:"nova_quantidade"`
	Ajuste         decimal.Decimal `json:"ajuste"`
	MovimentacaoID *int64          `json:"movimentacao_id"`
}

// ResultadoLoteResponse resultado de uma importação em lote.
type ResultadoLoteResponse struct {
	Lote        string  `json:"lote"`
	Registradas int     `json:"registradas"`
	Ignoradas   []int64 `json:"ignoradas,omitempty"`
	Invalidas   []int64 `json:"invalidas,omitempty"`
}
