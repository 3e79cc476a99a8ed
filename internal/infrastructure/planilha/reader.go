// Package planilha adapta planilhas XLSX e arquivos delimitados para dentro e
// para fora dos casos de uso: leitura de lotes de importação e escrita de
// relatórios, uma aba por exportação.
package planilha

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/almoxeletrico/estoque-api/internal/domain"
)

// ColunasFaltandoError indica colunas obrigatórias ausentes no cabeçalho.
// A importação inteira é rejeitada antes de qualquer linha ser processada.
type ColunasFaltandoError struct {
	Colunas []string
}

func (e *ColunasFaltandoError) Error() string {
	return fmt.Sprintf("a planilha deve conter as colunas: %s", strings.Join(e.Colunas, ", "))
}

func (e *ColunasFaltandoError) Is(target error) bool {
	return target == domain.ErrInvalidInput
}

// Linha uma linha da planilha, indexada pelo nome da coluna em minúsculas.
type Linha map[string]string

// Ler lê um arquivo .xlsx ou .csv e devolve as linhas de dados. O cabeçalho é
// a primeira linha, comparado sem distinção de caixa. Todas as colunas
// obrigatórias precisam estar presentes; caso contrário nada é processado.
func Ler(nomeArquivo string, r io.Reader, obrigatorias ...string) ([]Linha, error) {
	var registros [][]string
	var err error
	if strings.HasSuffix(strings.ToLower(nomeArquivo), ".xlsx") {
		registros, err = lerXLSX(r)
	} else {
		registros, err = lerCSV(r)
	}
	if err != nil {
		return nil, err
	}
	if len(registros) == 0 {
		return nil, &ColunasFaltandoError{Colunas: ordenadas(obrigatorias)}
	}

	cabecalho := make([]string, len(registros[0]))
	presentes := map[string]int{}
	for i, nome := range registros[0] {
		nome = strings.ToLower(strings.TrimSpace(nome))
		cabecalho[i] = nome
		presentes[nome] = i
	}
	var faltando []string
	for _, col := range obrigatorias {
		if _, ok := presentes[strings.ToLower(col)]; !ok {
			faltando = append(faltando, strings.ToLower(col))
		}
	}
	if len(faltando) > 0 {
		return nil, &ColunasFaltandoError{Colunas: ordenadas(faltando)}
	}

	linhas := make([]Linha, 0, len(registros)-1)
	for _, registro := range registros[1:] {
		if vazia(registro) {
			continue
		}
		linha := Linha{}
		for i, nome := range cabecalho {
			if i < len(registro) {
				linha[nome] = strings.TrimSpace(registro[i])
			}
		}
		linhas = append(linhas, linha)
	}
	return linhas, nil
}

func lerXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abrir XLSX: %w", err)
	}
	defer f.Close()

	abas := f.GetSheetList()
	if len(abas) == 0 {
		return nil, fmt.Errorf("XLSX sem abas")
	}
	rows, err := f.GetRows(abas[0])
	if err != nil {
		return nil, fmt.Errorf("ler aba %q: %w", abas[0], err)
	}
	return rows, nil
}

func lerCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // planilhas reais têm linhas irregulares
	cr.TrimLeadingSpace = true
	registros, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ler CSV: %w", err)
	}
	return registros, nil
}

// Codigo converte o valor de uma coluna para código de material.
func (l Linha) Codigo(coluna string) (int64, error) {
	valor := l[coluna]
	codigo, err := strconv.ParseInt(valor, 10, 64)
	if err != nil {
		// planilhas exportadas costumam formatar inteiros como "1001.0"
		if f, errF := strconv.ParseFloat(valor, 64); errF == nil && f == float64(int64(f)) {
			return int64(f), nil
		}
		return 0, domain.NewValidationError(coluna, "código inválido: "+valor)
	}
	return codigo, nil
}

// Quantidade converte o valor de uma coluna para decimal. Aceita vírgula como
// separador decimal, comum em planilhas pt-BR.
func (l Linha) Quantidade(coluna string) (decimal.Decimal, error) {
	valor := strings.ReplaceAll(l[coluna], ",", ".")
	qtd, err := decimal.NewFromString(valor)
	if err != nil {
		return decimal.Zero, domain.NewValidationError(coluna, "quantidade inválida: "+l[coluna])
	}
	return qtd, nil
}

func vazia(registro []string) bool {
	for _, campo := range registro {
		if strings.TrimSpace(campo) != "" {
			return false
		}
	}
	return true
}

func ordenadas(colunas []string) []string {
	out := append([]string(nil), colunas...)
	sort.Strings(out)
	return out
}
