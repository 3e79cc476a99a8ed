package entity

// Unidades de medida aceitas no cadastro de materiais.
const (
	UnidadeUN  = "UN"
	UnidadeKG  = "KG"
	UnidadeKIT = "KIT"
	UnidadeM   = "M"
)

// Material representa um item do cadastro. Imutável após o cadastro:
// não existe operação de atualização, apenas insert-if-absent por código.
type Material struct {
	Codigo    int64
	Descricao string
	Unidade   string
}

// UnidadeValida verifica se a unidade de medida é uma das aceitas.
func UnidadeValida(u string) bool {
	switch u {
	case UnidadeUN, UnidadeKG, UnidadeKIT, UnidadeM:
		return true
	}
	return false
}
