// Package tabular lê arquivos delimitados (.csv/.tsv) e planilhas (.xlsx) como tabelas com cabeçalho
package tabular

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrEmptyFile         = errors.New("arquivo vazio")
	ErrMissingHeader     = errors.New("cabeçalho ausente")
	ErrMissingColumn     = errors.New("coluna obrigatória ausente")
	ErrUnsupportedFormat = errors.New("formato de arquivo não suportado")
)

// Options configura a leitura das fontes
type Options struct {
	Delimiter rune   // Apenas para arquivos delimitados; padrão ','
	Sheet     string // Apenas para .xlsx; vazio = primeira planilha
}

// Row é uma linha de dados com o número da linha no arquivo de origem (cabeçalho = 1)
type Row struct {
	Line   int
	Fields []string
}

// Table é o conteúdo de uma fonte tabular indexado pelo cabeçalho
type Table struct {
	Source  string
	Headers []string
	Rows    []Row
	index   map[string]int
}

func newTable(source string, header []string) (*Table, error) {
	t := &Table{
		Source:  source,
		Headers: make([]string, len(header)),
		index:   make(map[string]int, len(header)),
	}

	for i, h := range header {
		h = strings.TrimSpace(h)
		t.Headers[i] = h
		if h != "" {
			t.index[h] = i
		}
	}

	if len(t.index) == 0 {
		return nil, errors.Wrap(ErrMissingHeader, source)
	}

	return t, nil
}

func (t *Table) appendRow(line int, fields []string) {
	empty := true
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
		if fields[i] != "" {
			empty = false
		}
	}

	// Linhas totalmente vazias não contam como registros
	if empty {
		return
	}

	t.Rows = append(t.Rows, Row{Line: line, Fields: fields})
}

// Require verifica se todas as colunas existem no cabeçalho
func (t *Table) Require(columns ...string) error {
	missing := make([]string, 0)
	for _, column := range columns {
		if _, ok := t.index[column]; !ok {
			missing = append(missing, column)
		}
	}

	if len(missing) > 0 {
		return errors.Wrapf(ErrMissingColumn, "%s: %s", t.Source, strings.Join(missing, ", "))
	}

	return nil
}

// Get retorna o valor da coluna na linha, ou "" quando a linha é mais curta que o cabeçalho
func (t *Table) Get(row Row, column string) string {
	i, ok := t.index[column]
	if !ok || i >= len(row.Fields) {
		return ""
	}
	return row.Fields[i]
}

// Open lê o arquivo de acordo com a extensão
func Open(path string, opts Options) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt", "":
		return ReadDelimitedFile(path, opts.delimiter(','))
	case ".tsv":
		return ReadDelimitedFile(path, opts.delimiter('\t'))
	case ".xlsx", ".xlsm":
		return ReadWorkbook(path, opts.Sheet)
	default:
		return nil, errors.Wrap(ErrUnsupportedFormat, path)
	}
}

func (o Options) delimiter(fallback rune) rune {
	if o.Delimiter == 0 {
		return fallback
	}
	return o.Delimiter
}

// ParseDelimiter converte o valor de configuração em runa; aceita "\t" e "tab"
func ParseDelimiter(value string) (rune, error) {
	switch value {
	case "":
		return 0, nil
	case `\t`, "tab":
		return '\t', nil
	}

	runes := []rune(value)
	if len(runes) != 1 {
		return 0, fmt.Errorf("delimitador inválido: %q", value)
	}

	return runes[0], nil
}
