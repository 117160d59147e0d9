package tabular

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"

	"github.com/pkg/errors"
)

// ReadDelimitedFile abre e lê um arquivo delimitado
func ReadDelimitedFile(path string, delimiter rune) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir arquivo")
	}
	defer f.Close()

	return ReadDelimited(path, f, delimiter)
}

// ReadDelimited lê um conteúdo delimitado com cabeçalho na primeira linha
func ReadDelimited(source string, r io.Reader, delimiter rune) (*Table, error) {
	br := bufio.NewReader(r)

	// UTF-8 BOM: 0xEF, 0xBB, 0xBF
	bom, err := br.Peek(3)
	if err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "%s: erro ao ler arquivo", source)
	}
	if len(bom) == 3 && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		_, _ = br.Discard(3)
	}

	reader := csv.NewReader(br)
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.Wrap(ErrEmptyFile, source)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%s: erro ao ler cabeçalho", source)
	}

	table, err := newTable(source, header)
	if err != nil {
		return nil, err
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "%s: registro malformado", source)
		}

		line, _ := reader.FieldPos(0)
		table.appendRow(line, record)
	}

	return table, nil
}
