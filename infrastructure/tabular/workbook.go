package tabular

import (
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// ReadWorkbook lê uma planilha de um arquivo Excel; a primeira linha é o cabeçalho
func ReadWorkbook(path string, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir planilha")
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.Wrap(ErrEmptyFile, path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: erro ao ler a planilha %q", path, sheet)
	}

	if len(rows) == 0 {
		return nil, errors.Wrap(ErrEmptyFile, path)
	}

	table, err := newTable(path, rows[0])
	if err != nil {
		return nil, err
	}

	for i, row := range rows[1:] {
		// GetRows omite células vazias no fim da linha; Table.Get trata linhas curtas
		table.appendRow(i+2, row)
	}

	return table, nil
}
