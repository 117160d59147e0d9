// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"github.com/vfg2006/sales-dashboard-api/infrastructure/tabular"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

const (
	columnProductID   = "ProductId"
	columnProductName = "ProductName"
	columnSupplier    = "Supplier"
	columnProductCost = "ProductCost"
	columnDate        = "Date"
	columnUnitPrice   = "UnitPrice"
	columnQuantity    = "Quantity"
)

// SourceOptions converte a configuração do dataset nas opções de leitura
func SourceOptions(cfg config.Dataset) (tabular.Options, error) {
	delimiter, err := tabular.ParseDelimiter(cfg.Delimiter)
	if err != nil {
		return tabular.Options{}, err
	}

	return tabular.Options{
		Delimiter: delimiter,
		Sheet:     cfg.Sheet,
	}, nil
}

// dedupe remove linhas exatamente iguais mantendo a primeira ocorrência e a ordem de entrada
func dedupe[T any, K comparable](rows []T, key func(T) K) ([]T, int) {
	seen := make(map[K]struct{}, len(rows))
	unique := make([]T, 0, len(rows))

	for _, row := range rows {
		k := key(row)
		if _, exists := seen[k]; exists {
			continue
		}
		seen[k] = struct{}{}
		unique = append(unique, row)
	}

	return unique, len(rows) - len(unique)
}
