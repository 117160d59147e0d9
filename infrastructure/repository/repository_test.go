package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/tabular"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestProductRepository_ListProducts(t *testing.T) {
	t.Run("Catálogo com duplicata exata - deve manter a primeira ocorrência", func(t *testing.T) {
		path := writeFile(t, "Products.csv", "ProductId,ProductName,Supplier,ProductCost\n"+
			"1,Widget,Acme,2.00\n"+
			"2,Gadget,Globex,3.5\n"+
			"1,Widget,Acme,2.0\n")

		products, stats, err := NewProductRepository(path, tabular.Options{}).ListProducts(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 3, stats.Rows)
		assert.Equal(t, 1, stats.Duplicates)
		require.Len(t, products, 2)
		assert.Equal(t, 1, products[0].ProductID)
		assert.Equal(t, "Acme", products[0].Supplier)
		assert.True(t, decimal.RequireFromString("2").Equal(products[0].ProductCost))
		assert.Equal(t, "Gadget", products[1].ProductName)
	})

	t.Run("ProductId repetido com dados diferentes - deve falhar", func(t *testing.T) {
		path := writeFile(t, "Products.csv", "ProductId,ProductName,Supplier,ProductCost\n"+
			"1,Widget,Acme,2.00\n"+
			"1,Widget,Globex,2.00\n")

		_, _, err := NewProductRepository(path, tabular.Options{}).ListProducts(context.Background())
		assert.True(t, errors.Is(err, ErrDuplicateProductID))
	})

	t.Run("Campos com barra vertical - não devem ser confundidos com duplicata", func(t *testing.T) {
		path := writeFile(t, "Products.csv", "ProductId,ProductName,Supplier,ProductCost\n"+
			"1,A|B,C,2.00\n"+
			"1,A,B|C,2.00\n")

		_, stats, err := NewProductRepository(path, tabular.Options{}).ListProducts(context.Background())
		assert.True(t, errors.Is(err, ErrDuplicateProductID))
		assert.Equal(t, 0, stats.Duplicates)
	})

	t.Run("Custo inválido - deve informar linha e coluna", func(t *testing.T) {
		path := writeFile(t, "Products.csv", "ProductId,ProductName,Supplier,ProductCost\n"+
			"1,Widget,Acme,abc\n")

		_, _, err := NewProductRepository(path, tabular.Options{}).ListProducts(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "linha 2")
		assert.Contains(t, err.Error(), "ProductCost")
	})

	t.Run("Coluna ausente - deve falhar", func(t *testing.T) {
		path := writeFile(t, "Products.csv", "ProductId,ProductName\n1,Widget\n")

		_, _, err := NewProductRepository(path, tabular.Options{}).ListProducts(context.Background())
		assert.True(t, errors.Is(err, tabular.ErrMissingColumn))
	})

	t.Run("Contexto cancelado - não deve ler o arquivo", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := NewProductRepository("inexistente.csv", tabular.Options{}).ListProducts(ctx)
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestSaleRepository_ListSales(t *testing.T) {
	t.Run("Vendas com data dia/mês/ano - deve converter e remover duplicatas", func(t *testing.T) {
		path := writeFile(t, "Sales.csv", "ProductId,Date,UnitPrice,Quantity\n"+
			"1,01/02/2020,5.00,3\n"+
			"1,01/02/2020,5,3\n"+
			"99,31/12/2019,1.25,4\n")

		sales, stats, err := NewSaleRepository(path, tabular.Options{}, "2/1/2006").ListSales(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 3, stats.Rows)
		assert.Equal(t, 1, stats.Duplicates)
		require.Len(t, sales, 2)
		assert.Equal(t, time.Date(2020, time.February, 1, 0, 0, 0, 0, time.UTC), sales[0].Date)
		assert.Equal(t, int64(3), sales[0].Quantity)
		assert.Equal(t, 99, sales[1].ProductID)
		assert.True(t, decimal.RequireFromString("1.25").Equal(sales[1].UnitPrice))
	})

	t.Run("Dia e mês sem zero à esquerda - deve converter e tratar como a mesma data", func(t *testing.T) {
		path := writeFile(t, "Sales.csv", "ProductId,Date,UnitPrice,Quantity\n"+
			"1,1/2/2020,5.00,3\n"+
			"1,01/02/2020,5.00,3\n"+
			"2,9/11/2021,2.50,1\n")

		sales, stats, err := NewSaleRepository(path, tabular.Options{}, "2/1/2006").ListSales(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 1, stats.Duplicates)
		require.Len(t, sales, 2)
		assert.Equal(t, time.Date(2020, time.February, 1, 0, 0, 0, 0, time.UTC), sales[0].Date)
		assert.Equal(t, time.Date(2021, time.November, 9, 0, 0, 0, 0, time.UTC), sales[1].Date)
	})

	t.Run("Data em formato diferente - deve falhar", func(t *testing.T) {
		path := writeFile(t, "Sales.csv", "ProductId,Date,UnitPrice,Quantity\n1,2020-01-01,5.00,3\n")

		_, _, err := NewSaleRepository(path, tabular.Options{}, "2/1/2006").ListSales(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "coluna Date")
	})

	t.Run("Arquivo inexistente - deve propagar erro de leitura", func(t *testing.T) {
		repo := NewSaleRepository(filepath.Join(t.TempDir(), "Sales.csv"), tabular.Options{}, "2/1/2006")

		_, _, err := repo.ListSales(context.Background())
		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestSourceOptions(t *testing.T) {
	opts, err := SourceOptions(config.Dataset{Delimiter: ";", Sheet: "Vendas"})
	require.NoError(t, err)
	assert.Equal(t, ';', opts.Delimiter)
	assert.Equal(t, "Vendas", opts.Sheet)

	_, err = SourceOptions(config.Dataset{Delimiter: "::"})
	assert.Error(t, err)
}
