package repository

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/tabular"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var ErrDuplicateProductID = errors.New("ProductId duplicado no catálogo")

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]domain.Product, domain.SourceStats, error)
	Source() string
}

type productRepository struct {
	path string
	opts tabular.Options
}

func NewProductRepository(path string, opts tabular.Options) ProductRepository {
	return &productRepository{
		path: path,
		opts: opts,
	}
}

func (r *productRepository) Source() string {
	return r.path
}

func (r *productRepository) ListProducts(ctx context.Context) ([]domain.Product, domain.SourceStats, error) {
	stats := domain.SourceStats{}

	if err := ctx.Err(); err != nil {
		return nil, stats, err
	}

	table, err := tabular.Open(r.path, r.opts)
	if err != nil {
		return nil, stats, errors.Wrap(err, "erro ao ler catálogo de produtos")
	}

	if err := table.Require(columnProductID, columnProductName, columnSupplier, columnProductCost); err != nil {
		return nil, stats, err
	}

	products := make([]domain.Product, 0, len(table.Rows))
	for _, row := range table.Rows {
		product, err := r.scanProduct(table, row)
		if err != nil {
			return nil, stats, err
		}
		products = append(products, product)
	}

	stats.Rows = len(products)
	products, stats.Duplicates = dedupe(products, domain.Product.Key)

	ids := make(map[int]int, len(products))
	for _, product := range products {
		ids[product.ProductID]++
		if ids[product.ProductID] > 1 {
			return nil, stats, errors.Wrapf(ErrDuplicateProductID, "%s: ProductId %d", r.path, product.ProductID)
		}
	}

	return products, stats, nil
}

func (r *productRepository) scanProduct(table *tabular.Table, row tabular.Row) (domain.Product, error) {
	id, err := strconv.Atoi(table.Get(row, columnProductID))
	if err != nil {
		return domain.Product{}, malformed(r.path, row, columnProductID, err)
	}

	cost, err := decimal.NewFromString(table.Get(row, columnProductCost))
	if err != nil {
		return domain.Product{}, malformed(r.path, row, columnProductCost, err)
	}

	return domain.Product{
		ProductID:   id,
		ProductName: table.Get(row, columnProductName),
		Supplier:    table.Get(row, columnSupplier),
		ProductCost: cost,
	}, nil
}

func malformed(source string, row tabular.Row, column string, err error) error {
	return errors.Wrapf(err, "%s: linha %d: valor inválido na coluna %s", source, row.Line, column)
}
