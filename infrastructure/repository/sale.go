package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/tabular"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

type SaleRepository interface {
	ListSales(ctx context.Context) ([]domain.Sale, domain.SourceStats, error)
	Source() string
}

type saleRepository struct {
	path       string
	opts       tabular.Options
	dateFormat string
}

func NewSaleRepository(path string, opts tabular.Options, dateFormat string) SaleRepository {
	return &saleRepository{
		path:       path,
		opts:       opts,
		dateFormat: dateFormat,
	}
}

func (r *saleRepository) Source() string {
	return r.path
}

func (r *saleRepository) ListSales(ctx context.Context) ([]domain.Sale, domain.SourceStats, error) {
	stats := domain.SourceStats{}

	if err := ctx.Err(); err != nil {
		return nil, stats, err
	}

	table, err := tabular.Open(r.path, r.opts)
	if err != nil {
		return nil, stats, errors.Wrap(err, "erro ao ler vendas")
	}

	if err := table.Require(columnProductID, columnDate, columnUnitPrice, columnQuantity); err != nil {
		return nil, stats, err
	}

	sales := make([]domain.Sale, 0, len(table.Rows))
	for _, row := range table.Rows {
		sale, err := r.scanSale(table, row)
		if err != nil {
			return nil, stats, err
		}
		sales = append(sales, sale)
	}

	stats.Rows = len(sales)
	sales, stats.Duplicates = dedupe(sales, domain.Sale.Key)

	return sales, stats, nil
}

func (r *saleRepository) scanSale(table *tabular.Table, row tabular.Row) (domain.Sale, error) {
	id, err := strconv.Atoi(table.Get(row, columnProductID))
	if err != nil {
		return domain.Sale{}, malformed(r.path, row, columnProductID, err)
	}

	date, err := time.Parse(r.dateFormat, table.Get(row, columnDate))
	if err != nil {
		return domain.Sale{}, malformed(r.path, row, columnDate, err)
	}

	price, err := decimal.NewFromString(table.Get(row, columnUnitPrice))
	if err != nil {
		return domain.Sale{}, malformed(r.path, row, columnUnitPrice, err)
	}

	quantity, err := strconv.ParseInt(table.Get(row, columnQuantity), 10, 64)
	if err != nil {
		return domain.Sale{}, malformed(r.path, row, columnQuantity, err)
	}

	return domain.Sale{
		ProductID: id,
		Date:      date,
		UnitPrice: price,
		Quantity:  quantity,
	}, nil
}
