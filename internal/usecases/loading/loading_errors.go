package loading

import "errors"

var (
	ErrLoadProducts       = errors.New("falha ao carregar produtos")
	ErrLoadSales          = errors.New("falha ao carregar vendas")
	ErrGenerateSnapshotID = errors.New("falha ao gerar id do snapshot")
)
