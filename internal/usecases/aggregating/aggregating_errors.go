package aggregating

import "errors"

var (
	ErrNilDataset        = errors.New("dataset não carregado")
	ErrInvalidBinWidth   = errors.New("largura da faixa do histograma deve ser positiva")
	ErrInvalidPriceRange = errors.New("intervalo do histograma inválido")
	ErrInvalidMarkerSize = errors.New("tamanho máximo do marcador não pode ser negativo")
)
