package domain

import "time"

// Dataset é o par de tabelas carregadas na inicialização (ou num reload)
type Dataset struct {
	SnapshotID string
	LoadedAt   time.Time
	Products   []Product
	Sales      []Sale
	Stats      LoadStats
}

// LoadStats resume a leitura das fontes
type LoadStats struct {
	ProductRows       int `json:"product_rows"`
	ProductDuplicates int `json:"product_duplicates"`
	SaleRows          int `json:"sale_rows"`
	SaleDuplicates    int `json:"sale_duplicates"`
	UnmatchedSales    int `json:"unmatched_sales"`
	ProductsLoaded    int `json:"products_loaded"`
	SalesLoaded       int `json:"sales_loaded"`
}

// DatasetInfo é a resposta do endpoint de metadados do snapshot carregado
type DatasetInfo struct {
	SnapshotID     string    `json:"snapshot_id"`
	LoadedAt       time.Time `json:"loaded_at"`
	ProductsSource string    `json:"products_source"`
	SalesSource    string    `json:"sales_source"`
	Years          []int     `json:"years"`
	Stats          LoadStats `json:"stats"`
}

// SourceStats conta as linhas lidas de uma fonte e as duplicatas removidas
type SourceStats struct {
	Rows       int
	Duplicates int
}
