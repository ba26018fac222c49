package models

type Supplier struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// StockSupplier is one row of the stock_supplier join table with the
// supplier columns attached.
type StockSupplier struct {
	StockID      string `db:"stock_id"`
	SupplierID   int    `db:"supplier_id"`
	SupplierName string `db:"supplier_name"`
}
