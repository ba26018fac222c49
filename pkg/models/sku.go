package models

import "time"

type Sku struct {
	ID        int       `json:"id" db:"id"`
	Sku       string    `json:"sku" db:"sku"`
	StockID   string    `json:"stock_id" db:"stock_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
