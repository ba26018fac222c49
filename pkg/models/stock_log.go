package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Actions recorded automatically by the stock service.
const (
	StockLogActionCreate  = "create"
	StockLogActionStockIn = "stock_in"
	StockLogActionDelete  = "delete"
)

type StockLog struct {
	ID           int                 `json:"id" db:"id"`
	Action       string              `json:"action" db:"action"`
	UserName     string              `json:"user_name" db:"user_name"`
	StockID      string              `json:"stock_id" db:"stock_id"`
	Sku          string              `json:"sku" db:"sku"`
	Description  *string             `json:"description" db:"description"`
	Qty          int                 `json:"qty" db:"qty"`
	Reason       string              `json:"reason" db:"reason"`
	DateReleased *Date               `json:"date_released" db:"date_released"`
	Receiver     *string             `json:"receiver" db:"receiver"`
	BuyingPrice  decimal.NullDecimal `json:"buying_price" db:"buying_price"`
	Supplier     *string             `json:"supplier" db:"supplier"`
	CreatedAt    time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at" db:"updated_at"`
}
