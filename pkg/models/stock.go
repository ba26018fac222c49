package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices travel as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Stock is the materialized read model of one inventory item together with
// its category, suppliers and SKU aliases.
type Stock struct {
	ID            string          `json:"id"`
	ItemName      string          `json:"item_name"`
	Description   *string         `json:"description"`
	CategoryID    int             `json:"category_id"`
	Category      *Category       `json:"category,omitempty"`
	UnitOfMeasure string          `json:"unit_of_measure"`
	PhysicalCount int             `json:"physical_count"`
	OnHand        int             `json:"on_hand"`
	Sold          int             `json:"sold"`
	Date          *Date           `json:"date"`
	DateReleased  *Date           `json:"date_released"`
	Receiver      *string         `json:"receiver"`
	PricePerUnit  decimal.Decimal `json:"price_per_unit"`
	BuyingPrice   decimal.Decimal `json:"buying_price"`
	Suppliers     []Supplier      `json:"suppliers"`
	Skus          []Sku           `json:"skus"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// StockRecord is one row of the stocks table joined with its category.
type StockRecord struct {
	ID            string          `db:"id"`
	ItemName      string          `db:"item_name"`
	Description   *string         `db:"description"`
	CategoryID    int             `db:"category_id"`
	CategoryName  *string         `db:"category_name"`
	UnitOfMeasure string          `db:"unit_of_measure"`
	PhysicalCount int             `db:"physical_count"`
	OnHand        int             `db:"on_hand"`
	Sold          int             `db:"sold"`
	Date          *Date           `db:"date"`
	DateReleased  *Date           `db:"date_released"`
	Receiver      *string         `db:"receiver"`
	PricePerUnit  decimal.Decimal `db:"price_per_unit"`
	BuyingPrice   decimal.Decimal `db:"buying_price"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

func (r StockRecord) ToStock() Stock {
	stock := Stock{
		ID:            r.ID,
		ItemName:      r.ItemName,
		Description:   r.Description,
		CategoryID:    r.CategoryID,
		UnitOfMeasure: r.UnitOfMeasure,
		PhysicalCount: r.PhysicalCount,
		OnHand:        r.OnHand,
		Sold:          r.Sold,
		Date:          r.Date,
		DateReleased:  r.DateReleased,
		Receiver:      r.Receiver,
		PricePerUnit:  r.PricePerUnit,
		BuyingPrice:   r.BuyingPrice,
		Suppliers:     []Supplier{},
		Skus:          []Sku{},
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	if r.CategoryName != nil {
		stock.Category = &Category{ID: r.CategoryID, Name: *r.CategoryName}
	}

	return stock
}

// StockFields are the scalar columns written by create and update.
type StockFields struct {
	ItemName      string
	Description   *string
	CategoryID    int
	UnitOfMeasure string
	PhysicalCount int
	OnHand        int
	Sold          int
	Date          *Date
	DateReleased  *Date
	Receiver      *string
	PricePerUnit  decimal.Decimal
	BuyingPrice   decimal.Decimal
}

func (s *Stock) CreateLogView() StockLog {
	return StockLog{
		StockID: s.ID,
		Sku:     s.primarySku(),
	}
}

func (s *Stock) primarySku() string {
	if len(s.Skus) == 0 {
		return s.ID
	}

	return s.Skus[0].Sku
}
