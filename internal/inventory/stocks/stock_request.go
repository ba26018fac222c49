package stocks

import (
	"stockroom/pkg/models"

	"github.com/shopspring/decimal"
)

type CreateStockRequest struct {
	ItemName      string           `json:"item_name" binding:"required,max=255"`
	Description   *string          `json:"description"`
	CategoryID    *int             `json:"category_id" binding:"required"`
	Suppliers     []*int           `json:"suppliers"`
	IsProfiling   bool             `json:"is_profiling"`
	UnitOfMeasure string           `json:"unit_of_measure" binding:"required,max=50"`
	PhysicalCount *int             `json:"physical_count" binding:"required,min=0"`
	OnHand        *int             `json:"on_hand" binding:"required,min=0"`
	Sold          *int             `json:"sold" binding:"required,min=0"`
	Date          *models.Date     `json:"date" binding:"required"`
	DateReleased  *models.Date     `json:"date_released"`
	Receiver      *string          `json:"receiver" binding:"omitempty,max=255"`
	PricePerUnit  *decimal.Decimal `json:"price_per_unit" binding:"required,min=0"`
	BuyingPrice   *decimal.Decimal `json:"buying_price" binding:"required,min=0"`
}

func (r *CreateStockRequest) Fields() models.StockFields {
	return models.StockFields{
		ItemName:      r.ItemName,
		Description:   r.Description,
		CategoryID:    *r.CategoryID,
		UnitOfMeasure: r.UnitOfMeasure,
		PhysicalCount: *r.PhysicalCount,
		OnHand:        *r.OnHand,
		Sold:          *r.Sold,
		Date:          r.Date,
		DateReleased:  r.DateReleased,
		Receiver:      r.Receiver,
		PricePerUnit:  *r.PricePerUnit,
		BuyingPrice:   *r.BuyingPrice,
	}
}

type UpdateStockRequest struct {
	ItemName      string           `json:"item_name" binding:"required,max=255"`
	Description   *string          `json:"description"`
	CategoryID    *int             `json:"category_id" binding:"required"`
	Suppliers     []*int           `json:"suppliers"`
	UnitOfMeasure string           `json:"unit_of_measure" binding:"required,max=50"`
	PhysicalCount *int             `json:"physical_count" binding:"required,min=0"`
	OnHand        *int             `json:"on_hand" binding:"required,min=0"`
	Sold          *int             `json:"sold" binding:"required,min=0"`
	Date          *models.Date     `json:"date"`
	DateReleased  *models.Date     `json:"date_released" binding:"required"`
	Receiver      *string          `json:"receiver" binding:"required,min=1,max=255"`
	PricePerUnit  *decimal.Decimal `json:"price_per_unit" binding:"required,min=0"`
	BuyingPrice   *decimal.Decimal `json:"buying_price" binding:"required,min=0"`
	Sku           string           `json:"sku" binding:"max=255"`
	Skus          []string         `json:"skus" binding:"omitempty,dive,max=255"`
}

func (r *UpdateStockRequest) Fields() models.StockFields {
	return models.StockFields{
		ItemName:      r.ItemName,
		Description:   r.Description,
		CategoryID:    *r.CategoryID,
		UnitOfMeasure: r.UnitOfMeasure,
		PhysicalCount: *r.PhysicalCount,
		OnHand:        *r.OnHand,
		Sold:          *r.Sold,
		Date:          r.Date,
		DateReleased:  r.DateReleased,
		Receiver:      r.Receiver,
		PricePerUnit:  *r.PricePerUnit,
		BuyingPrice:   *r.BuyingPrice,
	}
}

// SkuAliases returns the single sku followed by the skus list, in request order.
func (r *UpdateStockRequest) SkuAliases() []string {
	var aliases []string
	if r.Sku != "" {
		aliases = append(aliases, r.Sku)
	}
	for _, alias := range r.Skus {
		if alias != "" {
			aliases = append(aliases, alias)
		}
	}
	return aliases
}

type StockInRequest struct {
	Quantity *int   `json:"quantity"`
	Reason   string `json:"reason" binding:"max=255"`
}

type SkuRequest struct {
	Sku string `json:"sku" binding:"required,max=255"`
}

type StockListQuery struct {
	CategoryID    *int   `form:"category_id"`
	UnitOfMeasure string `form:"unit_of_measure"`
	LowStock      *int   `form:"low_stock"`
}
