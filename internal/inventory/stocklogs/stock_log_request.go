package stocklogs

import (
	"stockroom/pkg/models"

	"github.com/shopspring/decimal"
)

type StockLogRequest struct {
	Action       string           `json:"action" binding:"required,max=255"`
	UserName     string           `json:"user_name" binding:"required,max=255"`
	StockID      string           `json:"stock_id" binding:"required"`
	Sku          string           `json:"sku" binding:"required,max=255"`
	Description  *string          `json:"description"`
	Qty          *int             `json:"qty" binding:"required"`
	Reason       string           `json:"reason" binding:"required"`
	DateReleased *models.Date     `json:"date_released"`
	Receiver     *string          `json:"receiver" binding:"omitempty,max=255"`
	BuyingPrice  *decimal.Decimal `json:"buying_price"`
	Supplier     *string          `json:"supplier" binding:"omitempty,max=255"`
}

func (r *StockLogRequest) ToModel() models.StockLog {
	entry := models.StockLog{
		Action:       r.Action,
		UserName:     r.UserName,
		StockID:      r.StockID,
		Sku:          r.Sku,
		Description:  r.Description,
		Qty:          *r.Qty,
		Reason:       r.Reason,
		DateReleased: r.DateReleased,
		Receiver:     r.Receiver,
		Supplier:     r.Supplier,
	}
	if r.BuyingPrice != nil {
		entry.BuyingPrice = decimal.NewNullDecimal(*r.BuyingPrice)
	}
	return entry
}

type StockLogListQuery struct {
	StockID string `form:"stock_id"`
}
