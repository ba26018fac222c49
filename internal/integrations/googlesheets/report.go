package googlesheets

import "stockroom/pkg/models"

var reportHeader = []interface{}{
	"ID",
	"Item name",
	"Category",
	"Unit",
	"Physical count",
	"On hand",
	"Sold",
	"Price per unit",
	"Buying price",
}

// BuildStockRows renders stocks as sheet rows, header first. Prices are
// written as strings so the sheet keeps their exact scale.
func BuildStockRows(stocks []models.Stock) [][]interface{} {
	rows := make([][]interface{}, 0, len(stocks)+1)
	rows = append(rows, reportHeader)

	for _, stock := range stocks {
		category := ""
		if stock.Category != nil {
			category = stock.Category.Name
		}

		rows = append(rows, []interface{}{
			stock.ID,
			stock.ItemName,
			category,
			stock.UnitOfMeasure,
			stock.PhysicalCount,
			stock.OnHand,
			stock.Sold,
			stock.PricePerUnit.StringFixed(2),
			stock.BuyingPrice.StringFixed(2),
		})
	}

	return rows
}
