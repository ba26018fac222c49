package googlesheets

import (
	"context"
	"fmt"

	"stockroom/internal/repository"
	"stockroom/pkg/models"

	"go.uber.org/zap"
)

// StockSource lists stocks for the report.
type StockSource interface {
	GetStocksBy(ctx context.Context, conditions repository.QueryBuilder) ([]models.Stock, error)
}

type ExportResult struct {
	Rows         int    `json:"rows"`
	UpdatedRange string `json:"range"`
}

type ReportService struct {
	stocks        StockSource
	writer        SheetWriter
	spreadsheetID string
	writeRange    string
	logger        *zap.Logger
}

func NewReportService(stocks StockSource, writer SheetWriter, spreadsheetID, writeRange string, logger *zap.Logger) *ReportService {
	return &ReportService{
		stocks:        stocks,
		writer:        writer,
		spreadsheetID: spreadsheetID,
		writeRange:    writeRange,
		logger:        logger,
	}
}

// ExportStocks overwrites the report range with the current inventory.
func (s *ReportService) ExportStocks(ctx context.Context) (*ExportResult, error) {
	stocks, err := s.stocks.GetStocksBy(ctx, repository.NewQueryBuilder())
	if err != nil {
		return nil, fmt.Errorf("failed to load stocks for report: %w", err)
	}

	rows := BuildStockRows(stocks)

	if err := s.writer.Clear(ctx, s.spreadsheetID, s.writeRange); err != nil {
		return nil, err
	}
	updatedRange, err := s.writer.Write(ctx, s.spreadsheetID, s.writeRange, rows)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Stock report exported",
		zap.String("spreadsheet_id", s.spreadsheetID),
		zap.String("range", updatedRange),
		zap.Int("stocks", len(stocks)),
	)

	return &ExportResult{Rows: len(stocks), UpdatedRange: updatedRange}, nil
}
