package stocklogs

import (
	"context"

	custom_error "stockroom/pkg/errors"
	"stockroom/pkg/models"

	"go.uber.org/zap"
)

const (
	msgNoRecords    = "No records found."
	msgStockInvalid = "The selected stock id is invalid."
)

type Repository interface {
	InsertStockLog(ctx context.Context, entry *models.StockLog) error
	UpdateStockLog(ctx context.Context, id int, entry *models.StockLog) (bool, error)
	DeleteStockLog(ctx context.Context, id int) (bool, error)
	GetStockLog(ctx context.Context, id int) (*models.StockLog, error)
	GetStockLogs(ctx context.Context, stockID string) ([]models.StockLog, error)
	StockExists(ctx context.Context, stockID string) (bool, error)
}

type StockLogService struct {
	r      Repository
	logger *zap.Logger
}

func NewStockLogService(r Repository, logger *zap.Logger) *StockLogService {
	return &StockLogService{r: r, logger: logger}
}

func (s *StockLogService) CreateStockLog(ctx context.Context, req StockLogRequest) (*models.StockLog, error) {
	if err := s.validateStock(ctx, req.StockID); err != nil {
		return nil, err
	}

	entry := req.ToModel()
	if err := s.r.InsertStockLog(ctx, &entry); err != nil {
		return nil, err
	}

	s.logger.Debug("Stock log created", zap.Int("id", entry.ID), zap.String("stock_id", entry.StockID))

	return s.r.GetStockLog(ctx, entry.ID)
}

// UpdateStockLog replaces every field of the entry. Field errors are
// reported before a missing entry.
func (s *StockLogService) UpdateStockLog(ctx context.Context, id int, req StockLogRequest) (*models.StockLog, error) {
	if err := s.validateStock(ctx, req.StockID); err != nil {
		return nil, err
	}

	entry := req.ToModel()
	updated, err := s.r.UpdateStockLog(ctx, id, &entry)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, custom_error.NewNotFoundError(msgStockLogNotFound)
	}

	return s.r.GetStockLog(ctx, id)
}

func (s *StockLogService) DeleteStockLog(ctx context.Context, id int) error {
	deleted, err := s.r.DeleteStockLog(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return custom_error.NewNotFoundError(msgStockLogNotFound)
	}

	return nil
}

func (s *StockLogService) GetStockLog(ctx context.Context, id int) (*models.StockLog, error) {
	return s.r.GetStockLog(ctx, id)
}

func (s *StockLogService) GetStockLogs(ctx context.Context, stockID string) ([]models.StockLog, error) {
	entries, err := s.r.GetStockLogs(ctx, stockID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, custom_error.NewNotFoundError(msgNoRecords)
	}

	return entries, nil
}

func (s *StockLogService) validateStock(ctx context.Context, stockID string) error {
	exists, err := s.r.StockExists(ctx, stockID)
	if err != nil {
		return err
	}
	if !exists {
		verr := custom_error.NewValidationError()
		verr.Add("stock_id", msgStockInvalid)
		return verr
	}

	return nil
}
