package stocklogs

import (
	"context"
	"fmt"

	"stockroom/internal/repository"
	custom_error "stockroom/pkg/errors"
	"stockroom/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

const msgStockLogNotFound = "Stock log not found."

type StockLogRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *StockLogRepository {
	return &StockLogRepository{repository: r}
}

// InsertStockLog persists entry and fills in its generated id.
func (r *StockLogRepository) InsertStockLog(ctx context.Context, entry *models.StockLog) error {
	_, err := r.repository.GoquDBWrapper.Insert("stock_logs").
		Rows(stockLogRecord(entry)).
		Returning("id").
		Executor().
		ScanValContext(ctx, &entry.ID)
	if err != nil {
		return fmt.Errorf("failed to insert stock log: %w", err)
	}

	return nil
}

func (r *StockLogRepository) UpdateStockLog(ctx context.Context, id int, entry *models.StockLog) (bool, error) {
	record := stockLogRecord(entry)
	record["updated_at"] = goqu.L("NOW()")

	result, err := r.repository.GoquDBWrapper.Update("stock_logs").
		Set(record).
		Where(goqu.Ex{"id": id}).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to update stock log %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}

func (r *StockLogRepository) DeleteStockLog(ctx context.Context, id int) (bool, error) {
	result, err := r.repository.GoquDBWrapper.Delete("stock_logs").
		Where(goqu.Ex{"id": id}).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to delete stock log %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}

func (r *StockLogRepository) GetStockLog(ctx context.Context, id int) (*models.StockLog, error) {
	var entry models.StockLog
	found, err := r.getStockLogQuery().
		Where(goqu.Ex{"id": id}).
		Executor().
		ScanStructContext(ctx, &entry)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stock log %d: %w", id, err)
	}
	if !found {
		return nil, custom_error.NewNotFoundError(msgStockLogNotFound)
	}

	return &entry, nil
}

// GetStockLogs lists entries oldest first. An empty stockID lists everything.
func (r *StockLogRepository) GetStockLogs(ctx context.Context, stockID string) ([]models.StockLog, error) {
	query := r.getStockLogQuery()
	if stockID != "" {
		query = query.Where(goqu.Ex{"stock_id": stockID})
	}

	var entries []models.StockLog
	if err := query.Order(goqu.C("id").Asc()).Executor().ScanStructsContext(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to list stock logs: %w", err)
	}

	return entries, nil
}

func (r *StockLogRepository) StockExists(ctx context.Context, stockID string) (bool, error) {
	var count int
	_, err := r.repository.GoquDBWrapper.From("stocks").
		Select(goqu.COUNT("*")).
		Where(goqu.Ex{"id": stockID}).
		Executor().
		ScanValContext(ctx, &count)
	if err != nil {
		return false, fmt.Errorf("failed to check stock %s: %w", stockID, err)
	}

	return count > 0, nil
}

func (r *StockLogRepository) getStockLogQuery() *goqu.SelectDataset {
	return r.repository.GoquDBWrapper.From("stock_logs").Select(
		"id",
		"action",
		"user_name",
		"stock_id",
		"sku",
		"description",
		"qty",
		"reason",
		"date_released",
		"receiver",
		"buying_price",
		"supplier",
		"created_at",
		"updated_at",
	)
}

func stockLogRecord(entry *models.StockLog) goqu.Record {
	record := goqu.Record{
		"action":        entry.Action,
		"user_name":     entry.UserName,
		"stock_id":      entry.StockID,
		"sku":           entry.Sku,
		"description":   entry.Description,
		"qty":           entry.Qty,
		"reason":        entry.Reason,
		"date_released": nil,
		"receiver":      entry.Receiver,
		"buying_price":  entry.BuyingPrice,
		"supplier":      entry.Supplier,
	}
	if entry.DateReleased != nil {
		record["date_released"] = *entry.DateReleased
	}
	return record
}
