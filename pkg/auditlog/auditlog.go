package auditlog

import (
	"context"

	"stockroom/pkg/models"

	"go.uber.org/zap"
)

// Writer persists stock log entries.
type Writer interface {
	InsertStockLog(ctx context.Context, entry *models.StockLog) error
}

type Auditable interface {
	CreateLogView() models.StockLog
}

// Entry describes one stock movement done by actor.
type Entry struct {
	Action string
	Actor  string
	Qty    int
	Reason string
}

type Auditlog struct {
	w      Writer
	logger *zap.Logger
}

func NewAuditLog(w Writer, logger *zap.Logger) *Auditlog {
	return &Auditlog{w: w, logger: logger}
}

// Log records entry against item. Failures are logged, never returned.
func (a *Auditlog) Log(ctx context.Context, entry Entry, item Auditable) {
	stockLog := item.CreateLogView()
	stockLog.Action = entry.Action
	stockLog.UserName = entry.Actor
	stockLog.Qty = entry.Qty
	stockLog.Reason = entry.Reason

	if err := a.w.InsertStockLog(ctx, &stockLog); err != nil {
		a.logger.Error("Unable to create stock log entry",
			zap.String("stock_id", stockLog.StockID),
			zap.String("action", stockLog.Action),
			zap.Error(err),
		)
		return
	}

	a.logger.Debug("Created stock log entry",
		zap.String("stock_id", stockLog.StockID),
		zap.String("action", stockLog.Action),
	)
}
