package container

import (
	"context"
	"database/sql"
	"fmt"

	"stockroom/internal/config"
	"stockroom/internal/integrations/googlesheets"
	"stockroom/internal/inventory/stocklogs"
	"stockroom/internal/inventory/stocks"
	"stockroom/internal/middleware"
	"stockroom/internal/repository"
	"stockroom/internal/users"
	"stockroom/pkg/auditlog"
	"stockroom/pkg/security"

	"go.uber.org/zap"
)

type Container struct {
	DB              *sql.DB
	Repository      *repository.Repository
	AuditLog        *auditlog.Auditlog
	TokenVerifier   *security.TokenVerifier
	RateLimiter     *middleware.RateLimiter
	StockHandler    *stocks.StockHandler
	StockLogHandler *stocklogs.StockLogHandler
	UserHandler     *users.UsersHandler
	ReportHandler   *googlesheets.GoogleSheetsHandler
}

func NewAppContainer(ctx context.Context, db *sql.DB, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	repo := repository.NewRepository(db)

	stockLogRepo := stocklogs.NewRepository(repo)
	auditLog := auditlog.NewAuditLog(stockLogRepo, logger)
	stockLogService := stocklogs.NewStockLogService(stockLogRepo, logger)
	stockLogHandler := stocklogs.NewStockLogHandler(stockLogService, logger)

	stockRepo := stocks.NewRepository(repo)
	stockService := stocks.NewStockService(repo, stockRepo, repo, auditLog, logger)
	stockHandler := stocks.NewStockHandler(stockService, logger)

	userRepo := users.NewRepository(repo)
	userHandler := users.NewHandler(userRepo, logger)

	// A nil exporter keeps the route registered but unavailable.
	var exporter googlesheets.Exporter
	if cfg.ReportExportEnabled() {
		writer, err := googlesheets.NewSheetWriter(ctx, []byte(cfg.GoogleSheetsCredentialsJSON))
		if err != nil {
			return nil, fmt.Errorf("failed to set up stock report export: %w", err)
		}
		exporter = googlesheets.NewReportService(stockRepo, writer, cfg.ReportSpreadsheetID, cfg.ReportRange, logger)
	} else {
		logger.Info("Stock report export disabled: Google Sheets is not configured")
	}
	reportHandler := googlesheets.NewGoogleSheetsHandler(exporter, logger)

	return &Container{
		DB:              db,
		Repository:      repo,
		AuditLog:        auditLog,
		TokenVerifier:   security.NewTokenVerifier(cfg.JWTSecret),
		RateLimiter:     middleware.NewRateLimiter(cfg.RateLimit, cfg.RateLimitWindow),
		StockHandler:    stockHandler,
		StockLogHandler: stockLogHandler,
		UserHandler:     userHandler,
		ReportHandler:   reportHandler,
	}, nil
}
