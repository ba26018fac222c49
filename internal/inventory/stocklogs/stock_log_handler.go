package stocklogs

import (
	"context"
	"net/http"
	"strconv"

	"stockroom/internal/core/response"
	"stockroom/pkg/models"
	"stockroom/pkg/roles"
	"stockroom/pkg/security"
	"stockroom/pkg/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Service interface {
	CreateStockLog(ctx context.Context, req StockLogRequest) (*models.StockLog, error)
	UpdateStockLog(ctx context.Context, id int, req StockLogRequest) (*models.StockLog, error)
	DeleteStockLog(ctx context.Context, id int) error
	GetStockLog(ctx context.Context, id int) (*models.StockLog, error)
	GetStockLogs(ctx context.Context, stockID string) ([]models.StockLog, error)
}

type StockLogHandler struct {
	service Service
	logger  *zap.Logger
}

func NewStockLogHandler(s Service, logger *zap.Logger) *StockLogHandler {
	return &StockLogHandler{service: s, logger: logger}
}

func (h *StockLogHandler) RegisterRoutes(router gin.IRouter) {
	staff := security.Authorize(roles.Admin, roles.Employee)

	router.GET("/stock-logs", staff, h.GetStockLogs)
	router.POST("/stock-logs", staff, h.CreateStockLog)
	router.GET("/stock-logs/:id", staff, h.GetStockLog)
	router.PUT("/stock-logs/:id", staff, h.UpdateStockLog)
	router.DELETE("/stock-logs/:id", staff, h.DeleteStockLog)
}

func (h *StockLogHandler) GetStockLogs(c *gin.Context) {
	var query StockLogListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ValidationFailed(c, validation.FromBindError(err))
		return
	}

	entries, err := h.service.GetStockLogs(c.Request.Context(), query.StockID)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.OK(c, gin.H{"stock_logs": entries})
}

func (h *StockLogHandler) CreateStockLog(c *gin.Context) {
	var req StockLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validation.FromBindError(err))
		return
	}

	entry, err := h.service.CreateStockLog(c.Request.Context(), req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.OK(c, gin.H{
		"message":   "Stock log created successfully.",
		"stock_log": entry,
	})
}

func (h *StockLogHandler) GetStockLog(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	entry, err := h.service.GetStockLog(c.Request.Context(), id)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.OK(c, gin.H{"stock_log": entry})
}

func (h *StockLogHandler) UpdateStockLog(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req StockLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validation.FromBindError(err))
		return
	}

	entry, err := h.service.UpdateStockLog(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.OK(c, gin.H{
		"message":   "Stock log updated successfully.",
		"stock_log": entry,
	})
}

func (h *StockLogHandler) DeleteStockLog(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteStockLog(c.Request.Context(), id); err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Message(c, http.StatusOK, "Stock log deleted.")
}

// parseID answers 404 for ids that cannot name a row.
func (h *StockLogHandler) parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		response.Message(c, http.StatusNotFound, msgStockLogNotFound)
		return 0, false
	}

	return id, true
}
