package stocks

import (
	"context"
	"errors"
	"io"
	"net/http"

	"stockroom/internal/core/response"
	"stockroom/internal/repository"
	"stockroom/pkg/models"
	"stockroom/pkg/roles"
	"stockroom/pkg/security"
	"stockroom/pkg/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Service interface {
	CreateStock(ctx context.Context, actor string, req CreateStockRequest) (*models.Stock, error)
	AdjustIncoming(ctx context.Context, actor, id string, req StockInRequest) (*models.Stock, error)
	UpdateStock(ctx context.Context, id string, req UpdateStockRequest) (*models.Stock, error)
	DeleteStock(ctx context.Context, actor, id string) error
	AddSku(ctx context.Context, stockID, alias string) (*models.Sku, error)
	RemoveSku(ctx context.Context, stockID, alias string) error
	GetStock(ctx context.Context, id string) (*models.Stock, error)
	GetStocks(ctx context.Context, conditions repository.QueryBuilder) ([]models.Stock, error)
}

type StockHandler struct {
	service Service
	logger  *zap.Logger
}

func NewStockHandler(s Service, logger *zap.Logger) *StockHandler {
	return &StockHandler{
		service: s,
		logger:  logger,
	}
}

func (h *StockHandler) RegisterRoutes(router gin.IRouter) {
	staff := security.Authorize(roles.Admin, roles.Employee)

	router.GET("/stocks", staff, h.GetStocks)
	router.POST("/stocks", staff, h.CreateStock)
	router.GET("/stocks/:id", staff, h.GetStock)
	router.PUT("/stocks/:id", staff, h.UpdateStock)
	router.DELETE("/stocks/:id", staff, h.DeleteStock)
	router.POST("/stocks/:id/stock-in", staff, h.StockIn)
	router.POST("/stocks/:id/skus", staff, h.AddSku)
	router.DELETE("/stocks/:id/skus/:alias", staff, h.RemoveSku)
}

func (h *StockHandler) GetStocks(c *gin.Context) {
	var query StockListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ValidationFailed(c, validation.FromBindError(err))
		return
	}

	conditions := repository.NewQueryBuilder()
	if query.CategoryID != nil {
		conditions.AddCondition("category_id", *query.CategoryID)
	}
	if query.UnitOfMeasure != "" {
		conditions.AddCondition("unit_of_measure", query.UnitOfMeasure)
	}
	if query.LowStock != nil {
		conditions.AddUpperBound("on_hand", *query.LowStock)
	}

	stocks, err := h.service.GetStocks(c.Request.Context(), conditions)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.OK(c, gin.H{"stocks": stocks})
}

func (h *StockHandler) CreateStock(c *gin.Context) {
	var req CreateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("Stock validation failed", zap.Error(err))
		response.ValidationFailed(c, validation.FromBindError(err))
		return
	}

	stock, err := h.service.CreateStock(c.Request.Context(), security.GetUsername(c), req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.OK(c, gin.H{
		"message": "New stock added successfully.",
		"stock":   stock,
	})
}

func (h *StockHandler) StockIn(c *gin.Context) {
	var req StockInRequest
	// An empty body means a quantity of one.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.ValidationFailed(c, validation.FromBindError(err))
		return
	}

	stock, err := h.service.AdjustIncoming(c.Request.Context(), security.GetUsername(c), c.Param("id"), req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.OK(c, gin.H{
		"message": "Stock updated successfully.",
		"stock":   stock,
	})
}

func (h *StockHandler) GetStock(c *gin.Context) {
	stock, err := h.service.GetStock(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.OK(c, gin.H{"stock": stock})
}

func (h *StockHandler) UpdateStock(c *gin.Context) {
	var req UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validation.FromBindError(err))
		return
	}

	stock, err := h.service.UpdateStock(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.OK(c, gin.H{
		"message": "Stock updated successfully.",
		"stock":   stock,
	})
}

func (h *StockHandler) DeleteStock(c *gin.Context) {
	if err := h.service.DeleteStock(c.Request.Context(), security.GetUsername(c), c.Param("id")); err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Message(c, http.StatusOK, "Stock deleted successfully.")
}

func (h *StockHandler) AddSku(c *gin.Context) {
	var req SkuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validation.FromBindError(err))
		return
	}

	sku, err := h.service.AddSku(c.Request.Context(), c.Param("id"), req.Sku)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.OK(c, gin.H{
		"message": "SKU added successfully.",
		"sku":     sku,
	})
}

func (h *StockHandler) RemoveSku(c *gin.Context) {
	if err := h.service.RemoveSku(c.Request.Context(), c.Param("id"), c.Param("alias")); err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Message(c, http.StatusOK, "SKU removed successfully.")
}
