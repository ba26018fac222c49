package googlesheets

import (
	"context"
	"net/http"

	"stockroom/internal/core/response"
	"stockroom/pkg/roles"
	"stockroom/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Exporter interface {
	ExportStocks(ctx context.Context) (*ExportResult, error)
}

type GoogleSheetsHandler struct {
	exporter Exporter
	logger   *zap.Logger
}

// NewGoogleSheetsHandler accepts a nil exporter; the route then answers 503.
func NewGoogleSheetsHandler(exporter Exporter, logger *zap.Logger) *GoogleSheetsHandler {
	return &GoogleSheetsHandler{exporter: exporter, logger: logger}
}

func (h *GoogleSheetsHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/reports/stocks/export", security.Authorize(roles.Admin), h.exportStocks)
}

func (h *GoogleSheetsHandler) exportStocks(c *gin.Context) {
	if h.exporter == nil {
		response.Message(c, http.StatusServiceUnavailable, "Stock report export is not configured.")
		return
	}

	result, err := h.exporter.ExportStocks(c.Request.Context())
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.OK(c, gin.H{
		"message": "Stock report exported.",
		"rows":    result.Rows,
		"range":   result.UpdatedRange,
	})
}
