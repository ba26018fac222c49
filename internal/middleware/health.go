package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Version is reported by the health endpoint.
var Version = "1.0.0"

type HealthStatus struct {
	Status      string    `json:"status"`
	Database    string    `json:"database"`
	LastChecked time.Time `json:"last_checked"`
	Uptime      string    `json:"uptime"`
	Version     string    `json:"version"`
}

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthCheck answers 200 while the database responds and 503 otherwise.
func HealthCheck(db Pinger) gin.HandlerFunc {
	startTime := time.Now()

	return func(c *gin.Context) {
		status := HealthStatus{
			Status:      "ok",
			Database:    "ok",
			LastChecked: time.Now(),
			Uptime:      time.Since(startTime).Round(time.Second).String(),
			Version:     Version,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		code := http.StatusOK
		if err := db.PingContext(ctx); err != nil {
			status.Status = "degraded"
			status.Database = "unreachable"
			code = http.StatusServiceUnavailable
		}

		c.JSON(code, status)
	}
}
