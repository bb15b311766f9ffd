package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/atharv2285/Stage-portdesign/internal/domain"
)

// respondError maps the gateway error taxonomy onto HTTP responses. Every
// error body carries a short message and, when available, a details string;
// internals never leak raw.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	if logger == nil {
		logger = zap.L()
	}

	var gerr *domain.Error
	if !errors.As(err, &gerr) {
		logger.Error("unclassified failure",
			zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	status := gerr.HTTPStatus()
	fields := []zap.Field{
		zap.String("path", c.Request.URL.Path),
		zap.String("kind", string(gerr.Kind)),
		zap.Int("status", status),
		zap.Error(err),
	}
	if status >= 500 {
		logger.Error("request failed", fields...)
	} else {
		logger.Warn("request rejected", fields...)
	}

	payload := gin.H{"error": gerr.Message}
	if gerr.Details != "" {
		payload["details"] = gerr.Details
	}
	c.JSON(status, payload)
}
