package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	brokersvc "github.com/atharv2285/Stage-portdesign/internal/service/broker"
)

// BrokerHandler serves the brokerage OAuth and portfolio endpoints.
type BrokerHandler struct {
	service *brokersvc.Service
	logger  *zap.Logger
}

// NewBrokerHandler creates the broker handler.
func NewBrokerHandler(service *brokersvc.Service, logger *zap.Logger) *BrokerHandler {
	return &BrokerHandler{service: service, logger: logger}
}

// Authorize returns the brokerage login URL.
func (h *BrokerHandler) Authorize(c *gin.Context) {
	out, err := h.service.AuthorizeURL()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Token exchanges the one-time request token from the request body.
func (h *BrokerHandler) Token(c *gin.Context) {
	var req struct {
		RequestToken string `json:"requestToken"`
	}
	_ = c.ShouldBindJSON(&req)

	grant, err := h.service.ExchangeToken(c.Request.Context(), req.RequestToken)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, grant)
}

// Holdings proxies the holdings listing.
func (h *BrokerHandler) Holdings(c *gin.Context) {
	data, err := h.service.Holdings(c.Request.Context(), c.GetHeader("Authorization"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

// Positions proxies the positions listing.
func (h *BrokerHandler) Positions(c *gin.Context) {
	data, err := h.service.Positions(c.Request.Context(), c.GetHeader("Authorization"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

// MarketIndices returns the static market snapshot.
func (h *BrokerHandler) MarketIndices(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.MarketIndices())
}
