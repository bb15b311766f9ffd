package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	companysvc "github.com/atharv2285/Stage-portdesign/internal/service/company"
)

// CompanyHandler serves company search and logo lookups.
type CompanyHandler struct {
	service *companysvc.Service
	logger  *zap.Logger
}

// NewCompanyHandler creates the company handler.
func NewCompanyHandler(service *companysvc.Service, logger *zap.Logger) *CompanyHandler {
	return &CompanyHandler{service: service, logger: logger}
}

// Search returns normalized company hits for a free-text query. Both "q" and
// the portfolio frontend's "query" parameter are accepted.
func (h *CompanyHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		q = c.Query("query")
	}
	companies, err := h.service.Search(c.Request.Context(), q)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": companies})
}

// Logo returns the logo URL for a company domain.
func (h *CompanyHandler) Logo(c *gin.Context) {
	logoURL, err := h.service.Logo(c.Query("domain"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logoUrl": logoURL})
}
