package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	profilesvc "github.com/atharv2285/Stage-portdesign/internal/service/profile"
)

// ProfileHandler serves the LinkedIn profile proxy endpoint.
type ProfileHandler struct {
	service *profilesvc.Service
	logger  *zap.Logger
}

// NewProfileHandler creates the profile handler.
func NewProfileHandler(service *profilesvc.Service, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{service: service, logger: logger}
}

// LinkedInProfile resolves a public profile URL from the request body.
func (h *ProfileHandler) LinkedInProfile(c *gin.Context) {
	var req struct {
		ProfileURL string `json:"profileUrl"`
	}
	_ = c.ShouldBindJSON(&req)

	data, err := h.service.LinkedInProfile(c.Request.Context(), req.ProfileURL)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}
