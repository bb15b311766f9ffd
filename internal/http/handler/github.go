package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	githubsvc "github.com/atharv2285/Stage-portdesign/internal/service/github"
)

// GitHubHandler serves the GitHub OAuth and repository proxy endpoints.
type GitHubHandler struct {
	service *githubsvc.Service
	logger  *zap.Logger
}

// NewGitHubHandler creates the GitHub handler.
func NewGitHubHandler(service *githubsvc.Service, logger *zap.Logger) *GitHubHandler {
	return &GitHubHandler{service: service, logger: logger}
}

// Authorize returns the GitHub authorization URL and state token.
func (h *GitHubHandler) Authorize(c *gin.Context) {
	out, err := h.service.AuthorizeURL()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Token exchanges the authorization code from the request body.
func (h *GitHubHandler) Token(c *gin.Context) {
	var req struct {
		Code string `json:"code"`
	}
	// An unparseable body is treated the same as a missing code: the service
	// produces the canonical validation message.
	_ = c.ShouldBindJSON(&req)

	grant, err := h.service.ExchangeCode(c.Request.Context(), req.Code)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, grant)
}

// Repos lists the authenticated user's repositories.
func (h *GitHubHandler) Repos(c *gin.Context) {
	data, err := h.service.ListRepos(c.Request.Context(), c.GetHeader("Authorization"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

// User returns the authenticated user's profile.
func (h *GitHubHandler) User(c *gin.Context) {
	data, err := h.service.GetUser(c.Request.Context(), c.GetHeader("Authorization"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

// RepoDetail aggregates repository metadata, README, and languages.
func (h *GitHubHandler) RepoDetail(c *gin.Context) {
	detail, err := h.service.GetRepoDetail(
		c.Request.Context(),
		c.GetHeader("Authorization"),
		c.Param("owner"),
		c.Param("repo"),
	)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}
