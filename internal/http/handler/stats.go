package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	statssvc "github.com/atharv2285/Stage-portdesign/internal/service/stats"
)

// StatsHandler serves the coding-stats and YouTube proxy endpoints.
type StatsHandler struct {
	service *statssvc.Service
	logger  *zap.Logger
}

// NewStatsHandler creates the stats handler.
func NewStatsHandler(service *statssvc.Service, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{service: service, logger: logger}
}

// LeetCodeUser returns solve counts for a LeetCode username.
func (h *StatsHandler) LeetCodeUser(c *gin.Context) {
	stats, err := h.service.LeetCodeStats(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// CodeforcesUser returns rating and contest stats for a Codeforces handle.
func (h *StatsHandler) CodeforcesUser(c *gin.Context) {
	stats, err := h.service.CodeforcesStats(c.Request.Context(), c.Param("handle"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// YouTubeChannel returns channel statistics by channel id.
func (h *StatsHandler) YouTubeChannel(c *gin.Context) {
	channel, err := h.service.YouTubeChannel(c.Request.Context(), c.Param("channelId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, channel)
}

// YouTubeSearch searches channels by free-text query. Both "q" and the
// portfolio frontend's "query" parameter are accepted.
func (h *StatsHandler) YouTubeSearch(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		q = c.Query("query")
	}
	results, err := h.service.YouTubeSearch(c.Request.Context(), q)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
