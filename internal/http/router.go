package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/atharv2285/Stage-portdesign/internal/config"
	"github.com/atharv2285/Stage-portdesign/internal/http/handler"
	httpmiddleware "github.com/atharv2285/Stage-portdesign/internal/http/middleware"
	"github.com/atharv2285/Stage-portdesign/internal/middleware"
)

// NewRouter wires Gin routes and middleware.
func NewRouter(
	cfg config.Config,
	githubHandler *handler.GitHubHandler,
	statsHandler *handler.StatsHandler,
	profileHandler *handler.ProfileHandler,
	brokerHandler *handler.BrokerHandler,
	companyHandler *handler.CompanyHandler,
	rateLimiter *middleware.RateLimiter,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpmiddleware.RequestLogger(nil))
	if rateLimiter != nil {
		r.Use(rateLimiter.Handler())
	}
	r.Use(middleware.CORS(cfg))
	r.Use(otelgin.Middleware(cfg.ServiceName))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		github := api.Group("/github")
		{
			github.GET("/oauth/authorize", githubHandler.Authorize)
			github.POST("/oauth/token", githubHandler.Token)
			github.GET("/repos", githubHandler.Repos)
			github.GET("/user", githubHandler.User)
			github.GET("/repos/:owner/:repo", githubHandler.RepoDetail)
		}

		api.GET("/leetcode/user/:username", statsHandler.LeetCodeUser)
		api.GET("/codeforces/user/:handle", statsHandler.CodeforcesUser)

		youtube := api.Group("/youtube")
		{
			youtube.GET("/channel/:channelId", statsHandler.YouTubeChannel)
			youtube.GET("/search", statsHandler.YouTubeSearch)
		}

		api.POST("/linkedin/profile", profileHandler.LinkedInProfile)

		zerodha := api.Group("/zerodha")
		{
			zerodha.GET("/oauth/authorize", brokerHandler.Authorize)
			zerodha.POST("/oauth/token", brokerHandler.Token)
			zerodha.GET("/holdings", brokerHandler.Holdings)
			zerodha.GET("/positions", brokerHandler.Positions)
		}

		api.GET("/market/indices", brokerHandler.MarketIndices)

		company := api.Group("/company")
		{
			company.GET("/search", companyHandler.Search)
			company.GET("/logo", companyHandler.Logo)
		}
	}

	return r
}
