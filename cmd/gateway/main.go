package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/atharv2285/Stage-portdesign/internal/adapter/brandfetch"
	cacheadapter "github.com/atharv2285/Stage-portdesign/internal/adapter/cache"
	"github.com/atharv2285/Stage-portdesign/internal/adapter/codeforces"
	connectoradapter "github.com/atharv2285/Stage-portdesign/internal/adapter/connector"
	githubadapter "github.com/atharv2285/Stage-portdesign/internal/adapter/github"
	kiteadapter "github.com/atharv2285/Stage-portdesign/internal/adapter/kite"
	"github.com/atharv2285/Stage-portdesign/internal/adapter/leetcode"
	linkedinadapter "github.com/atharv2285/Stage-portdesign/internal/adapter/linkedin"
	youtubeadapter "github.com/atharv2285/Stage-portdesign/internal/adapter/youtube"
	"github.com/atharv2285/Stage-portdesign/internal/config"
	"github.com/atharv2285/Stage-portdesign/internal/credential"
	httptransport "github.com/atharv2285/Stage-portdesign/internal/http"
	"github.com/atharv2285/Stage-portdesign/internal/http/handler"
	apimiddleware "github.com/atharv2285/Stage-portdesign/internal/middleware"
	"github.com/atharv2285/Stage-portdesign/internal/server"
	brokersvc "github.com/atharv2285/Stage-portdesign/internal/service/broker"
	companysvc "github.com/atharv2285/Stage-portdesign/internal/service/company"
	githubsvc "github.com/atharv2285/Stage-portdesign/internal/service/github"
	profilesvc "github.com/atharv2285/Stage-portdesign/internal/service/profile"
	statssvc "github.com/atharv2285/Stage-portdesign/internal/service/stats"
	"github.com/atharv2285/Stage-portdesign/internal/telemetry"
)

func main() {
	app := fx.New(
		fx.Provide(
			newConfig,
			newLogger,
			newTelemetry,
			newUpstreamHTTPClient,
			newCredentialStore,
			newCredentialResolver,
			newRateLimiter,
			newGitHubService,
			newStatsService,
			newProfileService,
			newBrokerService,
			newCompanyService,
			handler.NewGitHubHandler,
			handler.NewStatsHandler,
			handler.NewProfileHandler,
			handler.NewBrokerHandler,
			handler.NewCompanyHandler,
			httptransport.NewRouter,
			server.NewHTTPServer,
		),
		fx.Invoke(useTelemetry, startHTTPServer),
	)

	app.Run()
}

func newConfig() (config.Config, error) {
	return config.Load()
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.Environment == "development" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}

func newTelemetry(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) (*telemetry.Provider, error) {
	provider, err := telemetry.New(context.Background(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("telemetry init: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			stopCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			return provider.Shutdown(stopCtx)
		},
	})

	return provider, nil
}

// newUpstreamHTTPClient is shared by all outbound adapters so every upstream
// call carries the same timeout budget.
func newUpstreamHTTPClient(cfg config.Config) *http.Client {
	return &http.Client{Timeout: cfg.UpstreamTimeout}
}

func newCredentialStore(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) (credential.Store, error) {
	if cfg.RedisAddr == "" {
		return credential.NewMemoryStore(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
	logger.Info("credential store backed by redis", zap.String("addr", cfg.RedisAddr))
	return cacheadapter.NewRedisCredentialStore(client), nil
}

func newCredentialResolver(cfg config.Config, store credential.Store, httpClient *http.Client) *credential.Resolver {
	opts := []credential.Option{
		credential.WithStaticToken(cfg.GitHubFallbackToken),
	}
	if cfg.ConnectorURL != "" {
		opts = append(opts, credential.WithSource(
			connectoradapter.NewClient(httpClient, cfg.ConnectorURL, cfg.ConnectorToken),
		))
	}
	return credential.NewResolver(store, opts...)
}

func newRateLimiter(cfg config.Config) *apimiddleware.RateLimiter {
	return apimiddleware.NewRateLimiter(cfg.RateLimitRPM)
}

func newGitHubService(cfg config.Config, httpClient *http.Client, resolver *credential.Resolver, logger *zap.Logger) *githubsvc.Service {
	api := githubadapter.NewClient(httpClient)
	return githubsvc.NewService(cfg, api, api, resolver, logger)
}

func newStatsService(cfg config.Config, httpClient *http.Client, logger *zap.Logger) *statssvc.Service {
	return statssvc.NewService(
		cfg,
		leetcode.NewClient(httpClient),
		codeforces.NewClient(httpClient),
		youtubeadapter.NewClient(httpClient),
		logger,
	)
}

func newProfileService(cfg config.Config, httpClient *http.Client) *profilesvc.Service {
	return profilesvc.NewService(cfg, linkedinadapter.NewClient(httpClient))
}

func newBrokerService(cfg config.Config, httpClient *http.Client) *brokersvc.Service {
	return brokersvc.NewService(cfg, kiteadapter.NewClient(httpClient))
}

func newCompanyService(cfg config.Config, httpClient *http.Client) *companysvc.Service {
	return companysvc.NewService(cfg, brandfetch.NewClient(httpClient))
}

func startHTTPServer(lc fx.Lifecycle, srv *server.HTTPServer, cfg config.Config, logger *zap.Logger) {
	addr := ":" + cfg.HTTPPort
	var (
		cancel context.CancelFunc
		done   chan struct{}
	)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			runCtx, stop := context.WithCancel(context.Background())
			cancel = stop
			done = make(chan struct{})

			go func() {
				if err := srv.Run(runCtx, addr); err != nil {
					logger.Error("http server stopped", zap.Error(err))
				}
				close(done)
			}()

			logger.Info("http server listening", zap.String("addr", addr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if cancel != nil {
				cancel()
			}
			if done == nil {
				return nil
			}
			select {
			case <-done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
}

func useTelemetry(*telemetry.Provider) {}
