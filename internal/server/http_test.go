package server_test

import (
	"context"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/atharv2285/Stage-portdesign/internal/config"
	"github.com/atharv2285/Stage-portdesign/internal/server"
)

func TestRunStopsOnContextCancel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := server.NewHTTPServer(config.Config{ShutdownTimeout: time.Second}, gin.New())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run(ctx, "127.0.0.1:0")
	}()

	// Give the listener a moment to bind before asking it to stop.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestNewHTTPServerDefaultsShutdownTimeout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	srv := server.NewHTTPServer(config.Config{}, engine)
	require.Same(t, engine, srv.Engine)
	require.True(t, engine.HandleMethodNotAllowed)
}
