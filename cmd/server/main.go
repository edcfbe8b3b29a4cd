package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Brownie44l1/skintone-api/internal/config"
	"github.com/Brownie44l1/skintone-api/internal/handlers"
	"github.com/Brownie44l1/skintone-api/internal/logging"
	"github.com/Brownie44l1/skintone-api/internal/model"
	"github.com/Brownie44l1/skintone-api/internal/skintone"
	"github.com/Brownie44l1/skintone-api/internal/upload"
)

func main() {
	cfg := config.Load()

	logger, err := logging.NewLogger(cfg.Log.Level)
	if err != nil {
		panic(err)
	}
	defer logger.Sync() //nolint:errcheck

	store := upload.NewStore(cfg.Storage.UploadDir)
	if err := store.EnsureDir(); err != nil {
		logger.Fatal("failed to prepare upload directory", zap.Error(err))
	}

	logger.Info("loading model", zap.String("path", cfg.Model.Path))
	modelServer, err := model.NewServer(cfg.Model, skintone.Categories)
	if err != nil {
		logger.Fatal("failed to initialize model server", zap.Error(err))
	}
	defer modelServer.Close()

	router := gin.New()
	router.Use(gin.Recovery())
	handlers.RegisterRoutes(router, handlers.NewHandler(modelServer, store, cfg.Storage.MaxUploadSize, logger))

	listener, err := net.Listen("tcp", ":"+cfg.Server.Port)
	if err != nil {
		logger.Error("failed to listen", zap.String("port", cfg.Server.Port), zap.Error(err))
		return
	}

	logger.Info("server starting",
		zap.String("addr", listener.Addr().String()),
		zap.Strings("classes", modelServer.Labels()),
		zap.String("upload_dir", store.Dir()),
	)
	logger.Info("endpoints",
		zap.Strings("routes", []string{
			"GET / - Upload page",
			"GET /health - Health check",
			"POST /upload - Predict skin tone from image upload (form field 'file')",
		}),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := &http.Server{Handler: router}
	if err := serve(ctx, server, listener, cfg.Server.ShutdownTimeout, logger); err != nil {
		logger.Error("server failed", zap.Error(err))
	}
}

// serve runs server on listener until ctx is done, then lets in-flight
// uploads finish for at most drainTimeout before the model is released.
func serve(ctx context.Context, server *http.Server, listener net.Listener, drainTimeout time.Duration, logger *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(listener)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down", zap.Duration("drain_timeout", drainTimeout))
	drainCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	if err := server.Shutdown(drainCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
