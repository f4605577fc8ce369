package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/gin-gonic/gin"
	"io"
	"net"
	"net/http"
	"time"
)

const ExitCodeMainError = 1

const ShutdownTimeout = 5 * time.Second

// RunApp serves the API until ctx is done or the listener fails
func RunApp(ctx context.Context, config *Config, logOutput io.Writer) error {
	if err := config.Validate(); err != nil {
		return err
	}

	gin.SetMode(config.GinMode)
	logger := NewLogger(config.LogLevel, logOutput)

	serviceContainer, err := BuildServiceContainer(ctx, config, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := serviceContainer.Close(); closeErr != nil {
			logger.Error("shutdown", "error", closeErr)
		}
	}()

	listener, err := net.Listen("tcp", config.ListenAddr)
	if err != nil {
		return err
	}

	server := &http.Server{
		Handler:           serviceContainer.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(listener)
	}()

	logger.Info("listening", "addr", listener.Addr().String(), "repository", config.Repository, "mode", config.EvaluationMode)

	select {
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err

	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down")
		return server.Shutdown(shutdownCtx)
	}
}

func HandleExitError(errStream io.Writer, err error) int {
	if err != nil {
		_, _ = fmt.Fprintln(errStream, err)
		return ExitCodeMainError
	}

	return 0
}
