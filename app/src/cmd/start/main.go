package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"google.golang.org/grpc"

	grpcapi "wip-service/app/src/api/grpc"
	httpapi "wip-service/app/src/api/http"
	"wip-service/app/src/domain"
	"wip-service/app/src/infra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, cleanup, err := initApplication(ctx, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise application: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	cfg := app.Config
	logger := app.Logger

	infra.LogConfig(ctx, logger, cfg)
	infra.StartMetricsServer(logger, cfg.MetricsPort)

	version := app.Provider.Version(ctx)
	logger.Printf(ctx, "starting %s", version)

	httpServer := newHTTPServer(cfg.HTTPPort, app.Provider, app.Clock, logger)

	httpListener, err := net.Listen("tcp", httpServer.Addr)
	if err != nil {
		stop()
		logger.Fatalf(ctx, "failed to listen on HTTP port %s: %v", cfg.HTTPPort, err)
	}

	grpcServer := grpcapi.NewServer(app.Clock, logger)
	grpcAddr := fmt.Sprintf(":%s", cfg.GRPCPort)
	grpcListener, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		stop()
		logger.Fatalf(ctx, "failed to listen on gRPC port %s: %v", cfg.GRPCPort, err)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutMS)*time.Millisecond)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Printf(ctx, "HTTP server shutdown error: %v", err)
		}

		grpcServer.GracefulStop()
	}()

	serverErrs := make(chan error, 2)
	var serverGroup sync.WaitGroup

	serverGroup.Add(1)
	go func() {
		defer serverGroup.Done()
		logger.Printf(ctx, "HTTP server listening on %s", httpListener.Addr())
		if err := httpServer.Serve(httpListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrs <- fmt.Errorf("http server: %w", err)
		}
	}()

	serverGroup.Add(1)
	go func() {
		defer serverGroup.Done()
		logger.Printf(ctx, "gRPC server listening on %s", grpcListener.Addr())
		if err := grpcServer.Serve(grpcListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			serverErrs <- fmt.Errorf("grpc server: %w", err)
		}
	}()

	logger.Printf(ctx, "metrics server listening on :%s", cfg.MetricsPort)

	var serveErr error

	select {
	case <-ctx.Done():
	case err := <-serverErrs:
		if err != nil {
			serveErr = err
		}
		stop()
	}

	stop()
	serverGroup.Wait()

	if serveErr != nil {
		logger.Printf(ctx, "server error: %v", serveErr)
	}

	logger.Println(ctx, "server stopped")
}

func newHTTPServer(port string, provider domain.VersionProvider, clock domain.Clock, logger *infra.Logger) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           httpapi.NewServer(provider, clock, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
