package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"google.golang.org/grpc"

	paymentv1 "github.com/jcmexdev/payments-bff/internal/genproto/payment/v1"
	paymentservice "github.com/jcmexdev/payments-bff/internal/payment-service/app"
	"github.com/jcmexdev/payments-bff/internal/pkg/cache"
	"github.com/jcmexdev/payments-bff/internal/pkg/interceptors"
	"github.com/jcmexdev/payments-bff/internal/pkg/telemetry"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := telemetry.InitLogger(getEnv("LOG_LEVEL", "info")); err != nil {
		slog.Error("failed to initialise logger", "error", err)
		os.Exit(1)
	}

	shutdown, err := telemetry.SetupTracer(ctx, getEnv("OTEL_SERVICE_NAME", "payment-service"), getEnv("OTEL_EXPORTER", telemetry.ExporterNone))
	if err != nil {
		slog.Error("failed to initialise tracer", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			slog.Error("tracer shutdown error", "error", err)
		}
	}()

	limit, err := strconv.ParseInt(getEnv("DECLINE_ABOVE", "0"), 10, 64)
	if err != nil {
		slog.Error("invalid DECLINE_ABOVE", "error", err)
		os.Exit(1)
	}

	redisCache := cache.NewRedisCache(getEnv("REDIS_ADDR", "localhost:6379"), "payment")
	ledger := paymentservice.NewLedger(redisCache, limit)

	grpcAddr := ":" + getEnv("PORT", "9091")
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		slog.Error("failed to listen", "addr", grpcAddr, "error", err)
		os.Exit(1)
	}

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.UnaryInterceptor(interceptors.TraceServerInterceptor()),
	)
	paymentv1.RegisterPaymentServiceServer(grpcServer, paymentservice.NewPaymentServer(ledger))

	httpServer := &http.Server{
		Addr:              ":" + getEnv("HTTP_PORT", "8081"),
		Handler:           otelhttp.NewHandler(paymentservice.NewHTTPHandler(ledger), "payment-service"),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		slog.Info("payment service gRPC running", "addr", grpcAddr)
		errCh <- grpcServer.Serve(lis)
	}()
	go func() {
		slog.Info("payment service HTTP running", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down payment service")
	case err := <-errCh:
		slog.Error("failed to serve", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("http shutdown error", "error", err)
	}
	grpcServer.GracefulStop()
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
