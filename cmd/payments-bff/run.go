package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/jcmexdev/payments-bff/internal/bff/core/charge"
	"github.com/jcmexdev/payments-bff/internal/bff/core/ports"
	"github.com/jcmexdev/payments-bff/internal/bff/infra/adapters/catalogue"
	"github.com/jcmexdev/payments-bff/internal/bff/infra/adapters/payment"
	"github.com/jcmexdev/payments-bff/internal/bff/infra/httpx"
	paymentv1 "github.com/jcmexdev/payments-bff/internal/genproto/payment/v1"
	"github.com/jcmexdev/payments-bff/internal/pkg/cache"
	"github.com/jcmexdev/payments-bff/internal/pkg/config"
	"github.com/jcmexdev/payments-bff/internal/pkg/interceptors"
	"github.com/jcmexdev/payments-bff/internal/pkg/telemetry"
)

type options struct {
	configPath   string
	transport    string
	transportSet bool
	addr         string
	addrSet      bool
}

func loadConfig(opts options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.transportSet {
		cfg.Payment.Transport = opts.transport
	}
	if opts.addrSet {
		cfg.HTTP.Addr = opts.addr
	}
	if opts.transportSet || opts.addrSet {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func run(ctx context.Context, opts options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	if err := telemetry.InitLogger(cfg.Log.Level); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.SetupTracer(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.Exporter)
	if err != nil {
		return fmt.Errorf("initialise tracer: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(shutdownCtx); err != nil {
			slog.Error("tracer shutdown error", "error", err)
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := telemetry.NewMetrics(registry)

	prices, err := newPriceResolver(cfg)
	if err != nil {
		return err
	}
	gateway, closeGateway, err := newGateway(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeGateway(); err != nil {
			slog.Error("payment gateway close error", "error", err)
		}
	}()

	service := charge.NewService(
		prices,
		payment.Instrument(gateway, metrics, nil),
		charge.NewRetryPolicy(cfg.Payment.MaxAttempts, cfg.Payment.RetryDelay),
	)
	validator, err := httpx.NewRequestValidator()
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           httpx.NewRouter(httpx.NewHandler(service, validator, metrics), registry),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("payments BFF running",
			"addr", cfg.HTTP.Addr,
			"transport", gateway.Name(),
			"catalogue", cfg.Catalogue.Source,
			"max_attempts", cfg.Payment.MaxAttempts,
		)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down payments BFF")
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func newPriceResolver(cfg *config.Config) (ports.PriceResolver, error) {
	switch cfg.Catalogue.Source {
	case config.SourceRedis:
		return catalogue.NewRedisCatalogue(cache.NewRedisCache(cfg.Catalogue.RedisAddr, "bff")), nil
	default:
		return cfg.PriceTable()
	}
}

func newGateway(cfg *config.Config) (ports.PaymentGateway, func() error, error) {
	switch cfg.Payment.Transport {
	case config.TransportGRPC:
		conn, err := grpc.NewClient(cfg.Payment.GRPCAddr,
			grpc.WithTransportCredentials(insecure.NewCredentials()),
			grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
			grpc.WithUnaryInterceptor(interceptors.RequestIDClientInterceptor()),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to %s: %w", cfg.Payment.GRPCAddr, err)
		}
		client := &timeoutClient{next: paymentv1.NewPaymentServiceClient(conn), timeout: cfg.Payment.Timeout}
		return payment.NewGRPCGateway(client), conn.Close, nil
	default:
		gw, err := payment.NewHTTPGateway(cfg.Payment.BaseURL, &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   cfg.Payment.Timeout,
		})
		if err != nil {
			return nil, nil, err
		}
		return gw, func() error { return nil }, nil
	}
}

// timeoutClient bounds every createCharge call the way http.Client.Timeout
// bounds the HTTP transport.
type timeoutClient struct {
	next    paymentv1.PaymentServiceClient
	timeout time.Duration
}

func (c *timeoutClient) CreateCharge(ctx context.Context, in *paymentv1.ChargeRequest, opts ...grpc.CallOption) (*paymentv1.ChargeResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.next.CreateCharge(ctx, in, opts...)
}
