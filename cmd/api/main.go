package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "fulfillment_engine/docs"
	grpcserver "fulfillment_engine/internal/adapter/grpc"
	"fulfillment_engine/internal/adapter/http/routes"
	"fulfillment_engine/internal/config"
	"fulfillment_engine/internal/infrastructure/payments"
	"fulfillment_engine/internal/logging"
	"fulfillment_engine/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// @title           Fulfillment Engine API
// @version         1.0
// @description     Order fulfillment workflow and commission engine.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat, "fulfillment-engine")

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("service stopped with error")
	}
}

func run(cfg config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := routes.OpenRepositories(ctx, cfg, log)
	if err != nil {
		return errors.Wrap(err, "open store")
	}
	defer closeStore()

	gin.SetMode(cfg.GinMode)
	router := routes.NewRouter(repos, routes.Options{
		JWTSecret: cfg.JWTSecret,
		SalesRate: cfg.CommissionSalesRate,
		Gateway:   paymentGateway(cfg, log),
		Log:       log,
	})
	if cfg.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET not set, API is unauthenticated")
	}

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: router,
	}
	grpcSrv, err := grpcserver.New(cfg.GRPCPort, log)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Int("port", cfg.HTTPPort).Msg("http server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "serve http")
		}
		return nil
	})
	g.Go(func() error {
		return grpcSrv.Serve(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Dur("timeout", cfg.ShutdownTimeout).Msg("shutting down")
		grpcSrv.SetServing(false)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// paymentGateway returns nil when Mercado Pago is not configured; the
// webhook then answers 503.
func paymentGateway(cfg config.Config, log zerolog.Logger) interfaces.IPaymentGateway {
	gw, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock, log)
	if err != nil {
		log.Warn().Err(err).Msg("Mercado Pago gateway not configured")
		return nil
	}
	return gw
}
