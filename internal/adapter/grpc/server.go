// Package grpc exposes the service health over gRPC for orchestrators that
// probe with grpc_health_probe.
package grpc

import (
	"context"
	"fmt"
	"net"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the health key reported alongside the overall status.
const ServiceName = "fulfillment.v1.FulfillmentService"

type Server struct {
	listener   net.Listener
	grpcServer *gogrpc.Server
	health     *health.Server
	log        zerolog.Logger
}

// New listens on port (0 picks a free one) and registers health and
// reflection. The server reports SERVING until SetServing(false).
func New(port int, log zerolog.Logger) (*Server, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, errors.Wrapf(err, "listen on port %d", port)
	}

	grpcServer := gogrpc.NewServer()
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	s := &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		log:        log.With().Str("component", "grpc").Logger(),
	}
	s.SetServing(true)
	return s, nil
}

func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *Server) SetServing(serving bool) {
	status := grpc_health_v1.HealthCheckResponse_NOT_SERVING
	if serving {
		status = grpc_health_v1.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

// Serve blocks until ctx is cancelled, then drains in-flight calls.
func (s *Server) Serve(ctx context.Context) error {
	s.log.Info().Str("addr", s.Addr()).Msg("grpc server listening")
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		s.health.Shutdown()
		s.grpcServer.GracefulStop()
		<-serveErr
		s.log.Info().Msg("grpc server stopped")
		return nil
	case err := <-serveErr:
		return errors.Wrap(err, "serve grpc")
	}
}
