package grpc

import (
	"context"
	"sync"
	"time"

	grpcprom "github.com/grpc-ecosystem/go-grpc-middleware/providers/prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/Belphemur/NewReleases/internal/config"
	"github.com/Belphemur/NewReleases/internal/services"
)

var (
	rpcMetrics     *grpcprom.ServerMetrics
	rpcMetricsOnce sync.Once
)

// serverMetrics returns the process-wide grpcprom collector, registering it
// with the default Prometheus registry on first use.
func serverMetrics() *grpcprom.ServerMetrics {
	rpcMetricsOnce.Do(func() {
		rpcMetrics = grpcprom.NewServerMetrics(grpcprom.WithServerHandlingTimeHistogram())
		prometheus.MustRegister(rpcMetrics)
	})
	return rpcMetrics
}

// Server is the channel service listening surface: NewReleasesService plus
// the standard health and reflection services.
type Server struct {
	*grpc.Server
	health *health.Server
}

// NewGRPCServer builds the gRPC server for the channel. Extra options are
// appended after the built-in interceptors.
func NewGRPCServer(releases services.ReleaseService, opts ...grpc.ServerOption) *Server {
	m := serverMetrics()

	opts = append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(m.UnaryServerInterceptor(), logFailedCalls),
		grpc.ChainStreamInterceptor(m.StreamServerInterceptor()),
	}, opts...)

	s := &Server{Server: grpc.NewServer(opts...), health: health.NewServer()}

	RegisterNewReleasesServiceServer(s, NewServer(releases))
	grpc_health_v1.RegisterHealthServer(s, s.health)
	for _, name := range []string{"", ServiceName} {
		s.health.SetServingStatus(name, grpc_health_v1.HealthCheckResponse_SERVING)
	}
	reflection.Register(s)

	m.InitializeMetrics(s.Server)
	return s
}

// Drain reports NOT_SERVING on every health entry, then waits for in-flight
// calls to finish.
func (s *Server) Drain() {
	s.health.Shutdown()
	s.GracefulStop()
}

// logFailedCalls logs every unary call that ends with a non-OK status.
func logFailedCalls(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	if code := status.Code(err); code != codes.OK {
		logger := config.GetLogger()
		logger.Warn().
			Err(err).
			Str("method", info.FullMethod).
			Str("code", code.String()).
			Dur("elapsed", time.Since(start)).
			Msg("gRPC call failed")
	}
	return resp, err
}
