package router

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/favcities/internal/api/grpc/contract"
	"github.com/dtroode/favcities/internal/api/grpc/handler"
	"github.com/dtroode/favcities/internal/api/grpc/middleware"
	"github.com/dtroode/favcities/internal/logger"
	"github.com/dtroode/favcities/internal/metrics"
	"github.com/dtroode/favcities/internal/model"
)

// Router wires favcities handlers and interceptors into a gRPC server.
type Router struct {
	authService      handler.AuthService
	favoritesService handler.FavoritesService
	tokenVerifier    middleware.TokenVerifier
	contextManager   model.ContextManager
	metrics          *metrics.Metrics
	logger           *logger.Logger
	health           *health.Server
}

// New creates new gRPC Router instance.
func New(
	authService handler.AuthService,
	favoritesService handler.FavoritesService,
	tokenVerifier middleware.TokenVerifier,
	contextManager model.ContextManager,
	metrics *metrics.Metrics,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:      authService,
		favoritesService: favoritesService,
		tokenVerifier:    tokenVerifier,
		contextManager:   contextManager,
		metrics:          metrics,
		logger:           logger,
		health:           health.NewServer(),
	}
}

// authSkip reports whether a call must carry a bearer token.
func authSkip(_ context.Context, c interceptors.CallMeta) bool {
	method := c.FullMethod()
	return !strings.HasPrefix(method, "/"+contract.AuthServiceName+"/") &&
		!strings.HasPrefix(method, "/"+healthpb.Health_ServiceDesc.ServiceName+"/")
}

// Register registers all gRPC services and middleware.
// Interceptors run in order: panic recovery, request logging, bearer auth.
func (r *Router) Register() *grpc.Server {
	recoverer := middleware.NewRecovery(r.logger)
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenVerifier, r.contextManager, r.metrics, r.logger)
	recoveryOpt := recovery.WithRecoveryHandlerContext(recoverer.HandlePanic)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			recovery.UnaryServerInterceptor(recoveryOpt),
			logging.HandleGRPC,
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(authSkip),
			),
		),
		grpc.ChainStreamInterceptor(
			recovery.StreamServerInterceptor(recoveryOpt),
			selector.StreamServerInterceptor(
				auth.StreamServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(authSkip),
			),
		),
	)
	r.registerAuthRoutes(s)
	r.registerFavoritesRoutes(s)
	r.registerHealth(s)

	return s
}

// Health returns the health service registered by Register.
func (r *Router) Health() *health.Server {
	return r.health
}

func (r *Router) registerAuthRoutes(server *grpc.Server) {
	authHandler := handler.NewAuth(r.authService, r.logger)
	contract.RegisterAuthServer(server, authHandler)
}

func (r *Router) registerFavoritesRoutes(server *grpc.Server) {
	favoritesHandler := handler.NewFavorites(r.favoritesService, r.contextManager, r.logger)
	contract.RegisterFavoritesServer(server, favoritesHandler)
}

func (r *Router) registerHealth(server *grpc.Server) {
	r.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	r.health.SetServingStatus(contract.AuthServiceName, healthpb.HealthCheckResponse_SERVING)
	r.health.SetServingStatus(contract.FavoritesServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(server, r.health)
}
