// Package grpc exposes the sync API (wellsync.v1.SyncService) and the
// standard gRPC health service on one listener.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/wellsync/internal/logging"
	pb "github.com/dmitrijs2005/wellsync/internal/proto"
	"github.com/dmitrijs2005/wellsync/internal/server/models"
	"github.com/dmitrijs2005/wellsync/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type userService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
}

type recordService interface {
	CreateMood(ctx context.Context, userID string, m *models.Mood) (string, error)
	GetMoods(ctx context.Context, userID string, since time.Time) ([]models.Mood, error)
	CreateProgress(ctx context.Context, userID string, p *models.Progress) (string, error)
	GetExercisesWithProgress(ctx context.Context, userID string) ([]models.Exercise, []models.Progress, error)
	CreateSession(ctx context.Context, userID string, s *models.Session) (string, error)
	GetSessions(ctx context.Context, userID, chatType string) ([]models.Session, error)
	CreateMessage(ctx context.Context, userID string, m *models.Message) (string, error)
	GetMessages(ctx context.Context, userID, sessionID string) ([]models.Message, error)
}

type GRPCServer struct {
	pb.UnimplementedSyncServiceServer
	address   string
	users     userService
	records   recordService
	logger    logging.Logger
	jwtSecret []byte
	health    *health.Server
}

func NewGRPCServer(a string, l logging.Logger, us userService, rs recordService, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		records:   rs,
		jwtSecret: []byte(secretKey),
		health:    health.NewServer(),
	}
}

// Health returns the health server so readiness can be toggled from outside.
func (s *GRPCServer) Health() *health.Server {
	return s.health
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	pb.RegisterSyncServiceServer(srv, s)
	healthpb.RegisterHealthServer(srv, s.health)
	s.health.SetServingStatus(pb.SyncService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	return srv.Serve(lis)
}
