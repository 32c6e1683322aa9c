package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/wellsync/internal/common"
	pb "github.com/dmitrijs2005/wellsync/internal/proto"
	"github.com/dmitrijs2005/wellsync/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// toStatus maps service errors onto gRPC codes. Internal failures are
// logged and reported without detail.
func (s *GRPCServer) toStatus(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, "already exists")
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, common.ErrRefreshTokenExpired.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	s.logger.Error(ctx, op+" failed", "error", err)
	return status.Error(codes.Internal, "internal error")
}

// timeOf returns the zero time for an unset timestamp.
func timeOf(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func timestampOf(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	user, err := s.users.Register(ctx, req.Username, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, "register", err)
	}

	s.logger.Info(ctx, "Registered", "username", user.UserName)
	return &pb.RegisterResponse{UserId: user.ID}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.TokenPair, error) {
	tokens, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, "login", err)
	}
	return &pb.TokenPair{UserId: tokens.UserID, AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.TokenPair, error) {
	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.toStatus(ctx, "refresh token", err)
	}
	return &pb.TokenPair{UserId: tokens.UserID, AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) CreateMood(ctx context.Context, req *pb.Mood) (*pb.CreateResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	id, err := s.records.CreateMood(ctx, userID, &models.Mood{
		RequestID:  req.RequestId,
		Mood:       req.Mood,
		Intensity:  int(req.Intensity),
		Note:       req.Note,
		Tags:       req.Tags,
		RecordedAt: timeOf(req.RecordedAt),
	})
	if err != nil {
		return nil, s.toStatus(ctx, "create mood", err)
	}
	return &pb.CreateResponse{ServerId: id}, nil
}

func (s *GRPCServer) GetMoods(ctx context.Context, req *pb.GetMoodsRequest) (*pb.GetMoodsResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.records.GetMoods(ctx, userID, timeOf(req.Since))
	if err != nil {
		return nil, s.toStatus(ctx, "get moods", err)
	}

	resp := &pb.GetMoodsResponse{Moods: make([]*pb.Mood, 0, len(rows))}
	for _, m := range rows {
		resp.Moods = append(resp.Moods, &pb.Mood{
			Id:         m.ID,
			RequestId:  m.RequestID,
			Mood:       m.Mood,
			Intensity:  int32(m.Intensity),
			Note:       m.Note,
			Tags:       m.Tags,
			RecordedAt: timestampOf(m.RecordedAt),
			UpdatedAt:  timestampOf(m.UpdatedAt),
		})
	}
	return resp, nil
}

func (s *GRPCServer) CreateProgress(ctx context.Context, req *pb.Progress) (*pb.CreateResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	id, err := s.records.CreateProgress(ctx, userID, &models.Progress{
		RequestID:       req.RequestId,
		ExerciseID:      req.ExerciseId,
		DurationSeconds: int(req.DurationSeconds),
		Rating:          int(req.Rating),
		Note:            req.Note,
		CompletedAt:     timeOf(req.CompletedAt),
	})
	if err != nil {
		return nil, s.toStatus(ctx, "create progress", err)
	}
	return &pb.CreateResponse{ServerId: id}, nil
}

func (s *GRPCServer) GetExercisesWithProgress(ctx context.Context, _ *pb.GetExercisesWithProgressRequest) (*pb.ExercisesWithProgress, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	exercises, progress, err := s.records.GetExercisesWithProgress(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, "get exercises", err)
	}

	resp := &pb.ExercisesWithProgress{
		Exercises: make([]*pb.Exercise, 0, len(exercises)),
		Progress:  make([]*pb.Progress, 0, len(progress)),
	}
	for _, e := range exercises {
		resp.Exercises = append(resp.Exercises, &pb.Exercise{
			Id:              e.ID,
			Title:           e.Title,
			Category:        e.Category,
			DurationMinutes: int32(e.DurationMinutes),
			Description:     e.Description,
		})
	}
	for _, p := range progress {
		resp.Progress = append(resp.Progress, &pb.Progress{
			Id:              p.ID,
			RequestId:       p.RequestID,
			ExerciseId:      p.ExerciseID,
			DurationSeconds: int32(p.DurationSeconds),
			Rating:          int32(p.Rating),
			Note:            p.Note,
			CompletedAt:     timestampOf(p.CompletedAt),
			UpdatedAt:       timestampOf(p.UpdatedAt),
		})
	}
	return resp, nil
}

func (s *GRPCServer) CreateSession(ctx context.Context, req *pb.Session) (*pb.CreateResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	id, err := s.records.CreateSession(ctx, userID, &models.Session{
		RequestID: req.RequestId,
		ChatType:  req.ChatType,
		CreatedAt: timeOf(req.CreatedAt),
	})
	if err != nil {
		return nil, s.toStatus(ctx, "create session", err)
	}
	return &pb.CreateResponse{ServerId: id}, nil
}

func (s *GRPCServer) GetSessions(ctx context.Context, req *pb.GetSessionsRequest) (*pb.GetSessionsResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.records.GetSessions(ctx, userID, req.ChatType)
	if err != nil {
		return nil, s.toStatus(ctx, "get sessions", err)
	}

	resp := &pb.GetSessionsResponse{Sessions: make([]*pb.Session, 0, len(rows))}
	for _, r := range rows {
		resp.Sessions = append(resp.Sessions, &pb.Session{
			Id:             r.ID,
			RequestId:      r.RequestID,
			ChatType:       r.ChatType,
			Title:          r.Title,
			ConversationId: r.ConversationID,
			CreatedAt:      timestampOf(r.CreatedAt),
			UpdatedAt:      timestampOf(r.UpdatedAt),
		})
	}
	return resp, nil
}

func (s *GRPCServer) CreateMessage(ctx context.Context, req *pb.Message) (*pb.CreateResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	id, err := s.records.CreateMessage(ctx, userID, &models.Message{
		RequestID: req.RequestId,
		SessionID: req.SessionId,
		Role:      req.Role,
		Content:   req.Content,
		CreatedAt: timeOf(req.CreatedAt),
	})
	if err != nil {
		return nil, s.toStatus(ctx, "create message", err)
	}
	return &pb.CreateResponse{ServerId: id}, nil
}

func (s *GRPCServer) GetMessages(ctx context.Context, req *pb.GetMessagesRequest) (*pb.GetMessagesResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.records.GetMessages(ctx, userID, req.SessionId)
	if err != nil {
		return nil, s.toStatus(ctx, "get messages", err)
	}

	resp := &pb.GetMessagesResponse{Messages: make([]*pb.Message, 0, len(rows))}
	for _, m := range rows {
		resp.Messages = append(resp.Messages, &pb.Message{
			Id:        m.ID,
			RequestId: m.RequestID,
			SessionId: m.SessionID,
			Role:      m.Role,
			Content:   m.Content,
			CreatedAt: timestampOf(m.CreatedAt),
		})
	}
	return resp, nil
}
