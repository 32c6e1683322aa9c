package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/wellsync/internal/client/models"
	"github.com/dmitrijs2005/wellsync/internal/common"
	pb "github.com/dmitrijs2005/wellsync/internal/proto"
	"golang.org/x/sync/singleflight"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type GRPCClient struct {
	endpointURL string
	dialOpts    []grpc.DialOption
	timeout     time.Duration
	onTokens    func(Tokens)

	conn   *grpc.ClientConn
	client pb.SyncServiceClient
	health healthpb.HealthClient

	mu           sync.RWMutex
	userID       string
	accessToken  string
	refreshToken string

	refresh singleflight.Group
}

type Option func(*GRPCClient)

// WithRequestTimeout bounds every call that has no earlier deadline.
func WithRequestTimeout(d time.Duration) Option {
	return func(c *GRPCClient) { c.timeout = d }
}

// WithTokenListener registers fn to be called whenever a new token pair is
// obtained, so it can be persisted.
func WithTokenListener(fn func(Tokens)) Option {
	return func(c *GRPCClient) { c.onTokens = fn }
}

func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(c *GRPCClient) { c.dialOpts = append(c.dialOpts, opts...) }
}

func New(endpointURL string, opts ...Option) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	for _, o := range opts {
		o(c)
	}
	if err := c.initGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *GRPCClient) initGRPCClient() error {
	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, c.dialOpts...)

	conn, err := grpc.NewClient(c.endpointURL, opts...)
	if err != nil {
		return err
	}
	c.conn = conn
	c.client = pb.NewSyncServiceClient(conn)
	c.health = healthpb.NewHealthClient(conn)
	return nil
}

func (c *GRPCClient) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)
	return metadata.NewOutgoingContext(ctx, md)
}

func (c *GRPCClient) tokens() Tokens {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Tokens{UserID: c.userID, AccessToken: c.accessToken, RefreshToken: c.refreshToken}
}

// SetTokens installs a token pair, typically one restored from local
// storage at startup.
func (c *GRPCClient) SetTokens(t Tokens) {
	c.mu.Lock()
	c.userID = t.UserID
	c.accessToken = t.AccessToken
	c.refreshToken = t.RefreshToken
	c.mu.Unlock()
}

func (c *GRPCClient) storeTokens(t Tokens) {
	c.SetTokens(t)
	if c.onTokens != nil {
		c.onTokens(t)
	}
}

func isTokenExpired(err error) bool {
	st, ok := status.FromError(err)
	return ok && st.Code() == codes.Unauthenticated && st.Message() == common.ErrTokenExpired.Error()
}

func (c *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if c.timeout > 0 {
		if _, ok := ctx.Deadline(); !ok {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, c.timeout)
			defer cancel()
		}
	}

	used := c.tokens().AccessToken
	err := invoker(withAccessToken(ctx, used), method, req, reply, cc, opts...)
	if err == nil || !isTokenExpired(err) {
		return err
	}

	fresh, rerr := c.refreshAccessToken(ctx, used)
	if rerr != nil {
		return err
	}
	return invoker(withAccessToken(ctx, fresh), method, req, reply, cc, opts...)
}

// refreshAccessToken exchanges the refresh token once for all callers that
// observed the expiry of stale. Refresh tokens are single use, so
// concurrent refreshes would invalidate each other.
func (c *GRPCClient) refreshAccessToken(ctx context.Context, stale string) (string, error) {
	v, err, _ := c.refresh.Do("refresh", func() (interface{}, error) {
		cur := c.tokens()
		if cur.AccessToken != stale {
			return cur.AccessToken, nil
		}
		if cur.RefreshToken == "" {
			return "", common.ErrRefreshTokenExpired
		}
		resp, err := c.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: cur.RefreshToken})
		if err != nil {
			return "", err
		}
		userID := resp.UserId
		if userID == "" {
			userID = cur.UserID
		}
		c.storeTokens(Tokens{UserID: userID, AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken})
		return resp.AccessToken, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Ping checks the server's health endpoint. A server that answers but is
// not serving counts as unavailable.
func (c *GRPCClient) Ping(ctx context.Context) error {
	resp, err := c.health.Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil {
		return c.mapError(err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return ErrUnavailable
	}
	return nil
}

func (c *GRPCClient) Register(ctx context.Context, username, password string) (string, error) {
	resp, err := c.client.Register(ctx, &pb.RegisterRequest{Username: username, Password: password})
	if err != nil {
		return "", c.mapError(err)
	}
	return resp.UserId, nil
}

func (c *GRPCClient) Login(ctx context.Context, username, password string) (Tokens, error) {
	resp, err := c.client.Login(ctx, &pb.LoginRequest{Username: username, Password: password})
	if err != nil {
		return Tokens{}, c.mapError(err)
	}
	t := Tokens{UserID: resp.UserId, AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken}
	c.storeTokens(t)
	return t, nil
}

func (c *GRPCClient) CreateMood(ctx context.Context, m models.Mood) (string, error) {
	resp, err := c.client.CreateMood(ctx, moodToWire(m))
	if err != nil {
		return "", c.mapError(err)
	}
	return resp.ServerId, nil
}

func (c *GRPCClient) CreateProgress(ctx context.Context, p models.ExerciseProgress) (string, error) {
	resp, err := c.client.CreateProgress(ctx, progressToWire(p))
	if err != nil {
		return "", c.mapError(err)
	}
	return resp.ServerId, nil
}

func (c *GRPCClient) CreateSession(ctx context.Context, s models.ChatSession) (string, error) {
	resp, err := c.client.CreateSession(ctx, &pb.Session{RequestId: s.RequestID, ChatType: string(s.ChatType)})
	if err != nil {
		return "", c.mapError(err)
	}
	return resp.ServerId, nil
}

func (c *GRPCClient) CreateMessage(ctx context.Context, sessionServerID string, m models.ChatMessage) (string, error) {
	resp, err := c.client.CreateMessage(ctx, &pb.Message{
		RequestId: m.RequestID,
		SessionId: sessionServerID,
		Role:      string(m.Role),
		Content:   m.Content,
		CreatedAt: toTimestamp(m.CreatedAt),
	})
	if err != nil {
		return "", c.mapError(err)
	}
	return resp.ServerId, nil
}

// GetMoods returns moods updated after since, or all of them when since is
// nil.
func (c *GRPCClient) GetMoods(ctx context.Context, since *time.Time) ([]models.Mood, error) {
	req := &pb.GetMoodsRequest{}
	if since != nil {
		req.Since = timestamppb.New(*since)
	}
	resp, err := c.client.GetMoods(ctx, req)
	if err != nil {
		return nil, c.mapError(err)
	}
	return mapSlice(resp.Moods, moodFromWire), nil
}

func (c *GRPCClient) GetExercisesWithProgress(ctx context.Context) ([]models.Exercise, []models.ExerciseProgress, error) {
	resp, err := c.client.GetExercisesWithProgress(ctx, &pb.GetExercisesWithProgressRequest{})
	if err != nil {
		return nil, nil, c.mapError(err)
	}
	return mapSlice(resp.Exercises, exerciseFromWire), mapSlice(resp.Progress, progressFromWire), nil
}

func (c *GRPCClient) GetSessions(ctx context.Context, chatType models.ChatType) ([]models.ChatSession, error) {
	resp, err := c.client.GetSessions(ctx, &pb.GetSessionsRequest{ChatType: string(chatType)})
	if err != nil {
		return nil, c.mapError(err)
	}
	return mapSlice(resp.Sessions, sessionFromWire), nil
}

func (c *GRPCClient) GetMessages(ctx context.Context, sessionServerID string) ([]models.ChatMessage, error) {
	resp, err := c.client.GetMessages(ctx, &pb.GetMessagesRequest{SessionId: sessionServerID})
	if err != nil {
		return nil, c.mapError(err)
	}
	return mapSlice(resp.Messages, messageFromWire), nil
}

func (c *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrUnavailable
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrorValidation, st.Message())
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", common.ErrorAlreadyExists, st.Message())
	case codes.NotFound:
		return fmt.Errorf("%w: %s", common.ErrorNotFound, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
