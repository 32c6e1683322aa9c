package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/wellsync/internal/common"
	pb "github.com/dmitrijs2005/wellsync/internal/proto"
	"github.com/dmitrijs2005/wellsync/internal/server/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func newTestServer(secret string) *GRPCServer {
	return NewGRPCServer("", nopLogger{}, &fakeUsers{}, &fakeRecords{}, secret)
}

func withToken(token string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs(common.AccessTokenHeaderName, token))
}

func TestInterceptor_PublicMethodsSkipToken(t *testing.T) {
	s := newTestServer("secret")

	for _, m := range []string{pb.SyncService_Register_FullMethodName, pb.SyncService_Login_FullMethodName, pb.SyncService_RefreshToken_FullMethodName} {
		called := false
		info := &grpc.UnaryServerInfo{FullMethod: m}
		_, err := s.accessTokenInterceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
			called = true
			return "ok", nil
		})
		require.NoError(t, err, m)
		assert.True(t, called, m)
	}
}

func TestInterceptor_OtherServicesSkipToken(t *testing.T) {
	s := newTestServer("secret")
	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}

	resp, err := s.accessTokenInterceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
}

func TestInterceptor_MissingToken(t *testing.T) {
	s := newTestServer("secret")
	info := &grpc.UnaryServerInfo{FullMethod: pb.SyncService_CreateMood_FullMethodName}

	_, err := s.accessTokenInterceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called when token missing")
		return nil, nil
	})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestInterceptor_ValidTokenInjectsUserID(t *testing.T) {
	s := newTestServer("secret")
	tok, err := auth.GenerateToken("u-7", []byte("secret"), time.Minute)
	require.NoError(t, err)

	info := &grpc.UnaryServerInfo{FullMethod: pb.SyncService_GetMoods_FullMethodName}
	var got string
	_, err = s.accessTokenInterceptor(withToken(tok), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		got, err = userIDFromContext(ctx)
		return nil, err
	})
	require.NoError(t, err)
	assert.Equal(t, "u-7", got)
}

func TestInterceptor_ExpiredTokenUsesExpiryMessage(t *testing.T) {
	s := newTestServer("secret")
	tok, err := auth.GenerateToken("u-7", []byte("secret"), -time.Second)
	require.NoError(t, err)

	info := &grpc.UnaryServerInfo{FullMethod: pb.SyncService_GetMoods_FullMethodName}
	_, err = s.accessTokenInterceptor(withToken(tok), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called")
		return nil, nil
	})
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Unauthenticated, st.Code())
	assert.Equal(t, common.ErrTokenExpired.Error(), st.Message())
}

func TestInterceptor_BadToken(t *testing.T) {
	s := newTestServer("secret")
	tok, err := auth.GenerateToken("u-7", []byte("other"), time.Minute)
	require.NoError(t, err)

	info := &grpc.UnaryServerInfo{FullMethod: pb.SyncService_GetMoods_FullMethodName}
	_, err = s.accessTokenInterceptor(withToken(tok), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, nil
	})
	st, _ := status.FromError(err)
	assert.Equal(t, codes.Unauthenticated, st.Code())
	assert.Equal(t, common.ErrInvalidToken.Error(), st.Message())
}

func TestUserIDFromContext_Missing(t *testing.T) {
	_, err := userIDFromContext(context.Background())
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}
