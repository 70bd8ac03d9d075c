package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/infrakeeper/internal/common"
	"github.com/dmitrijs2005/infrakeeper/internal/logging"
	pb "github.com/dmitrijs2005/infrakeeper/internal/proto"
	"github.com/dmitrijs2005/infrakeeper/internal/server/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type tokenOperators struct{ secret []byte }

func (o tokenOperators) Login(context.Context, string, string) (string, error) {
	return "", common.ErrorUnauthorized
}

func (o tokenOperators) Authenticate(token string) (int64, error) {
	return auth.OperatorIDFromToken(token, o.secret)
}

func newInterceptorServer() *GRPCServer {
	return NewGRPCServer(":0", nopLogger{}, tokenOperators{secret: []byte("secret")}, nil, nil, nil)
}

func withToken(token string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs(common.AccessTokenHeaderName, token))
}

func TestInterceptor_PublicMethodsSkipAuth(t *testing.T) {
	s := newInterceptorServer()
	for _, m := range []string{pb.Inventory_Ping_FullMethodName, pb.Inventory_Login_FullMethodName} {
		called := false
		info := &grpc.UnaryServerInfo{FullMethod: m}
		_, err := s.accessTokenInterceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
			called = true
			return "ok", nil
		})
		require.NoError(t, err)
		assert.True(t, called, m)
	}
}

func TestInterceptor_MissingToken(t *testing.T) {
	s := newInterceptorServer()
	info := &grpc.UnaryServerInfo{FullMethod: pb.Inventory_ListNotes_FullMethodName}

	_, err := s.accessTokenInterceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called when token missing")
		return nil, nil
	})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, "missing token", status.Convert(err).Message())
}

func TestInterceptor_InvalidAndExpiredToken(t *testing.T) {
	s := newInterceptorServer()
	info := &grpc.UnaryServerInfo{FullMethod: pb.Inventory_Summary_FullMethodName}
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(withToken("not-a-valid-jwt"), nil, info, h)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, "invalid token", status.Convert(err).Message())

	expired, err := auth.GenerateToken(1, "admin", []byte("secret"), -time.Minute)
	require.NoError(t, err)
	_, err = s.accessTokenInterceptor(withToken(expired), nil, info, h)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, "token expired", status.Convert(err).Message())
}

func TestInterceptor_ValidTokenCarriesOperator(t *testing.T) {
	s := newInterceptorServer()
	token, err := auth.GenerateToken(42, "admin", []byte("secret"), time.Minute)
	require.NoError(t, err)

	info := &grpc.UnaryServerInfo{FullMethod: pb.Inventory_CreateNote_FullMethodName}
	var got int64
	_, err = s.accessTokenInterceptor(withToken(token), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		got, _ = auth.OperatorFromContext(ctx)
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)
}
