package client

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/infrakeeper/internal/client/manager"
	"github.com/dmitrijs2005/infrakeeper/internal/common"
	"github.com/dmitrijs2005/infrakeeper/internal/models"
	pb "github.com/dmitrijs2005/infrakeeper/internal/proto"
	"github.com/dmitrijs2005/infrakeeper/internal/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

var (
	_ Client                  = (*GRPCClient)(nil)
	_ manager.CredentialStore = (*GRPCClient)(nil)
	_ manager.NoteStore       = (*GRPCClient)(nil)
	_ pb.InventoryClient      = (*fakeAPI)(nil)
)

/*************
 * Fake inventory client
 *************/

type fakeAPI struct {
	lastLoginReq  *pb.LoginRequest
	lastEntityReq *pb.ListEntitiesRequest
	lastCredReq   *pb.UpdateCredentialRequest
	lastNoteReq   *pb.CreateNoteRequest

	pingResp  *pb.PingResponse
	loginResp *pb.LoginResponse
	err       error
}

func (f *fakeAPI) Ping(ctx context.Context, in *pb.PingRequest, opts ...grpc.CallOption) (*pb.PingResponse, error) {
	return f.pingResp, f.err
}
func (f *fakeAPI) Login(ctx context.Context, in *pb.LoginRequest, opts ...grpc.CallOption) (*pb.LoginResponse, error) {
	f.lastLoginReq = in
	return f.loginResp, f.err
}
func (f *fakeAPI) Summary(ctx context.Context, in *pb.SummaryRequest, opts ...grpc.CallOption) (*pb.SummaryResponse, error) {
	return &pb.SummaryResponse{CriticalNotes: 3, Totals: &pb.Totals{VmwareServers: 2}}, f.err
}
func (f *fakeAPI) ListEntities(ctx context.Context, in *pb.ListEntitiesRequest, opts ...grpc.CallOption) (*pb.ListEntitiesResponse, error) {
	f.lastEntityReq = in
	return &pb.ListEntitiesResponse{Rows: []*pb.EntityRow{{Title: "MySQL Database"}}}, f.err
}
func (f *fakeAPI) ListCredentials(ctx context.Context, in *pb.ListCredentialsRequest, opts ...grpc.CallOption) (*pb.ListCredentialsResponse, error) {
	return &pb.ListCredentialsResponse{}, f.err
}
func (f *fakeAPI) CreateCredential(ctx context.Context, in *pb.CreateCredentialRequest, opts ...grpc.CallOption) (*pb.CredentialResponse, error) {
	return &pb.CredentialResponse{Credential: &pb.Credential{Id: 1, Association: in.GetAssociation()}}, f.err
}
func (f *fakeAPI) UpdateCredential(ctx context.Context, in *pb.UpdateCredentialRequest, opts ...grpc.CallOption) (*pb.CredentialResponse, error) {
	f.lastCredReq = in
	return &pb.CredentialResponse{Credential: &pb.Credential{Id: in.GetId()}}, f.err
}
func (f *fakeAPI) DeleteCredential(ctx context.Context, in *pb.DeleteCredentialRequest, opts ...grpc.CallOption) (*pb.DeleteResponse, error) {
	return &pb.DeleteResponse{}, f.err
}
func (f *fakeAPI) ListNotes(ctx context.Context, in *pb.ListNotesRequest, opts ...grpc.CallOption) (*pb.ListNotesResponse, error) {
	return &pb.ListNotesResponse{}, f.err
}
func (f *fakeAPI) CreateNote(ctx context.Context, in *pb.CreateNoteRequest, opts ...grpc.CallOption) (*pb.NoteResponse, error) {
	f.lastNoteReq = in
	return &pb.NoteResponse{Note: &pb.Note{Id: 1}}, f.err
}
func (f *fakeAPI) UpdateNote(ctx context.Context, in *pb.UpdateNoteRequest, opts ...grpc.CallOption) (*pb.NoteResponse, error) {
	return &pb.NoteResponse{Note: &pb.Note{Id: in.GetId()}}, f.err
}
func (f *fakeAPI) DeleteNote(ctx context.Context, in *pb.DeleteNoteRequest, opts ...grpc.CallOption) (*pb.DeleteResponse, error) {
	return &pb.DeleteResponse{}, f.err
}

func TestWithAccessToken_ReplacesExisting(t *testing.T) {
	ctx := metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, "old", "x-other", "keep")
	ctx = withAccessToken(ctx, "new")

	md, ok := metadata.FromOutgoingContext(ctx)
	require.True(t, ok)
	assert.Equal(t, []string{"new"}, md.Get(common.AccessTokenHeaderName))
	assert.Equal(t, []string{"keep"}, md.Get("x-other"))
}

func TestAccessTokenInterceptor(t *testing.T) {
	c := &GRPCClient{}
	var seen []string
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		seen = md.Get(common.AccessTokenHeaderName)
		return nil
	}

	require.NoError(t, c.accessTokenInterceptor(context.Background(), "/m", nil, nil, nil, invoker))
	assert.Empty(t, seen)

	c.accessToken = "tok"
	require.NoError(t, c.accessTokenInterceptor(context.Background(), "/m", nil, nil, nil, invoker))
	assert.Equal(t, []string{"tok"}, seen)
}

func TestLoginStoresToken(t *testing.T) {
	api := &fakeAPI{loginResp: &pb.LoginResponse{AccessToken: "tok"}}
	c := &GRPCClient{client: api}

	require.NoError(t, c.Login(context.Background(), "admin", "pw"))
	assert.True(t, c.LoggedIn())
	assert.Equal(t, "admin", api.lastLoginReq.GetUsername())

	c.Logout()
	assert.False(t, c.LoggedIn())
}

func TestPing(t *testing.T) {
	c := &GRPCClient{client: &fakeAPI{pingResp: &pb.PingResponse{Status: "OK"}}}
	assert.NoError(t, c.Ping(context.Background()))

	c = &GRPCClient{client: &fakeAPI{pingResp: &pb.PingResponse{Status: "DEGRADED"}}}
	assert.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestCallsForwardArguments(t *testing.T) {
	api := &fakeAPI{}
	c := &GRPCClient{client: api}
	ctx := context.Background()
	a := models.Association{Kind: models.KindApplication, ID: 2}

	rows, err := c.ListEntities(ctx, models.KindApplication, "sql")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "sql", api.lastEntityReq.GetQuery())
	assert.Equal(t, "application", api.lastEntityReq.GetKind())
	assert.Equal(t, "MySQL Database", rows[0].Title)

	_, err = c.UpdateCredential(ctx, a, 5, models.CredentialFields{Username: "dba"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), api.lastCredReq.GetId())
	assert.Equal(t, a, wire.AssociationFromPB(api.lastCredReq.GetAssociation()))
	assert.Equal(t, "dba", api.lastCredReq.GetFields().GetUsername())
	assert.Nil(t, api.lastCredReq.GetFields().GetProtocolId())
	assert.Nil(t, api.lastCredReq.GetFields().GetHiddenDisplay())

	_, err = c.CreateNote(ctx, a, models.NoteFields{Severity: models.SeverityInfo, Note: "x"})
	require.NoError(t, err)
	assert.Equal(t, "x", api.lastNoteReq.GetFields().GetNote())
	assert.Equal(t, "info", api.lastNoteReq.GetFields().GetSeverity())

	sum, err := c.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, sum.CriticalNotes)
	assert.Equal(t, 2, sum.Servers)

	cred, err := c.CreateCredential(ctx, a, models.CredentialFields{})
	require.NoError(t, err)
	assert.Equal(t, a, cred.Association)
}

func TestMapError(t *testing.T) {
	c := &GRPCClient{}
	cases := []struct {
		code codes.Code
		msg  string
		want error
	}{
		{codes.Unauthenticated, "missing token", common.ErrorUnauthorized},
		{codes.Unavailable, "connection refused", ErrUnavailable},
		{codes.DeadlineExceeded, "deadline", ErrUnavailable},
		{codes.InvalidArgument, "validation error: port 70000 out of range", common.ErrorValidation},
		{codes.NotFound, "not found", common.ErrorNotFound},
		{codes.FailedPrecondition, "association mismatch", common.ErrAssociationMismatch},
	}
	for _, tc := range cases {
		err := c.mapError(status.Error(tc.code, tc.msg))
		assert.ErrorIs(t, err, tc.want, tc.code.String())
	}

	err := c.mapError(status.Error(codes.InvalidArgument, "validation error: port 70000 out of range"))
	assert.Equal(t, "validation error: port 70000 out of range", err.Error())

	assert.Nil(t, c.mapError(nil))
	assert.ErrorContains(t, c.mapError(errors.New("boom")), "rpc error")
}

func TestDeleteMapsNotFound(t *testing.T) {
	c := &GRPCClient{client: &fakeAPI{err: status.Error(codes.NotFound, "not found")}}
	err := c.DeleteNote(context.Background(), models.Association{Kind: models.KindURL, ID: 1}, 9)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
