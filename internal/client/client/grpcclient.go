package client

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/infrakeeper/internal/common"
	"github.com/dmitrijs2005/infrakeeper/internal/models"
	pb "github.com/dmitrijs2005/infrakeeper/internal/proto"
	"github.com/dmitrijs2005/infrakeeper/internal/wire"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      pb.InventoryClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token := s.token(); token != "" {
		ctx = withAccessToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewInventoryClientService(endpointURL string, timeout time.Duration) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewInventoryClient(conn)
	return nil
}

// callCtx bounds a call by the configured timeout.
func (s *GRPCClient) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) Login(ctx context.Context, username, password string) error {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.Login(ctx, &pb.LoginRequest{Username: username, Password: password})
	if err != nil {
		return s.mapError(err)
	}

	s.mu.Lock()
	s.accessToken = resp.GetAccessToken()
	s.mu.Unlock()
	return nil
}

func (s *GRPCClient) Logout() {
	s.mu.Lock()
	s.accessToken = ""
	s.mu.Unlock()
}

func (s *GRPCClient) LoggedIn() bool {
	return s.token() != ""
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Summary(ctx context.Context) (*wire.Summary, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.Summary(ctx, &pb.SummaryRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return wire.SummaryFromPB(resp), nil
}

func (s *GRPCClient) ListEntities(ctx context.Context, kind models.Kind, query string) ([]wire.EntityRow, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.ListEntities(ctx, &pb.ListEntitiesRequest{Kind: string(kind), Query: query})
	if err != nil {
		return nil, s.mapError(err)
	}
	return wire.EntityRowsFromPB(resp.GetRows()), nil
}

func (s *GRPCClient) ListCredentials(ctx context.Context, a models.Association) ([]*models.Credential, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.ListCredentials(ctx, &pb.ListCredentialsRequest{Association: wire.AssociationToPB(a)})
	if err != nil {
		return nil, s.mapError(err)
	}
	return wire.CredentialsFromPB(resp.GetCredentials()), nil
}

func (s *GRPCClient) CreateCredential(ctx context.Context, a models.Association, f models.CredentialFields) (*models.Credential, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.CreateCredential(ctx, &pb.CreateCredentialRequest{Association: wire.AssociationToPB(a), Fields: wire.CredentialFieldsToPB(f)})
	if err != nil {
		return nil, s.mapError(err)
	}
	return wire.CredentialFromPB(resp.GetCredential()), nil
}

func (s *GRPCClient) UpdateCredential(ctx context.Context, a models.Association, id int64, f models.CredentialFields) (*models.Credential, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.UpdateCredential(ctx, &pb.UpdateCredentialRequest{Association: wire.AssociationToPB(a), Id: id, Fields: wire.CredentialFieldsToPB(f)})
	if err != nil {
		return nil, s.mapError(err)
	}
	return wire.CredentialFromPB(resp.GetCredential()), nil
}

func (s *GRPCClient) DeleteCredential(ctx context.Context, a models.Association, id int64) error {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	_, err := s.client.DeleteCredential(ctx, &pb.DeleteCredentialRequest{Association: wire.AssociationToPB(a), Id: id})
	return s.mapError(err)
}

func (s *GRPCClient) ListNotes(ctx context.Context, a models.Association) ([]*models.Note, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.ListNotes(ctx, &pb.ListNotesRequest{Association: wire.AssociationToPB(a)})
	if err != nil {
		return nil, s.mapError(err)
	}
	return wire.NotesFromPB(resp.GetNotes()), nil
}

func (s *GRPCClient) CreateNote(ctx context.Context, a models.Association, f models.NoteFields) (*models.Note, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.CreateNote(ctx, &pb.CreateNoteRequest{Association: wire.AssociationToPB(a), Fields: wire.NoteFieldsToPB(f)})
	if err != nil {
		return nil, s.mapError(err)
	}
	return wire.NoteFromPB(resp.GetNote()), nil
}

func (s *GRPCClient) UpdateNote(ctx context.Context, a models.Association, id int64, f models.NoteFields) (*models.Note, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.UpdateNote(ctx, &pb.UpdateNoteRequest{Association: wire.AssociationToPB(a), Id: id, Fields: wire.NoteFieldsToPB(f)})
	if err != nil {
		return nil, s.mapError(err)
	}
	return wire.NoteFromPB(resp.GetNote()), nil
}

func (s *GRPCClient) DeleteNote(ctx context.Context, a models.Association, id int64) error {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	_, err := s.client.DeleteNote(ctx, &pb.DeleteNoteRequest{Association: wire.AssociationToPB(a), Id: id})
	return s.mapError(err)
}

// remote rebuilds a sentinel-wrapped error from a status message, dropping
// the sentinel prefix the server already put there.
func remote(sentinel error, msg string) error {
	if msg == sentinel.Error() {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, strings.TrimPrefix(msg, sentinel.Error()+": "))
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return common.ErrorUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.InvalidArgument:
		return remote(common.ErrorValidation, st.Message())
	case codes.NotFound:
		return remote(common.ErrorNotFound, st.Message())
	case codes.FailedPrecondition:
		return remote(common.ErrAssociationMismatch, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
