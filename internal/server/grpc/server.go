// Package grpc exposes the inventory service to the terminal client over
// gRPC, using the messages generated from api/infrakeeper/v1/inventory.proto.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/infrakeeper/internal/logging"
	"github.com/dmitrijs2005/infrakeeper/internal/models"
	pb "github.com/dmitrijs2005/infrakeeper/internal/proto"
	"github.com/dmitrijs2005/infrakeeper/internal/server/metrics"
	"github.com/dmitrijs2005/infrakeeper/internal/server/services"
	"google.golang.org/grpc"
)

type Operators interface {
	Login(ctx context.Context, username, password string) (string, error)
	Authenticate(token string) (int64, error)
}

type Dashboard interface {
	Summary(ctx context.Context) (*services.Summary, error)
	ListEntities(ctx context.Context, kind models.Kind, term string) ([]services.EntityRow, error)
	Search(ctx context.Context, term string) ([]services.EntityRow, error)
}

type Associations interface {
	ListCredentials(ctx context.Context, a models.Association) ([]*models.Credential, error)
	CreateCredential(ctx context.Context, a models.Association, f models.CredentialFields) (*models.Credential, error)
	UpdateCredential(ctx context.Context, a models.Association, id int64, f models.CredentialFields) (*models.Credential, error)
	DeleteCredential(ctx context.Context, a models.Association, id int64) error
	ListNotes(ctx context.Context, a models.Association) ([]*models.Note, error)
	CreateNote(ctx context.Context, a models.Association, f models.NoteFields) (*models.Note, error)
	UpdateNote(ctx context.Context, a models.Association, id int64, f models.NoteFields) (*models.Note, error)
	DeleteNote(ctx context.Context, a models.Association, id int64) error
}

type GRPCServer struct {
	pb.UnimplementedInventoryServer
	address      string
	operators    Operators
	dashboard    Dashboard
	associations Associations
	metrics      *metrics.Metrics
	logger       logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, ops Operators, d Dashboard, as Associations, m *metrics.Metrics) *GRPCServer {
	return &GRPCServer{
		address:      a,
		logger:       l.With("module", "grpc_server"),
		operators:    ops,
		dashboard:    d,
		associations: as,
		metrics:      m,
	}
}

// NewServer builds the grpc.Server with interceptors and the inventory
// service registered, without listening.
func (s *GRPCServer) NewServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.metricsInterceptor, s.accessTokenInterceptor))
	pb.RegisterInventoryServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
