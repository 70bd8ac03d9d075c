package grpc

import (
	"context"

	"github.com/dmitrijs2005/infrakeeper/internal/models"
	pb "github.com/dmitrijs2005/infrakeeper/internal/proto"
	"github.com/dmitrijs2005/infrakeeper/internal/server/services"
	"github.com/dmitrijs2005/infrakeeper/internal/wire"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	token, err := s.operators.Login(ctx, req.GetUsername(), req.GetPassword())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.LoginResponse{AccessToken: token}, nil
}

func (s *GRPCServer) Summary(ctx context.Context, req *pb.SummaryRequest) (*pb.SummaryResponse, error) {
	sum, err := s.dashboard.Summary(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.SummaryResponse{
		Totals:          wire.TotalsToPB(sum.Totals),
		NotesBySeverity: wire.SeverityCountsToPB(sum.NotesBySeverity),
		CriticalNotes:   int32(sum.CriticalNotes),
		WarningNotes:    int32(sum.WarningNotes),
		Credentials:     int32(sum.Credentials),
		GeneratedAt:     timestamppb.New(sum.GeneratedAt),
	}, nil
}

func (s *GRPCServer) ListEntities(ctx context.Context, req *pb.ListEntitiesRequest) (*pb.ListEntitiesResponse, error) {
	var (
		rows []services.EntityRow
		err  error
	)
	if req.GetKind() == "" {
		rows, err = s.dashboard.Search(ctx, req.GetQuery())
	} else {
		rows, err = s.dashboard.ListEntities(ctx, models.Kind(req.GetKind()), req.GetQuery())
	}
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	resp := &pb.ListEntitiesResponse{Rows: make([]*pb.EntityRow, 0, len(rows))}
	for _, r := range rows {
		resp.Rows = append(resp.Rows, wire.EntityRowToPB(wire.EntityRow{
			Association:     r.Association,
			Title:           r.Title,
			Hostname:        r.Hostname,
			IPAddress:       r.IPAddress,
			Detail:          r.Detail,
			CredentialCount: r.CredentialCount,
			NoteCount:       r.NoteCount,
		}))
	}
	return resp, nil
}

func (s *GRPCServer) ListCredentials(ctx context.Context, req *pb.ListCredentialsRequest) (*pb.ListCredentialsResponse, error) {
	creds, err := s.associations.ListCredentials(ctx, wire.AssociationFromPB(req.GetAssociation()))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ListCredentialsResponse{Credentials: wire.CredentialsToPB(creds)}, nil
}

func (s *GRPCServer) CreateCredential(ctx context.Context, req *pb.CreateCredentialRequest) (*pb.CredentialResponse, error) {
	c, err := s.associations.CreateCredential(ctx, wire.AssociationFromPB(req.GetAssociation()), wire.CredentialFieldsFromPB(req.GetFields()))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.CredentialResponse{Credential: wire.CredentialToPB(c)}, nil
}

func (s *GRPCServer) UpdateCredential(ctx context.Context, req *pb.UpdateCredentialRequest) (*pb.CredentialResponse, error) {
	c, err := s.associations.UpdateCredential(ctx, wire.AssociationFromPB(req.GetAssociation()), req.GetId(), wire.CredentialFieldsFromPB(req.GetFields()))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.CredentialResponse{Credential: wire.CredentialToPB(c)}, nil
}

func (s *GRPCServer) DeleteCredential(ctx context.Context, req *pb.DeleteCredentialRequest) (*pb.DeleteResponse, error) {
	if err := s.associations.DeleteCredential(ctx, wire.AssociationFromPB(req.GetAssociation()), req.GetId()); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.DeleteResponse{}, nil
}

func (s *GRPCServer) ListNotes(ctx context.Context, req *pb.ListNotesRequest) (*pb.ListNotesResponse, error) {
	notes, err := s.associations.ListNotes(ctx, wire.AssociationFromPB(req.GetAssociation()))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ListNotesResponse{Notes: wire.NotesToPB(notes)}, nil
}

func (s *GRPCServer) CreateNote(ctx context.Context, req *pb.CreateNoteRequest) (*pb.NoteResponse, error) {
	n, err := s.associations.CreateNote(ctx, wire.AssociationFromPB(req.GetAssociation()), wire.NoteFieldsFromPB(req.GetFields()))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.NoteResponse{Note: wire.NoteToPB(n)}, nil
}

func (s *GRPCServer) UpdateNote(ctx context.Context, req *pb.UpdateNoteRequest) (*pb.NoteResponse, error) {
	n, err := s.associations.UpdateNote(ctx, wire.AssociationFromPB(req.GetAssociation()), req.GetId(), wire.NoteFieldsFromPB(req.GetFields()))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.NoteResponse{Note: wire.NoteToPB(n)}, nil
}

func (s *GRPCServer) DeleteNote(ctx context.Context, req *pb.DeleteNoteRequest) (*pb.DeleteResponse, error) {
	if err := s.associations.DeleteNote(ctx, wire.AssociationFromPB(req.GetAssociation()), req.GetId()); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.DeleteResponse{}, nil
}
