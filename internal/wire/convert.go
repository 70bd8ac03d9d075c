// Package wire converts between the domain models and the protobuf
// messages the terminal client and the server exchange over gRPC.
package wire

import (
	"time"

	"github.com/dmitrijs2005/infrakeeper/internal/inventory"
	"github.com/dmitrijs2005/infrakeeper/internal/models"
	pb "github.com/dmitrijs2005/infrakeeper/internal/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Summary is the dashboard header as the client sees it.
type Summary struct {
	inventory.Totals
	NotesBySeverity map[models.Severity]int
	CriticalNotes   int
	WarningNotes    int
	Credentials     int
	GeneratedAt     time.Time
}

// EntityRow is one catalog row with its credential and note counts.
type EntityRow struct {
	Association     models.Association
	Title           string
	Hostname        string
	IPAddress       string
	Detail          string
	CredentialCount int
	NoteCount       int
}

func timestampToPB(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func timestampFromPB(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func AssociationToPB(a models.Association) *pb.Association {
	return &pb.Association{Kind: string(a.Kind), Id: a.ID}
}

// AssociationFromPB does not validate; the services reject unknown kinds.
func AssociationFromPB(a *pb.Association) models.Association {
	return models.Association{Kind: models.Kind(a.GetKind()), ID: a.GetId()}
}

func CredentialToPB(c *models.Credential) *pb.Credential {
	if c == nil {
		return nil
	}
	out := &pb.Credential{
		Id:            c.ID,
		Association:   AssociationToPB(c.Association),
		Username:      c.Username,
		Password:      c.Password,
		Note:          c.Note,
		HiddenDisplay: c.HiddenDisplay,
		Port:          int32(c.Port),
		Url:           c.URL,
		LastUpdated:   timestampToPB(c.LastUpdated),
	}
	if c.ProtocolID != nil {
		out.ProtocolId = wrapperspb.Int64(*c.ProtocolID)
	}
	return out
}

func CredentialFromPB(c *pb.Credential) *models.Credential {
	if c == nil {
		return nil
	}
	out := &models.Credential{
		ID:            c.GetId(),
		Association:   AssociationFromPB(c.GetAssociation()),
		Username:      c.GetUsername(),
		Password:      c.GetPassword(),
		Note:          c.GetNote(),
		HiddenDisplay: c.GetHiddenDisplay(),
		Port:          int(c.GetPort()),
		URL:           c.GetUrl(),
		LastUpdated:   timestampFromPB(c.GetLastUpdated()),
	}
	if c.ProtocolId != nil {
		id := c.ProtocolId.GetValue()
		out.ProtocolID = &id
	}
	return out
}

func CredentialsToPB(cs []*models.Credential) []*pb.Credential {
	out := make([]*pb.Credential, 0, len(cs))
	for _, c := range cs {
		out = append(out, CredentialToPB(c))
	}
	return out
}

func CredentialsFromPB(cs []*pb.Credential) []*models.Credential {
	out := make([]*models.Credential, 0, len(cs))
	for _, c := range cs {
		out = append(out, CredentialFromPB(c))
	}
	return out
}

// CredentialFieldsToPB sends a nil protocol or hidden flag as an unset
// wrapper so the server keeps the stored value.
func CredentialFieldsToPB(f models.CredentialFields) *pb.CredentialFields {
	out := &pb.CredentialFields{
		Username: f.Username,
		Password: f.Password,
		Note:     f.Note,
		Port:     int32(f.Port),
		Url:      f.URL,
	}
	if f.ProtocolID != nil {
		out.ProtocolId = wrapperspb.Int64(*f.ProtocolID)
	}
	if f.HiddenDisplay != nil {
		out.HiddenDisplay = wrapperspb.Bool(*f.HiddenDisplay)
	}
	return out
}

func CredentialFieldsFromPB(f *pb.CredentialFields) models.CredentialFields {
	out := models.CredentialFields{
		Username: f.GetUsername(),
		Password: f.GetPassword(),
		Note:     f.GetNote(),
		Port:     int(f.GetPort()),
		URL:      f.GetUrl(),
	}
	if f.GetProtocolId() != nil {
		id := f.GetProtocolId().GetValue()
		out.ProtocolID = &id
	}
	if f.GetHiddenDisplay() != nil {
		hidden := f.GetHiddenDisplay().GetValue()
		out.HiddenDisplay = &hidden
	}
	return out
}

func NoteToPB(n *models.Note) *pb.Note {
	if n == nil {
		return nil
	}
	return &pb.Note{
		Id:          n.ID,
		Association: AssociationToPB(n.Association),
		Severity:    string(n.Severity),
		Note:        n.Note,
		CreatedBy:   n.CreatedBy,
		CreatedAt:   timestampToPB(n.CreatedAt),
	}
}

func NoteFromPB(n *pb.Note) *models.Note {
	if n == nil {
		return nil
	}
	return &models.Note{
		ID:          n.GetId(),
		Association: AssociationFromPB(n.GetAssociation()),
		Severity:    models.Severity(n.GetSeverity()),
		Note:        n.GetNote(),
		CreatedBy:   n.GetCreatedBy(),
		CreatedAt:   timestampFromPB(n.GetCreatedAt()),
	}
}

func NotesToPB(ns []*models.Note) []*pb.Note {
	out := make([]*pb.Note, 0, len(ns))
	for _, n := range ns {
		out = append(out, NoteToPB(n))
	}
	return out
}

func NotesFromPB(ns []*pb.Note) []*models.Note {
	out := make([]*models.Note, 0, len(ns))
	for _, n := range ns {
		out = append(out, NoteFromPB(n))
	}
	return out
}

func NoteFieldsToPB(f models.NoteFields) *pb.NoteFields {
	return &pb.NoteFields{Severity: string(f.Severity), Note: f.Note}
}

func NoteFieldsFromPB(f *pb.NoteFields) models.NoteFields {
	return models.NoteFields{Severity: models.Severity(f.GetSeverity()), Note: f.GetNote()}
}

func TotalsToPB(t inventory.Totals) *pb.Totals {
	return &pb.Totals{
		VmwareServers:     int32(t.Servers),
		VirtualAppliances: int32(t.Appliances),
		Applications:      int32(t.Applications),
		Containers:        int32(t.Containers),
		Urls:              int32(t.URLs),
		TotalCpuCores:     int32(t.TotalCPUCores),
		TotalRamGb:        int32(t.TotalRAMGB),
		TotalStorageTb:    t.TotalStorageTB,
	}
}

func TotalsFromPB(t *pb.Totals) inventory.Totals {
	return inventory.Totals{
		Servers:        int(t.GetVmwareServers()),
		Appliances:     int(t.GetVirtualAppliances()),
		Applications:   int(t.GetApplications()),
		Containers:     int(t.GetContainers()),
		URLs:           int(t.GetUrls()),
		TotalCPUCores:  int(t.GetTotalCpuCores()),
		TotalRAMGB:     int(t.GetTotalRamGb()),
		TotalStorageTB: t.GetTotalStorageTb(),
	}
}

// SeverityCountsToPB lists counts in escalating severity order. Severities
// outside models.Severities are dropped.
func SeverityCountsToPB(m map[models.Severity]int) []*pb.SeverityCount {
	out := make([]*pb.SeverityCount, 0, len(m))
	for _, s := range models.Severities {
		if n, ok := m[s]; ok {
			out = append(out, &pb.SeverityCount{Severity: string(s), Count: int32(n)})
		}
	}
	return out
}

func SeverityCountsFromPB(cs []*pb.SeverityCount) map[models.Severity]int {
	out := make(map[models.Severity]int, len(cs))
	for _, c := range cs {
		out[models.Severity(c.GetSeverity())] += int(c.GetCount())
	}
	return out
}

func SummaryFromPB(r *pb.SummaryResponse) *Summary {
	return &Summary{
		Totals:          TotalsFromPB(r.GetTotals()),
		NotesBySeverity: SeverityCountsFromPB(r.GetNotesBySeverity()),
		CriticalNotes:   int(r.GetCriticalNotes()),
		WarningNotes:    int(r.GetWarningNotes()),
		Credentials:     int(r.GetCredentials()),
		GeneratedAt:     timestampFromPB(r.GetGeneratedAt()),
	}
}

func EntityRowToPB(r EntityRow) *pb.EntityRow {
	return &pb.EntityRow{
		Association:     AssociationToPB(r.Association),
		Title:           r.Title,
		Hostname:        r.Hostname,
		IpAddress:       r.IPAddress,
		Detail:          r.Detail,
		CredentialCount: int32(r.CredentialCount),
		NoteCount:       int32(r.NoteCount),
	}
}

func EntityRowsFromPB(rs []*pb.EntityRow) []EntityRow {
	out := make([]EntityRow, 0, len(rs))
	for _, r := range rs {
		out = append(out, EntityRow{
			Association:     AssociationFromPB(r.GetAssociation()),
			Title:           r.GetTitle(),
			Hostname:        r.GetHostname(),
			IPAddress:       r.GetIpAddress(),
			Detail:          r.GetDetail(),
			CredentialCount: int(r.GetCredentialCount()),
			NoteCount:       int(r.GetNoteCount()),
		})
	}
	return out
}
