package wire

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/infrakeeper/internal/inventory"
	"github.com/dmitrijs2005/infrakeeper/internal/models"
	pb "github.com/dmitrijs2005/infrakeeper/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

func TestCredentialFields_UnsetWrappersSurviveMarshal(t *testing.T) {
	b, err := proto.Marshal(&pb.UpdateCredentialRequest{
		Association: AssociationToPB(models.Association{Kind: models.KindApplication, ID: 2}),
		Id:          7,
		Fields:      CredentialFieldsToPB(models.CredentialFields{Username: "root", Port: 2222}),
	})
	require.NoError(t, err)

	var got pb.UpdateCredentialRequest
	require.NoError(t, proto.Unmarshal(b, &got))

	f := CredentialFieldsFromPB(got.GetFields())
	assert.Equal(t, "root", f.Username)
	assert.Equal(t, 2222, f.Port)
	assert.Nil(t, f.ProtocolID)
	assert.Nil(t, f.HiddenDisplay)
	assert.Equal(t, models.Association{Kind: models.KindApplication, ID: 2}, AssociationFromPB(got.GetAssociation()))
	assert.Equal(t, int64(7), got.GetId())
}

func TestCredentialFields_SetWrappersSurviveMarshal(t *testing.T) {
	rdp, hidden := int64(6), false
	b, err := proto.Marshal(CredentialFieldsToPB(models.CredentialFields{ProtocolID: &rdp, HiddenDisplay: &hidden}))
	require.NoError(t, err)

	var got pb.CredentialFields
	require.NoError(t, proto.Unmarshal(b, &got))

	f := CredentialFieldsFromPB(&got)
	require.NotNil(t, f.ProtocolID)
	require.NotNil(t, f.HiddenDisplay)
	assert.Equal(t, int64(6), *f.ProtocolID)
	assert.False(t, *f.HiddenDisplay)
}

func TestCredential_RoundTrip(t *testing.T) {
	protocolID := int64(1)
	c := &models.Credential{
		ID:            3,
		Association:   models.Association{Kind: models.KindVMwareServer, ID: 100},
		Username:      "root",
		Password:      "pw",
		Note:          "console",
		HiddenDisplay: true,
		Port:          22,
		ProtocolID:    &protocolID,
		URL:           "https://esx",
		LastUpdated:   time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, c, CredentialFromPB(CredentialToPB(c)))

	c.ProtocolID = nil
	c.LastUpdated = time.Time{}
	out := CredentialToPB(c)
	assert.Nil(t, out.GetProtocolId())
	assert.Nil(t, out.GetLastUpdated())
	assert.Equal(t, c, CredentialFromPB(out))

	assert.Nil(t, CredentialToPB(nil))
	assert.Nil(t, CredentialFromPB(nil))
}

func TestNote_RoundTrip(t *testing.T) {
	n := &models.Note{
		ID:          4,
		Association: models.Association{Kind: models.KindURL, ID: 1},
		Severity:    models.SeverityCritical,
		Note:        "certificate expires",
		CreatedBy:   1,
		CreatedAt:   time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	got := NotesFromPB(NotesToPB([]*models.Note{n}))
	require.Len(t, got, 1)
	assert.Equal(t, n, got[0])

	f := models.NoteFields{Severity: models.SeverityWarning, Note: "disk"}
	assert.Equal(t, f, NoteFieldsFromPB(NoteFieldsToPB(f)))
}

func TestSeverityCounts_EscalatingOrder(t *testing.T) {
	m := map[models.Severity]int{
		models.SeverityCritical: 2,
		models.SeverityInfo:     1,
		models.SeverityWarning:  0,
		"bogus":                 9,
	}
	got := SeverityCountsToPB(m)
	require.Len(t, got, 3)
	assert.Equal(t, "info", got[0].GetSeverity())
	assert.Equal(t, "warning", got[1].GetSeverity())
	assert.Equal(t, "critical", got[2].GetSeverity())

	delete(m, "bogus")
	assert.Equal(t, m, SeverityCountsFromPB(got))
}

func TestSummaryFromPB(t *testing.T) {
	totals := inventory.Totals{Servers: 2, Appliances: 1, Applications: 3, Containers: 4, URLs: 5, TotalCPUCores: 48, TotalRAMGB: 512, TotalStorageTB: 12.5}
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	got := SummaryFromPB(&pb.SummaryResponse{
		Totals:          TotalsToPB(totals),
		NotesBySeverity: SeverityCountsToPB(map[models.Severity]int{models.SeverityCritical: 1}),
		CriticalNotes:   1,
		Credentials:     6,
		GeneratedAt:     timestampToPB(at),
	})
	assert.Equal(t, totals, got.Totals)
	assert.Equal(t, map[models.Severity]int{models.SeverityCritical: 1}, got.NotesBySeverity)
	assert.Equal(t, 1, got.CriticalNotes)
	assert.Equal(t, 0, got.WarningNotes)
	assert.Equal(t, 6, got.Credentials)
	assert.True(t, at.Equal(got.GeneratedAt))

	empty := SummaryFromPB(&pb.SummaryResponse{})
	assert.Equal(t, inventory.Totals{}, empty.Totals)
	assert.True(t, empty.GeneratedAt.IsZero())
}

func TestEntityRows_RoundTrip(t *testing.T) {
	r := EntityRow{
		Association:     models.Association{Kind: models.KindContainer, ID: 9},
		Title:           "nginx",
		Hostname:        "web-1",
		IPAddress:       "10.0.0.9",
		Detail:          "docker",
		CredentialCount: 2,
		NoteCount:       1,
	}
	assert.Equal(t, []EntityRow{r}, EntityRowsFromPB([]*pb.EntityRow{EntityRowToPB(r)}))
	assert.Empty(t, EntityRowsFromPB(nil))
}

func TestServiceDescriptor(t *testing.T) {
	sd := pb.File_infrakeeper_v1_inventory_proto.Services().ByName("Inventory")
	require.NotNil(t, sd)
	assert.Equal(t, 12, sd.Methods().Len())
	assert.Equal(t, "/infrakeeper.v1.Inventory/Ping", pb.Inventory_Ping_FullMethodName)
	assert.Equal(t, "infrakeeper.v1.Inventory", pb.Inventory_ServiceDesc.ServiceName)
	assert.Len(t, pb.Inventory_ServiceDesc.Methods, 12)
}
