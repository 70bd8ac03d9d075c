package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/infrakeeper/internal/client/manager"
	"github.com/dmitrijs2005/infrakeeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotes_Lifecycle(t *testing.T) {
	api := seededAPI()
	script := strings.Join([]string{
		"add", "warning", "disk almost full", "",
		"add", "", "backup ok", "",
		"edit 1", "critical", "",
		"delete 1", "y",
		"delete 2", "y",
		"back",
	}, "\n") + "\n"
	a, out := testApp(t, api, script)

	require.NoError(t, a.Notes(context.Background(), "app", "2"))

	s := out.String()
	assert.Equal(t, 2, strings.Count(s, manager.EmptyNotesMessage))
	assert.Contains(t, s, "✔ Note Added")
	assert.Contains(t, s, "✔ Note Updated")
	assert.Contains(t, s, "✔ Note Deleted")
	assert.Contains(t, s, manager.SeverityStyle(models.SeverityCritical).Badge())
	assert.Contains(t, s, "Current text:\ndisk almost full")

	second := strings.LastIndex(s, "✔ Note Added")
	table := s[second:]
	assert.Less(t, strings.Index(table, "backup ok"), strings.Index(table, "disk almost full"), "newest note is listed first")
	assert.Empty(t, api.notes)
}

func TestNotes_BlankTextKeepsFormOpen(t *testing.T) {
	api := seededAPI()
	script := strings.Join([]string{
		"add", "info", "", "y", "info", "second try", "",
		"back",
	}, "\n") + "\n"
	a, out := testApp(t, api, script)

	require.NoError(t, a.Notes(context.Background(), "application", "2"))

	assert.Contains(t, out.String(), "✖ Error:")
	require.Len(t, api.notes, 1)
	assert.Equal(t, mysql, api.notes[0].Association)
	assert.Equal(t, "second try", api.notes[0].Note)
}

func TestNotes_BadSeverityCancels(t *testing.T) {
	api := seededAPI()
	a, out := testApp(t, api, "add\nurgent\nadd\n\nok\n\nback\n")

	require.NoError(t, a.Notes(context.Background(), "application", "2"))

	assert.Contains(t, out.String(), "unknown severity")
	require.Len(t, api.notes, 1)
	assert.Equal(t, models.SeverityInfo, api.notes[0].Severity)
}
