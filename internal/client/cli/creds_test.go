package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/infrakeeper/internal/common"
	"github.com/dmitrijs2005/infrakeeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentials_AddRevealBack(t *testing.T) {
	stubPassword(t, "toor")
	api := seededAPI()
	script := strings.Join([]string{
		"add", "root", "2222", "", "",
		"reveal 1",
		"back",
	}, "\n") + "\n"
	a, out := testApp(t, api, script)

	require.NoError(t, a.Credentials(context.Background(), "vm", "1"))

	require.Len(t, api.creds, 1)
	c := api.creds[0]
	assert.Equal(t, webVM, c.Association)
	assert.Equal(t, "root", c.Username)
	assert.Equal(t, "toor", c.Password)
	assert.Equal(t, 2222, c.Port)

	s := out.String()
	assert.Contains(t, s, "No credentials.")
	assert.Contains(t, s, "✔ Credential Added")
	added := strings.Index(s, "✔ Credential Added")
	revealed := strings.LastIndex(s, "toor")
	assert.Contains(t, s[added:], models.MaskedPassword)
	assert.Greater(t, revealed, added)
}

func TestCredentials_FailedSaveThenCancel(t *testing.T) {
	stubPassword(t, "")
	api := seededAPI()
	script := strings.Join([]string{
		"add", "root", "70000", "", "",
		"n",
		"add", "root", "", "", "",
		"back",
	}, "\n") + "\n"
	a, out := testApp(t, api, script)

	require.NoError(t, a.Credentials(context.Background(), "virtual_appliance", "1"))

	s := out.String()
	assert.Contains(t, s, "✖ Error:")
	assert.Contains(t, s, "Save failed")
	require.Len(t, api.creds, 1)
	assert.Equal(t, 22, api.creds[0].Port)
}

func TestCredentials_EditKeepsPasswordAndDelete(t *testing.T) {
	stubPassword(t, "")
	api := seededAPI()
	_, _ = api.CreateCredential(context.Background(), webVM, models.CredentialFields{Username: "root", Password: "toor", Port: 22})
	_, _ = api.CreateCredential(context.Background(), webVM, models.CredentialFields{Username: "admin", Password: "pw"})

	script := strings.Join([]string{
		"edit 1", "operator", "", "", "jump host",
		"delete 2", "y",
		"edit 9",
		"back",
	}, "\n") + "\n"
	a, out := testApp(t, api, script)

	require.NoError(t, a.Credentials(context.Background(), "vm", "1"))

	require.Len(t, api.creds, 1)
	c := api.creds[0]
	assert.Equal(t, "operator", c.Username)
	assert.Equal(t, "toor", c.Password)
	assert.Equal(t, "jump host", c.Note)

	s := out.String()
	assert.Contains(t, s, "Username [root]")
	assert.Contains(t, s, "✔ Credential Updated")
	assert.Contains(t, s, "✔ Credential Deleted")
	assert.Contains(t, s, "error: "+common.ErrorNotFound.Error())
}

func TestCredentials_InvalidAssociation(t *testing.T) {
	a, _ := testApp(t, seededAPI(), "")
	err := a.Credentials(context.Background(), "printer", "1")
	assert.ErrorIs(t, err, common.ErrorValidation)
}
