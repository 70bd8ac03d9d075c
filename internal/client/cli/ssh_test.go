package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/infrakeeper/internal/common"
	"github.com/dmitrijs2005/infrakeeper/internal/launcher"
	"github.com/dmitrijs2005/infrakeeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSSH_LauncherSession(t *testing.T) {
	stubPassword(t, "pw")
	api := seededAPI()
	_, _ = api.CreateCredential(context.Background(), webVM, models.CredentialFields{Username: "root", Password: "toor", Port: 2222})

	script := strings.Join([]string{
		"copy-password",
		"use 1",
		"copy",
		"copy-password",
		"custom admin 2200",
		"command",
		"copy-password",
		"custom admin 99999",
		"saved",
		"launch",
		"back",
	}, "\n") + "\n"
	a, out := testApp(t, api, script)
	var clip bytes.Buffer
	a.clip = &clip

	var launched []string
	a.handoff = launcher.HandoffFunc(func(_ context.Context, target launcher.Target, command string) error {
		assert.Equal(t, "10.0.1.100", target.Address())
		launched = append(launched, command)
		return nil
	})

	require.NoError(t, a.SSH(context.Background(), "vm", "1"))

	s := out.String()
	assert.Contains(t, s, "Target: virtual appliance 1 (10.0.1.100)")
	assert.Contains(t, s, "ssh 10.0.1.100\n")
	assert.Contains(t, s, "error: "+errNothingToCopy.Error())
	assert.Contains(t, s, "ssh root@10.0.1.100 -p 2222")
	assert.Contains(t, s, "ssh admin@10.0.1.100 -p 2200")
	assert.Contains(t, s, "ssh://admin@10.0.1.100:2200")
	assert.Contains(t, s, "invalid port")

	assert.Equal(t, osc52("ssh root@10.0.1.100 -p 2222")+osc52("toor")+osc52("pw"), clip.String())
	assert.Equal(t, []string{"ssh root@10.0.1.100 -p 2222"}, launched)
}

func TestSSH_HandoffError(t *testing.T) {
	a, out := testApp(t, seededAPI(), "launch\nback\n")
	a.handoff = launcher.HandoffFunc(func(context.Context, launcher.Target, string) error {
		return errors.New("no terminal")
	})

	require.NoError(t, a.SSH(context.Background(), "vm", "1"))
	assert.Contains(t, out.String(), "error: launch 10.0.1.100: no terminal")
}

func TestSSH_DefaultHandoffCopiesCommand(t *testing.T) {
	a, out := testApp(t, seededAPI(), "custom ops\nlaunch\nback\n")
	stubPassword(t, "")

	require.NoError(t, a.SSH(context.Background(), "vm", "1"))
	assert.Contains(t, out.String(), osc52("ssh ops@10.0.1.100 -p 22"))
	assert.Contains(t, out.String(), "command copied")
}

func TestSSH_UnknownEntity(t *testing.T) {
	a, _ := testApp(t, seededAPI(), "")
	err := a.SSH(context.Background(), "vm", "42")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSSH_CustomWithoutUsername(t *testing.T) {
	stubPassword(t, "")
	a, out := testApp(t, seededAPI(), "custom\ncustom - 2200\ncustom - x\ncustom a b c\nback\n")

	require.NoError(t, a.SSH(context.Background(), "vm", "1"))
	s := out.String()
	assert.Contains(t, s, "ssh 10.0.1.100 -p 22\n")
	assert.Contains(t, s, "ssh 10.0.1.100 -p 2200\n")
	assert.NotContains(t, s, "-@10.0.1.100")
	assert.Contains(t, s, "invalid port")
	assert.Contains(t, s, "Usage: custom [user|-] [port]")
}
