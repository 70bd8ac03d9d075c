package cli

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/infrakeeper/internal/client/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_Success(t *testing.T) {
	stubPassword(t, "secret")
	api := &fakeAPI{}
	a, out := testApp(t, api, "\n")
	a.config.Username = "admin"

	require.NoError(t, a.Login(context.Background()))
	assert.True(t, a.isLoggedIn())
	assert.Equal(t, ModeOnline, a.Mode())
	assert.Equal(t, "(admin online)", a.getStatus())
	assert.Contains(t, out.String(), "Enter username [admin]")
	assert.Contains(t, out.String(), "Login successful")

	require.NoError(t, a.Logout(context.Background()))
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, "(online)", a.getStatus())
}

func TestLogin_WrongPassword(t *testing.T) {
	stubPassword(t, "nope")
	a, _ := testApp(t, &fakeAPI{}, "admin\n")

	err := a.Login(context.Background())
	assert.ErrorContains(t, err, "login unsuccessful")
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, "", a.getStatus())
}

func TestLogin_ServerDown(t *testing.T) {
	stubPassword(t, "secret")
	api := &fakeAPI{}
	api.down.Store(true)
	a, _ := testApp(t, api, "admin\n")

	err := a.Login(context.Background())
	assert.ErrorContains(t, err, "server unavailable")
	assert.Equal(t, ModeOffline, a.Mode())
}

func TestStartOnlineStatusWatcher(t *testing.T) {
	api := &fakeAPI{}
	a, _ := testApp(t, api, "")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		a.StartOnlineStatusWatcher(ctx, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return a.Mode() == ModeOnline }, time.Second, 5*time.Millisecond)
	api.down.Store(true)
	assert.Eventually(t, func() bool { return a.Mode() == ModeOffline }, time.Second, 5*time.Millisecond)

	cancel()
	<-done
	assert.Greater(t, api.pings.Load(), int32(1))
}

func TestRoot_LoginThenExit(t *testing.T) {
	silencePrintln(t)
	stubPassword(t, "secret")
	api := &fakeAPI{}
	a, out := testApp(t, api, "admin\nexit\n")
	a.config = &config.Config{OnlineCheckInterval: time.Hour}

	a.Run(context.Background())
	assert.True(t, api.LoggedIn())
	assert.True(t, api.closed)
	assert.Contains(t, out.String(), "Welcome to infrakeeper")
}
