package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/infrakeeper/internal/client/client"
	"github.com/dmitrijs2005/infrakeeper/internal/common"
)

// getPassword is an indirection used to facilitate testing.
var getPassword = GetPassword

// Login prompts for the operator name and password and authenticates
// against the server. The configured username is offered as the default.
func (a *App) Login(ctx context.Context) error {
	userName, err := GetTextWithDefault(a.reader, "Enter username", a.config.Username, a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	err = a.api.Login(ctx, userName, string(password))
	switch {
	case errors.Is(err, client.ErrUnavailable):
		a.setMode(ModeOffline)
		return fmt.Errorf("server unavailable: %w", err)
	case err != nil:
		return fmt.Errorf("login unsuccessful: %w", err)
	}

	a.mu.Lock()
	a.userName = userName
	a.mu.Unlock()
	a.setMode(ModeOnline)
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

// Logout drops the access token.
func (a *App) Logout(ctx context.Context) error {
	a.api.Logout()
	a.mu.Lock()
	a.userName = ""
	a.mu.Unlock()
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
