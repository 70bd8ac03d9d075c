// Package launcher derives the ssh command line, URL and clipboard payloads
// for connecting to an inventory entity. It never opens a connection itself;
// Launch hands the command to a Handoff.
package launcher

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/infrakeeper/internal/common"
	"github.com/dmitrijs2005/infrakeeper/internal/models"
)

// UnknownAddress stands in when a target has neither IP nor hostname.
const UnknownAddress = "unknown"

// Target is the entity being connected to.
type Target struct {
	Kind      models.Kind `json:"target_type"`
	ID        int64       `json:"id"`
	Hostname  string      `json:"hostname,omitempty"`
	IPAddress string      `json:"ip_address,omitempty"`
}

// Address prefers the IP address, then the hostname.
func (t Target) Address() string {
	switch {
	case t.IPAddress != "":
		return t.IPAddress
	case t.Hostname != "":
		return t.Hostname
	}
	return UnknownAddress
}

// Options is the launcher form: either a saved credential or custom input.
type Options struct {
	UseCustom      bool
	Selected       *models.Credential
	CustomUsername string
	CustomPassword string
	CustomPort     int
}

func portOrDefault(p int) int {
	if p == 0 {
		return common.DefaultPort
	}
	return p
}

// Command builds the display command:
//
//	custom with user:   ssh user@addr -p port
//	custom without:     ssh addr -p port
//	saved credential:   ssh user@addr -p port
//	nothing selected:   ssh addr
func Command(t Target, o Options) string {
	addr := t.Address()
	switch {
	case o.UseCustom && o.CustomUsername != "":
		return fmt.Sprintf("ssh %s@%s -p %d", o.CustomUsername, addr, portOrDefault(o.CustomPort))
	case o.UseCustom:
		return fmt.Sprintf("ssh %s -p %d", addr, portOrDefault(o.CustomPort))
	case o.Selected != nil:
		return fmt.Sprintf("ssh %s@%s -p %d", o.Selected.Username, addr, portOrDefault(o.Selected.Port))
	}
	return "ssh " + addr
}

// PasswordToCopy is the raw secret for the active choice, or "" when there
// is none.
func PasswordToCopy(o Options) string {
	if o.UseCustom {
		return o.CustomPassword
	}
	if o.Selected != nil {
		return o.Selected.Password
	}
	return ""
}

// URL renders the same choice as an ssh:// URL for terminal handlers.
func URL(t Target, o Options) string {
	u := url.URL{Scheme: "ssh"}
	var user string
	port := common.DefaultPort
	switch {
	case o.UseCustom:
		user, port = o.CustomUsername, portOrDefault(o.CustomPort)
	case o.Selected != nil:
		user, port = o.Selected.Username, portOrDefault(o.Selected.Port)
	}
	if user != "" {
		u.User = url.User(user)
	}
	u.Host = net.JoinHostPort(t.Address(), strconv.Itoa(port))
	return u.String()
}

// Handoff receives the command to run, e.g. a terminal integration.
type Handoff interface {
	Handoff(ctx context.Context, target Target, command string) error
}

// HandoffFunc adapts a function to Handoff.
type HandoffFunc func(ctx context.Context, target Target, command string) error

func (f HandoffFunc) Handoff(ctx context.Context, target Target, command string) error {
	return f(ctx, target, command)
}

// Launch computes the command and passes it to h.
func Launch(ctx context.Context, h Handoff, t Target, o Options) (string, error) {
	cmd := Command(t, o)
	if h == nil {
		return cmd, nil
	}
	if err := h.Handoff(ctx, t, cmd); err != nil {
		return cmd, fmt.Errorf("launch %s: %w", t.Address(), err)
	}
	return cmd, nil
}
