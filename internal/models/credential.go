package models

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/infrakeeper/internal/common"
)

// MaskedPassword replaces a password wherever it is not explicitly revealed.
const MaskedPassword = "••••••••••••"

// Credential is a reusable login attached to one inventory entity.
type Credential struct {
	ID          int64       `json:"id"`
	Association Association `json:"association"`
	Username    string      `json:"username,omitempty"`
	Password    string      `json:"password,omitempty"`
	Note        string      `json:"note,omitempty"`
	// HiddenDisplay is stored and returned but does not drive masking;
	// masking is decided by whoever renders the record.
	HiddenDisplay bool      `json:"hidden_display"`
	Port          int       `json:"port"`
	ProtocolID    *int64    `json:"protocol_id,omitempty"`
	URL           string    `json:"url,omitempty"`
	LastUpdated   time.Time `json:"last_updated"`
}

// CredentialFields are the caller-editable parts of a Credential.
type CredentialFields struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	Note          string `json:"note"`
	Port          int    `json:"port"`
	URL           string `json:"url"`
	ProtocolID    *int64 `json:"protocol_id,omitempty"`
	HiddenDisplay *bool  `json:"hidden_display,omitempty"`
}

// Normalize applies defaults (port 22, hidden display) and validates the
// port range. An empty username is accepted.
func (f CredentialFields) Normalize() (CredentialFields, error) {
	if f.Port == 0 {
		f.Port = common.DefaultPort
	}
	if f.Port < 1 || f.Port > 65535 {
		return f, fmt.Errorf("%w: port %d out of range", common.ErrorValidation, f.Port)
	}
	if f.ProtocolID != nil {
		if _, ok := ProtocolByID(*f.ProtocolID); !ok {
			return f, fmt.Errorf("%w: unknown protocol %d", common.ErrorValidation, *f.ProtocolID)
		}
	}
	if f.HiddenDisplay == nil {
		hidden := true
		f.HiddenDisplay = &hidden
	}
	return f, nil
}

// Keep fills the fields an edit left unset (nil protocol and hidden flag)
// from the stored record c.
func (f CredentialFields) Keep(c *Credential) CredentialFields {
	if f.ProtocolID == nil && c.ProtocolID != nil {
		id := *c.ProtocolID
		f.ProtocolID = &id
	}
	if f.HiddenDisplay == nil {
		hidden := c.HiddenDisplay
		f.HiddenDisplay = &hidden
	}
	return f
}

// Apply copies the editable fields onto c. Identity and association are
// left untouched. f is expected to be normalized.
func (c *Credential) Apply(f CredentialFields) {
	c.Username = f.Username
	c.Password = f.Password
	c.Note = f.Note
	c.Port = f.Port
	c.URL = f.URL
	c.ProtocolID = f.ProtocolID
	if f.HiddenDisplay != nil {
		c.HiddenDisplay = *f.HiddenDisplay
	}
}

// Fields extracts the editable part of c.
func (c *Credential) Fields() CredentialFields {
	hidden := c.HiddenDisplay
	return CredentialFields{
		Username:      c.Username,
		Password:      c.Password,
		Note:          c.Note,
		Port:          c.Port,
		URL:           c.URL,
		ProtocolID:    c.ProtocolID,
		HiddenDisplay: &hidden,
	}
}

// Clone returns a deep copy.
func (c *Credential) Clone() *Credential {
	cp := *c
	if c.ProtocolID != nil {
		id := *c.ProtocolID
		cp.ProtocolID = &id
	}
	return &cp
}

// Masked returns a copy whose password, if any, is replaced by
// MaskedPassword.
func (c *Credential) Masked() *Credential {
	cp := c.Clone()
	if cp.Password != "" {
		cp.Password = MaskedPassword
	}
	return cp
}
