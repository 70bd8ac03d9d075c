// Package models defines the inventory entities and the records that are
// attached to them: credentials and notes. It is shared by the server, the
// wire layer and the terminal client.
package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/infrakeeper/internal/common"
)

// Kind is the discriminant of an inventory entity.
type Kind string

const (
	KindVMwareServer     Kind = "vmware_server"
	KindVirtualAppliance Kind = "virtual_appliance"
	KindApplication      Kind = "application"
	KindContainer        Kind = "container"
	KindURL              Kind = "url"
)

// Kinds lists every entity kind in display order.
var Kinds = []Kind{KindVMwareServer, KindVirtualAppliance, KindApplication, KindContainer, KindURL}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindVMwareServer, KindVirtualAppliance, KindApplication, KindContainer, KindURL:
		return true
	}
	return false
}

// Label is the human form, e.g. "vmware server".
func (k Kind) Label() string {
	return strings.ReplaceAll(string(k), "_", " ")
}

// ParseKind accepts the canonical names plus a few short aliases used by
// the CLI ("server", "vm", "app").
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vmware_server", "server", "servers", "host":
		return KindVMwareServer, nil
	case "virtual_appliance", "appliance", "appliances", "vm":
		return KindVirtualAppliance, nil
	case "application", "applications", "app", "apps":
		return KindApplication, nil
	case "container", "containers":
		return KindContainer, nil
	case "url", "urls":
		return KindURL, nil
	}
	return "", fmt.Errorf("%w: unknown entity kind %q", common.ErrorValidation, s)
}

// Association points a credential or note at one inventory entity. Entity
// ids are unique within a kind only, so both halves are needed.
type Association struct {
	Kind Kind  `json:"associated_type"`
	ID   int64 `json:"associated_id"`
}

// NewAssociation parses kind and id as they arrive from a URL or command line.
func NewAssociation(kind, id string) (Association, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return Association{}, err
	}
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return Association{}, fmt.Errorf("%w: invalid entity id %q", common.ErrorValidation, id)
	}
	a := Association{Kind: k, ID: n}
	return a, a.Validate()
}

// Validate rejects unknown kinds and non-positive ids.
func (a Association) Validate() error {
	if !a.Kind.Valid() {
		return fmt.Errorf("%w: unknown entity kind %q", common.ErrorValidation, a.Kind)
	}
	if a.ID <= 0 {
		return fmt.Errorf("%w: entity id must be positive", common.ErrorValidation)
	}
	return nil
}

func (a Association) String() string {
	return fmt.Sprintf("%s/%d", a.Kind, a.ID)
}
