package inventory

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/infrakeeper/internal/common"
	"github.com/dmitrijs2005/infrakeeper/internal/models"
)

// matches reports whether term is a case-insensitive substring of any field.
// An empty term matches everything. Whitespace in term is significant.
func matches(term string, fields ...string) bool {
	term = strings.ToLower(term)
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// FindServers searches hostname, IP address and location.
func (c *Catalog) FindServers(term string) []models.VMwareServer {
	out := []models.VMwareServer{}
	for _, s := range c.Servers {
		if matches(term, s.Hostname, s.IPAddress, s.Location) {
			out = append(out, s)
		}
	}
	return out
}

// FindAppliances searches hostname, IP address and FQDN.
func (c *Catalog) FindAppliances(term string) []models.VirtualAppliance {
	out := []models.VirtualAppliance{}
	for _, a := range c.Appliances {
		if matches(term, a.Hostname, a.IPAddress, a.FQDN) {
			out = append(out, a)
		}
	}
	return out
}

// FindApplications searches name, type and description.
func (c *Catalog) FindApplications(term string) []models.Application {
	out := []models.Application{}
	for _, a := range c.Applications {
		if matches(term, a.Name, a.Type, a.Description) {
			out = append(out, a)
		}
	}
	return out
}

// FindContainers searches name, image and runtime.
func (c *Catalog) FindContainers(term string) []models.Container {
	out := []models.Container{}
	for _, ct := range c.Containers {
		if matches(term, ct.Name, ct.Image, string(ct.Runtime)) {
			out = append(out, ct)
		}
	}
	return out
}

// FindURLs searches the URL and its description.
func (c *Catalog) FindURLs(term string) []models.AppURL {
	out := []models.AppURL{}
	for _, u := range c.URLs {
		if matches(term, u.URL, u.Description) {
			out = append(out, u)
		}
	}
	return out
}

// Row is the kind-agnostic projection of an entity used by the CLI and the
// gRPC list call. Hostname and IPAddress are resolved through the parent
// appliance for applications and containers, and parsed from the URL for
// url entities, so every row can be handed to the connection launcher.
type Row struct {
	Association models.Association `json:"association"`
	Title       string             `json:"title"`
	Hostname    string             `json:"hostname,omitempty"`
	IPAddress   string             `json:"ip_address,omitempty"`
	Detail      string             `json:"detail,omitempty"`
}

func (c *Catalog) appliance(id int64) (models.VirtualAppliance, bool) {
	for _, a := range c.Appliances {
		if a.ID == id {
			return a, true
		}
	}
	return models.VirtualAppliance{}, false
}

func (c *Catalog) application(id int64) (models.Application, bool) {
	for _, a := range c.Applications {
		if a.ID == id {
			return a, true
		}
	}
	return models.Application{}, false
}

func (c *Catalog) serverRow(s models.VMwareServer) Row {
	return Row{
		Association: models.Association{Kind: models.KindVMwareServer, ID: s.ID},
		Title:       s.Hostname, Hostname: s.Hostname, IPAddress: s.IPAddress,
		Detail: strings.TrimSpace(s.Vendor + " " + s.Model + " · " + s.Location),
	}
}

func (c *Catalog) applianceRow(a models.VirtualAppliance) Row {
	return Row{
		Association: models.Association{Kind: models.KindVirtualAppliance, ID: a.ID},
		Title:       a.Hostname, Hostname: a.Hostname, IPAddress: a.IPAddress,
		Detail: strings.TrimSpace(a.OperatingSystem + " " + a.OSVersion),
	}
}

func (c *Catalog) applicationRow(a models.Application) Row {
	r := Row{
		Association: models.Association{Kind: models.KindApplication, ID: a.ID},
		Title:       a.Name,
		Detail:      strings.TrimSpace(a.Type + " " + a.Version),
	}
	if host, ok := c.appliance(a.VirtualApplianceID); ok {
		r.Hostname, r.IPAddress = host.Hostname, host.IPAddress
	}
	return r
}

func (c *Catalog) containerRow(ct models.Container) Row {
	r := Row{
		Association: models.Association{Kind: models.KindContainer, ID: ct.ID},
		Title:       ct.Name,
		Detail:      fmt.Sprintf("%s:%s (%s)", ct.Image, ct.Version, ct.Runtime),
	}
	if host, ok := c.appliance(ct.VirtualApplianceID); ok {
		r.Hostname, r.IPAddress = host.Hostname, host.IPAddress
	}
	return r
}

func (c *Catalog) urlRow(u models.AppURL) Row {
	r := Row{
		Association: models.Association{Kind: models.KindURL, ID: u.ID},
		Title:       u.URL,
		Detail:      u.Description,
	}
	if parsed, err := url.Parse(u.URL); err == nil {
		r.Hostname = parsed.Hostname()
	}
	if app, ok := c.application(u.ApplicationID); ok && r.Detail == "" {
		r.Detail = app.Name
	}
	return r
}

// Rows lists entities of one kind matching term.
func (c *Catalog) Rows(kind models.Kind, term string) ([]Row, error) {
	var rows []Row
	switch kind {
	case models.KindVMwareServer:
		for _, s := range c.FindServers(term) {
			rows = append(rows, c.serverRow(s))
		}
	case models.KindVirtualAppliance:
		for _, a := range c.FindAppliances(term) {
			rows = append(rows, c.applianceRow(a))
		}
	case models.KindApplication:
		for _, a := range c.FindApplications(term) {
			rows = append(rows, c.applicationRow(a))
		}
	case models.KindContainer:
		for _, ct := range c.FindContainers(term) {
			rows = append(rows, c.containerRow(ct))
		}
	case models.KindURL:
		for _, u := range c.FindURLs(term) {
			rows = append(rows, c.urlRow(u))
		}
	default:
		return nil, fmt.Errorf("%w: unknown entity kind %q", common.ErrorValidation, kind)
	}
	if rows == nil {
		rows = []Row{}
	}
	return rows, nil
}

// Search runs term against every kind, in catalog order.
func (c *Catalog) Search(term string) []Row {
	out := []Row{}
	for _, k := range models.Kinds {
		rows, _ := c.Rows(k, term)
		out = append(out, rows...)
	}
	return out
}

// Lookup finds the row for a, or reports false when the catalog has no
// such entity.
func (c *Catalog) Lookup(a models.Association) (Row, bool) {
	rows, err := c.Rows(a.Kind, "")
	if err != nil {
		return Row{}, false
	}
	for _, r := range rows {
		if r.Association == a {
			return r, true
		}
	}
	return Row{}, false
}
