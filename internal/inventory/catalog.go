// Package inventory holds the read-only entity catalog (servers, appliances,
// applications, containers, URLs), the list-view search filters over it and
// the aggregate totals shown on the dashboard.
package inventory

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/infrakeeper/internal/models"
	"gopkg.in/yaml.v3"
)

// Catalog is an immutable snapshot of the inventory. Callers must not
// modify the slices they get back.
type Catalog struct {
	Servers      []models.VMwareServer     `yaml:"servers" json:"servers"`
	Appliances   []models.VirtualAppliance `yaml:"appliances" json:"appliances"`
	Applications []models.Application      `yaml:"applications" json:"applications"`
	Containers   []models.Container        `yaml:"containers" json:"containers"`
	URLs         []models.AppURL           `yaml:"urls" json:"urls"`
}

// LoadFile reads a YAML catalog. Duplicate ids within a kind are rejected.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory file: %w", err)
	}
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse inventory file: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	seen := make(map[models.Association]struct{})
	check := func(kind models.Kind, id int64) error {
		a := models.Association{Kind: kind, ID: id}
		if err := a.Validate(); err != nil {
			return err
		}
		if _, dup := seen[a]; dup {
			return fmt.Errorf("duplicate inventory entry %s", a)
		}
		seen[a] = struct{}{}
		return nil
	}
	for _, s := range c.Servers {
		if err := check(models.KindVMwareServer, s.ID); err != nil {
			return err
		}
	}
	for _, a := range c.Appliances {
		if err := check(models.KindVirtualAppliance, a.ID); err != nil {
			return err
		}
	}
	for _, a := range c.Applications {
		if err := check(models.KindApplication, a.ID); err != nil {
			return err
		}
	}
	for _, ct := range c.Containers {
		if err := check(models.KindContainer, ct.ID); err != nil {
			return err
		}
	}
	for _, u := range c.URLs {
		if err := check(models.KindURL, u.ID); err != nil {
			return err
		}
	}
	return nil
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultCatalog is the seed inventory used when no file is configured.
func DefaultCatalog() *Catalog {
	ssh := int64(1)
	https := int64(4)
	return &Catalog{
		Servers: []models.VMwareServer{
			{
				ID: 1, Hostname: "esxi-prod-01", IPAddress: "192.168.1.10",
				Location: "Datacenter A - Rack 12", Datacenter: "Primary DC",
				Vendor: "Dell", Model: "PowerEdge R740", SerialNumber: "DL001234",
				TotalCPUCores: 32, TotalRAMGB: 256, TotalStorageTB: 2.0,
				ESXiVersion: "7.0.3", NetworkZone: "Production",
				CreatedAt: mustTime("2024-01-15T10:00:00Z"),
			},
			{
				ID: 2, Hostname: "esxi-dev-01", IPAddress: "192.168.1.11",
				Location: "Datacenter A - Rack 13", Datacenter: "Primary DC",
				Vendor: "HPE", Model: "ProLiant DL380", SerialNumber: "HP001234",
				TotalCPUCores: 24, TotalRAMGB: 128, TotalStorageTB: 1.5,
				ESXiVersion: "7.0.2", NetworkZone: "Development",
				CreatedAt: mustTime("2024-01-16T10:00:00Z"),
			},
		},
		Appliances: []models.VirtualAppliance{
			{
				ID: 1, VMwareServerID: 1, Hostname: "web-prod-01", IPAddress: "10.0.1.100",
				FQDN: "web-prod-01.company.com", OperatingSystem: "Ubuntu Server", OSVersion: "22.04 LTS",
				CPUAllocated: 4, RAMAllocated: 8, DiskAllocatedGB: 100, MACAddress: "00:50:56:a1:b2:c3",
			},
			{
				ID: 2, VMwareServerID: 1, Hostname: "db-prod-01", IPAddress: "10.0.1.101",
				FQDN: "db-prod-01.company.com", OperatingSystem: "CentOS", OSVersion: "8.5",
				CPUAllocated: 8, RAMAllocated: 16, DiskAllocatedGB: 500, MACAddress: "00:50:56:a1:b2:c4",
			},
		},
		Applications: []models.Application{
			{
				ID: 1, VirtualApplianceID: 1, Name: "Apache Web Server",
				Description: "Main web server for company website", Type: "Web Server",
				Version: "2.4.52", DefaultPorts: "80,443", DependentServices: "MySQL, PHP",
				LastUpdated: "2024-01-15",
			},
			{
				ID: 2, VirtualApplianceID: 2, Name: "MySQL Database",
				Description: "Primary database server", Type: "Database",
				Version: "8.0.28", DefaultPorts: "3306", DependentServices: "None",
				LastUpdated: "2024-01-10",
			},
			{
				ID: 3, VirtualApplianceID: 1, Name: "Nginx Reverse Proxy",
				Description: "Load balancer and reverse proxy", Type: "Proxy",
				Version: "1.22.1", DefaultPorts: "80,443", DependentServices: "Apache",
				LastUpdated: "2024-01-12",
			},
		},
		Containers: []models.Container{
			{ID: 1, VirtualApplianceID: 1, Name: "node-exporter", Image: "prom/node-exporter", Version: "1.7.0", Runtime: models.RuntimeDocker, Ports: "9100"},
			{ID: 2, VirtualApplianceID: 2, Name: "redis-cache", Image: "docker.io/library/redis", Version: "7.2", Runtime: models.RuntimePodman, Ports: "6379"},
		},
		URLs: []models.AppURL{
			{ID: 1, ApplicationID: 1, URL: "https://www.company.com", Port: 443, ProtocolID: &https, Description: "Public website", IsActive: true},
			{ID: 2, ApplicationID: 3, URL: "ssh://web-prod-01.company.com", Port: 22, ProtocolID: &ssh, Description: "Proxy host shell", IsActive: false},
		},
	}
}
