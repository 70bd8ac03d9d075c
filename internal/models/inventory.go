package models

import "time"

// VMwareServer is a physical ESXi host.
type VMwareServer struct {
	ID             int64     `json:"id" yaml:"id"`
	Hostname       string    `json:"hostname,omitempty" yaml:"hostname"`
	IPAddress      string    `json:"ip_address,omitempty" yaml:"ip_address"`
	Location       string    `json:"location,omitempty" yaml:"location"`
	Datacenter     string    `json:"datacenter,omitempty" yaml:"datacenter"`
	RackPosition   string    `json:"rack_position,omitempty" yaml:"rack_position"`
	Vendor         string    `json:"vendor,omitempty" yaml:"vendor"`
	Model          string    `json:"model,omitempty" yaml:"model"`
	SerialNumber   string    `json:"serial_number,omitempty" yaml:"serial_number"`
	AssetTag       string    `json:"asset_tag,omitempty" yaml:"asset_tag"`
	TotalCPUCores  int       `json:"total_cpu_cores,omitempty" yaml:"total_cpu_cores"`
	TotalRAMGB     int       `json:"total_ram_gb,omitempty" yaml:"total_ram_gb"`
	TotalStorageTB float64   `json:"total_storage_tb,omitempty" yaml:"total_storage_tb"`
	CPUModel       string    `json:"cpu_model,omitempty" yaml:"cpu_model"`
	ILOAddress     string    `json:"ilo_address,omitempty" yaml:"ilo_address"`
	ESXiVersion    string    `json:"esxi_version,omitempty" yaml:"esxi_version"`
	BIOSVersion    string    `json:"bios_version,omitempty" yaml:"bios_version"`
	NetworkZone    string    `json:"network_zone,omitempty" yaml:"network_zone"`
	ManagementVLAN string    `json:"management_vlan,omitempty" yaml:"management_vlan"`
	CreatedAt      time.Time `json:"created_at" yaml:"created_at"`
}

// VirtualAppliance is a VM running on a VMwareServer.
type VirtualAppliance struct {
	ID              int64  `json:"id" yaml:"id"`
	VMwareServerID  int64  `json:"vmware_server_id" yaml:"vmware_server_id"`
	Hostname        string `json:"hostname,omitempty" yaml:"hostname"`
	IPAddress       string `json:"ip_address,omitempty" yaml:"ip_address"`
	FQDN            string `json:"fqdn,omitempty" yaml:"fqdn"`
	OperatingSystem string `json:"operating_system,omitempty" yaml:"operating_system"`
	OSVersion       string `json:"os_version,omitempty" yaml:"os_version"`
	CPUAllocated    int    `json:"cpu_allocated,omitempty" yaml:"cpu_allocated"`
	RAMAllocated    int    `json:"ram_allocated,omitempty" yaml:"ram_allocated"`
	DiskAllocatedGB int    `json:"disk_allocated_gb,omitempty" yaml:"disk_allocated_gb"`
	MACAddress      string `json:"mac_address,omitempty" yaml:"mac_address"`
}

// Application is software running on a VirtualAppliance.
type Application struct {
	ID                 int64  `json:"id" yaml:"id"`
	VirtualApplianceID int64  `json:"virtual_appliance_id" yaml:"virtual_appliance_id"`
	Name               string `json:"name,omitempty" yaml:"name"`
	Description        string `json:"description,omitempty" yaml:"description"`
	Type               string `json:"type,omitempty" yaml:"type"`
	Version            string `json:"version,omitempty" yaml:"version"`
	DefaultPorts       string `json:"default_ports,omitempty" yaml:"default_ports"`
	DependentServices  string `json:"dependent_services,omitempty" yaml:"dependent_services"`
	LastUpdated        string `json:"last_updated,omitempty" yaml:"last_updated"`
}

// ContainerRuntime is the engine a Container runs on.
type ContainerRuntime string

const (
	RuntimeDocker ContainerRuntime = "docker"
	RuntimePodman ContainerRuntime = "podman"
)

// Container is a container running on a VirtualAppliance.
type Container struct {
	ID                 int64            `json:"id" yaml:"id"`
	VirtualApplianceID int64            `json:"virtual_appliance_id" yaml:"virtual_appliance_id"`
	Name               string           `json:"name,omitempty" yaml:"name"`
	Image              string           `json:"image,omitempty" yaml:"image"`
	Version            string           `json:"version,omitempty" yaml:"version"`
	Runtime            ContainerRuntime `json:"runtime" yaml:"runtime"`
	Ports              string           `json:"ports,omitempty" yaml:"ports"`
}

// AppURL is an endpoint exposed by an Application.
type AppURL struct {
	ID            int64  `json:"id" yaml:"id"`
	ApplicationID int64  `json:"application_id" yaml:"application_id"`
	URL           string `json:"url,omitempty" yaml:"url"`
	Port          int    `json:"port,omitempty" yaml:"port"`
	ProtocolID    *int64 `json:"protocol_id,omitempty" yaml:"protocol_id"`
	Description   string `json:"description,omitempty" yaml:"description"`
	IsActive      bool   `json:"is_active" yaml:"is_active"`
}
