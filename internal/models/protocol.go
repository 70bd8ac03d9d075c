package models

// Transport of a network protocol.
type Transport string

const (
	TransportTCP  Transport = "TCP"
	TransportUDP  Transport = "UDP"
	TransportBoth Transport = "BOTH"
)

// Protocol is an entry of the fixed protocol catalog a credential may
// reference.
type Protocol struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	DefaultPort int       `json:"default_port"`
	Transport   Transport `json:"transport"`
	Description string    `json:"description,omitempty"`
}

var protocols = []Protocol{
	{ID: 1, Name: "ssh", DefaultPort: 22, Transport: TransportTCP, Description: "Secure Shell"},
	{ID: 2, Name: "telnet", DefaultPort: 23, Transport: TransportTCP},
	{ID: 3, Name: "http", DefaultPort: 80, Transport: TransportTCP},
	{ID: 4, Name: "https", DefaultPort: 443, Transport: TransportTCP},
	{ID: 5, Name: "snmp", DefaultPort: 161, Transport: TransportUDP},
	{ID: 6, Name: "rdp", DefaultPort: 3389, Transport: TransportBoth, Description: "Remote Desktop"},
	{ID: 7, Name: "vnc", DefaultPort: 5900, Transport: TransportTCP},
}

// Protocols returns a copy of the catalog.
func Protocols() []Protocol {
	out := make([]Protocol, len(protocols))
	copy(out, protocols)
	return out
}

func ProtocolByID(id int64) (Protocol, bool) {
	for _, p := range protocols {
		if p.ID == id {
			return p, true
		}
	}
	return Protocol{}, false
}
