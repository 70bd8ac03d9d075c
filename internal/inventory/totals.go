package inventory

// Totals aggregates the catalog for the dashboard header.
type Totals struct {
	Servers        int     `json:"vmware_servers"`
	Appliances     int     `json:"virtual_appliances"`
	Applications   int     `json:"applications"`
	Containers     int     `json:"containers"`
	URLs           int     `json:"urls"`
	TotalCPUCores  int     `json:"total_cpu_cores"`
	TotalRAMGB     int     `json:"total_ram_gb"`
	TotalStorageTB float64 `json:"total_storage_tb"`
}

// Totals counts entities and sums host capacity.
func (c *Catalog) Totals() Totals {
	t := Totals{
		Servers:      len(c.Servers),
		Appliances:   len(c.Appliances),
		Applications: len(c.Applications),
		Containers:   len(c.Containers),
		URLs:         len(c.URLs),
	}
	for _, s := range c.Servers {
		t.TotalCPUCores += s.TotalCPUCores
		t.TotalRAMGB += s.TotalRAMGB
		t.TotalStorageTB += s.TotalStorageTB
	}
	return t
}
