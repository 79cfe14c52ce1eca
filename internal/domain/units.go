package domain

// Units describes the engineering unit of every snapshot field group. It is
// served alongside the snapshot so viewers need not hard-code them.
type Units struct {
	CPULoad string `json:"cpu_load"`
	CPUStat string `json:"cpu_stat"`
	SoftIRQ string `json:"soft_irq"`
	Memory  string `json:"mem_info"`
	MemUsed string `json:"mem_used_percent"`
	NetRate string `json:"net_rate"`
	NetPkts string `json:"net_packets_rate"`
}

func DefaultUnits() Units {
	return Units{
		CPULoad: "runnable tasks",
		CPUStat: "percent",
		SoftIRQ: "interrupts/s",
		Memory:  "GB",
		MemUsed: "percent",
		NetRate: "KB/s",
		NetPkts: "packets/s",
	}
}
