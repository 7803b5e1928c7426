package entity

import "slices"

type ServiceHealth struct {
	Name   string
	Status HealthStatus
}

// SystemMetrics aggregates the health panel. Rates and times are display
// strings ("99.98%", "250ms"); TransactionVolume is a running counter.
type SystemMetrics struct {
	Services          []ServiceHealth
	Uptime            string
	ResponseTime      string
	ErrorRate         string
	SuccessRate       string
	TransactionVolume int64
}

// Clone returns a copy that shares no slices with m.
func (m SystemMetrics) Clone() SystemMetrics {
	m.Services = slices.Clone(m.Services)
	return m
}
