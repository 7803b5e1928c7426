package entity

type TxStatus string

const (
	TxStatusSuccess TxStatus = "success"
	TxStatusFailed  TxStatus = "failed"
	TxStatusPending TxStatus = "pending"
)

type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
)

type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
)

type HealthStatus string

const (
	HealthHealthy  HealthStatus = "healthy"
	HealthDegraded HealthStatus = "degraded"
	HealthDown     HealthStatus = "down"
)

type EndpointStatus string

const (
	EndpointActive      EndpointStatus = "active"
	EndpointMaintenance EndpointStatus = "maintenance"
)

// Section is a navigable area of the dashboard.
type Section string

const (
	SectionDashboard       Section = "dashboard"
	SectionLiveMonitor     Section = "live-monitor"
	SectionSystemHealth    Section = "system-health"
	SectionTroubleshooting Section = "troubleshooting"
	SectionAnalytics       Section = "analytics"
	SectionSupportTickets  Section = "support-tickets"
	SectionAPIConsole      Section = "api-console"
	SectionKnowledgeBase   Section = "knowledge-base"
)

// Sections lists every section in navigation order.
func Sections() []Section {
	return []Section{
		SectionDashboard,
		SectionLiveMonitor,
		SectionSystemHealth,
		SectionTroubleshooting,
		SectionAnalytics,
		SectionSupportTickets,
		SectionAPIConsole,
		SectionKnowledgeBase,
	}
}

func (s Section) Valid() bool {
	for _, known := range Sections() {
		if s == known {
			return true
		}
	}
	return false
}
