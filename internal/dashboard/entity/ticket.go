package entity

import "time"

type SupportTicket struct {
	ID          string
	Title       string
	Status      TicketStatus
	Priority    TicketPriority
	Customer    string
	Created     time.Time
	Description string
}
