package constants

// Trạng thái vé
const (
	TicketStatusReserved = "RESERVED"
	TicketStatusPaid     = "PAID"
)
