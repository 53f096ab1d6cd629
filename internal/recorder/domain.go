package recorder

import (
	"context"

	"github.com/lastzone/support-bot/internal/menu"
)

// MessageType classifies an entry in the message audit log.
type MessageType string

const (
	MessageText  MessageType = "text"
	MessagePhoto MessageType = "photo"
)

// TicketStatus is the lifecycle state of a support ticket. The bot only ever
// writes open tickets; later transitions belong to support staff.
type TicketStatus string

const TicketStatusOpen TicketStatus = "open"

// User is the chat platform identity persisted on first contact. ID is the
// platform user identifier and the upsert key.
type User struct {
	ID        int64  `json:"id" db:"id"`
	Username  string `json:"username" db:"username"`
	FirstName string `json:"first_name" db:"first_name"`
}

// Ticket is one user-initiated support request.
type Ticket struct {
	UserID    int64        `json:"user_id" db:"user_id"`
	IssueType menu.Topic   `json:"issue_type" db:"issue_type"`
	Status    TicketStatus `json:"status" db:"status"`
	Details   string       `json:"details" db:"details"`
}

// MessageLog is one append-only audit row for an inbound message. FileURL is
// empty for text messages and for photos whose upload failed.
type MessageLog struct {
	UserID      int64       `json:"user_id" db:"user_id"`
	MessageType MessageType `json:"message_type" db:"message_type"`
	Content     string      `json:"content" db:"content"`
	FileURL     string      `json:"file_url" db:"file_url"`
}

// Store persists users, tickets and message logs. UpsertUser must merge on a
// conflicting id; the other two always insert.
type Store interface {
	UpsertUser(ctx context.Context, u User) error
	InsertTicket(ctx context.Context, t Ticket) error
	InsertMessageLog(ctx context.Context, m MessageLog) error
}
