package recorder

import (
	"context"
	"log/slog"

	"github.com/lastzone/support-bot/internal/lib/logger/sl"
	"github.com/lastzone/support-bot/internal/menu"
)

// Recorder writes best-effort telemetry: every method runs its store write to
// completion, logs a failure and swallows it. Conversation flow must never
// depend on backend availability, so nothing here returns an error and
// nothing is retried.
type Recorder struct {
	store Store
	log   *slog.Logger
}

func New(store Store, log *slog.Logger) *Recorder {
	return &Recorder{store: store, log: log}
}

// UpsertUser inserts or updates the user row keyed by id.
func (r *Recorder) UpsertUser(ctx context.Context, id int64, username, firstName string) {
	const op = "recorder.UpsertUser"

	u := User{ID: id, Username: username, FirstName: firstName}
	if err := r.store.UpsertUser(ctx, u); err != nil {
		r.log.Error("failed to save user",
			slog.String("op", op),
			slog.Int64("user_id", id),
			sl.Err(err),
		)
	}
}

// CreateTicket opens a new support ticket for the selected topic. Always
// inserts; no dedup.
func (r *Recorder) CreateTicket(ctx context.Context, userID int64, issueType menu.Topic, details string) {
	const op = "recorder.CreateTicket"

	t := Ticket{
		UserID:    userID,
		IssueType: issueType,
		Status:    TicketStatusOpen,
		Details:   details,
	}
	if err := r.store.InsertTicket(ctx, t); err != nil {
		r.log.Error("failed to create ticket",
			slog.String("op", op),
			slog.Int64("user_id", userID),
			slog.String("issue_type", issueType.String()),
			sl.Err(err),
		)
	}
}

// LogMessage appends one audit row for an inbound message. fileURL is empty
// when there is no stored attachment.
func (r *Recorder) LogMessage(ctx context.Context, userID int64, mt MessageType, content, fileURL string) {
	const op = "recorder.LogMessage"

	m := MessageLog{UserID: userID, MessageType: mt, Content: content, FileURL: fileURL}
	if err := r.store.InsertMessageLog(ctx, m); err != nil {
		r.log.Error("failed to log message",
			slog.String("op", op),
			slog.Int64("user_id", userID),
			sl.Err(err),
		)
	}
}
