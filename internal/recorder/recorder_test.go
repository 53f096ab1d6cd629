package recorder

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lastzone/support-bot/internal/menu"
)

type memStore struct {
	users   []User
	tickets []Ticket
	logs    []MessageLog
	err     error
}

func (m *memStore) UpsertUser(_ context.Context, u User) error {
	if m.err != nil {
		return m.err
	}
	// Merge-on-conflict semantics, the way both real stores behave.
	for i := range m.users {
		if m.users[i].ID == u.ID {
			m.users[i] = u
			return nil
		}
	}
	m.users = append(m.users, u)
	return nil
}

func (m *memStore) InsertTicket(_ context.Context, t Ticket) error {
	if m.err != nil {
		return m.err
	}
	m.tickets = append(m.tickets, t)
	return nil
}

func (m *memStore) InsertMessageLog(_ context.Context, l MessageLog) error {
	if m.err != nil {
		return m.err
	}
	m.logs = append(m.logs, l)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestUpsertUserIsIdempotent(t *testing.T) {
	store := &memStore{}
	rec := New(store, discardLogger())
	ctx := context.Background()

	rec.UpsertUser(ctx, 42, "alice", "Alice")
	rec.UpsertUser(ctx, 42, "alice", "Alice B.")

	// One row, reflecting the latest name.
	require.Len(t, store.users, 1)
	assert.Equal(t, User{ID: 42, Username: "alice", FirstName: "Alice B."}, store.users[0])
}

func TestCreateTicketAlwaysInserts(t *testing.T) {
	store := &memStore{}
	rec := New(store, discardLogger())
	ctx := context.Background()

	rec.CreateTicket(ctx, 42, menu.TopicDeposit, "User clicked deposit")
	rec.CreateTicket(ctx, 42, menu.TopicDeposit, "User clicked deposit")

	// No dedup for tickets.
	require.Len(t, store.tickets, 2)
	for _, ticket := range store.tickets {
		assert.Equal(t, TicketStatusOpen, ticket.Status)
		assert.Equal(t, menu.TopicDeposit, ticket.IssueType)
		assert.Equal(t, "User clicked deposit", ticket.Details)
	}
}

func TestLogMessage(t *testing.T) {
	store := &memStore{}
	rec := New(store, discardLogger())

	rec.LogMessage(context.Background(), 42, MessagePhoto, "payment proof", "https://example.com/f.jpg")

	require.Len(t, store.logs, 1)
	assert.Equal(t, MessageLog{
		UserID:      42,
		MessageType: MessagePhoto,
		Content:     "payment proof",
		FileURL:     "https://example.com/f.jpg",
	}, store.logs[0])
}

func TestStoreFailuresAreSwallowed(t *testing.T) {
	store := &memStore{err: assert.AnError}
	rec := New(store, discardLogger())
	ctx := context.Background()

	// None of these may panic or surface the error.
	rec.UpsertUser(ctx, 42, "alice", "Alice")
	rec.CreateTicket(ctx, 42, menu.TopicMatch, "User clicked match")
	rec.LogMessage(ctx, 42, MessageText, "hello", "")

	assert.Empty(t, store.users)
	assert.Empty(t, store.tickets)
	assert.Empty(t, store.logs)
}
