package bot

import (
	"context"
	"fmt"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lastzone/support-bot/internal/menu"
	"github.com/lastzone/support-bot/internal/recorder"
)

func TestRouteTicketTopics(t *testing.T) {
	for _, topic := range menu.Topics {
		if topic == menu.TopicFAQ {
			continue
		}

		t.Run(string(topic), func(t *testing.T) {
			b, _, store, _ := newTestBot(t)

			text, kb := b.route(context.Background(), 42, string(topic))

			assert.Equal(t, menu.Lookup(topic).Body, text)
			assert.Equal(t, menu.BackKeyboard(), kb)

			require.Len(t, store.tickets, 1)
			ticket := store.tickets[0]
			assert.Equal(t, int64(42), ticket.UserID)
			assert.Equal(t, topic, ticket.IssueType)
			assert.Equal(t, recorder.TicketStatusOpen, ticket.Status)
			assert.Equal(t, fmt.Sprintf("User clicked %s", topic), ticket.Details)
		})
	}
}

func TestRouteFAQCreatesNoTicket(t *testing.T) {
	b, _, store, _ := newTestBot(t)

	text, kb := b.route(context.Background(), 42, string(menu.TopicFAQ))

	assert.Equal(t, menu.Lookup(menu.TopicFAQ).Body, text)
	assert.Equal(t, menu.BackKeyboard(), kb)
	assert.Empty(t, store.tickets)
}

func TestRouteMainMenuCreatesNoTicket(t *testing.T) {
	b, _, store, _ := newTestBot(t)

	text, kb := b.route(context.Background(), 42, menu.MainMenuKey)

	assert.Equal(t, menu.MainMenuText, text)
	assert.Equal(t, menu.MainMenuKeyboard(), kb)
	assert.Empty(t, store.tickets)
}

func TestRouteUnknownKeyFallsBack(t *testing.T) {
	b, _, store, _ := newTestBot(t)

	text, kb := b.route(context.Background(), 42, "definitely-not-a-topic")

	assert.Equal(t, menu.FallbackText, text)
	assert.Equal(t, menu.BackKeyboard(), kb)
	assert.Empty(t, store.tickets)
}

func TestRouteSurvivesRecorderFailure(t *testing.T) {
	b, _, store, _ := newTestBot(t)
	store.err = assert.AnError

	// The reply must render normally even when the ticket write fails.
	text, _ := b.route(context.Background(), 42, string(menu.TopicDeposit))

	assert.Equal(t, menu.Lookup(menu.TopicDeposit).Body, text)
}

func TestHandleCallbackAnswersAndEdits(t *testing.T) {
	b, transport, store, _ := newTestBot(t)

	cb := &tgbotapi.CallbackQuery{
		ID:   "cb-1",
		From: &tgbotapi.User{ID: 42, UserName: "alice", FirstName: "Alice"},
		Message: &tgbotapi.Message{
			MessageID: 7,
			Chat:      &tgbotapi.Chat{ID: 42},
		},
		Data: string(menu.TopicWithdraw),
	}

	b.HandleUpdate(context.Background(), tgbotapi.Update{CallbackQuery: cb})

	assert.Equal(t, []string{"cb-1"}, transport.answered)

	require.Len(t, transport.edits, 1)
	edit := transport.edits[0]
	assert.Equal(t, int64(42), edit.chatID)
	assert.Equal(t, 7, edit.messageID)
	assert.Equal(t, menu.Lookup(menu.TopicWithdraw).Body, edit.text)

	require.Len(t, store.tickets, 1)
	assert.Equal(t, menu.TopicWithdraw, store.tickets[0].IssueType)
}

func TestHandleCallbackWithoutMessageOnlyAnswers(t *testing.T) {
	b, transport, store, _ := newTestBot(t)

	cb := &tgbotapi.CallbackQuery{
		ID:   "cb-2",
		From: &tgbotapi.User{ID: 42},
		Data: string(menu.TopicDeposit),
	}

	b.HandleUpdate(context.Background(), tgbotapi.Update{CallbackQuery: cb})

	assert.Equal(t, []string{"cb-2"}, transport.answered)
	assert.Empty(t, transport.edits)
	assert.Empty(t, store.tickets)
}
