package bot

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/lastzone/support-bot/internal/lib/logger/sl"
	"github.com/lastzone/support-bot/internal/menu"
)

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	const op = "bot.handleCallback"

	log := b.log.With(
		slog.String("op", op),
		slog.Int64("user_id", cb.From.ID),
		slog.String("data", cb.Data),
	)

	if err := b.transport.AnswerCallback(cb.ID); err != nil {
		log.Error("failed to answer callback", sl.Err(err))
	}

	if cb.Message == nil {
		return
	}

	text, kb := b.route(ctx, cb.From.ID, cb.Data)
	if err := b.transport.EditMessageText(cb.Message.Chat.ID, cb.Message.MessageID, text, &kb); err != nil {
		log.Error("failed to edit menu message", sl.Err(err))
	}
}

// route maps a callback payload to a reply and its keyboard, issuing the
// ticket write for ticket-creating topics before the reply is rendered. The
// ticket write never blocks or fails the reply.
func (b *Bot) route(ctx context.Context, userID int64, data string) (string, tgbotapi.InlineKeyboardMarkup) {
	if data == menu.MainMenuKey {
		return menu.MainMenuText, menu.MainMenuKeyboard()
	}

	topic, ok := menu.ParseTopic(data)
	if !ok {
		return menu.FallbackText, menu.BackKeyboard()
	}

	entry := menu.Lookup(topic)
	if entry.CreatesTicket {
		b.recorder.CreateTicket(ctx, userID, topic, fmt.Sprintf("User clicked %s", topic))
	}

	return entry.Body, menu.Markup(entry.Next)
}
