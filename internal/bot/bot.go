// Package bot routes inbound Telegram updates: the /start command, menu
// callback selections, plain text and photo messages. Routing is stateless
// across turns; every update is interpreted from the data it carries.
package bot

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/lastzone/support-bot/internal/lib/logger/sl"
	"github.com/lastzone/support-bot/internal/menu"
	"github.com/lastzone/support-bot/internal/recorder"
	"github.com/lastzone/support-bot/internal/uploader"
)

type Bot struct {
	transport Transport
	recorder  *recorder.Recorder
	uploader  *uploader.Service
	log       *slog.Logger
}

func New(transport Transport, rec *recorder.Recorder, up *uploader.Service, log *slog.Logger) *Bot {
	return &Bot{
		transport: transport,
		recorder:  rec,
		uploader:  up,
		log:       log,
	}
}

// Run consumes the updates channel until it closes or ctx is cancelled. One
// update is fully handled before the next is dispatched.
func (b *Bot) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.HandleUpdate(ctx, update)
		}
	}
}

// HandleUpdate dispatches a single update to the matching handler. Commands
// other than /start are ignored, matching the registered handler set.
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil && update.Message.From != nil:
		msg := update.Message
		if msg.IsCommand() {
			if msg.Command() == "start" {
				b.handleStart(ctx, msg)
			}
			return
		}
		b.handleMessage(ctx, msg)
	}
}

func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	const op = "bot.handleStart"

	user := msg.From
	b.recorder.UpsertUser(ctx, user.ID, user.UserName, user.FirstName)

	kb := menu.MainMenuKeyboard()
	if err := b.transport.SendMessage(msg.Chat.ID, menu.WelcomeText, &kb); err != nil {
		b.log.Error("failed to send welcome message",
			slog.String("op", op),
			slog.Int64("user_id", user.ID),
			sl.Err(err),
		)
	}
}
