package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/lastzone/support-bot/internal/lib/logger/sl"
	"github.com/lastzone/support-bot/internal/recorder"
)

const (
	ackText       = "✅ Message received! Our support team will check it."
	uploadingText = "🔄 Uploading your screenshot..."
	uploadOKText  = "✅ Screenshot uploaded successfully!"

	noCaption = "No caption"

	// Telegram re-encodes photo messages to JPEG.
	photoContentType = "image/jpeg"
)

// handleMessage processes text and photo messages. The user record is
// upserted first, defensively, in case the user never issued /start.
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	user := msg.From
	b.recorder.UpsertUser(ctx, user.ID, user.UserName, user.FirstName)

	switch {
	case msg.Text != "":
		b.handleText(ctx, msg)
	case len(msg.Photo) > 0:
		b.handlePhoto(ctx, msg)
	}
}

func (b *Bot) handleText(ctx context.Context, msg *tgbotapi.Message) {
	const op = "bot.handleText"

	if strings.HasPrefix(msg.Text, "/") {
		return
	}

	if err := b.transport.SendMessage(msg.Chat.ID, ackText, nil); err != nil {
		b.log.Error("failed to send ack", slog.String("op", op), sl.Err(err))
	}

	b.recorder.LogMessage(ctx, msg.From.ID, recorder.MessageText, msg.Text, "")
}

// handlePhoto stores the highest-resolution variant of the photo in blob
// storage and logs the message. Upload failure is the one failure path shown
// to the user; the audit row is written either way.
func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message) {
	const op = "bot.handlePhoto"

	log := b.log.With(
		slog.String("op", op),
		slog.Int64("user_id", msg.From.ID),
	)

	content := msg.Caption
	if content == "" {
		content = noCaption
	}

	variant := largestPhoto(msg.Photo)

	if err := b.transport.SendMessage(msg.Chat.ID, uploadingText, nil); err != nil {
		log.Error("failed to send upload notice", sl.Err(err))
	}

	fileURL := ""
	data, err := b.transport.FetchFileBytes(variant.FileID)
	if err == nil {
		fileURL, err = b.uploader.Upload(ctx, msg.From.ID, data, photoContentType)
	}

	if err != nil {
		log.Error("screenshot upload failed", sl.Err(err))
		notice := fmt.Sprintf("⚠️ Failed to upload screenshot. Error: %s", err)
		if sendErr := b.transport.SendMessage(msg.Chat.ID, notice, nil); sendErr != nil {
			log.Error("failed to send failure notice", sl.Err(sendErr))
		}
	} else {
		if sendErr := b.transport.SendMessage(msg.Chat.ID, uploadOKText, nil); sendErr != nil {
			log.Error("failed to send success notice", sl.Err(sendErr))
		}
	}

	b.recorder.LogMessage(ctx, msg.From.ID, recorder.MessagePhoto, content, fileURL)
}

// largestPhoto picks the highest-resolution variant by pixel area. The
// transport usually orders variants small to large, but that ordering is its
// contract, not ours; ties go to the later variant.
func largestPhoto(photos []tgbotapi.PhotoSize) tgbotapi.PhotoSize {
	best := photos[0]
	for _, p := range photos[1:] {
		if p.Width*p.Height >= best.Width*best.Height {
			best = p
		}
	}
	return best
}
