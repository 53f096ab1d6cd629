package bot

import (
	"fmt"
	"io"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Transport is the chat-transport surface the handlers need: deliver a reply,
// edit a menu message in place, acknowledge a callback and pull file bytes
// for an attachment. Keeping it narrow lets tests swap in a fake.
type Transport interface {
	SendMessage(chatID int64, text string, keyboard *tgbotapi.InlineKeyboardMarkup) error
	EditMessageText(chatID int64, messageID int, text string, keyboard *tgbotapi.InlineKeyboardMarkup) error
	AnswerCallback(callbackID string) error
	FetchFileBytes(fileID string) ([]byte, error)
}

// TelegramTransport implements Transport over the Bot API client.
type TelegramTransport struct {
	api        *tgbotapi.BotAPI
	httpClient *http.Client
}

func NewTelegramTransport(api *tgbotapi.BotAPI) *TelegramTransport {
	return &TelegramTransport{
		api: api,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (t *TelegramTransport) SendMessage(chatID int64, text string, keyboard *tgbotapi.InlineKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if keyboard != nil {
		msg.ReplyMarkup = *keyboard
	}

	_, err := t.api.Send(msg)
	return err
}

func (t *TelegramTransport) EditMessageText(chatID int64, messageID int, text string, keyboard *tgbotapi.InlineKeyboardMarkup) error {
	var edit tgbotapi.EditMessageTextConfig
	if keyboard != nil {
		edit = tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, *keyboard)
	} else {
		edit = tgbotapi.NewEditMessageText(chatID, messageID, text)
	}
	edit.ParseMode = tgbotapi.ModeMarkdown

	_, err := t.api.Send(edit)
	return err
}

func (t *TelegramTransport) AnswerCallback(callbackID string) error {
	_, err := t.api.Request(tgbotapi.NewCallback(callbackID, ""))
	return err
}

// FetchFileBytes downloads the file behind a Telegram file id into memory.
// Screenshot-sized payloads only; no chunking.
func (t *TelegramTransport) FetchFileBytes(fileID string) ([]byte, error) {
	url, err := t.api.GetFileDirectURL(fileID)
	if err != nil {
		return nil, fmt.Errorf("get file url: %w", err)
	}

	resp, err := t.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file body: %w", err)
	}

	return data, nil
}
