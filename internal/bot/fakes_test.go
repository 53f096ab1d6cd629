package bot

import (
	"context"
	"io"
	"log/slog"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/lastzone/support-bot/internal/recorder"
	"github.com/lastzone/support-bot/internal/uploader"
)

type fakeStore struct {
	users   []recorder.User
	tickets []recorder.Ticket
	logs    []recorder.MessageLog
	err     error
}

func (f *fakeStore) UpsertUser(_ context.Context, u recorder.User) error {
	if f.err != nil {
		return f.err
	}
	f.users = append(f.users, u)
	return nil
}

func (f *fakeStore) InsertTicket(_ context.Context, t recorder.Ticket) error {
	if f.err != nil {
		return f.err
	}
	f.tickets = append(f.tickets, t)
	return nil
}

func (f *fakeStore) InsertMessageLog(_ context.Context, m recorder.MessageLog) error {
	if f.err != nil {
		return f.err
	}
	f.logs = append(f.logs, m)
	return nil
}

type fakeObjectStore struct {
	keys []string
	err  error
}

func (f *fakeObjectStore) Put(_ context.Context, key string, _ []byte, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.keys = append(f.keys, key)
	return "https://proj.supabase.co/storage/v1/object/public/support-files/" + key, nil
}

type sentMessage struct {
	chatID   int64
	text     string
	keyboard *tgbotapi.InlineKeyboardMarkup
}

type editedMessage struct {
	chatID    int64
	messageID int
	text      string
	keyboard  *tgbotapi.InlineKeyboardMarkup
}

type fakeTransport struct {
	sent     []sentMessage
	edits    []editedMessage
	answered []string

	files    map[string][]byte
	fetched  []string
	fetchErr error
}

func (f *fakeTransport) SendMessage(chatID int64, text string, kb *tgbotapi.InlineKeyboardMarkup) error {
	f.sent = append(f.sent, sentMessage{chatID: chatID, text: text, keyboard: kb})
	return nil
}

func (f *fakeTransport) EditMessageText(chatID int64, messageID int, text string, kb *tgbotapi.InlineKeyboardMarkup) error {
	f.edits = append(f.edits, editedMessage{chatID: chatID, messageID: messageID, text: text, keyboard: kb})
	return nil
}

func (f *fakeTransport) AnswerCallback(callbackID string) error {
	f.answered = append(f.answered, callbackID)
	return nil
}

func (f *fakeTransport) FetchFileBytes(fileID string) ([]byte, error) {
	f.fetched = append(f.fetched, fileID)
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.files[fileID], nil
}

func newTestBot(t *testing.T) (*Bot, *fakeTransport, *fakeStore, *fakeObjectStore) {
	t.Helper()

	transport := &fakeTransport{files: map[string][]byte{}}
	store := &fakeStore{}
	objects := &fakeObjectStore{}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	b := New(transport, recorder.New(store, log), uploader.New(objects), log)
	return b, transport, store, objects
}
