// Package supabase talks to a hosted Supabase project over its REST surface:
// PostgREST for table writes and the storage API for objects. All writes are
// one-way; response bodies are ignored on success.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lastzone/support-bot/internal/recorder"
)

const (
	usersTable    = "telegram_users"
	ticketsTable  = "support_tickets"
	messagesTable = "support_messages"

	// preferUpsert asks PostgREST to merge on the table's conflict key
	// instead of failing the insert.
	preferUpsert = "resolution=merge-duplicates"
)

type Client struct {
	baseURL    string
	apiKey     string
	bucket     string
	httpClient *http.Client
}

func New(baseURL, apiKey, bucket string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		bucket:  bucket,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// UpsertUser merges the user row on a conflicting id.
func (c *Client) UpsertUser(ctx context.Context, u recorder.User) error {
	const op = "storage.supabase.UpsertUser"

	payload := map[string]any{
		"id":         u.ID,
		"username":   u.Username,
		"first_name": u.FirstName,
	}
	if err := c.insert(ctx, usersTable, payload, preferUpsert); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// InsertTicket always inserts a new ticket row.
func (c *Client) InsertTicket(ctx context.Context, t recorder.Ticket) error {
	const op = "storage.supabase.InsertTicket"

	payload := map[string]any{
		"user_id":    t.UserID,
		"issue_type": t.IssueType.String(),
		"status":     string(t.Status),
		"details":    t.Details,
	}
	if err := c.insert(ctx, ticketsTable, payload, ""); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// InsertMessageLog appends one audit row. An empty FileURL is stored as NULL.
func (c *Client) InsertMessageLog(ctx context.Context, m recorder.MessageLog) error {
	const op = "storage.supabase.InsertMessageLog"

	var fileURL *string
	if m.FileURL != "" {
		fileURL = &m.FileURL
	}
	payload := map[string]any{
		"user_id":      m.UserID,
		"message_type": string(m.MessageType),
		"content":      m.Content,
		"file_url":     fileURL,
	}
	if err := c.insert(ctx, messagesTable, payload, ""); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Put stores data at the given key in the storage bucket and returns the
// deterministic public URL of the object.
func (c *Client) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	const op = "storage.supabase.Put"

	url := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, c.bucket, key)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%s: create request: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: send request: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("%s: storage upload failed: %s: %s", op, resp.Status, strings.TrimSpace(string(body)))
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, c.bucket, key), nil
}

// insert posts one JSON record to a PostgREST table. prefer, when set, is
// passed through as the Prefer header (used for merge-on-conflict upserts).
func (c *Client) insert(ctx context.Context, table string, payload any, prefer string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	url := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, table)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("insert into %s: %s: %s", table, resp.Status, strings.TrimSpace(string(respBody)))
	}

	return nil
}
