// Package postgres is the recorder store for self-hosted deployments that
// point the bot straight at the database instead of the hosted REST API.
package postgres

import (
	"context"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/lastzone/support-bot/internal/recorder"
)

type Storage struct {
	db *sqlx.DB
}

func New(ctx context.Context, dsn string) (*Storage, error) {
	const op = "storage.postgres.New"

	db, err := sqlx.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: open: %w", op, err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: ping: %w", op, err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) UpsertUser(ctx context.Context, u recorder.User) error {
	const op = "storage.postgres.UpsertUser"

	_, err := s.db.ExecContext(
		ctx,
		`
		INSERT INTO telegram_users (id, username, first_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET username = EXCLUDED.username, first_name = EXCLUDED.first_name
		`,
		u.ID, u.Username, u.FirstName,
	)
	if err != nil {
		return fmt.Errorf("%s: upsert user: %w", op, err)
	}

	return nil
}

func (s *Storage) InsertTicket(ctx context.Context, t recorder.Ticket) error {
	const op = "storage.postgres.InsertTicket"

	_, err := s.db.ExecContext(
		ctx,
		`
		INSERT INTO support_tickets (user_id, issue_type, status, details)
		VALUES ($1, $2, $3, $4)
		`,
		t.UserID, t.IssueType.String(), string(t.Status), t.Details,
	)
	if err != nil {
		return fmt.Errorf("%s: insert ticket: %w", op, err)
	}

	return nil
}

func (s *Storage) InsertMessageLog(ctx context.Context, m recorder.MessageLog) error {
	const op = "storage.postgres.InsertMessageLog"

	_, err := s.db.ExecContext(
		ctx,
		`
		INSERT INTO support_messages (user_id, message_type, content, file_url)
		VALUES ($1, $2, $3, NULLIF($4, ''))
		`,
		m.UserID, string(m.MessageType), m.Content, m.FileURL,
	)
	if err != nil {
		return fmt.Errorf("%s: insert message log: %w", op, err)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}
