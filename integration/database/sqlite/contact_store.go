package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/portfolio/core/contact"
)

// ContactStore archives contact messages in the contact_messages table.
type ContactStore struct {
	db *sql.DB
}

// NewContactStore returns a contact.Store backed by db.
func NewContactStore(db *sql.DB) *ContactStore {
	return &ContactStore{db: db}
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(v int64) time.Time {
	return time.UnixMilli(v).UTC()
}

func (s *ContactStore) Create(ctx context.Context, rec contact.Record) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contact_messages (
		   id, locale, client_ip, name, email, subject, message, status, error, created_at, updated_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID.String(),
		rec.Locale,
		rec.ClientIP,
		rec.Message.Name,
		rec.Message.Email,
		rec.Message.Subject,
		rec.Message.Message,
		string(rec.Status),
		rec.Error,
		toMillis(rec.CreatedAt),
		toMillis(rec.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}

func (s *ContactStore) UpdateStatus(ctx context.Context, id uuid.UUID, status contact.Status, errMsg string, at time.Time) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE contact_messages SET status = ?, error = ?, updated_at = ? WHERE id = ?`,
		string(status), errMsg, toMillis(at), id.String(),
	)
	if err != nil {
		return fmt.Errorf("update contact message: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update contact message: %w", err)
	}
	if n == 0 {
		return contact.ErrNotFound
	}
	return nil
}

func (s *ContactStore) List(ctx context.Context, limit int) ([]contact.Record, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, locale, client_ip, name, email, subject, message, status, error, created_at, updated_at
		   FROM contact_messages
		  ORDER BY created_at DESC, id DESC
		  LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	var list []contact.Record
	for rows.Next() {
		var (
			rec                  contact.Record
			id, status           string
			createdAt, updatedAt int64
		)
		if err := rows.Scan(
			&id, &rec.Locale, &rec.ClientIP,
			&rec.Message.Name, &rec.Message.Email, &rec.Message.Subject, &rec.Message.Message,
			&status, &rec.Error, &createdAt, &updatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		if rec.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse contact message id: %w", err)
		}
		rec.Status = contact.Status(status)
		rec.CreatedAt = fromMillis(createdAt)
		rec.UpdatedAt = fromMillis(updatedAt)
		list = append(list, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return list, nil
}
