package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	_ "modernc.org/sqlite"
)

var (
	ErrNotFound = errors.New("storage: record not found")
	// ErrDuplicatePost means a registry insert hit an already-registered
	// message ID. Telegram assigns fresh IDs per send, so this signals a
	// bug, not a user mistake.
	ErrDuplicatePost = errors.New("storage: post already registered")
)

type Storage struct {
	db *sql.DB
}

// PublishedPost is one registry entry: the channel post and the gated
// text revealed to verified members. Never mutated after insertion.
type PublishedPost struct {
	MessageID   int
	ChatID      int64
	FullText    string
	PublishedAt time.Time
}

func NewStorage(dbPath string) (*Storage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}
	s := &Storage{db: db}
	if err = s.initSchema(); err != nil {
		return nil, fmt.Errorf("could not initialize database schema: %w", err)
	}
	log.Println("Database connection successful and schema initialized.")
	return s, nil
}

func (s *Storage) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS published_posts (
			message_id INTEGER PRIMARY KEY,
			chat_id INTEGER NOT NULL,
			full_text TEXT NOT NULL,
			published_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,

		`CREATE TABLE IF NOT EXISTS users (
			user_id INTEGER PRIMARY KEY,
			is_admin BOOLEAN NOT NULL DEFAULT FALSE
		);`,
	}
	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("schema execution failed: %w", err)
		}
	}
	return nil
}

// PutPublishedPost registers the full text for a freshly sent channel
// post. Refuses to overwrite an existing entry.
func (s *Storage) PutPublishedPost(messageID int, chatID int64, fullText string) error {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM published_posts WHERE message_id = ?)`
	if err := s.db.QueryRow(query, messageID).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return ErrDuplicatePost
	}
	_, err := s.db.Exec(`INSERT INTO published_posts (message_id, chat_id, full_text) VALUES (?, ?, ?)`,
		messageID, chatID, fullText)
	return err
}

// GetPublishedPost looks up a registry entry by channel message ID.
// Absence is an expected outcome, reported as ErrNotFound.
func (s *Storage) GetPublishedPost(messageID int) (*PublishedPost, error) {
	query := `SELECT message_id, chat_id, full_text, published_at FROM published_posts WHERE message_id = ?`
	row := s.db.QueryRow(query, messageID)

	var post PublishedPost
	if err := row.Scan(&post.MessageID, &post.ChatID, &post.FullText, &post.PublishedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (s *Storage) SetUserAdmin(userID int64, isAdmin bool) error {
	query := `INSERT INTO users (user_id, is_admin) VALUES (?, ?) ON CONFLICT(user_id) DO UPDATE SET is_admin = excluded.is_admin;`
	_, err := s.db.Exec(query, userID, isAdmin)
	return err
}

func (s *Storage) IsUserAdmin(userID int64) (bool, error) {
	var isAdmin bool
	query := `SELECT is_admin FROM users WHERE user_id = ?`
	err := s.db.QueryRow(query, userID).Scan(&isAdmin)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return isAdmin, nil
}

func (s *Storage) Close() {
	s.db.Close()
}
