// Package sqlite provides a file-backed store with the same query surface as
// the generated Postgres queries, for local runs without a database server.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

var defaultCategories = []string{"Science", "Art", "Geography", "History", "Entertainment", "Sports"}

// Store handles all sqlite operations.
type Store struct {
	conn *sql.DB
}

// Open opens (or creates) the database at path, creates tables and seeds
// categories when the table is empty.
func Open(ctx context.Context, path string) (*Store, error) {
	conn, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// A single connection keeps ":memory:" databases shared across calls.
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.createTables(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	if err := s.seedCategories(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// Ping verifies the connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.conn.PingContext(ctx)
}

func (s *Store) createTables(ctx context.Context) error {
	_, err := s.conn.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS categories (
			id   INTEGER PRIMARY KEY AUTOINCREMENT,
			type TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("create categories: %w", err)
	}

	_, err = s.conn.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS questions (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			question   TEXT NOT NULL,
			answer     TEXT NOT NULL,
			category   INTEGER NOT NULL REFERENCES categories (id),
			difficulty INTEGER NOT NULL CHECK (difficulty BETWEEN 1 AND 5)
		)
	`)
	if err != nil {
		return fmt.Errorf("create questions: %w", err)
	}
	return nil
}

func (s *Store) seedCategories(ctx context.Context) error {
	var count int
	if err := s.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count > 0 {
		return nil
	}
	for _, name := range defaultCategories {
		if _, err := s.conn.ExecContext(ctx, "INSERT INTO categories (type) VALUES (?)", name); err != nil {
			return fmt.Errorf("seed category %q: %w", name, err)
		}
	}
	return nil
}

// ListCategories returns every category ordered by id.
func (s *Store) ListCategories(ctx context.Context) ([]sqlcgen.Category, error) {
	rows, err := s.conn.QueryContext(ctx, "SELECT id, type FROM categories ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []sqlcgen.Category
	for rows.Next() {
		var c sqlcgen.Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// GetCategory returns sql.ErrNoRows when the category does not exist.
func (s *Store) GetCategory(ctx context.Context, id int32) (sqlcgen.Category, error) {
	var c sqlcgen.Category
	err := s.conn.QueryRowContext(ctx, "SELECT id, type FROM categories WHERE id = ?", id).Scan(&c.ID, &c.Type)
	return c, err
}

// ListQuestions returns every question ordered by id.
func (s *Store) ListQuestions(ctx context.Context) ([]sqlcgen.Question, error) {
	rows, err := s.conn.QueryContext(ctx,
		"SELECT id, question, answer, category, difficulty FROM questions ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []sqlcgen.Question
	for rows.Next() {
		var q sqlcgen.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, err
		}
		items = append(items, q)
	}
	return items, rows.Err()
}

// GetQuestion returns sql.ErrNoRows when the question does not exist.
func (s *Store) GetQuestion(ctx context.Context, id int32) (sqlcgen.Question, error) {
	var q sqlcgen.Question
	err := s.conn.QueryRowContext(ctx,
		"SELECT id, question, answer, category, difficulty FROM questions WHERE id = ?", id,
	).Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)
	return q, err
}

// InsertQuestion stores a question and returns it with its assigned id.
func (s *Store) InsertQuestion(ctx context.Context, arg sqlcgen.InsertQuestionParams) (sqlcgen.Question, error) {
	res, err := s.conn.ExecContext(ctx,
		"INSERT INTO questions (question, answer, category, difficulty) VALUES (?, ?, ?, ?)",
		arg.Question, arg.Answer, arg.Category, arg.Difficulty,
	)
	if err != nil {
		return sqlcgen.Question{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return sqlcgen.Question{}, err
	}
	return sqlcgen.Question{
		ID:         int32(id),
		Question:   arg.Question,
		Answer:     arg.Answer,
		Category:   arg.Category,
		Difficulty: arg.Difficulty,
	}, nil
}

// DeleteQuestion removes a question and reports how many rows were affected.
func (s *Store) DeleteQuestion(ctx context.Context, id int32) (int64, error) {
	res, err := s.conn.ExecContext(ctx, "DELETE FROM questions WHERE id = ?", id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// CountQuestions returns the number of stored questions.
func (s *Store) CountQuestions(ctx context.Context) (int64, error) {
	var count int64
	err := s.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM questions").Scan(&count)
	return count, err
}
