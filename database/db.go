package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/korjavin/questiongen/models"
	_ "github.com/mattn/go-sqlite3"
)

// DB is the SQLite question bank the fixture is seeded into
type DB struct {
	conn *sql.DB
}

// New opens the database at dbPath, creating its directory and tables if needed
func New(dbPath string) (*DB, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("cannot create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	if err = createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	return &DB{conn: db}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS questions (
			id INTEGER PRIMARY KEY,
			question TEXT NOT NULL,
			category TEXT NOT NULL,
			difficulty TEXT NOT NULL
		)
	`)
	return err
}

// ReplaceQuestions swaps the whole question bank for questions in one transaction
func (db *DB) ReplaceQuestions(questions []models.Question) (err error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.Exec("DELETE FROM questions"); err != nil {
		return err
	}

	stmt, err := tx.Prepare("INSERT INTO questions (id, question, category, difficulty) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, q := range questions {
		if _, err = stmt.Exec(q.ID, q.Question, q.Category, q.Difficulty); err != nil {
			return fmt.Errorf("failed to insert question %d: %w", q.ID, err)
		}
	}

	return tx.Commit()
}

// CountQuestions returns the number of stored questions
func (db *DB) CountQuestions() (int, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM questions").Scan(&count)
	return count, err
}

// GetQuestion returns the question with id, or nil if there is none
func (db *DB) GetQuestion(id int) (*models.Question, error) {
	var q models.Question
	err := db.conn.QueryRow(
		"SELECT id, question, category, difficulty FROM questions WHERE id = ?",
		id,
	).Scan(&q.ID, &q.Question, &q.Category, &q.Difficulty)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &q, nil
}

// CountByCategory returns how many questions each category holds
func (db *DB) CountByCategory() (map[string]int, error) {
	rows, err := db.conn.Query(`
		SELECT category, COUNT(*)
		FROM questions
		GROUP BY category
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, err
		}
		counts[category] = count
	}

	return counts, rows.Err()
}
