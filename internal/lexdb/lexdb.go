package lexdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"codeberg.org/snonux/phonoprep/internal/lexicon"
	"codeberg.org/snonux/phonoprep/internal/pronunciation"
)

// tokenSeparator joins phoneme tokens in the database (ASCII unit separator),
// so tokens that are spaces survive a round trip.
const tokenSeparator = "\x1f"

// DB is a read handle on an exported lexicon database.
type DB struct {
	db *sql.DB
}

// Write exports lex to a new database at path. The database is built in a
// temporary file next to path and replaces any existing file only when
// complete.
func Write(ctx context.Context, path string, lex *lexicon.Lexicon) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary database: %w", err)
	}
	tmpPath := tmp.Name()
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to create temporary database: %w", err)
	}
	defer func() {
		if err != nil {
			os.Remove(tmpPath)
		}
	}()

	if err := populate(ctx, tmpPath, lex); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("failed to set database permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to move database into place: %w", err)
	}
	return nil
}

func populate(ctx context.Context, path string, lex *lexicon.Lexicon) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := createTables(ctx, db); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	if err := insertEntries(ctx, db, lex); err != nil {
		return fmt.Errorf("failed to insert entries: %w", err)
	}

	return nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	queries := []string{
		`CREATE TABLE lexicon (
			position integer NOT NULL,
			word text PRIMARY KEY,
			phonemes text NOT NULL
		)`,
		`CREATE INDEX ix_lexicon_position ON lexicon (position)`,
	}

	for _, query := range queries {
		if _, err := db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}

	return nil
}

func insertEntries(ctx context.Context, db *sql.DB, lex *lexicon.Lexicon) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO lexicon (position, word, phonemes) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, e := range lex.Entries() {
		if _, err := stmt.ExecContext(ctx, i, e.Word, strings.Join(e.Phonemes, tokenSeparator)); err != nil {
			return fmt.Errorf("failed to insert %q: %w", e.Word, err)
		}
	}

	return tx.Commit()
}

// Open opens an exported database read-only.
func Open(path string) (*DB, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", pronunciation.ErrNotFound, err)
		}
		return nil, err
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, err
	}
	return &DB{db: db}, nil
}

// Close releases the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Phonemes returns the tokens stored for word.
func (d *DB) Phonemes(ctx context.Context, word string) ([]string, bool, error) {
	var joined string
	err := d.db.QueryRowContext(ctx, `SELECT phonemes FROM lexicon WHERE word = ?`, word).Scan(&joined)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to query %q: %w", word, err)
	}
	if joined == "" {
		return []string{}, true, nil
	}
	return strings.Split(joined, tokenSeparator), true, nil
}

// Lexicon loads every entry back in original order.
func (d *DB) Lexicon(ctx context.Context) (*lexicon.Lexicon, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT word, phonemes FROM lexicon ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lex := lexicon.New()
	for rows.Next() {
		var word, joined string
		if err := rows.Scan(&word, &joined); err != nil {
			return nil, err
		}
		phonemes := []string{}
		if joined != "" {
			phonemes = strings.Split(joined, tokenSeparator)
		}
		lex.Add(word, phonemes)
	}
	return lex, rows.Err()
}
