package storage

import (
	"database/sql"
	"fmt"

	"github.com/renwick/curio/internal/item"
	_ "modernc.org/sqlite"
)

// DB wraps the SQLite query index. The index is derived state, rebuilt
// in full from the CSV source of truth; it is never written directly by
// catalog mutations.
type DB struct {
	db *sql.DB
}

// OpenDB opens or creates the SQLite index at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening index: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS items (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL
		);
	`
	_, err := db.Exec(schema)
	return err
}

// Rebuild replaces the index contents with the given items.
// Returns the number of items indexed.
func (d *DB) Rebuild(items []item.Item) (int, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM items"); err != nil {
		return 0, fmt.Errorf("clearing index: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO items (id, name, description) VALUES (?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, it := range items {
		if _, err := stmt.Exec(it.ID, it.Name, it.Description); err != nil {
			return 0, fmt.Errorf("inserting item %d: %w", it.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing rebuild: %w", err)
	}
	return len(items), nil
}

// GetByID returns the indexed item with the given id, or nil if absent.
func (d *DB) GetByID(id int) (*item.Item, error) {
	var it item.Item
	err := d.db.QueryRow(
		"SELECT id, name, description FROM items WHERE id = ?", id,
	).Scan(&it.ID, &it.Name, &it.Description)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying item: %w", err)
	}
	return &it, nil
}

// Search returns items whose name or description contains the query,
// case-insensitively, ordered by id.
func (d *DB) Search(query string) ([]item.Item, error) {
	pattern := "%" + query + "%"
	rows, err := d.db.Query(`
		SELECT id, name, description FROM items
		WHERE name LIKE ? OR description LIKE ?
		ORDER BY id`, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("searching index: %w", err)
	}
	defer rows.Close()

	var items []item.Item
	for rows.Next() {
		var it item.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}
	return items, nil
}

// Count returns the number of indexed items.
func (d *DB) Count() (int, error) {
	var n int
	if err := d.db.QueryRow("SELECT COUNT(*) FROM items").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting items: %w", err)
	}
	return n, nil
}
