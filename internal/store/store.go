package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// ErrNoDocument is returned by lookups that match no document.
var ErrNoDocument = fmt.Errorf("no matching document")

// Collection names used by the service.
const (
	UsersCollection    = "users"
	PlaylistCollection = "playlist"
)

// Document is a single stored record: its assigned id plus the flat field
// mapping it was inserted or last updated with.
type Document struct {
	ID     string
	Fields map[string]string
}

// Store provides access to named document collections backed by a SQLite
// database. The schema is managed by shared.RunMigrations.
type Store struct {
	db *sql.DB
}

// New creates a Store over an open database connection.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Collection returns a handle for the named collection. The name must be one
// of the migrated collection tables; it is interpolated into SQL directly.
func (s *Store) Collection(name string) *Collection {
	return &Collection{db: s.db, name: name}
}

// Collection performs document operations against one collection table.
type Collection struct {
	db   *sql.DB
	name string
}

// Name returns the collection name.
func (c *Collection) Name() string {
	return c.name
}

// InsertOne assigns a fresh object id to fields, stores the document, and
// returns the id. No duplicate or uniqueness checks are performed.
func (c *Collection) InsertOne(fields map[string]string) (string, error) {
	doc, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}

	id := NewObjectID()
	query := fmt.Sprintf("INSERT INTO %s (id, doc) VALUES (?, ?)", c.name)
	if _, err := c.db.Exec(query, id, string(doc)); err != nil {
		return "", fmt.Errorf("failed to insert into %s: %w", c.name, err)
	}

	return id, nil
}

// Find returns every document in the collection in insertion order. An empty
// collection yields an empty slice, not nil.
func (c *Collection) Find() ([]Document, error) {
	query := fmt.Sprintf("SELECT id, doc FROM %s ORDER BY rowid ASC", c.name)
	rows, err := c.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", c.name, err)
	}
	defer rows.Close()

	docs := []Document{}
	for rows.Next() {
		var id, raw string
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}

		doc, err := decodeDocument(id, raw)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return docs, nil
}

// FindByID returns the document with the given id, or [ErrNoDocument] if none
// matches. The id is assumed to be format-validated by the caller.
func (c *Collection) FindByID(id string) (*Document, error) {
	query := fmt.Sprintf("SELECT doc FROM %s WHERE id = ?", c.name)

	var raw string
	err := c.db.QueryRow(query, id).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s/%s", ErrNoDocument, c.name, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", c.name, err)
	}

	doc, err := decodeDocument(id, raw)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// UpdateByID replaces the document with the given id entirely and returns the
// number of rows modified. Zero means no document matched.
func (c *Collection) UpdateByID(id string, fields map[string]string) (int64, error) {
	doc, err := json.Marshal(fields)
	if err != nil {
		return 0, fmt.Errorf("failed to encode document: %w", err)
	}

	query := fmt.Sprintf("UPDATE %s SET doc = ? WHERE id = ?", c.name)
	result, err := c.db.Exec(query, string(doc), id)
	if err != nil {
		return 0, fmt.Errorf("failed to update %s: %w", c.name, err)
	}

	modified, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return modified, nil
}

// DeleteByID removes the document with the given id permanently and returns
// the number of rows deleted. Zero means no document matched.
func (c *Collection) DeleteByID(id string) (int64, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", c.name)
	result, err := c.db.Exec(query, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete from %s: %w", c.name, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return deleted, nil
}

func decodeDocument(id, raw string) (Document, error) {
	fields := map[string]string{}
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return Document{}, fmt.Errorf("failed to decode document %s: %w", id, err)
	}
	return Document{ID: id, Fields: fields}, nil
}
