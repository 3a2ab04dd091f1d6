package db

import (
	"database/sql"
	"time"
)

// LocalStorage is a string key/value store kept in the local_storage table.
// Each collection of the application lives under one key as a JSON document.
type LocalStorage struct {
	db *DB
}

// NewLocalStorage returns a LocalStorage backed by db
func NewLocalStorage(db *DB) *LocalStorage {
	return &LocalStorage{db: db}
}

// GetItem returns the value stored under key. The boolean is false when
// nothing has been stored yet.
func (s *LocalStorage) GetItem(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM local_storage WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// SetItem stores value under key, replacing any previous value
func (s *LocalStorage) SetItem(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO local_storage (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now())
	return err
}

// RemoveItem deletes key. Removing a missing key is not an error.
func (s *LocalStorage) RemoveItem(key string) error {
	_, err := s.db.Exec(`DELETE FROM local_storage WHERE key = ?`, key)
	return err
}

// Keys returns every stored key in lexical order
func (s *LocalStorage) Keys() ([]string, error) {
	rows, err := s.db.Query(`SELECT key FROM local_storage ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
