// Package sqlite implements the document store over the launcher's
// settings database: a single DATA table whose FILE column holds one
// UTF-8 JSON document per row.
package sqlite

import (
	"bytes"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"unicode/utf8"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// Store loads and persists row documents. The connection is opened and
// closed per operation; nothing is held across user interactions.
type Store struct {
	path string
	log  *slog.Logger
}

// New creates a store over the database named by the config. The config
// is assumed validated by the caller.
func New(cfg types.Config, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{path: cfg.DBPath, log: logger}
}

func (s *Store) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", types.ErrStorage, s.path, err)
	}
	return db, nil
}

// Load fetches every row and decodes its payload. A row whose payload is
// empty, not UTF-8, or not valid JSON is logged and skipped; one bad row
// never prevents the others from loading. Rows are returned in id order.
func (s *Store) Load() ([]types.Row, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query("SELECT _id, FILE FROM DATA ORDER BY _id")
	if err != nil {
		return nil, fmt.Errorf("%w: query rows: %v", types.ErrStorage, err)
	}
	defer rows.Close()

	var out []types.Row
	for rows.Next() {
		var id int64
		var payload []byte
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("%w: scan row: %v", types.ErrStorage, err)
		}
		doc, err := decodeDocument(payload)
		if err != nil {
			s.log.Warn("skipping undecodable row", "row", id, "err", err)
			continue
		}
		out = append(out, types.Row{ID: id, Doc: doc})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate rows: %v", types.ErrStorage, err)
	}
	return out, nil
}

// Persist serializes the document and updates its row in place. A
// serialization failure aborts before the database is touched; a write
// failure leaves the prior row content unaffected. There is no retry and
// no version check: the row is replaced with the in-memory state.
func (s *Store) Persist(id int64, doc types.Document) error {
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: row %d: %v", types.ErrSerialize, id, err)
	}

	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	res, err := db.Exec("UPDATE DATA SET FILE = ? WHERE _id = ?", payload, id)
	if err != nil {
		return fmt.Errorf("%w: update row %d: %v", types.ErrStorage, id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: row %d does not exist", types.ErrStorage, id)
	}
	s.log.Debug("persisted document", "row", id, "bytes", len(payload))
	return nil
}

// Init creates the DATA table if missing and seeds a single empty
// document row into an empty table. Intended for standalone databases
// and tests; an existing launcher database is left as is.
func (s *Store) Init() error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("%w: create schema: %v", types.ErrStorage, err)
	}

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM DATA").Scan(&n); err != nil {
		return fmt.Errorf("%w: count rows: %v", types.ErrStorage, err)
	}
	if n == 0 {
		if _, err := db.Exec("INSERT INTO DATA (FILE) VALUES (?)", []byte("{}")); err != nil {
			return fmt.Errorf("%w: seed row: %v", types.ErrStorage, err)
		}
	}
	return nil
}

// decodeDocument turns a row payload into a document. Numbers decode as
// json.Number so untouched values re-serialize with their original text.
func decodeDocument(payload []byte) (types.Document, error) {
	if len(payload) == 0 {
		return nil, fmt.Errorf("%w: empty payload", types.ErrParse)
	}
	if !utf8.Valid(payload) {
		return nil, fmt.Errorf("%w: payload is not UTF-8", types.ErrParse)
	}
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	var doc types.Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrParse, err)
	}
	return doc, nil
}
