// Shared helpers for integration tests: seed settings databases the way
// the launcher lays them out, and read raw payloads back for inspection.
package integration

import (
	"database/sql"
	"encoding/json"
	"testing"

	_ "modernc.org/sqlite"
)

// seedDB creates a settings database with one row per payload and returns
// the row ids in insert order.
func seedDB(t *testing.T, dbPath string, payloads ...[]byte) []int64 {
	t.Helper()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec("CREATE TABLE IF NOT EXISTS DATA (_id INTEGER PRIMARY KEY AUTOINCREMENT, FILE BLOB)"); err != nil {
		t.Fatalf("create table: %v", err)
	}

	ids := make([]int64, 0, len(payloads))
	for _, p := range payloads {
		res, err := db.Exec("INSERT INTO DATA (FILE) VALUES (?)", p)
		if err != nil {
			t.Fatalf("insert row: %v", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			t.Fatalf("last insert id: %v", err)
		}
		ids = append(ids, id)
	}
	return ids
}

// readDoc parses a row's payload back out of the database.
func readDoc(t *testing.T, dbPath string, id int64) map[string]any {
	t.Helper()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	var payload []byte
	if err := db.QueryRow("SELECT FILE FROM DATA WHERE _id = ?", id).Scan(&payload); err != nil {
		t.Fatalf("read row %d: %v", id, err)
	}
	var doc map[string]any
	if err := json.Unmarshal(payload, &doc); err != nil {
		t.Fatalf("parse row %d: %v", id, err)
	}
	return doc
}

// profilesOf digs the applications list out of a parsed document.
func profilesOf(t *testing.T, doc map[string]any) []any {
	t.Helper()
	section, ok := doc["applications"].(map[string]any)
	if !ok {
		return nil
	}
	list, _ := section["applications"].([]any)
	return list
}
