package database

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}

	db, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return db
}

func TestMigrationsCreateSchema(t *testing.T) {
	db := openTestDB(t)

	tables := []string{
		"users", "words", "grammar_questions", "block_sentences",
		"word_progress", "grammar_progress", "blocks_progress",
	}
	for _, table := range tables {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	db := openTestDB(t)

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("second migration run failed: %v", err)
	}
}

func TestExecReturningID(t *testing.T) {
	db := openTestDB(t)

	first, err := db.ExecReturningID(
		"INSERT INTO words (book_name, unit, english, korean) VALUES (?, ?, ?, ?)",
		"Basic 1", "Unit 1", "apple", "사과")
	if err != nil {
		t.Fatalf("ExecReturningID: %v", err)
	}
	if first == 0 {
		t.Fatal("expected a non-zero id")
	}

	second, err := db.ExecReturningID(
		"INSERT INTO words (book_name, unit, english, korean) VALUES (?, ?, ?, ?)",
		"Basic 1", "Unit 1", "banana", "바나나")
	if err != nil {
		t.Fatal(err)
	}
	if second <= first {
		t.Errorf("ids should increase: first %d, second %d", first, second)
	}
}

func TestForeignKeyCascade(t *testing.T) {
	db := openTestDB(t)

	userID, err := db.ExecReturningID(
		"INSERT INTO users (username, email, password_hash) VALUES (?, ?, ?)",
		"mina", "mina@example.com", "hash")
	if err != nil {
		t.Fatal(err)
	}

	_, err = db.Exec(`
		INSERT INTO word_progress (user_id, book_name, unit, english, korean, is_correct)
		VALUES (?, ?, ?, ?, ?, ?)`,
		userID, "Basic 1", "Unit 1", "apple", "사과", true)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := db.Exec("DELETE FROM users WHERE id = ?", userID); err != nil {
		t.Fatal(err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM word_progress WHERE user_id = ?", userID).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("progress rows should cascade on user delete, found %d", count)
	}
}

func TestTransactionRollback(t *testing.T) {
	db := openTestDB(t)

	tx, err := db.Begin()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tx.Exec(
		"INSERT INTO words (book_name, unit, english, korean) VALUES (?, ?, ?, ?)",
		"Basic 1", "Unit 1", "apple", "사과"); err != nil {
		t.Fatal(err)
	}
	if err := tx.Rollback(); err != nil {
		t.Fatal(err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM words").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("rolled-back insert persisted, count %d", count)
	}
}
