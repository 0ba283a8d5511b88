package database

import "testing"

func TestRewritePlaceholdersToNumbered(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no placeholders",
			input:    "SELECT * FROM users",
			expected: "SELECT * FROM users",
		},
		{
			name:     "single placeholder",
			input:    "SELECT * FROM users WHERE id = ?",
			expected: "SELECT * FROM users WHERE id = $1",
		},
		{
			name:     "multiple placeholders",
			input:    "INSERT INTO words (book_name, unit, english) VALUES (?, ?, ?)",
			expected: "INSERT INTO words (book_name, unit, english) VALUES ($1, $2, $3)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := rewritePlaceholdersToNumbered(tt.input)
			if result != tt.expected {
				t.Errorf("got %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestDialectProperties(t *testing.T) {
	tests := []struct {
		name            string
		dialect         Dialect
		driver          string
		lastInsertID    bool
		migrationSubdir string
	}{
		{name: "sqlite", dialect: NewSQLiteDialect(), driver: "sqlite3", lastInsertID: true, migrationSubdir: "sqlite"},
		{name: "postgres", dialect: NewPostgresDialect(), driver: "postgres", lastInsertID: false, migrationSubdir: "postgres"},
		{name: "mysql", dialect: NewMySQLDialect(), driver: "mysql", lastInsertID: true, migrationSubdir: "mysql"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dialect.DriverName(); got != tt.driver {
				t.Errorf("DriverName() = %q, want %q", got, tt.driver)
			}
			if got := tt.dialect.SupportsLastInsertID(); got != tt.lastInsertID {
				t.Errorf("SupportsLastInsertID() = %v, want %v", got, tt.lastInsertID)
			}
			if got := tt.dialect.MigrationsSubdir(); got != tt.migrationSubdir {
				t.Errorf("MigrationsSubdir() = %q, want %q", got, tt.migrationSubdir)
			}
		})
	}
}

func TestSQLiteRewriteIsIdentity(t *testing.T) {
	d := NewSQLiteDialect()
	query := "SELECT * FROM users WHERE id = ? AND email = ?"
	if got := d.Rewrite(query); got != query {
		t.Errorf("Rewrite changed the query: %q", got)
	}
}
