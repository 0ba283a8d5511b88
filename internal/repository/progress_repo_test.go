package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/beyondie2/word-quiz/internal/database"
	"github.com/beyondie2/word-quiz/internal/models"
)

func openTestDB(t *testing.T) *database.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}

	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *database.DB, username string) *models.User {
	t.Helper()
	user, err := NewUserRepository(db).CreateUser(username, username+"@example.com", "hash")
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func insertResult(t *testing.T, repo *ProgressRepository, userID int64, english, korean string, round int, correct bool) {
	t.Helper()
	p := &models.WordProgress{
		UserID:    userID,
		BookName:  "Basic 1",
		Unit:      "Unit 1",
		English:   english,
		Korean:    korean,
		Mode:      "english",
		Policy:    "one",
		Round:     round,
		IsCorrect: correct,
	}
	if !correct {
		wrong := "oops"
		p.WrongAnswer = &wrong
	}
	if _, err := repo.InsertWordProgress(p); err != nil {
		t.Fatalf("failed to insert progress: %v", err)
	}
}

func TestFirstUserBecomesAdmin(t *testing.T) {
	db := openTestDB(t)

	first := createTestUser(t, db, "first")
	second := createTestUser(t, db, "second")

	if !first.IsAdmin {
		t.Error("first user should be admin")
	}
	if second.IsAdmin {
		t.Error("second user should not be admin")
	}
}

func TestRefreshTokenRotation(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	user := createTestUser(t, db, "mina")

	if err := repo.UpdateRefreshToken(user.ID, "token-one"); err != nil {
		t.Fatal(err)
	}
	found, err := repo.GetUserByRefreshToken("token-one")
	if err != nil {
		t.Fatal(err)
	}
	if found == nil || found.ID != user.ID {
		t.Fatal("stored token should find the user")
	}

	if err := repo.UpdateRefreshToken(user.ID, "token-two"); err != nil {
		t.Fatal(err)
	}
	stale, err := repo.GetUserByRefreshToken("token-one")
	if err != nil {
		t.Fatal(err)
	}
	if stale != nil {
		t.Error("rotated-out token should match nobody")
	}
}

func TestWordProgressLogAndStatsSource(t *testing.T) {
	db := openTestDB(t)
	repo := NewProgressRepository(db)
	user := createTestUser(t, db, "mina")

	insertResult(t, repo, user.ID, "apple", "사과", 1, true)
	insertResult(t, repo, user.ID, "banana", "바나나", 1, false)

	records, err := repo.GetWordProgress(user.ID, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	for _, rec := range records {
		if rec.Username != "mina" {
			t.Errorf("record username = %q, want mina", rec.Username)
		}
	}

	correct := records[0].IsCorrect || records[1].IsCorrect
	wrong := !records[0].IsCorrect || !records[1].IsCorrect
	if !correct || !wrong {
		t.Error("both outcomes should be present")
	}

	for _, rec := range records {
		if rec.IsCorrect && rec.WrongAnswer != nil {
			t.Error("correct rows should have a null wrong answer")
		}
		if !rec.IsCorrect && rec.WrongAnswer == nil {
			t.Error("wrong rows should record the submission")
		}
	}
}

func TestWordProgressDateFilter(t *testing.T) {
	db := openTestDB(t)
	repo := NewProgressRepository(db)
	user := createTestUser(t, db, "mina")

	insertResult(t, repo, user.ID, "apple", "사과", 1, true)

	future := time.Now().Add(24 * time.Hour)
	records, err := repo.GetWordProgress(user.ID, &future, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Errorf("future-dated filter should return nothing, got %d", len(records))
	}

	past := time.Now().Add(-24 * time.Hour)
	records, err = repo.GetWordProgress(user.ID, &past, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Errorf("past-dated filter should return the row, got %d", len(records))
	}
}

func TestWrongWordsDistinct(t *testing.T) {
	db := openTestDB(t)
	repo := NewProgressRepository(db)
	user := createTestUser(t, db, "mina")

	// banana missed twice in round 1, apple correct, cherry missed in round 2
	insertResult(t, repo, user.ID, "banana", "바나나", 1, false)
	insertResult(t, repo, user.ID, "banana", "바나나", 1, false)
	insertResult(t, repo, user.ID, "apple", "사과", 1, true)
	insertResult(t, repo, user.ID, "cherry", "체리", 2, false)

	words, err := repo.GetWrongWords(user.ID, "Basic 1", "Unit 1", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(words) != 1 {
		t.Fatalf("got %d wrong words, want 1", len(words))
	}
	if words[0].English != "banana" {
		t.Errorf("wrong word = %q, want banana", words[0].English)
	}
}

func TestNextRound(t *testing.T) {
	db := openTestDB(t)
	repo := NewProgressRepository(db)
	user := createTestUser(t, db, "mina")

	round, err := repo.GetNextRound(user.ID, "Basic 1", "Unit 1")
	if err != nil {
		t.Fatal(err)
	}
	if round != 1 {
		t.Errorf("next round with no history = %d, want 1", round)
	}

	insertResult(t, repo, user.ID, "apple", "사과", 1, false)
	insertResult(t, repo, user.ID, "apple", "사과", 2, false)

	round, err = repo.GetNextRound(user.ID, "Basic 1", "Unit 1")
	if err != nil {
		t.Fatal(err)
	}
	if round != 3 {
		t.Errorf("next round = %d, want 3", round)
	}

	// Other scopes do not bleed in
	round, err = repo.GetNextRound(user.ID, "Basic 1", "Unit 2")
	if err != nil {
		t.Fatal(err)
	}
	if round != 1 {
		t.Errorf("next round for untouched unit = %d, want 1", round)
	}
}

func TestTopUsers(t *testing.T) {
	db := openTestDB(t)
	repo := NewProgressRepository(db)
	busy := createTestUser(t, db, "busy")
	idle := createTestUser(t, db, "idle")

	insertResult(t, repo, busy.ID, "apple", "사과", 1, true)
	insertResult(t, repo, busy.ID, "banana", "바나나", 1, false)
	insertResult(t, repo, idle.ID, "apple", "사과", 1, true)

	users, err := repo.GetTopUsers(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 2 {
		t.Fatalf("got %d users, want 2", len(users))
	}
	if users[0].Username != "busy" || users[0].TotalAttempts != 2 || users[0].CorrectCount != 1 {
		t.Errorf("top user = %+v", users[0])
	}
}
