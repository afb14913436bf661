package repository

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/stridehq/stride/internal/db"
	"github.com/stridehq/stride/internal/model"
)

// newTestDB opens a throwaway SQLite database with migrations applied.
// Foreign keys must be on for cascade behavior to hold.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)"
	database, err := db.Init("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = database.Close()
	})

	err = db.RunMigrations(database.DB, "sqlite")
	require.NoError(t, err)

	return database
}

func createTestUser(t *testing.T, database *sqlx.DB, username string) *model.User {
	t.Helper()

	user := &model.User{
		Username:     username,
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
	}
	err := NewUserRepository(database).Create(user)
	require.NoError(t, err)
	return user
}

func createTestHabit(t *testing.T, database *sqlx.DB, userID int64, name string) *model.Habit {
	t.Helper()

	habit := &model.Habit{
		UserID: userID,
		Name:   name,
	}
	err := NewHabitRepository(database).Create(habit)
	require.NoError(t, err)
	return habit
}
