package repository

import (
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/stridehq/stride/internal/model"
)

var (
	ErrProgressNotFound  = errors.New("progress entry not found or unauthorized")
	ErrDuplicateProgress = errors.New("progress already logged for this date")
)

type ProgressRepository interface {
	Create(entry *model.ProgressEntry) error
	Entries(habitID int64) ([]*model.ProgressEntry, error)
	Update(entry *model.ProgressEntry) error
	Delete(entryID, habitID int64) error
}

type progressRepository struct {
	db *sqlx.DB
}

func NewProgressRepository(db *sqlx.DB) ProgressRepository {
	return &progressRepository{db: db}
}

// Create inserts a new entry; it is not an upsert. A second entry for the
// same (habit, date) fails on the UNIQUE constraint.
func (r *progressRepository) Create(entry *model.ProgressEntry) error {
	query := `INSERT INTO progress (habit_id, date, status) VALUES ($1, $2, $3) RETURNING id`

	err := r.db.QueryRow(query, entry.HabitID, entry.Date, entry.Status).Scan(&entry.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateProgress
		}
		return err
	}

	return nil
}

func (r *progressRepository) Entries(habitID int64) ([]*model.ProgressEntry, error) {
	entries := []*model.ProgressEntry{}
	query := `SELECT * FROM progress WHERE habit_id = $1`

	err := r.db.Select(&entries, query, habitID)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// Update is scoped by both entry id and owning habit id (ownership via
// parent). Moving an entry onto a date that already has one fails on the
// UNIQUE constraint.
func (r *progressRepository) Update(entry *model.ProgressEntry) error {
	query := `UPDATE progress SET date = $1, status = $2 WHERE id = $3 AND habit_id = $4`

	result, err := r.db.Exec(query, entry.Date, entry.Status, entry.ID, entry.HabitID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateProgress
		}
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrProgressNotFound
	}

	return nil
}

func (r *progressRepository) Delete(entryID, habitID int64) error {
	query := `DELETE FROM progress WHERE id = $1 AND habit_id = $2`
	result, err := r.db.Exec(query, entryID, habitID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrProgressNotFound
	}

	return nil
}
