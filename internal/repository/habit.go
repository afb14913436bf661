package repository

import (
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/stridehq/stride/internal/model"
)

var (
	ErrHabitNotFound = errors.New("habit not found or unauthorized")
)

type HabitRepository interface {
	Create(habit *model.Habit) error
	Habits(userID int64) ([]*model.Habit, error)
	Update(habit *model.Habit) error
	Delete(habitID, userID int64) error
}

type habitRepository struct {
	db *sqlx.DB
}

func NewHabitRepository(db *sqlx.DB) HabitRepository {
	return &habitRepository{db: db}
}

func (r *habitRepository) Create(habit *model.Habit) error {
	query := `INSERT INTO habits (user_id, habit_name, category, description, created_at)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`

	return r.db.QueryRow(query,
		habit.UserID,
		habit.Name,
		habit.Category,
		habit.Description,
		habit.CreatedAt,
	).Scan(&habit.ID)
}

func (r *habitRepository) Habits(userID int64) ([]*model.Habit, error) {
	habits := []*model.Habit{}
	query := `SELECT * FROM habits WHERE user_id = $1`

	err := r.db.Select(&habits, query, userID)
	if err != nil {
		return nil, err
	}

	return habits, nil
}

// Update is scoped by both habit id and owning user id in a single statement.
// Zero rows affected means the habit doesn't exist or belongs to another
// user; the two cases are deliberately indistinguishable.
func (r *habitRepository) Update(habit *model.Habit) error {
	query := `UPDATE habits
	          SET habit_name = $1, category = $2, description = $3
	          WHERE id = $4 AND user_id = $5`

	result, err := r.db.Exec(query,
		habit.Name,
		habit.Category,
		habit.Description,
		habit.ID,
		habit.UserID,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrHabitNotFound
	}

	return nil
}

func (r *habitRepository) Delete(habitID, userID int64) error {
	query := `DELETE FROM habits WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(query, habitID, userID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrHabitNotFound
	}

	return nil
}
