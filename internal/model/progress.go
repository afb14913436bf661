package model

// ProgressEntry records whether a habit was done or missed on a calendar day.
// Date is a "YYYY-MM-DD" string; at most one entry exists per (habit, date).
type ProgressEntry struct {
	ID      int64  `db:"id" json:"id"`
	HabitID int64  `db:"habit_id" json:"habit_id"`
	Date    string `db:"date" json:"date"`
	Status  bool   `db:"status" json:"status"`
}
