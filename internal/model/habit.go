package model

import (
	"time"
)

type Habit struct {
	ID     int64  `db:"id" json:"id"`
	UserID int64  `db:"user_id" json:"user_id"`
	Name   string `db:"habit_name" json:"habit_name"`
	// Category and Description are nullable: omitted values are stored and
	// returned as null, never as empty strings.
	Category    *string   `db:"category" json:"category"`
	Description *string   `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
