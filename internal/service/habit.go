package service

import (
	"fmt"
	"time"

	"github.com/stridehq/stride/internal/model"
	"github.com/stridehq/stride/internal/repository"
	"github.com/stridehq/stride/internal/validation"
)

type HabitService struct {
	repo repository.HabitRepository
}

func NewHabitService(repo repository.HabitRepository) *HabitService {
	return &HabitService{
		repo: repo,
	}
}

func (s *HabitService) Create(userID int64, name string, category, description *string) (*model.Habit, error) {
	err := validation.ValidateHabitName(name)
	if err != nil {
		return nil, invalid(err)
	}

	habit := &model.Habit{
		UserID:      userID,
		Name:        name,
		Category:    normalize(category),
		Description: normalize(description),
		CreatedAt:   time.Now(),
	}

	err = s.repo.Create(habit)
	if err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	return habit, nil
}

func (s *HabitService) Habits(userID int64) ([]*model.Habit, error) {
	return s.repo.Habits(userID)
}

func (s *HabitService) Update(habitID, userID int64, name string, category, description *string) error {
	err := validation.ValidateHabitName(name)
	if err != nil {
		return invalid(err)
	}

	habit := &model.Habit{
		ID:          habitID,
		UserID:      userID,
		Name:        name,
		Category:    normalize(category),
		Description: normalize(description),
	}

	return s.repo.Update(habit)
}

// Delete removes the habit and, via the cascading foreign key, all of its
// progress entries.
func (s *HabitService) Delete(habitID, userID int64) error {
	return s.repo.Delete(habitID, userID)
}

// normalize maps omitted or blank optional fields to NULL so the store never
// holds empty strings.
func normalize(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	return v
}
