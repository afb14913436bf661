package service

import (
	"errors"
	"fmt"

	"github.com/stridehq/stride/internal/model"
	"github.com/stridehq/stride/internal/repository"
	"github.com/stridehq/stride/internal/validation"
)

type ProgressService struct {
	repo repository.ProgressRepository
}

func NewProgressService(repo repository.ProgressRepository) *ProgressService {
	return &ProgressService{
		repo: repo,
	}
}

// Log inserts a new entry for (habit, date). It never overwrites: logging the
// same date twice surfaces repository.ErrDuplicateProgress.
func (s *ProgressService) Log(habitID int64, date string, status bool) (*model.ProgressEntry, error) {
	err := validation.ValidateDate(date)
	if err != nil {
		return nil, invalid(err)
	}

	entry := &model.ProgressEntry{
		HabitID: habitID,
		Date:    date,
		Status:  status,
	}

	err = s.repo.Create(entry)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateProgress) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to log progress: %w", err)
	}

	return entry, nil
}

func (s *ProgressService) Entries(habitID int64) ([]*model.ProgressEntry, error) {
	return s.repo.Entries(habitID)
}

func (s *ProgressService) Update(entryID, habitID int64, date string, status bool) error {
	err := validation.ValidateDate(date)
	if err != nil {
		return invalid(err)
	}

	entry := &model.ProgressEntry{
		ID:      entryID,
		HabitID: habitID,
		Date:    date,
		Status:  status,
	}

	return s.repo.Update(entry)
}

func (s *ProgressService) Delete(entryID, habitID int64) error {
	return s.repo.Delete(entryID, habitID)
}
