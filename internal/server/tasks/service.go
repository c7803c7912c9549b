package tasks

import (
	"context"
	"strings"

	"github.com/dberestov/taskdeck/internal/common"
)

// Service enforces text validation on top of the repository; ownership
// scoping lives in the repository itself.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, ownerID int64) ([]Task, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Create trims the text and rejects input that is empty after trimming.
func (s *Service) Create(ctx context.Context, ownerID int64, text string) (*Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, common.ErrValidation
	}
	return s.repo.Create(ctx, ownerID, text)
}

// Update applies the provided fields only. A present-but-empty text is a
// validation error; a nil text leaves the stored text alone.
func (s *Service) Update(ctx context.Context, ownerID, id int64, change Change) (*Task, error) {
	if change.Text != nil {
		trimmed := strings.TrimSpace(*change.Text)
		if trimmed == "" {
			return nil, common.ErrValidation
		}
		change.Text = &trimmed
	}
	return s.repo.Update(ctx, ownerID, id, change)
}

func (s *Service) Delete(ctx context.Context, ownerID, id int64) (*Task, error) {
	return s.repo.Delete(ctx, ownerID, id)
}
