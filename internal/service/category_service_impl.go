package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/stint/internal/domain"
	"github.com/alexanderramin/stint/internal/repository"
	"github.com/google/uuid"
)

// ErrCategoryNameRequired rejects empty category names.
var ErrCategoryNameRequired = errors.New("category name is required")

type categoryService struct {
	categories repository.CategoryRepo
}

func NewCategoryService(categories repository.CategoryRepo) CategoryService {
	return &categoryService{categories: categories}
}

func (s *categoryService) Create(ctx context.Context, wsID, name string, color domain.CategoryColor) (*domain.Category, error) {
	if name == "" {
		return nil, ErrCategoryNameRequired
	}
	c := &domain.Category{
		ID:          uuid.New().String(),
		WorkspaceID: wsID,
		Name:        name,
		Color:       color,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *categoryService) List(ctx context.Context, wsID string) ([]domain.Category, error) {
	return s.categories.ListByWorkspace(ctx, wsID)
}

func (s *categoryService) Rename(ctx context.Context, id, name string) error {
	if name == "" {
		return ErrCategoryNameRequired
	}
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return err
	}
	c.Name = name
	return s.categories.Update(ctx, c)
}

func (s *categoryService) Recolor(ctx context.Context, id string, color domain.CategoryColor) error {
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return err
	}
	c.Color = color
	return s.categories.Update(ctx, c)
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	return s.categories.Delete(ctx, id)
}
