package services

import (
	"context"

	"cityfix-be/models"
	"cityfix-be/utils"
)

// CategoryService manages the issue category dictionary.
type CategoryService struct {
	categories CategoryStore
}

func NewCategoryService(categories CategoryStore) *CategoryService {
	return &CategoryService{categories: categories}
}

// GetCategories returns every category ordered by id.
func (s *CategoryService) GetCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories.FindAll(ctx)
}

// FindCategoryByID loads one category.
func (s *CategoryService) FindCategoryByID(ctx context.Context, id uint) (*models.Category, error) {
	return s.categories.FindByID(ctx, id)
}

// CreateCategory adds a category with a unique name.
func (s *CategoryService) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	category := &models.Category{Name: name}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory renames a category.
func (s *CategoryService) UpdateCategory(ctx context.Context, id uint, name string) (*models.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = name
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a category. Deletion is rejected while any
// issue still references it.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) error {
	referencing, err := s.categories.CountIssuesReferencing(ctx, id)
	if err != nil {
		return err
	}
	if referencing > 0 {
		return utils.InvalidState("Category is still referenced by issues.")
	}

	return s.categories.Delete(ctx, id)
}
