package repository

import (
	"context"
	"errors"

	"cityfix-be/models"
	"cityfix-be/utils"

	"gorm.io/gorm"
)

// CategoryRepo stores the category reference data.
type CategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

func (r *CategoryRepo) Create(ctx context.Context, category *models.Category) error {
	err := r.db.WithContext(ctx).Create(category).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.InvalidState("Category with this name already exists.")
	}
	return err
}

func (r *CategoryRepo) FindAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepo) FindByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFound("Category is not found.")
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepo) Update(ctx context.Context, category *models.Category) error {
	err := r.db.WithContext(ctx).Save(category).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.InvalidState("Category with this name already exists.")
	}
	return err
}

func (r *CategoryRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.NotFound("Category is not found.")
	}
	return nil
}

// CountIssuesReferencing reports how many issues use the category; deletion
// is rejected while this is non-zero.
func (r *CategoryRepo) CountIssuesReferencing(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Issue{}).
		Where("category_id = ?", id).
		Count(&count).Error
	return count, err
}
