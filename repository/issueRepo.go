package repository

import (
	"context"
	"errors"

	"cityfix-be/models"
	"cityfix-be/utils"

	"gorm.io/gorm"
)

// IssueRepo issues the parameterized issue queries against the relational
// store.
type IssueRepo struct {
	db *gorm.DB
}

func NewIssueRepo(db *gorm.DB) *IssueRepo {
	return &IssueRepo{db: db}
}

// Create persists a new issue.
func (r *IssueRepo) Create(ctx context.Context, issue *models.Issue) error {
	return r.db.WithContext(ctx).Create(issue).Error
}

// FindByID loads an issue with its category.
func (r *IssueRepo) FindByID(ctx context.Context, id uint) (*models.Issue, error) {
	var issue models.Issue
	err := r.db.WithContext(ctx).Preload("Category").First(&issue, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFound("Issue is not found.")
	}
	if err != nil {
		return nil, err
	}
	return &issue, nil
}

// Exists reports whether an issue with the given id exists.
func (r *IssueRepo) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Issue{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// List returns one page of issues matching the filter.
func (r *IssueRepo) List(ctx context.Context, filter IssueFilter, page PageRequest) ([]models.Issue, error) {
	var issues []models.Issue
	err := filter.scope(r.db.WithContext(ctx).Model(&models.Issue{})).
		Preload("Category").
		Order(page.SortExpr()).
		Scopes(page.paginate).
		Find(&issues).Error
	return issues, err
}

// Count returns the number of issues matching the filter.
func (r *IssueRepo) Count(ctx context.Context, filter IssueFilter) (int64, error) {
	var count int64
	err := filter.scope(r.db.WithContext(ctx).Model(&models.Issue{})).Count(&count).Error
	return count, err
}

// ListByHolder returns issues whose reservation snapshot matches the given
// holder triple; empty uids are wildcards, so "all issues ever held by
// department X" works regardless of which employee holds them now.
func (r *IssueRepo) ListByHolder(ctx context.Context, holder HolderFilter, filter IssueFilter, page PageRequest) ([]models.Issue, error) {
	var issues []models.Issue
	db := r.db.WithContext(ctx).Model(&models.Issue{}).
		Joins("JOIN issue_reservations ON issue_reservations.issue_id = issues.id")
	if holder.ServiceUID != "" {
		db = db.Where("issue_reservations.service_uid = ?", holder.ServiceUID)
	}
	if holder.DepartmentUID != "" {
		db = db.Where("issue_reservations.department_uid = ?", holder.DepartmentUID)
	}
	if holder.EmployeeUID != "" {
		db = db.Where("issue_reservations.employee_uid = ?", holder.EmployeeUID)
	}
	err := filter.scope(db).
		Preload("Category").
		Order(page.SortExpr()).
		Scopes(page.paginate).
		Find(&issues).Error
	return issues, err
}

// CategoryCount is an issues-per-category aggregation row.
type CategoryCount struct {
	CategoryID uint   `json:"categoryId"`
	Name       string `json:"name"`
	Total      int64  `json:"total"`
}

// CountByCategory groups the issue population by category.
func (r *IssueRepo) CountByCategory(ctx context.Context) ([]CategoryCount, error) {
	var rows []CategoryCount
	err := r.db.WithContext(ctx).Model(&models.Issue{}).
		Select("issues.category_id AS category_id, categories.name AS name, COUNT(*) AS total").
		Joins("JOIN categories ON categories.id = issues.category_id").
		Group("issues.category_id, categories.name").
		Order("total DESC").
		Find(&rows).Error
	return rows, err
}

// TransitionStatus executes the compare-and-swap status move: the update
// only lands when the row still carries the expected prior status, so two
// racing transitions cannot both win. Zero rows affected means the issue
// either vanished or left the expected state.
func (r *IssueRepo) TransitionStatus(ctx context.Context, id uint, from, to models.IssueStatus) error {
	return transitionStatus(r.db.WithContext(ctx), id, from, to)
}

func transitionStatus(tx *gorm.DB, id uint, from, to models.IssueStatus) error {
	if !models.CanTransition(from, to) {
		return utils.InvalidState("Issue cannot move from %s to %s.", from, to)
	}

	result := tx.Model(&models.Issue{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.InvalidState("Issue is not in %s state.", from)
	}
	return nil
}
