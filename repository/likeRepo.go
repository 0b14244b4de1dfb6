package repository

import (
	"context"
	"errors"

	"cityfix-be/models"
	"cityfix-be/utils"

	"gorm.io/gorm"
)

// LikeRepo stores resident likes. Uniqueness of the (issue, resident) pair
// is a storage-layer constraint, so a lost race between two identical like
// requests surfaces as a duplicate key here rather than a double insert.
type LikeRepo struct {
	db *gorm.DB
}

func NewLikeRepo(db *gorm.DB) *LikeRepo {
	return &LikeRepo{db: db}
}

// Create inserts a like; a second like by the same resident fails as a
// state error.
func (r *LikeRepo) Create(ctx context.Context, like *models.Like) error {
	err := r.db.WithContext(ctx).Create(like).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.InvalidState("You have already liked this issue.")
	}
	return err
}

// Delete removes the resident's like from an issue; deleting a like that
// does not exist is a state error.
func (r *LikeRepo) Delete(ctx context.Context, issueID uint, residentUID string) error {
	result := r.db.WithContext(ctx).
		Where("issue_id = ? AND resident_uid = ?", issueID, residentUID).
		Delete(&models.Like{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.InvalidState("There is no like on this issue.")
	}
	return nil
}

// Exists reports whether the resident has liked the issue.
func (r *LikeRepo) Exists(ctx context.Context, issueID uint, residentUID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Like{}).
		Where("issue_id = ? AND resident_uid = ?", issueID, residentUID).
		Count(&count).Error
	return count > 0, err
}

// CountByIssueID derives the like count for one issue.
func (r *LikeRepo) CountByIssueID(ctx context.Context, issueID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Like{}).
		Where("issue_id = ?", issueID).
		Count(&count).Error
	return count, err
}

// IssueLikeTotal pairs an issue with its derived like count.
type IssueLikeTotal struct {
	IssueID uint   `json:"issueId"`
	Title   string `json:"title"`
	Total   int64  `json:"total"`
}

// TopLiked returns the most-liked issues, most popular first.
func (r *LikeRepo) TopLiked(ctx context.Context, limit int) ([]IssueLikeTotal, error) {
	var rows []IssueLikeTotal
	err := r.db.WithContext(ctx).Model(&models.Like{}).
		Select("likes.issue_id AS issue_id, issues.title AS title, COUNT(*) AS total").
		Joins("JOIN issues ON issues.id = likes.issue_id").
		Group("likes.issue_id, issues.title").
		Order("total DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// CountByIssueIDs batches like counts for a page of issues.
func (r *LikeRepo) CountByIssueIDs(ctx context.Context, issueIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(issueIDs))
	if len(issueIDs) == 0 {
		return counts, nil
	}

	type row struct {
		IssueID uint
		Total   int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&models.Like{}).
		Select("issue_id, COUNT(*) AS total").
		Where("issue_id IN ?", issueIDs).
		Group("issue_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		counts[r.IssueID] = r.Total
	}
	return counts, nil
}
