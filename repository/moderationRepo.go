package repository

import (
	"context"
	"errors"

	"cityfix-be/models"
	"cityfix-be/utils"

	"gorm.io/gorm"
)

// ModerationRepo stores moderators' decline responses.
type ModerationRepo struct {
	db *gorm.DB
}

func NewModerationRepo(db *gorm.DB) *ModerationRepo {
	return &ModerationRepo{db: db}
}

// CreateWithDecline atomically moves the issue MODERATION -> DELETED and
// records the moderator's response. A concurrent approve and decline on
// the same issue resolve to exactly one winner.
func (r *ModerationRepo) CreateWithDecline(ctx context.Context, response *models.ModerationResponse) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := transitionStatus(tx, response.IssueID, models.StatusModeration, models.StatusDeleted); err != nil {
			return err
		}
		if err := tx.Create(response).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return utils.InvalidState("Issue is already declined.")
			}
			return err
		}
		return nil
	})
}

// FindByIssueID loads the moderation response attached to an issue.
func (r *ModerationRepo) FindByIssueID(ctx context.Context, issueID uint) (*models.ModerationResponse, error) {
	var response models.ModerationResponse
	err := r.db.WithContext(ctx).Where("issue_id = ?", issueID).First(&response).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFound("Moderation response is not found.")
	}
	if err != nil {
		return nil, err
	}
	return &response, nil
}
