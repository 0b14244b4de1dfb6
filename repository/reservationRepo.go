package repository

import (
	"context"
	"errors"

	"cityfix-be/models"
	"cityfix-be/utils"

	"gorm.io/gorm"
)

// ReservationRepo stores exclusive issue reservations.
type ReservationRepo struct {
	db *gorm.DB
}

func NewReservationRepo(db *gorm.DB) *ReservationRepo {
	return &ReservationRepo{db: db}
}

// CreateWithTransition atomically moves the issue PUBLISHED -> SOLVING and
// inserts the reservation. The conditional update closes the race between
// two employees reserving the same issue: only one transition lands, the
// loser sees a state error and nothing is written. The unique index on
// issue_id backs this up even if the issue were ever republished.
func (r *ReservationRepo) CreateWithTransition(ctx context.Context, reservation *models.IssueReservation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := transitionStatus(tx, reservation.IssueID, models.StatusPublished, models.StatusSolving); err != nil {
			return err
		}
		if err := tx.Create(reservation).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return utils.InvalidState("Issue is already reserved.")
			}
			return err
		}
		return nil
	})
}

// FindByID loads a reservation by primary key.
func (r *ReservationRepo) FindByID(ctx context.Context, id uint) (*models.IssueReservation, error) {
	var reservation models.IssueReservation
	err := r.db.WithContext(ctx).First(&reservation, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFound("Issue reservation is not found.")
	}
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// FindByIssueID loads the reservation attached to an issue.
func (r *ReservationRepo) FindByIssueID(ctx context.Context, issueID uint) (*models.IssueReservation, error) {
	var reservation models.IssueReservation
	err := r.db.WithContext(ctx).Where("issue_id = ?", issueID).First(&reservation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFound("Reservation is not found.")
	}
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// List returns one page of reservations matching the holder filter.
func (r *ReservationRepo) List(ctx context.Context, filter HolderFilter, page PageRequest) ([]models.IssueReservation, error) {
	var reservations []models.IssueReservation
	err := r.db.WithContext(ctx).Model(&models.IssueReservation{}).
		Scopes(filter.scope("issue_reservations")).
		Order(creationSortExpr("issue_reservations", page)).
		Scopes(page.paginate).
		Find(&reservations).Error
	return reservations, err
}

// Count returns the number of reservations matching the holder filter.
func (r *ReservationRepo) Count(ctx context.Context, filter HolderFilter) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.IssueReservation{}).
		Scopes(filter.scope("issue_reservations")).
		Count(&count).Error
	return count, err
}
