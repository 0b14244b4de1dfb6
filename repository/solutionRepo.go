package repository

import (
	"context"
	"errors"

	"cityfix-be/models"
	"cityfix-be/utils"

	"gorm.io/gorm"
)

// SolutionRepo stores the resolution records closing SOLVING issues.
type SolutionRepo struct {
	db *gorm.DB
}

func NewSolutionRepo(db *gorm.DB) *SolutionRepo {
	return &SolutionRepo{db: db}
}

// CreateWithTransition atomically moves the issue SOLVING -> SOLVED and
// inserts the solution. Same compare-and-swap shape as reservations; the
// unique index on issue_id rules out a second solution.
func (r *SolutionRepo) CreateWithTransition(ctx context.Context, solution *models.IssueSolution) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := transitionStatus(tx, solution.IssueID, models.StatusSolving, models.StatusSolved); err != nil {
			return err
		}
		if err := tx.Create(solution).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return utils.InvalidState("Issue is already solved.")
			}
			return err
		}
		return nil
	})
}

// FindByID loads a solution by primary key.
func (r *SolutionRepo) FindByID(ctx context.Context, id uint) (*models.IssueSolution, error) {
	var solution models.IssueSolution
	err := r.db.WithContext(ctx).First(&solution, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFound("Issue solution is not found.")
	}
	if err != nil {
		return nil, err
	}
	return &solution, nil
}

// FindByIssueID loads the solution attached to an issue.
func (r *SolutionRepo) FindByIssueID(ctx context.Context, issueID uint) (*models.IssueSolution, error) {
	var solution models.IssueSolution
	err := r.db.WithContext(ctx).Where("issue_id = ?", issueID).First(&solution).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFound("Solution is not found.")
	}
	if err != nil {
		return nil, err
	}
	return &solution, nil
}

// List returns one page of solutions matching the holder filter.
func (r *SolutionRepo) List(ctx context.Context, filter HolderFilter, page PageRequest) ([]models.IssueSolution, error) {
	var solutions []models.IssueSolution
	err := r.db.WithContext(ctx).Model(&models.IssueSolution{}).
		Scopes(filter.scope("issue_solutions")).
		Order(creationSortExpr("issue_solutions", page)).
		Scopes(page.paginate).
		Find(&solutions).Error
	return solutions, err
}

// Count returns the number of solutions matching the holder filter.
func (r *SolutionRepo) Count(ctx context.Context, filter HolderFilter) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.IssueSolution{}).
		Scopes(filter.scope("issue_solutions")).
		Count(&count).Error
	return count, err
}

// ResolutionDurations returns, for every solution matching the filter, the
// elapsed seconds between the reservation that claimed the issue and the
// solution that closed it.
func (r *SolutionRepo) ResolutionDurations(ctx context.Context, filter HolderFilter) ([]float64, error) {
	var seconds []float64
	err := r.db.WithContext(ctx).Model(&models.IssueSolution{}).
		Scopes(filter.scope("issue_solutions")).
		Joins("JOIN issue_reservations ON issue_reservations.issue_id = issue_solutions.issue_id").
		Pluck("EXTRACT(EPOCH FROM (issue_solutions.created_at - issue_reservations.created_at))", &seconds).Error
	return seconds, err
}
