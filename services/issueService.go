package services

import (
	"context"
	"log"

	"cityfix-be/models"
	"cityfix-be/repository"
	"cityfix-be/utils"
)

// IssueService owns the issue lifecycle: creation into MODERATION,
// moderation decisions, filtered reads and the like counter. State
// transitions happen through the store's compare-and-swap, so the guard
// check and the write can never be split by a concurrent request.
type IssueService struct {
	issues     IssueStore
	likes      LikeStore
	categories CategoryStore
	moderation ModerationStore
	storage    PhotoStorage
	notifier   Notifier
}

func NewIssueService(issues IssueStore, likes LikeStore, categories CategoryStore,
	moderation ModerationStore, storage PhotoStorage, notifier Notifier) *IssueService {
	return &IssueService{
		issues:     issues,
		likes:      likes,
		categories: categories,
		moderation: moderation,
		storage:    storage,
		notifier:   notifier,
	}
}

// CreateIssueInput carries the validated fields of a new issue report.
type CreateIssueInput struct {
	AuthorUID        string
	Title            string
	Description      string
	CategoryID       uint
	Longitude        float64
	Latitude         float64
	Photo            []byte
	PhotoContentType string
	PhotoName        string
}

// CreateIssue persists a new issue in MODERATION. The photo is mandatory
// and is uploaded before anything is written, so a storage failure leaves
// no issue behind.
func (s *IssueService) CreateIssue(ctx context.Context, input CreateIssueInput) (*models.Issue, error) {
	if len(input.Photo) == 0 {
		return nil, utils.Validation("Photo is required.")
	}

	category, err := s.categories.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}

	photoURL, err := s.storage.Upload(ctx, input.Photo, input.PhotoContentType, input.PhotoName)
	if err != nil {
		return nil, err
	}

	issue := &models.Issue{
		Status:      models.StatusModeration,
		Longitude:   input.Longitude,
		Latitude:    input.Latitude,
		Photo:       photoURL,
		Title:       input.Title,
		Description: input.Description,
		CategoryID:  category.ID,
		AuthorUID:   input.AuthorUID,
	}
	if err := s.issues.Create(ctx, issue); err != nil {
		if removeErr := s.storage.Remove(ctx, photoURL); removeErr != nil {
			log.Printf("Warning: failed to remove orphaned photo %s: %v", photoURL, removeErr)
		}
		return nil, err
	}
	issue.Category = *category

	return issue, nil
}

// ApproveIssue publishes an issue sitting in MODERATION.
func (s *IssueService) ApproveIssue(ctx context.Context, issueID uint) error {
	issue, err := s.issues.FindByID(ctx, issueID)
	if err != nil {
		return err
	}

	if err := s.issues.TransitionStatus(ctx, issueID, models.StatusModeration, models.StatusPublished); err != nil {
		return err
	}

	s.notifyStatusChange(ctx, issueID, issue.AuthorUID, models.StatusPublished)
	return nil
}

// DeclineIssue deletes an issue sitting in MODERATION and records the
// moderator's response.
func (s *IssueService) DeclineIssue(ctx context.Context, issueID uint, moderatorUID, comment string) error {
	issue, err := s.issues.FindByID(ctx, issueID)
	if err != nil {
		return err
	}

	response := &models.ModerationResponse{
		IssueID:      issueID,
		ModeratorUID: moderatorUID,
		Comment:      comment,
	}
	if err := s.moderation.CreateWithDecline(ctx, response); err != nil {
		return err
	}

	s.notifyStatusChange(ctx, issueID, issue.AuthorUID, models.StatusDeleted)
	return nil
}

// FindIssueByID loads one issue with its derived like count.
func (s *IssueService) FindIssueByID(ctx context.Context, issueID uint) (*models.Issue, error) {
	issue, err := s.issues.FindByID(ctx, issueID)
	if err != nil {
		return nil, err
	}

	count, err := s.likes.CountByIssueID(ctx, issueID)
	if err != nil {
		return nil, err
	}
	issue.LikeCount = count

	return issue, nil
}

// GetIssues returns one filtered page of issues with like counts.
func (s *IssueService) GetIssues(ctx context.Context, filter repository.IssueFilter, page repository.PageRequest) ([]models.Issue, error) {
	issues, err := s.issues.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	return s.hydrateLikeCounts(ctx, issues)
}

// GetIssuesCount returns the number of issues matching the filter.
func (s *IssueService) GetIssuesCount(ctx context.Context, filter repository.IssueFilter) (int64, error) {
	return s.issues.Count(ctx, filter)
}

// GetIssuesByHolder returns issues whose reservation matches the holder
// triple.
func (s *IssueService) GetIssuesByHolder(ctx context.Context, holder repository.HolderFilter, filter repository.IssueFilter, page repository.PageRequest) ([]models.Issue, error) {
	issues, err := s.issues.ListByHolder(ctx, holder, filter, page)
	if err != nil {
		return nil, err
	}
	return s.hydrateLikeCounts(ctx, issues)
}

// LikeIssue records a resident's like. Issues in MODERATION or DELETED
// cannot be liked, and a resident can like an issue at most once.
func (s *IssueService) LikeIssue(ctx context.Context, issueID uint, residentUID string) error {
	issue, err := s.issues.FindByID(ctx, issueID)
	if err != nil {
		return err
	}

	if issue.Status == models.StatusModeration || issue.Status == models.StatusDeleted {
		return utils.InvalidState("You can't like this issue.")
	}

	liked, err := s.likes.Exists(ctx, issueID, residentUID)
	if err != nil {
		return err
	}
	if liked {
		return utils.InvalidState("You have already liked this issue.")
	}

	// The unique (issue, resident) index still decides a concurrent race.
	return s.likes.Create(ctx, &models.Like{IssueID: issueID, ResidentUID: residentUID})
}

// DeleteLikeIssue removes a resident's like.
func (s *IssueService) DeleteLikeIssue(ctx context.Context, issueID uint, residentUID string) error {
	issue, err := s.issues.FindByID(ctx, issueID)
	if err != nil {
		return err
	}

	if issue.Status == models.StatusModeration || issue.Status == models.StatusDeleted {
		return utils.InvalidState("You can't unlike this issue.")
	}

	return s.likes.Delete(ctx, issueID, residentUID)
}

// GetLikeStatus reports whether the resident has liked the issue.
func (s *IssueService) GetLikeStatus(ctx context.Context, issueID uint, residentUID string) (bool, error) {
	exists, err := s.issues.Exists(ctx, issueID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, utils.NotFound("Issue is not found.")
	}

	return s.likes.Exists(ctx, issueID, residentUID)
}

// GetLikesCount returns the derived like count of an issue.
func (s *IssueService) GetLikesCount(ctx context.Context, issueID uint) (int64, error) {
	exists, err := s.issues.Exists(ctx, issueID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, utils.NotFound("Issue is not found.")
	}

	return s.likes.CountByIssueID(ctx, issueID)
}

// GetModerationResponse returns the decline response attached to an issue.
func (s *IssueService) GetModerationResponse(ctx context.Context, issueID uint) (*models.ModerationResponse, error) {
	exists, err := s.issues.Exists(ctx, issueID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, utils.NotFound("Issue is not found.")
	}

	return s.moderation.FindByIssueID(ctx, issueID)
}

func (s *IssueService) hydrateLikeCounts(ctx context.Context, issues []models.Issue) ([]models.Issue, error) {
	ids := make([]uint, 0, len(issues))
	for _, issue := range issues {
		ids = append(ids, issue.ID)
	}

	counts, err := s.likes.CountByIssueIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range issues {
		issues[i].LikeCount = counts[issues[i].ID]
	}
	return issues, nil
}

func (s *IssueService) notifyStatusChange(ctx context.Context, issueID uint, authorUID string, status models.IssueStatus) {
	notification := StatusNotification{IssueID: issueID, UserID: authorUID, Status: status}
	if err := s.notifier.PublishStatusChange(ctx, notification); err != nil {
		log.Printf("Warning: failed to publish status change for issue %d: %v", issueID, err)
	}
}
