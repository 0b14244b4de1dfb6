package services

import (
	"context"
	"time"

	"github.com/montanaflynn/stats"

	"cityfix-be/models"
	"cityfix-be/repository"
)

// AnalyticsService aggregates reporting numbers for the admin dashboard.
type AnalyticsService struct {
	issues    IssueStore
	likes     LikeStore
	solutions SolutionStore
}

func NewAnalyticsService(issues IssueStore, likes LikeStore, solutions SolutionStore) *AnalyticsService {
	return &AnalyticsService{issues: issues, likes: likes, solutions: solutions}
}

// IssueAnalytics is the aggregated dashboard snapshot.
type IssueAnalytics struct {
	TotalIssues       int64                       `json:"totalIssues"`
	OpenIssues        int64                       `json:"openIssues"`
	ReportedLastWeek  int64                       `json:"reportedLastWeek"`
	ByCategory        []repository.CategoryCount  `json:"byCategory"`
	TopLiked          []repository.IssueLikeTotal `json:"topLiked"`
	AvgResolutionSecs float64                     `json:"avgResolutionSecs"`
	MedianResolution  float64                     `json:"medianResolutionSecs"`
}

const topLikedLimit = 5

// GetIssueAnalytics assembles the dashboard snapshot. Open issues are
// those still in PUBLISHED or SOLVING.
func (s *AnalyticsService) GetIssueAnalytics(ctx context.Context) (*IssueAnalytics, error) {
	analytics := &IssueAnalytics{}

	total, err := s.issues.Count(ctx, repository.IssueFilter{})
	if err != nil {
		return nil, err
	}
	analytics.TotalIssues = total

	open, err := s.issues.Count(ctx, repository.IssueFilter{
		Statuses: []models.IssueStatus{models.StatusPublished, models.StatusSolving},
	})
	if err != nil {
		return nil, err
	}
	analytics.OpenIssues = open

	weekAgo := time.Now().AddDate(0, 0, -7)
	lastWeek, err := s.issues.Count(ctx, repository.IssueFilter{From: &weekAgo})
	if err != nil {
		return nil, err
	}
	analytics.ReportedLastWeek = lastWeek

	byCategory, err := s.issues.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}
	analytics.ByCategory = byCategory

	topLiked, err := s.likes.TopLiked(ctx, topLikedLimit)
	if err != nil {
		return nil, err
	}
	analytics.TopLiked = topLiked

	durations, err := s.solutions.ResolutionDurations(ctx, repository.HolderFilter{})
	if err != nil {
		return nil, err
	}
	if len(durations) > 0 {
		mean, err := stats.Mean(durations)
		if err != nil {
			return nil, err
		}
		median, err := stats.Median(durations)
		if err != nil {
			return nil, err
		}
		analytics.AvgResolutionSecs = mean
		analytics.MedianResolution = median
	}

	return analytics, nil
}
