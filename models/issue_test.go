package models

import "testing"

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to IssueStatus }{
		{StatusModeration, StatusPublished},
		{StatusModeration, StatusDeleted},
		{StatusPublished, StatusSolving},
		{StatusSolving, StatusSolved},
	}
	for _, tt := range allowed {
		if !CanTransition(tt.from, tt.to) {
			t.Errorf("expected %s -> %s to be allowed", tt.from, tt.to)
		}
	}

	denied := []struct{ from, to IssueStatus }{
		{StatusModeration, StatusSolving},
		{StatusPublished, StatusDeleted},
		{StatusPublished, StatusSolved},
		{StatusSolving, StatusPublished},
		{StatusSolved, StatusPublished},
		{StatusSolved, StatusSolving},
		{StatusDeleted, StatusPublished},
		{StatusDeleted, StatusModeration},
	}
	for _, tt := range denied {
		if CanTransition(tt.from, tt.to) {
			t.Errorf("expected %s -> %s to be denied", tt.from, tt.to)
		}
	}
}

func TestParseIssueStatus(t *testing.T) {
	if status, ok := ParseIssueStatus("PUBLISHED"); !ok || status != StatusPublished {
		t.Errorf("ParseIssueStatus(PUBLISHED) = %v, %v", status, ok)
	}
	if _, ok := ParseIssueStatus("published"); ok {
		t.Error("statuses are case sensitive")
	}
	if _, ok := ParseIssueStatus("ARCHIVED"); ok {
		t.Error("unknown status must not parse")
	}
}
