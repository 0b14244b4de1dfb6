package repository

import "testing"

func TestSortExpr(t *testing.T) {
	tests := []struct {
		name string
		page PageRequest
		want string
	}{
		{"default", PageRequest{}, "issues.created_at DESC"},
		{"creation date ascending", PageRequest{OrderBy: OrderByCreationDate, Order: "ASC"}, "issues.created_at ASC"},
		{"lowercase direction", PageRequest{OrderBy: OrderByTitle, Order: "asc"}, "issues.title ASC"},
		{"status", PageRequest{OrderBy: OrderByStatus}, "issues.status DESC"},
		{"category", PageRequest{OrderBy: OrderByCategory}, "issues.category_id DESC"},
		{"likes", PageRequest{OrderBy: OrderByLikes}, likeCountExpr + " DESC"},
		{"unknown key falls back", PageRequest{OrderBy: "authorUid; DROP TABLE issues"}, "issues.created_at DESC"},
		{"unknown direction falls back", PageRequest{Order: "sideways"}, "issues.created_at DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.page.SortExpr(); got != tt.want {
				t.Errorf("SortExpr() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPageRequestLimit(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{0, 20},
		{-1, 20},
		{1, 1},
		{50, 50},
		{100, 100},
		{101, 20},
	}

	for _, tt := range tests {
		if got := (PageRequest{Size: tt.size}).Limit(); got != tt.want {
			t.Errorf("Limit() with size %d = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestPageRequestOffset(t *testing.T) {
	if got := (PageRequest{Page: 0, Size: 20}).Offset(); got != 0 {
		t.Errorf("page 0 offset = %d, want 0", got)
	}
	if got := (PageRequest{Page: 3, Size: 10}).Offset(); got != 30 {
		t.Errorf("page 3 offset = %d, want 30", got)
	}
	if got := (PageRequest{Page: -2, Size: 10}).Offset(); got != 0 {
		t.Errorf("negative page offset = %d, want 0", got)
	}
}

func TestCreationSortExpr(t *testing.T) {
	page := PageRequest{Order: "ASC"}
	if got := creationSortExpr("issue_reservations", page); got != "issue_reservations.created_at ASC" {
		t.Errorf("creationSortExpr() = %q", got)
	}
	if got := creationSortExpr("issue_solutions", PageRequest{}); got != "issue_solutions.created_at DESC" {
		t.Errorf("creationSortExpr() = %q", got)
	}
}
