package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"cityfix-be/models"
	"cityfix-be/repository"
)

func testContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestParseIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	id, err := parseIDParam(c, "issue")
	if err != nil || id != 42 {
		t.Errorf("parseIDParam() = %d, %v", id, err)
	}

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	if _, err := parseIDParam(c, "category"); err == nil || err.Error() != "Invalid category id." {
		t.Errorf("expected the entity name in the message, got %v", err)
	}
}

func TestParsePageRequestDefaults(t *testing.T) {
	page := parsePageRequest(testContext(t, ""))
	if page.Page != 0 || page.Size != 20 {
		t.Errorf("unexpected defaults: %+v", page)
	}
	if page.SortExpr() != "issues.created_at DESC" {
		t.Errorf("unexpected default sort: %q", page.SortExpr())
	}
}

func TestParseIssueFilterStatuses(t *testing.T) {
	filter, err := parseIssueFilter(testContext(t, "statuses=PUBLISHED&statuses=SOLVED"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(filter.Statuses) != 2 {
		t.Fatalf("expected 2 statuses, got %v", filter.Statuses)
	}

	if _, err := parseIssueFilter(testContext(t, "statuses=BOGUS")); err == nil {
		t.Error("expected an error for an unknown status")
	}
}

func TestParseIssueFilterDateWidening(t *testing.T) {
	filter, err := parseIssueFilter(testContext(t, "from=2026-01-01&to=2026-01-05"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filter.From == nil || filter.To == nil {
		t.Fatal("expected both bounds set")
	}
	if filter.To.Day() != 5 || filter.To.Hour() != 23 {
		t.Errorf("to bound not widened to end of day: %v", filter.To)
	}
}

func TestParseIssueFilterRadius(t *testing.T) {
	filter, err := parseIssueFilter(testContext(t, "longitude=30.5&latitude=50.4&distanceM=1000"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filter.Center == nil {
		t.Fatal("expected the center point to be set")
	}
	if filter.Center.Longitude != 30.5 || filter.Center.Latitude != 50.4 {
		t.Errorf("unexpected center: %+v", filter.Center)
	}
	if filter.DistanceM != 1000 {
		t.Errorf("expected distance 1000, got %f", filter.DistanceM)
	}
}

func TestParseIssueFilterGeoExclusive(t *testing.T) {
	_, err := parseIssueFilter(testContext(t,
		"longitude=30.5&latitude=50.4&distanceM=1000&min_longitude=30&max_longitude=31&min_latitude=50&max_latitude=51"))
	if err == nil {
		t.Error("expected radius and bounding box to be mutually exclusive")
	}
}

func TestParseIssueFilterPartialRadius(t *testing.T) {
	if _, err := parseIssueFilter(testContext(t, "longitude=30.5&distanceM=1000")); err == nil {
		t.Error("expected an error for a partial radius query")
	}
}

func TestParseIssueFilterPartialBounds(t *testing.T) {
	if _, err := parseIssueFilter(testContext(t, "min_longitude=30&max_longitude=31")); err == nil {
		t.Error("expected an error for a partial bounding box")
	}
}

func TestRestrictVisibilityModeratorUnrestricted(t *testing.T) {
	filter := repository.IssueFilter{Statuses: []models.IssueStatus{models.StatusModeration}}
	ident := models.Identity{UID: "mod-1", Role: models.RoleModerator}

	got := restrictVisibility(filter, ident)
	if len(got.Statuses) != 1 || got.Statuses[0] != models.StatusModeration {
		t.Errorf("moderator filter must be untouched, got %v", got.Statuses)
	}
}

func TestRestrictVisibilityOwnIssues(t *testing.T) {
	filter := repository.IssueFilter{
		AuthorUID: "resident-1",
		Statuses:  []models.IssueStatus{models.StatusModeration},
	}
	ident := models.Identity{UID: "resident-1", Role: models.RoleResident}

	got := restrictVisibility(filter, ident)
	if len(got.Statuses) != 1 || got.Statuses[0] != models.StatusModeration {
		t.Errorf("author must see own issues in any status, got %v", got.Statuses)
	}
}

func TestRestrictVisibilityIntersectsStatuses(t *testing.T) {
	filter := repository.IssueFilter{
		Statuses: []models.IssueStatus{models.StatusModeration, models.StatusPublished},
	}
	ident := models.Identity{UID: "resident-1", Role: models.RoleResident}

	got := restrictVisibility(filter, ident)
	if len(got.Statuses) != 1 || got.Statuses[0] != models.StatusPublished {
		t.Errorf("expected only PUBLISHED to survive, got %v", got.Statuses)
	}
}

func TestRestrictVisibilityEmptyRequest(t *testing.T) {
	ident := models.Identity{UID: "resident-1", Role: models.RoleResident}

	got := restrictVisibility(repository.IssueFilter{}, ident)
	if len(got.Statuses) != len(models.PublicStatuses()) {
		t.Errorf("expected the full public set, got %v", got.Statuses)
	}
}

func TestRestrictVisibilityHiddenOnlyMatchesNothing(t *testing.T) {
	filter := repository.IssueFilter{
		Statuses: []models.IssueStatus{models.StatusModeration, models.StatusDeleted},
	}
	ident := models.Identity{UID: "resident-1", Role: models.RoleResident}

	got := restrictVisibility(filter, ident)
	if !got.MatchNone {
		t.Error("a request for only hidden statuses must match nothing")
	}
	if len(got.Statuses) != 0 {
		t.Errorf("no substitute statuses expected, got %v", got.Statuses)
	}
}

func TestRestrictVisibilityOtherAuthor(t *testing.T) {
	filter := repository.IssueFilter{
		AuthorUID: "resident-2",
		Statuses:  []models.IssueStatus{models.StatusModeration},
	}
	ident := models.Identity{UID: "resident-1", Role: models.RoleResident}

	got := restrictVisibility(filter, ident)
	if !got.MatchNone {
		t.Error("another author's moderation queue must not be visible")
	}
}
