package repository

import (
	"fmt"
	"strings"
	"time"

	"cityfix-be/models"

	"gorm.io/gorm"
)

// GeoPoint is a WGS84 coordinate pair.
type GeoPoint struct {
	Longitude float64
	Latitude  float64
}

// GeoBounds is a rectangular region in WGS84 coordinates.
type GeoBounds struct {
	MinLongitude float64
	MinLatitude  float64
	MaxLongitude float64
	MaxLatitude  float64
}

// IssueFilter collects the optional dimensions of an issue query. A zero
// dimension imposes no constraint; set dimensions are AND-ed together,
// with set membership inside the statuses/categories dimensions. Center
// and Bounds are mutually exclusive; controllers validate that before the
// filter reaches the repository.
type IssueFilter struct {
	Statuses   []models.IssueStatus
	AuthorUID  string
	Categories []uint
	From       *time.Time
	To         *time.Time
	Center     *GeoPoint
	DistanceM  float64
	Bounds     *GeoBounds

	// MatchNone short-circuits the query to an empty result. An empty
	// Statuses slice means "no constraint", so a caller whose allowed
	// status set intersects to nothing needs this sentinel instead.
	MatchNone bool
}

func (f IssueFilter) scope(db *gorm.DB) *gorm.DB {
	if f.MatchNone {
		return db.Where("1 = 0")
	}
	if len(f.Statuses) > 0 {
		db = db.Where("issues.status IN ?", f.Statuses)
	}
	if f.AuthorUID != "" {
		db = db.Where("issues.author_uid = ?", f.AuthorUID)
	}
	if len(f.Categories) > 0 {
		db = db.Where("issues.category_id IN ?", f.Categories)
	}
	if f.From != nil {
		db = db.Where("issues.created_at >= ?", *f.From)
	}
	if f.To != nil {
		db = db.Where("issues.created_at <= ?", *f.To)
	}
	if f.Center != nil {
		db = db.Where(
			"ST_DWithin(ST_MakePoint(issues.longitude, issues.latitude)::geography, ST_MakePoint(?, ?)::geography, ?)",
			f.Center.Longitude, f.Center.Latitude, f.DistanceM,
		)
	}
	if f.Bounds != nil {
		db = db.Where(
			"issues.longitude BETWEEN ? AND ? AND issues.latitude BETWEEN ? AND ?",
			f.Bounds.MinLongitude, f.Bounds.MaxLongitude, f.Bounds.MinLatitude, f.Bounds.MaxLatitude,
		)
	}
	return db
}

// HolderFilter collects the optional dimensions of reservation/solution
// queries: the organizational holder triple, a date range and the issue
// category set. Unset dimensions match everything.
type HolderFilter struct {
	ServiceUID    string
	DepartmentUID string
	EmployeeUID   string
	Categories    []uint
	From          *time.Time
	To            *time.Time
}

// scope builds the predicate against the given table ("issue_reservations"
// or "issue_solutions"). The category dimension joins through the issue.
func (f HolderFilter) scope(table string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.ServiceUID != "" {
			db = db.Where(table+".service_uid = ?", f.ServiceUID)
		}
		if f.DepartmentUID != "" {
			db = db.Where(table+".department_uid = ?", f.DepartmentUID)
		}
		if f.EmployeeUID != "" {
			db = db.Where(table+".employee_uid = ?", f.EmployeeUID)
		}
		if f.From != nil {
			db = db.Where(table+".created_at >= ?", *f.From)
		}
		if f.To != nil {
			db = db.Where(table+".created_at <= ?", *f.To)
		}
		if len(f.Categories) > 0 {
			db = db.Joins("JOIN issues ON issues.id = "+table+".issue_id").
				Where("issues.category_id IN ?", f.Categories)
		}
		return db
	}
}

// Sort keys accepted by list endpoints.
const (
	OrderByCreationDate = "creation_date"
	OrderByStatus       = "status"
	OrderByTitle        = "title"
	OrderByCategory     = "category"
	OrderByLikes        = "likes"
)

// likeCountExpr derives the like count at query time; there is no stored
// counter column to drift out of sync.
const likeCountExpr = "(SELECT COUNT(*) FROM likes WHERE likes.issue_id = issues.id)"

var issueSortColumns = map[string]string{
	OrderByCreationDate: "issues.created_at",
	OrderByStatus:       "issues.status",
	OrderByTitle:        "issues.title",
	OrderByCategory:     "issues.category_id",
	OrderByLikes:        likeCountExpr,
}

// PageRequest is page/size pagination with an allow-listed sort key.
type PageRequest struct {
	Page    int
	Size    int
	OrderBy string
	Order   string
}

// SortExpr resolves the ORDER BY clause for issue queries, defaulting to
// newest-first. Unknown sort keys fall back to the default rather than
// reaching the SQL layer.
func (p PageRequest) SortExpr() string {
	column, ok := issueSortColumns[p.OrderBy]
	if !ok {
		column = issueSortColumns[OrderByCreationDate]
	}

	direction := "DESC"
	if strings.EqualFold(p.Order, "ASC") {
		direction = "ASC"
	}

	return fmt.Sprintf("%s %s", column, direction)
}

// Limit returns the page size bounded to something sane.
func (p PageRequest) Limit() int {
	if p.Size < 1 || p.Size > 100 {
		return 20
	}
	return p.Size
}

// Offset returns the row offset for the zero-based page number.
func (p PageRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return p.Page * p.Limit()
}

func (p PageRequest) paginate(db *gorm.DB) *gorm.DB {
	return db.Offset(p.Offset()).Limit(p.Limit())
}

// creationSortExpr is the reservation/solution variant: only creation date
// ordering is meaningful there.
func creationSortExpr(table string, p PageRequest) string {
	direction := "DESC"
	if strings.EqualFold(p.Order, "ASC") {
		direction = "ASC"
	}
	return fmt.Sprintf("%s.created_at %s", table, direction)
}
