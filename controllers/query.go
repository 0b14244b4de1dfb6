package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"cityfix-be/models"
	"cityfix-be/repository"
	"cityfix-be/utils"
)

const dateLayout = "2006-01-02"

func parseIDParam(c *gin.Context, entity string) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, utils.Validation("Invalid %s id.", entity)
	}
	return uint(id), nil
}

// parsePageRequest reads pagination and ordering query parameters.
// Unknown values fall back to the defaults, matching the repository's
// sort allow-list.
func parsePageRequest(c *gin.Context) repository.PageRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	return repository.PageRequest{
		Page:    page,
		Size:    size,
		OrderBy: c.DefaultQuery("order_by", repository.OrderByCreationDate),
		Order:   c.DefaultQuery("order", "DESC"),
	}
}

// parseIssueFilter reads the issue filter query parameters. Radius and
// bounding box search are mutually exclusive.
func parseIssueFilter(c *gin.Context) (repository.IssueFilter, error) {
	filter := repository.IssueFilter{
		AuthorUID: c.Query("author"),
	}

	for _, raw := range c.QueryArray("statuses") {
		status, ok := models.ParseIssueStatus(raw)
		if !ok {
			return filter, utils.Validation("Unknown issue status: %s.", raw)
		}
		filter.Statuses = append(filter.Statuses, status)
	}

	for _, raw := range c.QueryArray("categories") {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return filter, utils.Validation("Invalid category id: %s.", raw)
		}
		filter.Categories = append(filter.Categories, uint(id))
	}

	from, to, err := parseDateRange(c)
	if err != nil {
		return filter, err
	}
	filter.From = from
	filter.To = to

	center, distance, err := parseRadius(c)
	if err != nil {
		return filter, err
	}
	bounds, err := parseBounds(c)
	if err != nil {
		return filter, err
	}
	if center != nil && bounds != nil {
		return filter, utils.Validation("Radius and bounding box filters cannot be combined.")
	}
	filter.Center = center
	filter.DistanceM = distance
	filter.Bounds = bounds

	return filter, nil
}

// parseHolderFilter reads the organizational filter used by reservation
// and solution listings.
func parseHolderFilter(c *gin.Context) (repository.HolderFilter, error) {
	filter := repository.HolderFilter{
		ServiceUID:    c.Query("service"),
		DepartmentUID: c.Query("department"),
		EmployeeUID:   c.Query("employee"),
	}

	for _, raw := range c.QueryArray("categories") {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return filter, utils.Validation("Invalid category id: %s.", raw)
		}
		filter.Categories = append(filter.Categories, uint(id))
	}

	from, to, err := parseDateRange(c)
	if err != nil {
		return filter, err
	}
	filter.From = from
	filter.To = to

	return filter, nil
}

// parseDateRange reads from/to as calendar dates. The upper bound is
// widened to the end of its day so "to=2026-01-05" includes that day.
func parseDateRange(c *gin.Context) (*time.Time, *time.Time, error) {
	var from, to *time.Time

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, nil, utils.Validation("Invalid from date: %s.", raw)
		}
		from = &parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, nil, utils.Validation("Invalid to date: %s.", raw)
		}
		endOfDay := parsed.AddDate(0, 0, 1).Add(-time.Nanosecond)
		to = &endOfDay
	}
	return from, to, nil
}

func parseRadius(c *gin.Context) (*repository.GeoPoint, float64, error) {
	rawDistance := c.Query("distanceM")
	rawLon := c.Query("longitude")
	rawLat := c.Query("latitude")
	if rawDistance == "" && rawLon == "" && rawLat == "" {
		return nil, 0, nil
	}
	if rawDistance == "" || rawLon == "" || rawLat == "" {
		return nil, 0, utils.Validation("Radius search requires longitude, latitude and distanceM.")
	}

	lon, err := strconv.ParseFloat(rawLon, 64)
	if err != nil {
		return nil, 0, utils.Validation("Invalid longitude: %s.", rawLon)
	}
	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return nil, 0, utils.Validation("Invalid latitude: %s.", rawLat)
	}
	distance, err := strconv.ParseFloat(rawDistance, 64)
	if err != nil || distance <= 0 {
		return nil, 0, utils.Validation("Invalid distanceM: %s.", rawDistance)
	}

	return &repository.GeoPoint{Longitude: lon, Latitude: lat}, distance, nil
}

func parseBounds(c *gin.Context) (*repository.GeoBounds, error) {
	keys := []string{"min_longitude", "max_longitude", "min_latitude", "max_latitude"}
	values := make([]float64, len(keys))

	present := 0
	for i, key := range keys {
		raw := c.Query(key)
		if raw == "" {
			continue
		}
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, utils.Validation("Invalid %s: %s.", key, raw)
		}
		values[i] = parsed
		present++
	}
	if present == 0 {
		return nil, nil
	}
	if present != len(keys) {
		return nil, utils.Validation("Bounding box search requires all four coordinates.")
	}

	return &repository.GeoBounds{
		MinLongitude: values[0],
		MaxLongitude: values[1],
		MinLatitude:  values[2],
		MaxLatitude:  values[3],
	}, nil
}

// restrictVisibility narrows the status filter for non-moderator
// callers. Residents see the public statuses of others plus every
// status of their own issues.
func restrictVisibility(filter repository.IssueFilter, ident models.Identity) repository.IssueFilter {
	if ident.IsModerator() {
		return filter
	}
	if filter.AuthorUID != "" && filter.AuthorUID == ident.UID {
		return filter
	}

	allowed := models.PublicStatuses()
	if len(filter.Statuses) == 0 {
		filter.Statuses = allowed
		return filter
	}

	visible := make([]models.IssueStatus, 0, len(filter.Statuses))
	for _, status := range filter.Statuses {
		for _, public := range allowed {
			if status == public {
				visible = append(visible, status)
				break
			}
		}
	}
	if len(visible) == 0 {
		// The caller asked only for statuses they may not see; answer
		// with an empty page, not with statuses they didn't request.
		filter.Statuses = nil
		filter.MatchNone = true
		return filter
	}
	filter.Statuses = visible
	return filter
}
