package controllers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cityfix-be/middlewares"
	"cityfix-be/models"
	"cityfix-be/repository"
	"cityfix-be/services"
	"cityfix-be/utils"
)

type IssueController struct {
	issues *services.IssueService
}

func NewIssueController(issues *services.IssueService) *IssueController {
	return &IssueController{issues: issues}
}

// CreateIssue handles the creation of a new issue report
func (ctrl *IssueController) CreateIssue(c *gin.Context) {
	ident, ok := middlewares.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	title := c.PostForm("title")
	description := c.PostForm("description")
	if title == "" || len(title) > 64 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title must be between 1 and 64 characters"})
		return
	}
	if description == "" || len(description) > 1000 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Description must be between 1 and 1000 characters"})
		return
	}

	categoryID, err := strconv.ParseUint(c.PostForm("categoryId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
		return
	}
	longitude, err := strconv.ParseFloat(c.PostForm("longitude"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid longitude"})
		return
	}
	latitude, err := strconv.ParseFloat(c.PostForm("latitude"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid latitude"})
		return
	}

	photo, contentType, photoName, err := readPhoto(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	issue, err := ctrl.issues.CreateIssue(c.Request.Context(), services.CreateIssueInput{
		AuthorUID:        ident.UID,
		Title:            title,
		Description:      description,
		CategoryID:       uint(categoryID),
		Longitude:        longitude,
		Latitude:         latitude,
		Photo:            photo,
		PhotoContentType: contentType,
		PhotoName:        photoName,
	})
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, issueView(*issue))
}

// GetIssues handles retrieving a filtered page of issues
func (ctrl *IssueController) GetIssues(c *gin.Context) {
	ident, _ := middlewares.CurrentIdentity(c)

	filter, err := parseIssueFilter(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	filter = restrictVisibility(filter, ident)

	issues, err := ctrl.issues.GetIssues(c.Request.Context(), filter, parsePageRequest(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, issueViews(issues))
}

// GetIssuesCount handles counting issues matching the filter
func (ctrl *IssueController) GetIssuesCount(c *gin.Context) {
	ident, _ := middlewares.CurrentIdentity(c)

	filter, err := parseIssueFilter(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	filter = restrictVisibility(filter, ident)

	count, err := ctrl.issues.GetIssuesCount(c.Request.Context(), filter)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// GetIssuesInRadius handles retrieving issues within a distance of a point
func (ctrl *IssueController) GetIssuesInRadius(c *gin.Context) {
	ident, _ := middlewares.CurrentIdentity(c)

	filter, err := parseIssueFilter(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if filter.Center == nil {
		utils.HandleError(c, utils.Validation("Radius search requires longitude, latitude and distanceM."))
		return
	}
	filter = restrictVisibility(filter, ident)

	issues, err := ctrl.issues.GetIssues(c.Request.Context(), filter, parsePageRequest(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, issueViews(issues))
}

// GetIssuesInSquare handles retrieving issues within a bounding box
func (ctrl *IssueController) GetIssuesInSquare(c *gin.Context) {
	ident, _ := middlewares.CurrentIdentity(c)

	filter, err := parseIssueFilter(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if filter.Bounds == nil {
		utils.HandleError(c, utils.Validation("Bounding box search requires all four coordinates."))
		return
	}
	filter = restrictVisibility(filter, ident)

	issues, err := ctrl.issues.GetIssues(c.Request.Context(), filter, parsePageRequest(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, issueViews(issues))
}

// GetIssuesByHolder handles retrieving issues through their reservation
// snapshot. Staff may only query their own organizational scope.
func (ctrl *IssueController) GetIssuesByHolder(c *gin.Context) {
	ident, _ := middlewares.CurrentIdentity(c)

	holder := repository.HolderFilter{
		ServiceUID:    c.Query("service"),
		DepartmentUID: c.Query("department"),
		EmployeeUID:   c.Query("employee"),
	}
	if holder.ServiceUID == "" && holder.DepartmentUID == "" && holder.EmployeeUID == "" {
		utils.HandleError(c, utils.Validation("Holder query requires a service, department or employee uid."))
		return
	}

	switch ident.Role {
	case models.RoleService:
		if holder.ServiceUID != ident.UID {
			utils.HandleError(c, utils.Forbidden("You can only query your own service."))
			return
		}
	case models.RoleEmployee:
		ownEmployee := holder.EmployeeUID == ident.UID
		ownDepartment := holder.DepartmentUID != "" && holder.DepartmentUID == ident.DepartmentUID
		if !ownEmployee && !ownDepartment {
			utils.HandleError(c, utils.Forbidden("You can only query your own reservations."))
			return
		}
	}

	filter, err := parseIssueFilter(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	issues, err := ctrl.issues.GetIssuesByHolder(c.Request.Context(), holder, filter, parsePageRequest(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, issueViews(issues))
}

// GetIssueByID handles retrieving a single issue
func (ctrl *IssueController) GetIssueByID(c *gin.Context) {
	ident, _ := middlewares.CurrentIdentity(c)

	issueID, err := parseIDParam(c, "issue")
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	issue, err := ctrl.issues.FindIssueByID(c.Request.Context(), issueID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if !canSeeIssue(*issue, ident) {
		utils.HandleError(c, utils.NotFound("Issue is not found."))
		return
	}

	c.JSON(http.StatusOK, issueView(*issue))
}

// GetMyIssues handles retrieving the caller's own issues in any status
func (ctrl *IssueController) GetMyIssues(c *gin.Context) {
	ident, _ := middlewares.CurrentIdentity(c)

	filter, err := parseIssueFilter(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	filter.AuthorUID = ident.UID

	issues, err := ctrl.issues.GetIssues(c.Request.Context(), filter, parsePageRequest(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, issueViews(issues))
}

// GetResidentIssuesCount handles counting a resident's issues
func (ctrl *IssueController) GetResidentIssuesCount(c *gin.Context) {
	ident, _ := middlewares.CurrentIdentity(c)

	filter := repository.IssueFilter{AuthorUID: c.Param("uid")}
	filter = restrictVisibility(filter, ident)

	count, err := ctrl.issues.GetIssuesCount(c.Request.Context(), filter)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// GetIssueLikesCount handles retrieving an issue's like count
func (ctrl *IssueController) GetIssueLikesCount(c *gin.Context) {
	issueID, err := parseIDParam(c, "issue")
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	count, err := ctrl.issues.GetLikesCount(c.Request.Context(), issueID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// GetLikeStatus handles checking whether the caller liked an issue
func (ctrl *IssueController) GetLikeStatus(c *gin.Context) {
	ident, _ := middlewares.CurrentIdentity(c)

	issueID, err := parseIDParam(c, "issue")
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	liked, err := ctrl.issues.GetLikeStatus(c.Request.Context(), issueID, ident.UID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

// LikeIssue handles liking an issue
func (ctrl *IssueController) LikeIssue(c *gin.Context) {
	ident, _ := middlewares.CurrentIdentity(c)

	issueID, err := parseIDParam(c, "issue")
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if err := ctrl.issues.LikeIssue(c.Request.Context(), issueID, ident.UID); err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Issue liked successfully"})
}

// UnlikeIssue handles removing the caller's like from an issue
func (ctrl *IssueController) UnlikeIssue(c *gin.Context) {
	ident, _ := middlewares.CurrentIdentity(c)

	issueID, err := parseIDParam(c, "issue")
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if err := ctrl.issues.DeleteLikeIssue(c.Request.Context(), issueID, ident.UID); err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Like removed successfully"})
}

// GetModerationResponse handles retrieving the decline response of an
// issue, visible to the issue's author and to moderation staff
func (ctrl *IssueController) GetModerationResponse(c *gin.Context) {
	ident, _ := middlewares.CurrentIdentity(c)

	issueID, err := parseIDParam(c, "issue")
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	issue, err := ctrl.issues.FindIssueByID(c.Request.Context(), issueID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if !ident.IsModerator() && issue.AuthorUID != ident.UID {
		utils.HandleError(c, utils.Forbidden("You cannot view this moderation response."))
		return
	}

	response, err := ctrl.issues.GetModerationResponse(c.Request.Context(), issueID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"issueId":   response.IssueID,
		"comment":   response.Comment,
		"createdAt": response.CreatedAt,
	})
}

func canSeeIssue(issue models.Issue, ident models.Identity) bool {
	if ident.IsModerator() || issue.AuthorUID == ident.UID {
		return true
	}
	for _, status := range models.PublicStatuses() {
		if issue.Status == status {
			return true
		}
	}
	return false
}

func readPhoto(c *gin.Context) ([]byte, string, string, error) {
	header, err := c.FormFile("photo")
	if err != nil {
		return nil, "", "", utils.Validation("Photo is required.")
	}

	file, err := header.Open()
	if err != nil {
		return nil, "", "", utils.Validation("Photo could not be read.")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", "", utils.Validation("Photo could not be read.")
	}

	return data, header.Header.Get("Content-Type"), header.Filename, nil
}
