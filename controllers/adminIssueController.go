package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cityfix-be/middlewares"
	"cityfix-be/services"
	"cityfix-be/utils"
)

// AdminIssueController serves the moderation surface. Its routes are
// gated to moderation staff, so listings skip the visibility overlay.
type AdminIssueController struct {
	issues    *services.IssueService
	analytics *services.AnalyticsService
}

func NewAdminIssueController(issues *services.IssueService, analytics *services.AnalyticsService) *AdminIssueController {
	return &AdminIssueController{issues: issues, analytics: analytics}
}

// GetIssues handles retrieving issues in any status
func (ctrl *AdminIssueController) GetIssues(c *gin.Context) {
	filter, err := parseIssueFilter(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	issues, err := ctrl.issues.GetIssues(c.Request.Context(), filter, parsePageRequest(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, issueViews(issues))
}

// GetIssueByID handles retrieving one issue in any status
func (ctrl *AdminIssueController) GetIssueByID(c *gin.Context) {
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

	c.JSON(http.StatusOK, issueView(*issue))
}

// ApproveIssue handles publishing an issue under moderation
func (ctrl *AdminIssueController) ApproveIssue(c *gin.Context) {
	issueID, err := parseIDParam(c, "issue")
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if err := ctrl.issues.ApproveIssue(c.Request.Context(), issueID); err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Issue approved successfully"})
}

// DeclineIssue handles rejecting an issue under moderation
func (ctrl *AdminIssueController) DeclineIssue(c *gin.Context) {
	ident, _ := middlewares.CurrentIdentity(c)

	issueID, err := parseIDParam(c, "issue")
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	var input struct {
		Comment string `json:"comment" binding:"required,max=1000"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctrl.issues.DeclineIssue(c.Request.Context(), issueID, ident.UID, input.Comment); err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Issue declined successfully"})
}

// GetIssueAnalytics handles the aggregated dashboard snapshot
func (ctrl *AdminIssueController) GetIssueAnalytics(c *gin.Context) {
	analytics, err := ctrl.analytics.GetIssueAnalytics(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, analytics)
}
