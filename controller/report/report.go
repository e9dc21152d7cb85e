package report

import (
	"errors"
	"strconv"
	"time"

	"lostandfound/dto"
	"lostandfound/livefeed"
	"lostandfound/logger"
	"lostandfound/middleware"
	"lostandfound/model"
	"lostandfound/store"

	"github.com/gin-gonic/gin"
)

func ReportController(router *gin.Engine, reports store.ReportStore, feed *livefeed.Publisher, log *logger.Logger) {
	routes := router.Group("/report")
	{
		routes.POST("/create", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
			CreateReport(c, reports, feed, log)
		})
		routes.GET("/id/:rid", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
			GetReport(c, reports)
		})
		routes.GET("/search", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
			SearchReports(c, reports)
		})
		routes.GET("/user/:uid", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
			ListUserReports(c, reports)
		})
		routes.GET("/stats", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
			ReportStats(c, reports)
		})
	}
}

func CreateReport(c *gin.Context, reports store.ReportStore, feed *livefeed.Publisher, log *logger.Logger) {
	var req dto.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	reportID := model.NormalizeReportID(req.ReportID)
	if reportID == "" {
		reportID = model.GenerateReportID()
	}

	urgency := req.Urgency
	if urgency == "" {
		urgency = model.DetermineUrgency(req.AllData)
	}

	r := &model.Report{
		ReportID:   reportID,
		ReportType: req.ReportType,
		AllData:    req.AllData,
		Urgency:    urgency,
		Location:   req.Location,
		PhotoID:    req.PhotoID,
		UserID:     req.UserID,
		Username:   req.Username,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
	}

	stored, err := reports.Insert(c.Request.Context(), r)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateReportID):
			c.JSON(409, gin.H{"error": "Report ID already exists", "report_id": reportID})
		case errors.Is(err, store.ErrConstraint):
			c.JSON(400, gin.H{"error": "Missing required field", "details": err.Error()})
		default:
			c.JSON(500, gin.H{"error": "Failed to save report", "details": err.Error()})
		}
		return
	}

	if err := feed.Publish(c.Request.Context(), stored); err != nil {
		// the report is saved; the dashboard catches up later
		log.Warn("live feed publish failed", "report_id", stored.ReportID, "error", err)
	}

	c.JSON(201, gin.H{"message": "Report submitted successfully!", "report": stored})
}

func GetReport(c *gin.Context, reports store.ReportStore) {
	reportID := model.NormalizeReportID(c.Param("rid"))

	r, err := reports.GetByReportID(c.Request.Context(), reportID)
	if err != nil {
		c.JSON(500, gin.H{"error": "Database error", "details": err.Error()})
		return
	}
	if r == nil {
		c.JSON(404, gin.H{"error": "No report found with ID: " + reportID})
		return
	}

	c.JSON(200, gin.H{"report": r})
}

func SearchReports(c *gin.Context, reports store.ReportStore) {
	term := c.Query("q")
	reportType := c.Query("type")

	results, err := reports.Search(c.Request.Context(), term, reportType)
	if err != nil {
		c.JSON(500, gin.H{"error": "Database error", "details": err.Error()})
		return
	}

	c.JSON(200, gin.H{"reports": results, "count": len(results)})
}

func ListUserReports(c *gin.Context, reports store.ReportStore) {
	userID, err := strconv.ParseInt(c.Param("uid"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid user ID"})
		return
	}

	results, err := reports.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(500, gin.H{"error": "Database error", "details": err.Error()})
		return
	}

	c.JSON(200, gin.H{"reports": results, "count": len(results)})
}

func ReportStats(c *gin.Context, reports store.ReportStore) {
	hours := 24
	if raw := c.Query("hours"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(400, gin.H{"error": "Invalid hours"})
			return
		}
		hours = parsed
	}

	since := time.Now().Add(-time.Duration(hours) * time.Hour)
	counts, err := reports.CountByTypeSince(c.Request.Context(), since)
	if err != nil {
		c.JSON(500, gin.H{"error": "Database error", "details": err.Error()})
		return
	}

	c.JSON(200, gin.H{"since": since, "counts": counts})
}
