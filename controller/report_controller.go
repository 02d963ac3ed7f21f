package controller

import (
	"log"
	"net/http"

	service "github.com/kavyansh10/GraminSetu/service"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	reports     *service.ReportService
	search      *service.SearchService
	attachments *service.AttachmentService
}

func NewReportController(reports *service.ReportService, search *service.SearchService, attachments *service.AttachmentService) *ReportController {
	return &ReportController{reports: reports, search: search, attachments: attachments}
}

// GetSummary serves the branch dashboard counters. The optional ?since=
// query (YYYY-MM-DD) bounds the interaction count.
func (c *ReportController) GetSummary(ctx *gin.Context) {
	summary, err := c.reports.Summary(branchOf(ctx), ctx.Query("since"))
	if err != nil {
		log.Printf("[GetSummary] Error building summary: %v", err)
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"summary": summary})
}

// SearchPeople serves the optional Elasticsearch-backed person search.
func (c *ReportController) SearchPeople(ctx *gin.Context) {
	query := ctx.Query("q")
	if query == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter q required"})
		return
	}
	if !c.search.Enabled() {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Search is not configured"})
		return
	}
	people, err := c.search.SearchPeople(branchOf(ctx), query)
	if err != nil {
		log.Printf("[SearchPeople] Search failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"results": people})
}

// UploadAttachment receives a multipart file and stores it in the object
// store; the caller attaches the returned name/url to an RFP or invoice.
func (c *ReportController) UploadAttachment(ctx *gin.Context) {
	if c.attachments == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Attachment storage is not configured"})
		return
	}
	file, header, err := ctx.Request.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing file", "details": err.Error()})
		return
	}
	defer file.Close()

	attachment, err := c.attachments.Upload(file, header)
	if err != nil {
		log.Printf("[UploadAttachment] Upload failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "Attachment uploaded successfully", "attachment": attachment})
}
