package handler

import (
	"net/http"

	"github.com/areum/activity-backend-go/internal/models"
	"github.com/areum/activity-backend-go/internal/service"
	"github.com/areum/activity-backend-go/pkg/response"
	"github.com/gin-gonic/gin"
)

// ActivityHandler handles HTTP requests for activity recognition
type ActivityHandler struct {
	service *service.RecognitionService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(service *service.RecognitionService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// RecognizeActivity handles POST /api/v1/activity/recognize
func (h *ActivityHandler) RecognizeActivity(c *gin.Context) {
	var req models.ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid activity request", err)
		return
	}

	response.Success(c, h.service.Recognize(req))
}

// CalculateMetrics handles POST /api/v1/activity/metrics
func (h *ActivityHandler) CalculateMetrics(c *gin.Context) {
	var batch models.AccelerationBatch
	if err := c.ShouldBindJSON(&batch); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid acceleration data", err)
		return
	}

	response.Success(c, h.service.ComputeMetrics(batch))
}

// GetActivityTypes handles GET /api/v1/activity/types
func (h *ActivityHandler) GetActivityTypes(c *gin.Context) {
	response.Success(c, h.service.SupportedActivityTypes())
}

// GetRecognitionHistory handles GET /api/v1/activity/history
func (h *ActivityHandler) GetRecognitionHistory(c *gin.Context) {
	var filter models.RecognitionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	records, total, err := h.service.GetHistory(filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get recognition history", err)
		return
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 100
	}
	totalPages := int(total) / filter.PageSize
	if int(total)%filter.PageSize > 0 {
		totalPages++
	}

	response.Success(c, gin.H{
		"data":       records,
		"total":      total,
		"page":       filter.Page,
		"pageSize":   filter.PageSize,
		"totalPages": totalPages,
	})
}
