package service

import (
	"fmt"
	"log"
	"time"

	"github.com/areum/activity-backend-go/internal/activity"
	"github.com/areum/activity-backend-go/internal/models"
)

// HistoryStore persists recognition summaries. Recognition itself never
// depends on it; a nil store disables history.
type HistoryStore interface {
	SaveRecognition(record *models.RecognitionRecord, segments []models.ActivitySegment) error
	GetRecognitions(filter models.RecognitionFilter) ([]models.RecognitionRecord, int64, error)
}

// RecognitionService runs the activity inference pipeline: overall
// metrics, segmentation, dominant activity, and optional patterns.
// It holds no per-invocation state, so concurrent use is safe.
type RecognitionService struct {
	calc      *activity.Calculator
	segmenter *activity.Segmenter
	history   HistoryStore
}

// NewRecognitionService creates a new recognition service
func NewRecognitionService(calc *activity.Calculator, history HistoryStore) *RecognitionService {
	return &RecognitionService{
		calc:      calc,
		segmenter: activity.NewSegmenter(calc),
		history:   history,
	}
}

// Recognize analyzes a batch of accelerometer samples and returns the
// detected segments, the dominant activity, overall metrics, and, when
// requested, behavioral patterns. History storage is best-effort: a
// storage failure is logged and never fails the recognition.
func (s *RecognitionService) Recognize(req models.ActivityRequest) models.ActivityResponse {
	batch := req.AccelerationData

	response := models.ActivityResponse{
		Status:           "success",
		ActivitySegments: []models.ActivitySegment{},
		ActivityPatterns: []models.ActivityPattern{},
		OverallMetrics:   s.calc.Compute(batch.Samples, batch.SamplingRateHz),
	}

	if segments := s.segmenter.DetectSegments(batch); segments != nil {
		response.ActivitySegments = segments
	}
	response.DominantActivity = activity.DominantActivity(response.ActivitySegments)

	if req.IncludePatterns {
		if patterns := activity.DetectPatterns(response.ActivitySegments); patterns != nil {
			response.ActivityPatterns = patterns
		}
	}

	if err := s.saveHistory(req, &response); err != nil {
		log.Printf("Failed to store recognition history for user %s: %v", req.UserID, err)
	}

	return response
}

// ComputeMetrics reduces a batch to its activity metrics without
// running segmentation
func (s *RecognitionService) ComputeMetrics(batch models.AccelerationBatch) models.ActivityMetrics {
	return s.calc.Compute(batch.Samples, batch.SamplingRateHz)
}

// SupportedActivityTypes returns the supported activity types in
// stable order
func (s *RecognitionService) SupportedActivityTypes() []models.ActivityType {
	types := make([]models.ActivityType, len(models.AllActivityTypes))
	copy(types, models.AllActivityTypes)
	return types
}

// GetHistory retrieves stored recognition summaries
func (s *RecognitionService) GetHistory(filter models.RecognitionFilter) ([]models.RecognitionRecord, int64, error) {
	if s.history == nil {
		return nil, 0, fmt.Errorf("recognition history is not enabled")
	}
	return s.history.GetRecognitions(filter)
}

func (s *RecognitionService) saveHistory(req models.ActivityRequest, response *models.ActivityResponse) error {
	if s.history == nil {
		return nil
	}

	record := &models.RecognitionRecord{
		UserID:           req.UserID,
		BatchID:          req.AccelerationData.ID,
		DominantActivity: response.DominantActivity,
		SegmentCount:     len(response.ActivitySegments),
		PatternCount:     len(response.ActivityPatterns),
		AvgIntensity:     response.OverallMetrics.AvgIntensity,
		ActiveMinutes:    response.OverallMetrics.ActiveMinutes,
		TotalDuration:    response.OverallMetrics.TotalDuration,
		CreatedAt:        time.Now().UTC(),
	}

	return s.history.SaveRecognition(record, response.ActivitySegments)
}
