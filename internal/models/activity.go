package models

import "time"

// ActivityType identifies one of the supported physical activities
type ActivityType string

// ActivityType constants
const (
	ActivityWalking  ActivityType = "walking"
	ActivityRunning  ActivityType = "running"
	ActivityStanding ActivityType = "standing"
	ActivitySitting  ActivityType = "sitting"
	ActivityLying    ActivityType = "lying"
	ActivityCycling  ActivityType = "cycling"
	ActivityUnknown  ActivityType = "unknown"
)

// AllActivityTypes lists every supported activity type in stable order
var AllActivityTypes = []ActivityType{
	ActivityWalking,
	ActivityRunning,
	ActivityStanding,
	ActivitySitting,
	ActivityLying,
	ActivityCycling,
	ActivityUnknown,
}

// ActivityMetrics holds intensity and duration metrics derived from a
// sample sub-sequence. Intensity and consistency values are normalized
// to [0,1]; durations are non-negative.
type ActivityMetrics struct {
	AvgIntensity        float64 `json:"avg_intensity"`
	PeakIntensity       float64 `json:"peak_intensity"`
	MovementConsistency float64 `json:"movement_consistency"`
	ActiveMinutes       float64 `json:"active_minutes"`
	TotalDuration       float64 `json:"total_duration"` // seconds
}

// ActivitySegment represents a maximal run of consecutive analysis
// windows sharing one activity type
type ActivitySegment struct {
	StartTime    time.Time       `json:"start_time"`
	EndTime      time.Time       `json:"end_time"`
	ActivityType ActivityType    `json:"activity_type"`
	Confidence   float64         `json:"confidence"` // 0~1
	Metrics      ActivityMetrics `json:"metrics"`
}

// Duration returns the segment length in seconds
func (s *ActivitySegment) Duration() float64 {
	return s.EndTime.Sub(s.StartTime).Seconds()
}

// ActivityPattern groups segments that together satisfy a behavioral
// condition (sedentary, active, mixed). Segments are referenced, not
// copied; a segment may belong to several patterns at once.
type ActivityPattern struct {
	PatternType   string             `json:"pattern_type"`
	Description   string             `json:"description"`
	TotalDuration float64            `json:"total_duration"` // minutes
	Segments      []*ActivitySegment `json:"segments"`
}

// ActivityRequest is the payload for the recognize endpoint
type ActivityRequest struct {
	AccelerationData AccelerationBatch `json:"acceleration_data" binding:"required"`
	IncludeMetrics   bool              `json:"include_metrics"`
	IncludePatterns  bool              `json:"include_patterns"`
	UserID           string            `json:"user_id" binding:"required"`
}

// ActivityResponse is the result of one recognition run
type ActivityResponse struct {
	Status           string            `json:"status"`
	Message          string            `json:"message,omitempty"`
	ActivitySegments []ActivitySegment `json:"activity_segments"`
	ActivityPatterns []ActivityPattern `json:"activity_patterns"`
	DominantActivity ActivityType      `json:"dominant_activity"`
	OverallMetrics   ActivityMetrics   `json:"overall_metrics"`
}
