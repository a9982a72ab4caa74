package models

import "time"

// RecognitionRecord is a stored summary of one recognition run
type RecognitionRecord struct {
	ID int64 `json:"id" db:"id"`

	// Request identification
	UserID  string `json:"user_id" db:"user_id"`
	BatchID string `json:"batch_id,omitempty" db:"batch_id"`

	// Result summary
	DominantActivity ActivityType `json:"dominant_activity" db:"dominant_activity"`
	SegmentCount     int          `json:"segment_count" db:"segment_count"`
	PatternCount     int          `json:"pattern_count" db:"pattern_count"`

	// Overall metrics
	AvgIntensity  float64 `json:"avg_intensity" db:"avg_intensity"`
	ActiveMinutes float64 `json:"active_minutes" db:"active_minutes"`
	TotalDuration float64 `json:"total_duration" db:"total_duration"` // seconds

	// Metadata
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// RecognitionFilter represents filter parameters for querying recognition history
type RecognitionFilter struct {
	UserID           string `form:"userId"`
	DominantActivity string `form:"dominantActivity"`
	Page             int    `form:"page"`
	PageSize         int    `form:"pageSize"`
}
