package models

import "time"

// AccelerationSample represents a single tri-axial accelerometer reading
type AccelerationSample struct {
	Timestamp time.Time `json:"timestamp" binding:"required"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	Z         float64   `json:"z"`
}

// AccelerationBatch represents a finite batch of accelerometer samples,
// ordered by non-decreasing timestamp. The pipeline assumes the ordering
// and does not sort.
type AccelerationBatch struct {
	DataType       string                 `json:"data_type" binding:"required"`
	DeviceInfo     map[string]interface{} `json:"device_info"`
	SamplingRateHz int                    `json:"sampling_rate_hz"`
	StartTime      time.Time              `json:"start_time"`
	Samples        []AccelerationSample   `json:"samples"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
	ID             string                 `json:"id,omitempty"`
}
