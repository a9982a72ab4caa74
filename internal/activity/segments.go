package activity

import (
	"time"

	"github.com/areum/activity-backend-go/internal/models"
)

// finalSegmentConfidence is reported for the trailing segment, which is
// never closed by an activity change and therefore has no transition
// confidence of its own.
const finalSegmentConfidence = 0.7

// Segmenter merges consecutive same-activity windows into time-bounded
// segments with per-segment metrics.
type Segmenter struct {
	calc *Calculator
}

// NewSegmenter creates a segmenter backed by the given metrics calculator
func NewSegmenter(calc *Calculator) *Segmenter {
	return &Segmenter{calc: calc}
}

// DetectSegments classifies each analysis window of the batch and folds
// the resulting activity sequence into segments. A segment closes when
// a window classifies differently from the open segment; its end time
// is the new window's start time, and its metrics cover the raw samples
// inside the closed time bounds. The trailing segment closes at the
// last window's end time with finalSegmentConfidence.
//
// The confidence recorded on a segment closed by an activity change is
// the classifier confidence of the window that triggered the change.
func (sg *Segmenter) DetectSegments(batch models.AccelerationBatch) []models.ActivitySegment {
	features := ExtractFeatures(batch.Samples)
	if len(features) == 0 {
		return nil
	}

	var segments []models.ActivitySegment
	var current models.ActivityType
	var segmentStart time.Time

	for _, f := range features {
		activityType, confidence := Classify(f)

		if current == "" || activityType != current {
			if current != "" {
				segments = append(segments, sg.closeSegment(batch, current, segmentStart, f.StartTime, confidence))
			}
			current = activityType
			segmentStart = f.StartTime
		}
	}

	last := features[len(features)-1]
	segments = append(segments, sg.closeSegment(batch, current, segmentStart, last.EndTime, finalSegmentConfidence))

	return segments
}

// closeSegment builds a finished segment, computing its metrics over
// the raw samples whose timestamps fall inside [start, end].
func (sg *Segmenter) closeSegment(batch models.AccelerationBatch, activityType models.ActivityType, start, end time.Time, confidence float64) models.ActivitySegment {
	return models.ActivitySegment{
		StartTime:    start,
		EndTime:      end,
		ActivityType: activityType,
		Confidence:   confidence,
		Metrics:      sg.calc.Compute(samplesBetween(batch.Samples, start, end), batch.SamplingRateHz),
	}
}

// samplesBetween returns the samples whose timestamps lie in [start, end],
// both bounds inclusive.
func samplesBetween(samples []models.AccelerationSample, start, end time.Time) []models.AccelerationSample {
	var sub []models.AccelerationSample
	for _, s := range samples {
		if !s.Timestamp.Before(start) && !s.Timestamp.After(end) {
			sub = append(sub, s)
		}
	}
	return sub
}

// DominantActivity returns the activity with the greatest summed
// segment duration. Ties go to the activity whose first segment appears
// earliest in the sequence. An empty sequence yields unknown.
func DominantActivity(segments []models.ActivitySegment) models.ActivityType {
	if len(segments) == 0 {
		return models.ActivityUnknown
	}

	durations := make(map[models.ActivityType]float64)
	var order []models.ActivityType
	for i := range segments {
		t := segments[i].ActivityType
		if _, seen := durations[t]; !seen {
			order = append(order, t)
		}
		durations[t] += segments[i].Duration()
	}

	dominant := order[0]
	for _, t := range order[1:] {
		if durations[t] > durations[dominant] {
			dominant = t
		}
	}
	return dominant
}
