package activity

import (
	"time"

	"github.com/areum/activity-backend-go/internal/models"
	"github.com/areum/activity-backend-go/internal/stats"
)

// maxWindowSize is the number of samples per analysis window; shorter
// batches fall back to a single window covering the whole batch.
const maxWindowSize = 20

// FeatureVector summarizes one analysis window of raw samples
type FeatureVector struct {
	MeanX   float64
	MeanY   float64
	MeanZ   float64
	VarX    float64
	VarY    float64
	VarZ    float64
	MeanMag float64

	StartTime time.Time
	EndTime   time.Time
}

// ExtractFeatures slides a 50%-overlapping window over the sample
// sequence and reduces each window to a feature vector. The last window
// that fully fits is the final one; trailing samples that cannot fill a
// window are dropped. An empty batch yields an empty slice.
func ExtractFeatures(samples []models.AccelerationSample) []FeatureVector {
	windowSize := maxWindowSize
	if len(samples) < windowSize {
		windowSize = len(samples)
	}
	if windowSize == 0 {
		return nil
	}

	step := windowSize / 2
	if step < 1 {
		step = 1
	}

	var features []FeatureVector
	for i := 0; i+windowSize <= len(samples); i += step {
		window := samples[i : i+windowSize]

		xs := make([]float64, len(window))
		ys := make([]float64, len(window))
		zs := make([]float64, len(window))
		mags := make([]float64, len(window))
		for j, s := range window {
			xs[j] = s.X
			ys[j] = s.Y
			zs[j] = s.Z
			mags[j] = stats.Magnitude(s.X, s.Y, s.Z)
		}

		features = append(features, FeatureVector{
			MeanX:     stats.Mean(xs),
			MeanY:     stats.Mean(ys),
			MeanZ:     stats.Mean(zs),
			VarX:      stats.PopVariance(xs),
			VarY:      stats.PopVariance(ys),
			VarZ:      stats.PopVariance(zs),
			MeanMag:   stats.Mean(mags),
			StartTime: window[0].Timestamp,
			EndTime:   window[len(window)-1].Timestamp,
		})
	}

	return features
}
