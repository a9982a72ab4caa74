package activity

import (
	"math"

	"github.com/areum/activity-backend-go/internal/models"
	"github.com/areum/activity-backend-go/internal/stats"
)

// Calculator reduces sample sub-sequences to activity metrics. The
// activity threshold is the intensity above which a sample counts
// toward active minutes.
type Calculator struct {
	activityThreshold float64
}

// NewCalculator creates a metrics calculator
func NewCalculator(activityThreshold float64) *Calculator {
	return &Calculator{activityThreshold: activityThreshold}
}

// Compute reduces a sample sub-sequence and its declared sampling rate
// to a metrics tuple. An empty sub-sequence yields the zero metric;
// there are no error conditions.
//
// Intensity of a sample is the absolute deviation of its acceleration
// magnitude from the 1g gravity baseline, clamped to [0,1]: a resting
// device reads magnitude ≈ 1 and intensity ≈ 0, vigorous movement
// pushes the magnitude past 1.5 and the intensity past 0.5.
func (c *Calculator) Compute(samples []models.AccelerationSample, samplingRateHz int) models.ActivityMetrics {
	if len(samples) == 0 {
		return models.ActivityMetrics{}
	}

	intensities := make([]float64, len(samples))
	activeCount := 0
	for i, s := range samples {
		intensities[i] = sampleIntensity(s)
		if intensities[i] > c.activityThreshold {
			activeCount++
		}
	}

	// Consistency is high when intensity barely varies across the
	// sub-sequence and degrades linearly with its spread.
	consistency := stats.Clamp01(1 - 2*stats.PopStdDev(intensities))

	var totalDuration float64
	if len(samples) > 1 {
		totalDuration = samples[len(samples)-1].Timestamp.Sub(samples[0].Timestamp).Seconds()
	}

	var activeMinutes float64
	if samplingRateHz > 0 {
		activeMinutes = float64(activeCount) / float64(samplingRateHz) / 60.0
	}

	return models.ActivityMetrics{
		AvgIntensity:        stats.Mean(intensities),
		PeakIntensity:       stats.Max(intensities),
		MovementConsistency: consistency,
		ActiveMinutes:       activeMinutes,
		TotalDuration:       totalDuration,
	}
}

// sampleIntensity maps one sample to a normalized intensity in [0,1]
func sampleIntensity(s models.AccelerationSample) float64 {
	mag := stats.Magnitude(s.X, s.Y, s.Z)
	return stats.Clamp01(math.Abs(mag - 1.0))
}
