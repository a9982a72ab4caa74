package activity

import (
	"math"
	"time"

	"github.com/areum/activity-backend-go/internal/models"
)

// Shared synthetic signal generators for the package tests. All batches
// are sampled at 50 Hz starting from a fixed base time so expected
// window boundaries are easy to reason about.

const testRateHz = 50

var testBase = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

type sampleFunc func(i int) (x, y, z float64)

// stationarySignal reads pure gravity on the z axis
func stationarySignal(i int) (float64, float64, float64) {
	return 0, 0, 1.0
}

// gaitSignal swings x/y through one full cycle every 20 samples around
// a raised mean magnitude; every 20-sample window sees a whole cycle,
// so its features land inside the walking rule regardless of phase.
func gaitSignal(i int) (float64, float64, float64) {
	phase := 2 * math.Pi * float64(i) / 20
	return 0.25 * math.Sin(phase), 0.25 * math.Cos(phase), 1.2
}

// runSignal has the large magnitude and variance of running
func runSignal(i int) (float64, float64, float64) {
	phase := 2 * math.Pi * float64(i) / 10
	return 0.9 * math.Sin(phase), 0.9 * math.Cos(phase), 1.5
}

// makeSamples generates n consecutive samples starting at the base time
func makeSamples(n int, fn sampleFunc) []models.AccelerationSample {
	return appendSamples(nil, n, fn)
}

// appendSamples continues an existing sample sequence with n more
// samples, keeping timestamps contiguous
func appendSamples(samples []models.AccelerationSample, n int, fn sampleFunc) []models.AccelerationSample {
	interval := time.Second / testRateHz
	start := testBase
	if len(samples) > 0 {
		start = samples[len(samples)-1].Timestamp.Add(interval)
	}

	for i := 0; i < n; i++ {
		x, y, z := fn(i)
		samples = append(samples, models.AccelerationSample{
			Timestamp: start.Add(time.Duration(i) * interval),
			X:         x,
			Y:         y,
			Z:         z,
		})
	}
	return samples
}

func makeBatch(samples []models.AccelerationSample) models.AccelerationBatch {
	return models.AccelerationBatch{
		DataType:       "acceleration",
		DeviceInfo:     map[string]interface{}{"device_type": "test"},
		SamplingRateHz: testRateHz,
		StartTime:      testBase,
		Samples:        samples,
	}
}
