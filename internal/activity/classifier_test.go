package activity

import (
	"testing"

	"github.com/areum/activity-backend-go/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name           string
		f              FeatureVector
		wantActivity   models.ActivityType
		wantConfidence float64
	}{
		{
			name:           "still and quiet is standing",
			f:              FeatureVector{MeanMag: 1.0, VarX: 0.005, VarY: 0.005, VarZ: 0.005},
			wantActivity:   models.ActivityStanding,
			wantConfidence: 0.8,
		},
		{
			name:           "slightly more variance is sitting",
			f:              FeatureVector{MeanMag: 1.0, VarX: 0.015, VarY: 0.015, VarZ: 0.015},
			wantActivity:   models.ActivitySitting,
			wantConfidence: 0.8,
		},
		{
			name:           "low magnitude with moderate variance is lying",
			f:              FeatureVector{MeanMag: 1.0, VarX: 0.04, VarY: 0.04, VarZ: 0.04},
			wantActivity:   models.ActivityLying,
			wantConfidence: 0.7,
		},
		{
			name:           "raised magnitude with periodic variance is walking",
			f:              FeatureVector{MeanMag: 1.3, VarX: 0.05, VarY: 0.05, VarZ: 0.05},
			wantActivity:   models.ActivityWalking,
			wantConfidence: 0.9,
		},
		{
			name:           "high magnitude and variance is running",
			f:              FeatureVector{MeanMag: 1.7, VarX: 0.2, VarY: 0.2, VarZ: 0.2},
			wantActivity:   models.ActivityRunning,
			wantConfidence: 0.85,
		},
		{
			name:           "raised magnitude with lateral variance is cycling",
			f:              FeatureVector{MeanMag: 1.4, VarX: 0.2, VarY: 0.2, VarZ: 0.0},
			wantActivity:   models.ActivityCycling,
			wantConfidence: 0.75,
		},
		{
			name:           "nothing matches",
			f:              FeatureVector{MeanMag: 1.07, VarX: 0.5, VarY: 0.5, VarZ: 0.5},
			wantActivity:   models.ActivityUnknown,
			wantConfidence: 0.5,
		},
		{
			name:           "zero vector is standing",
			f:              FeatureVector{},
			wantActivity:   models.ActivityStanding,
			wantConfidence: 0.8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			activity, confidence := Classify(tt.f)
			if activity != tt.wantActivity || confidence != tt.wantConfidence {
				t.Errorf("Classify() = (%s, %v), want (%s, %v)",
					activity, confidence, tt.wantActivity, tt.wantConfidence)
			}
		})
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	// Variances below 0.01 satisfy the standing, sitting, and lying
	// rules at once; the standing rule is evaluated first
	f := FeatureVector{MeanMag: 0.99, VarX: 0.001, VarY: 0.001, VarZ: 0.001}

	activity, _ := Classify(f)
	if activity != models.ActivityStanding {
		t.Errorf("Classify() = %s, want %s", activity, models.ActivityStanding)
	}
}

func TestClassifyWalkingBeatsCycling(t *testing.T) {
	// Inside both the walking and cycling envelopes; walking has the
	// higher rule priority
	f := FeatureVector{MeanMag: 1.3, VarX: 0.12, VarY: 0.12, VarZ: 0.0}

	activity, confidence := Classify(f)
	if activity != models.ActivityWalking || confidence != 0.9 {
		t.Errorf("Classify() = (%s, %v), want (%s, 0.9)", activity, confidence, models.ActivityWalking)
	}
}

func TestClassifyGaitWindows(t *testing.T) {
	for i, f := range ExtractFeatures(makeSamples(200, gaitSignal)) {
		activity, confidence := Classify(f)
		if activity != models.ActivityWalking || confidence != 0.9 {
			t.Errorf("window %d: Classify() = (%s, %v), want (walking, 0.9)", i, activity, confidence)
		}
	}
}

func TestClassifyRunWindows(t *testing.T) {
	for i, f := range ExtractFeatures(makeSamples(200, runSignal)) {
		activity, _ := Classify(f)
		if activity != models.ActivityRunning {
			t.Errorf("window %d: Classify() = %s, want running", i, activity)
		}
	}
}
