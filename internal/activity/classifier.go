package activity

import (
	"github.com/areum/activity-backend-go/internal/models"
)

// classificationRule pairs a predicate over window features with the
// activity and confidence to report when it matches.
type classificationRule struct {
	matches    func(f FeatureVector) bool
	activity   models.ActivityType
	confidence float64
}

// classificationRules is evaluated top-down; the first matching rule
// wins. Thresholds are in g for magnitudes and g² for variances.
var classificationRules = []classificationRule{
	{
		matches: func(f FeatureVector) bool {
			return f.MeanMag < 1.05 && f.VarX < 0.01 && f.VarY < 0.01 && f.VarZ < 0.01
		},
		activity:   models.ActivityStanding,
		confidence: 0.8,
	},
	{
		matches: func(f FeatureVector) bool {
			return f.MeanMag < 1.05 && f.VarX < 0.02 && f.VarY < 0.02 && f.VarZ < 0.02
		},
		activity:   models.ActivitySitting,
		confidence: 0.8,
	},
	{
		matches: func(f FeatureVector) bool {
			return f.MeanMag < 1.05 && f.VarX < 0.05 && f.VarY < 0.05 && f.VarZ < 0.05
		},
		activity:   models.ActivityLying,
		confidence: 0.7,
	},
	{
		matches: func(f FeatureVector) bool {
			varSum := f.VarX + f.VarY + f.VarZ
			return f.MeanMag > 1.1 && f.MeanMag < 1.5 && varSum > 0.05 && varSum < 0.3
		},
		activity:   models.ActivityWalking,
		confidence: 0.9,
	},
	{
		matches: func(f FeatureVector) bool {
			return f.MeanMag > 1.5 && f.VarX+f.VarY+f.VarZ > 0.3
		},
		activity:   models.ActivityRunning,
		confidence: 0.85,
	},
	{
		matches: func(f FeatureVector) bool {
			return f.MeanMag > 1.1 && f.MeanMag < 1.8 &&
				f.VarX > 0.1 && f.VarX < 0.5 &&
				f.VarY > 0.1 && f.VarY < 0.5
		},
		activity:   models.ActivityCycling,
		confidence: 0.75,
	},
}

// Classify maps one feature vector to an activity and a confidence in
// [0,1]. Every vector maps to some activity; vectors matching no rule
// report unknown with confidence 0.5.
func Classify(f FeatureVector) (models.ActivityType, float64) {
	for _, rule := range classificationRules {
		if rule.matches(f) {
			return rule.activity, rule.confidence
		}
	}
	return models.ActivityUnknown, 0.5
}
