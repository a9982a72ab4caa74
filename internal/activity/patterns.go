package activity

import (
	"github.com/areum/activity-backend-go/internal/models"
)

// Pattern detection thresholds
const (
	sedentaryMinMinutes = 30.0 // summed sedentary time to flag a sedentary pattern
	activeMinMinutes    = 10.0 // summed active time to flag an active pattern
	mixedMinSegments    = 5    // mixed requires more segments than this
	mixedMinActivities  = 3    // and at least this many distinct activities
)

var sedentaryActivities = map[models.ActivityType]bool{
	models.ActivitySitting:  true,
	models.ActivityStanding: true,
	models.ActivityLying:    true,
}

var activeActivities = map[models.ActivityType]bool{
	models.ActivityWalking: true,
	models.ActivityRunning: true,
	models.ActivityCycling: true,
}

// DetectPatterns scans a finished segment sequence for sedentary,
// active, and mixed patterns, emitted in that fixed order. The checks
// are independent: a segment may appear in several patterns. Patterns
// reference segments in place; they never copy them.
func DetectPatterns(segments []models.ActivitySegment) []models.ActivityPattern {
	if len(segments) == 0 {
		return nil
	}

	var patterns []models.ActivityPattern

	sedentary, sedentaryMinutes := filterSegments(segments, sedentaryActivities)
	if sedentaryMinutes > sedentaryMinMinutes {
		patterns = append(patterns, models.ActivityPattern{
			PatternType:   "sedentary",
			Description:   "Extended period of low activity",
			TotalDuration: sedentaryMinutes,
			Segments:      sedentary,
		})
	}

	active, activeMinutes := filterSegments(segments, activeActivities)
	if activeMinutes > activeMinMinutes {
		patterns = append(patterns, models.ActivityPattern{
			PatternType:   "active",
			Description:   "Period of sustained activity",
			TotalDuration: activeMinutes,
			Segments:      active,
		})
	}

	if len(segments) > mixedMinSegments && distinctActivities(segments) >= mixedMinActivities {
		all := make([]*models.ActivitySegment, len(segments))
		var totalMinutes float64
		for i := range segments {
			all[i] = &segments[i]
			totalMinutes += segments[i].Duration() / 60.0
		}
		patterns = append(patterns, models.ActivityPattern{
			PatternType:   "mixed",
			Description:   "Varied activity with multiple transitions",
			TotalDuration: totalMinutes,
			Segments:      all,
		})
	}

	return patterns
}

// filterSegments collects references to segments whose activity is in
// the given set, along with their summed duration in minutes.
func filterSegments(segments []models.ActivitySegment, activities map[models.ActivityType]bool) ([]*models.ActivitySegment, float64) {
	var filtered []*models.ActivitySegment
	var minutes float64
	for i := range segments {
		if activities[segments[i].ActivityType] {
			filtered = append(filtered, &segments[i])
			minutes += segments[i].Duration() / 60.0
		}
	}
	return filtered, minutes
}

// distinctActivities counts the distinct activity types in the sequence
func distinctActivities(segments []models.ActivitySegment) int {
	seen := make(map[models.ActivityType]bool)
	for i := range segments {
		seen[segments[i].ActivityType] = true
	}
	return len(seen)
}
