package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/areum/activity-backend-go/internal/models"
)

// RecognitionRepository handles database operations for recognition history
type RecognitionRepository struct {
	db *sql.DB
}

// NewRecognitionRepository creates a new recognition repository
func NewRecognitionRepository(db *sql.DB) *RecognitionRepository {
	return &RecognitionRepository{db: db}
}

// SaveRecognition stores a recognition summary and its segments in one
// transaction
func (r *RecognitionRepository) SaveRecognition(record *models.RecognitionRecord, segments []models.ActivitySegment) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
		INSERT INTO recognitions (user_id, batch_id, dominant_activity, segment_count, pattern_count,
			avg_intensity, active_minutes, total_duration, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.UserID, record.BatchID, string(record.DominantActivity), record.SegmentCount,
		record.PatternCount, record.AvgIntensity, record.ActiveMinutes, record.TotalDuration,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert recognition: %w", err)
	}

	record.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read recognition id: %w", err)
	}

	for i := range segments {
		s := &segments[i]
		_, err := tx.Exec(`
			INSERT INTO recognition_segments (recognition_id, activity_type, confidence,
				start_time, end_time, avg_intensity, peak_intensity, movement_consistency,
				active_minutes, total_duration)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			record.ID, string(s.ActivityType), s.Confidence, s.StartTime, s.EndTime,
			s.Metrics.AvgIntensity, s.Metrics.PeakIntensity, s.Metrics.MovementConsistency,
			s.Metrics.ActiveMinutes, s.Metrics.TotalDuration,
		)
		if err != nil {
			return fmt.Errorf("failed to insert recognition segment: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit recognition: %w", err)
	}
	return nil
}

// GetRecognitions retrieves recognition summaries with filtering and pagination
func (r *RecognitionRepository) GetRecognitions(filter models.RecognitionFilter) ([]models.RecognitionRecord, int64, error) {
	query := `SELECT id, user_id, batch_id, dominant_activity, segment_count, pattern_count,
		avg_intensity, active_minutes, total_duration, created_at
		FROM recognitions`

	var conditions []string
	var args []interface{}

	if filter.UserID != "" {
		conditions = append(conditions, "user_id = ?")
		args = append(args, filter.UserID)
	}
	if filter.DominantActivity != "" {
		conditions = append(conditions, "dominant_activity = ?")
		args = append(args, filter.DominantActivity)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT COUNT(*) FROM recognitions"
	if len(conditions) > 0 {
		countQuery += " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count recognitions: %w", err)
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 100
	}
	if filter.PageSize > 1000 {
		filter.PageSize = 1000
	}

	offset := (filter.Page - 1) * filter.PageSize
	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, filter.PageSize, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query recognitions: %w", err)
	}
	defer rows.Close()

	var records []models.RecognitionRecord
	for rows.Next() {
		var rec models.RecognitionRecord
		var batchID sql.NullString
		var dominant string
		if err := rows.Scan(&rec.ID, &rec.UserID, &batchID, &dominant, &rec.SegmentCount,
			&rec.PatternCount, &rec.AvgIntensity, &rec.ActiveMinutes, &rec.TotalDuration,
			&rec.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan recognition: %w", err)
		}
		rec.BatchID = batchID.String
		rec.DominantActivity = models.ActivityType(dominant)
		records = append(records, rec)
	}

	return records, total, rows.Err()
}
