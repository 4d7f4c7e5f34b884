package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// CourseProgress tracks which lectures of a course a user has completed.
// At most one record exists per (user, course) pair; it is created on the
// first completion report and never deleted. Version is an optimistic
// concurrency token: every persisted mutation increments it, and writers
// re-read and retry on a version mismatch so overlapping completion reports
// for the same pair cannot lose updates.
type CourseProgress struct {
	ID                uuid.UUID `json:"id"`
	UserID            string    `json:"user_id"`
	CourseID          uuid.UUID `json:"course_id"`
	LecturesCompleted []string  `json:"lectures_completed"` // Set semantics, no duplicates.
	Completed         bool      `json:"completed"`          // True once every lecture of the course is recorded.
	Version           int64     `json:"-"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// HasLecture reports whether the lecture is already recorded.
func (p *CourseProgress) HasLecture(lectureID string) bool {
	return slices.Contains(p.LecturesCompleted, lectureID)
}

// RecordLecture appends the lecture if absent and recomputes the completed
// flag against the course's total lecture count. It reports whether the
// record changed.
func (p *CourseProgress) RecordLecture(lectureID string, totalLectures int) bool {
	if p.HasLecture(lectureID) {
		return false
	}

	p.LecturesCompleted = append(p.LecturesCompleted, lectureID)
	p.Completed = totalLectures > 0 && len(p.LecturesCompleted) >= totalLectures

	return true
}
