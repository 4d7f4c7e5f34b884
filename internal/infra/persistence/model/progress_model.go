package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProgressModel mirrors the 'course_progress' table. The unique user/course
// index backs the create race; Version backs the optimistic update check.
type ProgressModel struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key"`
	UserID            string         `gorm:"type:varchar(64);not null;uniqueIndex:idx_progress_user_course"`
	CourseID          uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_progress_user_course"`
	LecturesCompleted datatypes.JSON `gorm:"not null"`
	Completed         bool           `gorm:"not null;default:false"`
	Version           int64          `gorm:"not null;default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProgressModel) TableName() string {
	return "course_progress"
}
