package model

import (
	"time"

	"github.com/google/uuid"
)

// EnrollmentModel mirrors the 'enrollments' table. The composite primary key
// makes a repeated enroll a conflict instead of a duplicate row.
type EnrollmentModel struct {
	UserID    string    `gorm:"type:varchar(64);primaryKey"`
	CourseID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (EnrollmentModel) TableName() string {
	return "enrollments"
}
