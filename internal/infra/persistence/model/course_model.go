package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CourseModel mirrors the 'courses' table. Chapter content is stored as a
// JSONB document; it is always read and written as a whole.
type CourseModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	EducatorID      string    `gorm:"type:varchar(64);not null;index"`
	Title           string    `gorm:"type:varchar(255);not null"`
	Description     string    `gorm:"type:text"`
	ThumbnailURL    string    `gorm:"type:text"`
	Price           string    `gorm:"type:numeric(10,2);not null"`
	DiscountPercent int       `gorm:"not null;default:0"`
	Published       bool      `gorm:"not null;default:false;index"`
	Chapters        datatypes.JSON
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Ratings []RatingModel `gorm:"foreignKey:CourseID"`
}

// TableName explicitly sets the table name for GORM.
func (CourseModel) TableName() string {
	return "courses"
}

// RatingModel mirrors the 'course_ratings' table. One row per user and
// course; resubmissions overwrite in place.
type RatingModel struct {
	CourseID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    string    `gorm:"type:varchar(64);primaryKey"`
	Rating    int       `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "course_ratings"
}
