package model

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseModel mirrors the 'purchases' table.
type PurchaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CourseID  uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID    string    `gorm:"type:varchar(64);not null;index"`
	Amount    string    `gorm:"type:numeric(10,2);not null"`
	Currency  string    `gorm:"type:varchar(3);not null"`
	Status    string    `gorm:"type:varchar(20);not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PurchaseModel) TableName() string {
	return "purchases"
}
