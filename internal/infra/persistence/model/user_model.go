// Package model holds the GORM persistence models.
package model

import (
	"time"
)

// UserModel mirrors the 'users' table. The primary key is the identity
// provider's subject, not a database-generated ID.
type UserModel struct {
	ID        string `gorm:"type:varchar(64);primary_key"`
	Name      string `gorm:"type:varchar(100)"`
	Email     string `gorm:"type:varchar(255);not null"`
	ImageURL  string `gorm:"type:text"`
	Role      string `gorm:"type:varchar(20);not null;default:'student'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
