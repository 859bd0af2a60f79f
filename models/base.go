package models

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel tüm tablolarda ortak olan alanları içerir.
type BaseModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
