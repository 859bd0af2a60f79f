package models

import (
	"time"
)

// Shift günün iki randevu dilimini tanımlar.
type Shift string

const (
	ShiftMorning   Shift = "morning"
	ShiftAfternoon Shift = "afternoon"
)

// IsValid vardiya değerinin tanımlı dilimlerden biri olup olmadığını kontrol eder.
func (s Shift) IsValid() bool {
	return s == ShiftMorning || s == ShiftAfternoon
}

// Slot bir (birim, hizmet, tarih, vardiya) dörtlüsünün kontenjan kaydıdır.
// Değişmez kural: 0 <= Available <= Total. Kontenjan yalnızca rezervasyonla
// azalır ve iptal kaynaklı iade ile artar; normal akışta slot silinmez.
type Slot struct {
	BaseModel
	CareUnitID uint      `gorm:"not null;uniqueIndex:idx_slot_tuple"`
	ServiceID  uint      `gorm:"not null;uniqueIndex:idx_slot_tuple"`
	Date       time.Time `gorm:"type:date;not null;uniqueIndex:idx_slot_tuple"`
	Shift      Shift     `gorm:"type:varchar(10);not null;uniqueIndex:idx_slot_tuple"`
	Available  int       `gorm:"not null"`
	Total      int       `gorm:"not null"`

	// GORM İlişkileri
	CareUnit CareUnit `gorm:"foreignKey:CareUnitID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Service  Service  `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
