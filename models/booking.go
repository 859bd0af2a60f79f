package models

import (
	"time"
)

// BookingStatus olası randevu durumlarını tanımlar.
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed" // Aktif randevu
	BookingStatusCancelled BookingStatus = "cancelled" // Vatandaş/yönetici iptali (kontenjan iade edilir)
	BookingStatusCompleted BookingStatus = "completed" // Muayene gerçekleşti (kontenjan etkilenmez)
)

// Booking bir vatandaşın slot kontenjanından bir birim tüketen randevusudur.
// Kısmi unique index, aynı vatandaş ve tarih için birden fazla confirmed
// kaydın veritabanı seviyesinde engellenmesini sağlar; uygulama katmanındaki
// kontrol yalnızca erken ve anlaşılır hata üretmek içindir.
type Booking struct {
	BaseModel
	Reference  string        `gorm:"type:varchar(36);uniqueIndex;not null"`
	CitizenID  uint          `gorm:"not null;index;uniqueIndex:idx_booking_citizen_day,where:status = 'confirmed'"`
	CareUnitID uint          `gorm:"not null;index"`
	ServiceID  uint          `gorm:"not null;index"`
	Date       time.Time     `gorm:"type:date;not null;uniqueIndex:idx_booking_citizen_day,where:status = 'confirmed'"`
	Shift      Shift         `gorm:"type:varchar(10);not null"`
	Status     BookingStatus `gorm:"type:varchar(20);not null;default:'confirmed';index"`

	// GORM İlişkileri
	Citizen  Citizen  `gorm:"foreignKey:CitizenID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CareUnit CareUnit `gorm:"foreignKey:CareUnitID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Service  Service  `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
