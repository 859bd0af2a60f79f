package models

import (
	"time"
)

// Citizen kimlik numarası ve doğum tarihi ile giriş yapan vatandaşı temsil eder.
// Kayıt, ilk başarılı kimlik doğrulamasında örtük olarak oluşturulur;
// profil alanları sonradan güncellenebilir.
type Citizen struct {
	BaseModel
	NationalID string    `gorm:"type:varchar(11);uniqueIndex;not null"`
	BirthDate  time.Time `gorm:"type:date;not null"`

	// Opsiyonel profil alanları
	FullName     string `gorm:"type:varchar(255)"`
	Phone        string `gorm:"type:varchar(20)"`
	HealthCardNo string `gorm:"type:varchar(20)"`

	Bookings []Booking `gorm:"foreignKey:CitizenID"`
}
