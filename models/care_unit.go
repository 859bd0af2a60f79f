package models

// CareUnit bir veya birden fazla hizmet sunan sağlık birimini temsil eder.
type CareUnit struct {
	BaseModel
	Name    string `gorm:"type:varchar(255);not null"`
	Address string `gorm:"type:varchar(500)"`
	CityID  uint   `gorm:"index;not null"`

	// GORM İlişkileri
	City     City      `gorm:"foreignKey:CityID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Services []Service `gorm:"many2many:care_unit_services;"`
}
