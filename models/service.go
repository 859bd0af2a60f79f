package models

// Service sağlık biriminde sunulan bir muayene/hizmet türünü temsil eder.
type Service struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string `gorm:"type:text"`

	CareUnits []CareUnit `gorm:"many2many:care_unit_services;"`
}
