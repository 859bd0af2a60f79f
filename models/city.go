package models

// City bir şehri temsil eder. Şehir adı benzersizdir.
type City struct {
	BaseModel
	Name string `gorm:"type:varchar(100);uniqueIndex;not null"`

	CareUnits []CareUnit `gorm:"foreignKey:CityID"`
}
