package models

// AdminRole yönetici rollerini tanımlar.
type AdminRole string

const (
	AdminRoleSuper       AdminRole = "SuperAdmin"
	AdminRoleUnitManager AdminRole = "UnitManager"
)

// Admin katalog ve kontenjan yönetimi yapan yöneticiyi temsil eder.
// UnitManager rolündeki yöneticiler tek bir sağlık birimine bağlıdır.
type Admin struct {
	BaseModel
	Username     string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         AdminRole `gorm:"type:varchar(20);not null"`
	CareUnitID   *uint     `gorm:"index"`
}
