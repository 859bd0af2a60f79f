package services

import (
	"testing"
	"time"

	"randevu.link/configs/configslog"
	"randevu.link/models"
	"randevu.link/repositories"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB bellek içi sqlite veritabanı açar ve tüm tabloları migrate eder.
// Tek bağlantıya sınırlanır; eşzamanlı testler aynı bağlantı üzerinde
// sıralanır ve sqlite'ın "database is locked" hatası önlenir.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	configslog.InitLogger()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.City{},
		&models.CareUnit{},
		&models.Service{},
		&models.Citizen{},
		&models.Slot{},
		&models.Booking{},
		&models.Admin{},
	))
	return db
}

func newTestLedgerService(db *gorm.DB) ILedgerService {
	return &LedgerService{repo: repositories.NewSlotRepositoryTx(db)}
}

func newTestBookingService(db *gorm.DB) IBookingService {
	return &BookingService{
		repo:   repositories.NewBookingRepositoryTx(db),
		ledger: newTestLedgerService(db),
		db:     db,
	}
}

func newTestCitizenService(db *gorm.DB) ICitizenService {
	return &CitizenService{
		repo:        repositories.NewCitizenRepositoryTx(db),
		bookingRepo: repositories.NewBookingRepositoryTx(db),
	}
}

func newTestCatalogService(db *gorm.DB) ICatalogService {
	return &CatalogService{
		cityRepo:    repositories.NewCityRepositoryTx(db),
		unitRepo:    repositories.NewCareUnitRepositoryTx(db),
		serviceRepo: repositories.NewServiceRepositoryTx(db),
	}
}

func newTestAdminService(db *gorm.DB) IAdminService {
	return &AdminService{
		repo:     repositories.NewAdminRepositoryTx(db),
		secret:   []byte("test-secret"),
		tokenTTL: time.Hour,
	}
}

// seedCatalog testler için bir şehir, birim ve hizmet oluşturur.
func seedCatalog(t *testing.T, db *gorm.DB) (*models.CareUnit, *models.Service) {
	t.Helper()

	city := models.City{Name: "İstanbul"}
	require.NoError(t, db.Create(&city).Error)

	unit := models.CareUnit{Name: "Merkez Aile Sağlığı Merkezi", Address: "Cumhuriyet Cad. No:12", CityID: city.ID}
	require.NoError(t, db.Create(&unit).Error)

	service := models.Service{Name: "Genel Muayene", Description: "Genel sağlık kontrolü"}
	require.NoError(t, db.Create(&service).Error)
	require.NoError(t, db.Model(&unit).Association("Services").Append(&service))

	return &unit, &service
}

// seedCitizen testler için geçerli kimlik numaralı bir vatandaş oluşturur.
func seedCitizen(t *testing.T, db *gorm.DB, nationalID string) *models.Citizen {
	t.Helper()
	citizen := models.Citizen{
		NationalID: nationalID,
		BirthDate:  time.Date(1990, 5, 14, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&citizen).Error)
	return &citizen
}
