package database

import (
	"randevu.link/configs/configslog"
	"randevu.link/database/migrations"
	"randevu.link/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Migrate veya seed bayrağı belirtilmedi, işlem yapılmayacak.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Veritabanı transaction başlatılamadı", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Veritabanı başlatma işlemi başarısız oldu (panic)", zap.Any("panic_info", r))
		} else if err := tx.Error; err != nil && err != gorm.ErrInvalidTransaction {
			configslog.SLog.Warn("Başlatma sırasında hata oluştuğu için işlem geri alınıyor.", zap.Error(err))
			rbErr := tx.Rollback().Error
			if rbErr != nil && rbErr != gorm.ErrInvalidTransaction {
				configslog.Log.Error("Rollback sırasında ek hata oluştu", zap.Error(rbErr))
			}
		}
	}()

	configslog.SLog.Info("Veritabanı başlatma işlemi başlıyor...")

	if migrate {
		configslog.SLog.Info("Migrasyonlar çalıştırılıyor...")
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Migrasyon başarısız oldu", zap.Error(err))
			return
		}
		configslog.SLog.Info("Migrasyonlar tamamlandı.")
	} else {
		configslog.SLog.Info("Migrate bayrağı belirtilmedi, migrasyon adımı atlanıyor.")
	}

	if seed {
		configslog.SLog.Info("Seeder'lar çalıştırılıyor...")
		if err := CheckAndRunSeeders(tx); err != nil {
			configslog.Log.Error("Seeding başarısız oldu", zap.Error(err))
			return
		}
		configslog.SLog.Info("Seeder'lar tamamlandı.")
	} else {
		configslog.SLog.Info("Seed bayrağı belirtilmedi, seeder adımı atlanıyor.")
	}

	configslog.SLog.Info("İşlem commit ediliyor...")
	if err := tx.Commit().Error; err != nil {
		tx.Error = err
		configslog.Log.Error("Commit başarısız oldu", zap.Error(err))
		return
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi başarıyla tamamlandı")
}

func RunMigrationsInOrder(db *gorm.DB) error {
	configslog.SLog.Info("Migrasyonlar sırayla çalıştırılıyor...")

	configslog.SLog.Info(" -> Katalog migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateCatalogTables(db); err != nil {
		configslog.Log.Error("Katalog tabloları migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Katalog migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Citizen migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateCitizensTable(db); err != nil {
		configslog.Log.Error("Citizens tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Citizen migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Slot migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateSlotsTable(db); err != nil {
		configslog.Log.Error("Slots tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Slot migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Booking migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateBookingsTable(db); err != nil {
		configslog.Log.Error("Bookings tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Booking migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Admin migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateAdminsTable(db); err != nil {
		configslog.Log.Error("Admins tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Admin migrasyonları tamamlandı.")

	configslog.SLog.Info("Tüm migrasyonlar başarıyla çalıştırıldı.")
	return nil
}

func CheckAndRunSeeders(db *gorm.DB) error {
	configslog.SLog.Info("Sistem yöneticisi kontrol ediliyor/oluşturuluyor...")
	if err := seeders.SeedSystemAdmin(db); err != nil {
		configslog.Log.Error("Sistem yöneticisi seed işlemi başarısız", zap.Error(err))
		return err
	}

	configslog.SLog.Info(" -> Katalog seeder çalıştırılıyor...")
	if err := seeders.SeedCatalog(db); err != nil {
		configslog.Log.Error("Katalog seed edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Katalog seeder tamamlandı.")

	configslog.SLog.Info("Tüm seeder'lar başarıyla kontrol edildi/çalıştırıldı.")
	return nil
}
