package seeders

import (
	"errors"
	"time"

	"randevu.link/configs/configslog"
	"randevu.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Örnek katalog verisi: şehirler, sağlık birimleri ve hizmetler.
var (
	citiesToSeed = []string{"İstanbul", "Ankara", "İzmir"}

	unitsToSeed = []struct {
		Name    string
		Address string
		City    string
	}{
		{"Merkez Aile Sağlığı Merkezi", "Cumhuriyet Cad. No:12", "İstanbul"},
		{"Kadıköy Semt Polikliniği", "Bahariye Cad. No:45", "İstanbul"},
		{"Çankaya Toplum Sağlığı Merkezi", "Atatürk Bulvarı No:88", "Ankara"},
		{"Konak Aile Sağlığı Merkezi", "Mithatpaşa Cad. No:230", "İzmir"},
	}

	servicesToSeed = []struct {
		Name        string
		Description string
	}{
		{"Genel Muayene", "Aile hekimi genel sağlık kontrolü"},
		{"Aşı", "Rutin ve mevsimsel aşı uygulamaları"},
		{"Diş Sağlığı", "Koruyucu diş hekimliği hizmetleri"},
		{"Kan Tahlili", "Numune alma ve temel tahliller"},
		{"Gebe Takibi", "Gebelik izlem ve danışmanlık"},
	}
)

// seedSlotDays slot açılacak gün sayısı; hafta sonları atlanır.
const seedSlotDays = 30

// seedSlotCapacity her vardiya için başlangıç kontenjanı.
const seedSlotCapacity = 5

// SeedCatalog örnek şehir/birim/hizmet kataloğunu ve önümüzdeki günler için
// slotları oluşturur. Tüm adımlar idempotenttir; mevcut kayıtlar atlanır.
func SeedCatalog(db *gorm.DB) error {
	configslog.SLog.Info("Katalog seed işlemi başlıyor...")

	cityIDs := make(map[string]uint, len(citiesToSeed))
	for _, name := range citiesToSeed {
		var city models.City
		result := db.Where("name = ?", name).First(&city)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			city = models.City{Name: name}
			if err := db.Create(&city).Error; err != nil {
				configslog.Log.Error("Şehir seed edilemedi", zap.String("name", name), zap.Error(err))
				return err
			}
			configslog.SLog.Infof("Şehir '%s' oluşturuldu (ID: %d).", name, city.ID)
		} else if result.Error != nil {
			return result.Error
		}
		cityIDs[name] = city.ID
	}

	var units []models.CareUnit
	for _, u := range unitsToSeed {
		var unit models.CareUnit
		result := db.Where("name = ?", u.Name).First(&unit)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			unit = models.CareUnit{Name: u.Name, Address: u.Address, CityID: cityIDs[u.City]}
			if err := db.Create(&unit).Error; err != nil {
				configslog.Log.Error("Sağlık birimi seed edilemedi", zap.String("name", u.Name), zap.Error(err))
				return err
			}
			configslog.SLog.Infof("Sağlık birimi '%s' oluşturuldu (ID: %d).", u.Name, unit.ID)
		} else if result.Error != nil {
			return result.Error
		}
		units = append(units, unit)
	}

	var services []models.Service
	for _, s := range servicesToSeed {
		var service models.Service
		result := db.Where("name = ?", s.Name).First(&service)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			service = models.Service{Name: s.Name, Description: s.Description}
			if err := db.Create(&service).Error; err != nil {
				configslog.Log.Error("Hizmet seed edilemedi", zap.String("name", s.Name), zap.Error(err))
				return err
			}
			configslog.SLog.Infof("Hizmet '%s' oluşturuldu (ID: %d).", s.Name, service.ID)
		} else if result.Error != nil {
			return result.Error
		}
		services = append(services, service)
	}

	// Her birime tüm hizmetler tanımlanır.
	for i := range units {
		if err := db.Model(&units[i]).Association("Services").Replace(services); err != nil {
			configslog.Log.Error("Birim-hizmet ilişkisi seed edilemedi",
				zap.String("unit", units[i].Name), zap.Error(err))
			return err
		}
	}

	if err := seedSlots(db, units, services); err != nil {
		return err
	}

	configslog.SLog.Info("Katalog seed işlemi başarıyla tamamlandı.")
	return nil
}

// seedSlots her birim+hizmet ikilisi için önümüzdeki hafta içi günlere
// sabah/öğleden sonra slotları açar. Mevcut slotlar atlanır.
func seedSlots(db *gorm.DB, units []models.CareUnit, services []models.Service) error {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	shifts := []models.Shift{models.ShiftMorning, models.ShiftAfternoon}

	var createdCount int64
	for day := 0; day < seedSlotDays; day++ {
		date := today.AddDate(0, 0, day)
		if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
			continue
		}

		for _, unit := range units {
			for _, service := range services {
				for _, shift := range shifts {
					var count int64
					err := db.Model(&models.Slot{}).
						Where("care_unit_id = ? AND service_id = ? AND date = ? AND shift = ?",
							unit.ID, service.ID, date, shift).
						Count(&count).Error
					if err != nil {
						return err
					}
					if count > 0 {
						continue
					}

					slot := models.Slot{
						CareUnitID: unit.ID,
						ServiceID:  service.ID,
						Date:       date,
						Shift:      shift,
						Available:  seedSlotCapacity,
						Total:      seedSlotCapacity,
					}
					if err := db.Create(&slot).Error; err != nil {
						configslog.Log.Error("Slot seed edilemedi",
							zap.Uint("unitID", unit.ID), zap.Uint("serviceID", service.ID), zap.Error(err))
						return err
					}
					createdCount++
				}
			}
		}
	}

	if createdCount > 0 {
		configslog.SLog.Infof("%d adet yeni slot seed edildi.", createdCount)
	} else {
		configslog.SLog.Info("Tüm slotlar zaten mevcut, yeni ekleme yapılmadı.")
	}
	return nil
}
