package configsdatabase

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"randevu.link/configs/configslog"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDB .env dosyasındaki ayarlarla PostgreSQL bağlantısını kurar.
// TranslateError açık olduğu için unique constraint ihlalleri
// gorm.ErrDuplicatedKey olarak yakalanabilir (rezervasyon çakışmaları bunu kullanır).
func InitDB() {
	if err := godotenv.Load(); err != nil {
		configslog.SLog.Info(".env dosyası bulunamadı, ortam değişkenleri kullanılacak.")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			envOrDefault("DB_HOST", "localhost"),
			envOrDefault("DB_USER", "postgres"),
			envOrDefault("DB_PASSWORD", ""),
			envOrDefault("DB_NAME", "randevu"),
			envOrDefault("DB_PORT", "5432"),
			envOrDefault("DB_SSLMODE", "disable"),
		)
	}

	gormCfg := &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	}

	conn, err := gorm.Open(postgres.Open(dsn), gormCfg)
	if err != nil {
		configslog.Log.Fatal("Veritabanı bağlantısı kurulamadı", zap.Error(err))
	}

	sqlDB, err := conn.DB()
	if err != nil {
		configslog.Log.Fatal("Veritabanı bağlantı havuzuna erişilemedi", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(envIntOrDefault("DB_MAX_OPEN_CONNS", 25))
	sqlDB.SetMaxIdleConns(envIntOrDefault("DB_MAX_IDLE_CONNS", 5))
	sqlDB.SetConnMaxLifetime(time.Duration(envIntOrDefault("DB_CONN_MAX_LIFETIME_MIN", 30)) * time.Minute)

	db = conn
	configslog.SLog.Info("Veritabanı bağlantısı başarıyla kuruldu.")
}

// GetDB aktif GORM bağlantısını döndürür. InitDB çağrılmadan kullanılamaz.
func GetDB() *gorm.DB {
	return db
}

// CloseDB bağlantı havuzunu kapatır. main'de defer ile çağrılmalı.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("Veritabanı kapatılırken bağlantıya erişilemedi", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Veritabanı bağlantısı kapatılamadı", zap.Error(err))
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOrDefault(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
