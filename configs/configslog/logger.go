package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log yapılandırılmış (structured) loglama için global zap logger.
// SLog ise printf tarzı kullanım için sugared versiyonudur.
var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

// InitLogger global loggerları başlatır. APP_ENV=production ise JSON çıktı,
// aksi halde geliştirme (console) çıktısı kullanılır.
func InitLogger() {
	var cfg zap.Config
	if os.Getenv("APP_ENV") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		// Logger kurulamazsa uygulamanın devam etmesinin anlamı yok.
		panic("logger başlatılamadı: " + err.Error())
	}

	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger buffer'daki log kayıtlarını flush eder. main'de defer ile çağrılmalı.
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
