package main

import (
	"os"
	"os/signal"
	"syscall"

	"randevu.link/configs/configsdatabase"
	"randevu.link/configs/configslog"
	"randevu.link/routes"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	app := fiber.New(fiber.Config{
		AppName:      "Randevu API",
		ErrorHandler: errorHandler,
	})

	routes.SetupRoutes(app)

	// Graceful shutdown: SIGINT/SIGTERM alınınca aktif istekler tamamlanır.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-shutdown
		configslog.SLog.Info("Kapatma sinyali alındı, sunucu durduruluyor...")
		if err := app.Shutdown(); err != nil {
			configslog.Log.Error("Sunucu kapatılırken hata oluştu", zap.Error(err))
		}
	}()

	addr := ":" + envOrDefault("APP_PORT", "5000")
	configslog.SLog.Infof("Sunucu %s adresinde dinlemede...", addr)
	if err := app.Listen(addr); err != nil {
		configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
	}

	configslog.SLog.Info("Sunucu durduruldu.")
}

// errorHandler yakalanmamış hataları tek biçimli JSON gövdesiyle döndürür.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	if code == fiber.StatusInternalServerError {
		configslog.Log.Error("İşlenmemiş istek hatası", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(code).JSON(fiber.Map{"error": "Beklenmeyen bir hata oluştu."})
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
