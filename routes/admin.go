package routes

import (
	admin_handlers "randevu.link/handlers/admin" // İsim çakışmasını önlemek için alias
	"randevu.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerAdminRoutes /api/admin altındaki yönetim rotalarını tanımlar.
// Login dışındaki tüm uçlar JWT doğrulamasından geçer.
func registerAdminRoutes(app *fiber.App) {
	// Handler instance'larını başta oluştur
	authHandler := admin_handlers.NewAuthHandler()
	catalogHandler := admin_handlers.NewCatalogHandler()
	slotHandler := admin_handlers.NewSlotHandler()
	bookingHandler := admin_handlers.NewBookingHandler()

	adminGroup := app.Group("/api/admin")
	adminGroup.Post("/login", authHandler.Login) // POST /api/admin/login

	protected := adminGroup.Group("")
	protected.Use(middlewares.AdminAuthMiddleware())

	// --- Katalog ---
	protected.Get("/cities", catalogHandler.ListCities)        // GET  /api/admin/cities
	protected.Post("/cities", catalogHandler.CreateCity)       // POST /api/admin/cities
	protected.Get("/ubs", catalogHandler.ListUnits)            // GET  /api/admin/ubs
	protected.Post("/ubs", catalogHandler.CreateUnit)          // POST /api/admin/ubs
	protected.Get("/services", catalogHandler.ListServices)    // GET  /api/admin/services
	protected.Post("/services", catalogHandler.CreateService)  // POST /api/admin/services
	protected.Post("/ubs-services", catalogHandler.AssignService) // POST /api/admin/ubs-services

	// --- Kontenjan Defteri ---
	protected.Get("/slots", slotHandler.ListSlots)   // GET  /api/admin/slots
	protected.Post("/slots", slotHandler.CreateSlot) // POST /api/admin/slots

	// --- Randevular ---
	protected.Get("/appointments", bookingHandler.ListBookings)                    // GET /api/admin/appointments
	protected.Put("/appointments/complete/:id", bookingHandler.CompleteBooking)    // PUT /api/admin/appointments/complete/{id}
	protected.Put("/appointments/cancel/:id", bookingHandler.CancelBooking)        // PUT /api/admin/appointments/cancel/{id}

	// --- Yönetici Hesapları (yalnızca SuperAdmin) ---
	protected.Post("/create-admin", middlewares.RequireSuperAdmin(), authHandler.CreateAdmin) // POST /api/admin/create-admin
}
