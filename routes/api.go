package routes

import (
	api_handlers "randevu.link/handlers/api" // İsim çakışmasını önlemek için alias

	"github.com/gofiber/fiber/v2"
)

// registerAuthRoutes /api/auth altındaki vatandaş kimlik rotalarını tanımlar.
// Vatandaş tarafında oturum yoktur; kimlik numarası + doğum tarihi yeterlidir.
func registerAuthRoutes(app *fiber.App) {
	authHandler := api_handlers.NewAuthHandler()

	authGroup := app.Group("/api/auth")
	authGroup.Post("/login", authHandler.Login)            // POST /api/auth/login
	authGroup.Put("/update-user", authHandler.UpdateUser)  // PUT  /api/auth/update-user
	authGroup.Get("/user/:id", authHandler.GetUser)        // GET  /api/auth/user/{id}
}

// registerAppointmentRoutes /api/appointments altındaki randevu akışını tanımlar.
func registerAppointmentRoutes(app *fiber.App) {
	appointmentHandler := api_handlers.NewAppointmentHandler()

	appointmentGroup := app.Group("/api/appointments")
	appointmentGroup.Get("/cities", appointmentHandler.GetCities)                    // GET  /api/appointments/cities
	appointmentGroup.Get("/ubs/:cityID", appointmentHandler.GetUnitsByCity)          // GET  /api/appointments/ubs/{cityID}
	appointmentGroup.Get("/services/:unitID", appointmentHandler.GetServicesByUnit)  // GET  /api/appointments/services/{unitID}
	appointmentGroup.Post("/available-dates", appointmentHandler.AvailableDates)     // POST /api/appointments/available-dates
	appointmentGroup.Post("/create", appointmentHandler.Create)                      // POST /api/appointments/create
	appointmentGroup.Get("/user/:citizenID", appointmentHandler.GetUserAppointments) // GET  /api/appointments/user/{citizenID}
	appointmentGroup.Put("/cancel/:id", appointmentHandler.Cancel)                   // PUT  /api/appointments/cancel/{id}
}
