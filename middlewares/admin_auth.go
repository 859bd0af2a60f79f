package middlewares

import (
	"strings"

	"randevu.link/models"
	"randevu.link/services"

	"github.com/gofiber/fiber/v2"
)

// AdminAuthMiddleware Authorization başlığındaki Bearer JWT'yi doğrular ve
// claim'leri Locals'a koyar. Belirteç yoksa veya geçersizse 401 döner.
func AdminAuthMiddleware() fiber.Handler {
	adminService := services.NewAdminService()

	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Oturum belirteci gerekli."})
		}

		claims, err := adminService.VerifyToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}

		c.Locals("adminID", claims.AdminID)
		c.Locals("adminRole", claims.Role)
		c.Locals("adminUnitID", claims.CareUnitID)
		return c.Next()
	}
}

// RequireSuperAdmin yalnızca SuperAdmin rolünün geçebileceği uçlar için
// AdminAuthMiddleware sonrasında kullanılır.
func RequireSuperAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("adminRole").(models.AdminRole)
		if role != models.AdminRoleSuper {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Bu işlem için yetkiniz yok."})
		}
		return c.Next()
	}
}

// AdminUnitScope UnitManager rolündeki yöneticinin bağlı olduğu birimi döndürür.
// SuperAdmin için 0 döner; filtre uygulanmaz.
func AdminUnitScope(c *fiber.Ctx) uint {
	role, _ := c.Locals("adminRole").(models.AdminRole)
	if role != models.AdminRoleUnitManager {
		return 0
	}
	if unitID, ok := c.Locals("adminUnitID").(*uint); ok && unitID != nil {
		return *unitID
	}
	return 0
}
