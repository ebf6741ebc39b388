package middleware

import (
	"ccrm/database"
	"ccrm/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CheckPermission returns a middleware gating the route on one capability.
// Capabilities are seeded per role at signup, so a role change only means
// reseeding rows instead of editing route tables.
func CheckPermission(capability string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized: user identity missing")
		}

		var permission models.Permission
		err := database.Database.Db.
			Where("user_id = ? AND permission = ? AND is_deleted = false", userID, capability).
			First(&permission).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrorResponse(c, fiber.StatusForbidden, "You do not have permission to access this resource!")
			}
			return ErrorResponse(c, fiber.StatusInternalServerError, "Server error while checking permissions!")
		}

		return c.Next()
	}
}

// SeedPermissions inserts the default capability rows for a role.
func SeedPermissions(db *gorm.DB, role string, userID uint) error {
	var records []models.Permission
	for _, p := range models.DefaultPermissions(role) {
		records = append(records, models.Permission{
			UserID:     userID,
			Role:       role,
			Permission: p,
		})
	}
	return db.Create(&records).Error
}
