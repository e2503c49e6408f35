package users

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/EzIsEzzy/Continue/src/core/database"
	"github.com/EzIsEzzy/Continue/src/core/helpers"
	"github.com/EzIsEzzy/Continue/src/core/models"
)

func GetProfile(c *fiber.Ctx) error {
	db := database.DB

	actor, err := helpers.ActorID(c)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid or missing auth_id", err)
	}

	user := new(models.User)
	if err := db.First(user, "id = ?", actor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.HandleError(c, fiber.StatusNotFound, "User profile not found", err)
		}
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch user", err)
	}

	user.Password = ""
	return helpers.HandleSuccess(c, fiber.StatusOK, "User profile retrieved successfully", user)
}

// SearchUsers finds users by username or name, for picking friend targets.
func SearchUsers(c *fiber.Ctx) error {
	db := database.DB

	if _, err := helpers.ActorID(c); err != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid or missing auth_id", err)
	}

	query := c.Query("q")
	if query == "" {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Missing search query", nil)
	}

	var found []models.User
	pattern := "%" + query + "%"
	err := db.Where("username LIKE ? OR first_name LIKE ? OR last_name LIKE ?", pattern, pattern, pattern).
		Limit(20).
		Find(&found).Error
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to search users", err)
	}

	for i := range found {
		found[i].Password = ""
	}
	return helpers.HandleSuccess(c, fiber.StatusOK, "Users retrieved successfully", found)
}
