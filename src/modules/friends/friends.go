package friends

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/EzIsEzzy/Continue/src/core/database"
	"github.com/EzIsEzzy/Continue/src/core/helpers"
)

func RequestFriend(c *fiber.Ctx) error {
	actor, err := helpers.ActorID(c)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid or missing auth_id", err)
	}

	var input struct {
		FriendID string `json:"friend_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}

	target, err := uuid.Parse(input.FriendID)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid friend_id format", err)
	}

	friendship, err := NewService(database.DB).Request(actor, target)
	if err != nil {
		return helpers.HandleServiceError(c, err)
	}
	return helpers.HandleSuccess(c, fiber.StatusCreated, "Friend request sent", friendship)
}

func AcceptFriend(c *fiber.Ctx) error {
	actor, err := helpers.ActorID(c)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid or missing auth_id", err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid friendship id", err)
	}

	friendship, err := NewService(database.DB).Accept(actor, id)
	if err != nil {
		return helpers.HandleServiceError(c, err)
	}
	return helpers.HandleSuccess(c, fiber.StatusOK, "Friend request accepted", friendship)
}

func RemoveFriend(c *fiber.Ctx) error {
	actor, err := helpers.ActorID(c)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid or missing auth_id", err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid friendship id", err)
	}

	if err := NewService(database.DB).Remove(actor, id); err != nil {
		return helpers.HandleServiceError(c, err)
	}
	return helpers.HandleSuccess(c, fiber.StatusOK, "Friend removed successfully", nil)
}

func ListFriends(c *fiber.Ctx) error {
	actor, err := helpers.ActorID(c)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid or missing auth_id", err)
	}

	friendships, err := NewService(database.DB).List(actor)
	if err != nil {
		return helpers.HandleServiceError(c, err)
	}
	return helpers.HandleSuccess(c, fiber.StatusOK, "Friendships retrieved", friendships)
}
