package comments

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/EzIsEzzy/Continue/src/core/database"
	"github.com/EzIsEzzy/Continue/src/core/helpers"
)

func CreateComment(c *fiber.Ctx) error {
	actor, err := helpers.ActorID(c)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid or missing auth_id", err)
	}

	postID, err := uuid.Parse(c.Params("post_id"))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid post id", err)
	}

	body := new(CommentInput)
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}

	comment, err := NewService(database.DB).Create(actor, postID, *body)
	if err != nil {
		return helpers.HandleServiceError(c, err)
	}
	return helpers.HandleSuccess(c, fiber.StatusCreated, "Comment added successfully", comment)
}

func UpdateComment(c *fiber.Ctx) error {
	actor, err := helpers.ActorID(c)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid or missing auth_id", err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid comment id", err)
	}

	body := new(CommentInput)
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}

	comment, err := NewService(database.DB).Update(actor, id, *body)
	if err != nil {
		return helpers.HandleServiceError(c, err)
	}
	return helpers.HandleSuccess(c, fiber.StatusOK, "Comment updated successfully", comment)
}

func DeleteComment(c *fiber.Ctx) error {
	actor, err := helpers.ActorID(c)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid or missing auth_id", err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid comment id", err)
	}

	if err := NewService(database.DB).Delete(actor, id); err != nil {
		return helpers.HandleServiceError(c, err)
	}
	return helpers.HandleSuccess(c, fiber.StatusOK, "Comment deleted successfully", nil)
}

func ListComments(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("post_id"))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid post id", err)
	}

	comments, err := NewService(database.DB).ListByPost(postID)
	if err != nil {
		return helpers.HandleServiceError(c, err)
	}
	return helpers.HandleSuccess(c, fiber.StatusOK, "Comments retrieved successfully", comments)
}
