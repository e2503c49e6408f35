package jobs

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/EzIsEzzy/Continue/src/core/helpers"
)

func ApplyToJob(c *fiber.Ctx) error {
	actor, err := helpers.ActorID(c)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid or missing auth_id", err)
	}

	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid job id", err)
	}

	header, err := c.FormFile("uploaded_cv")
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "A CV file is required", err)
	}
	cv, err := readUpload(header)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Failed to read CV file", err)
	}

	application, err := service().Apply(actor, jobID, cv)
	if err != nil {
		return helpers.HandleServiceError(c, err)
	}
	return helpers.HandleSuccess(c, fiber.StatusCreated, "Job application submitted successfully", application)
}

func UpdateApplication(c *fiber.Ctx) error {
	actor, err := helpers.ActorID(c)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid or missing auth_id", err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid application id", err)
	}

	// The replacement CV is optional; with no file attached the
	// application is returned unchanged.
	header, err := c.FormFile("uploaded_cv")
	if err != nil {
		application, err := service().GetApplication(actor, id)
		if err != nil {
			return helpers.HandleServiceError(c, err)
		}
		return helpers.HandleSuccess(c, fiber.StatusOK, "Application unchanged", application)
	}

	cv, err := readUpload(header)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Failed to read CV file", err)
	}

	application, err := service().UpdateApplication(actor, id, cv)
	if err != nil {
		return helpers.HandleServiceError(c, err)
	}
	return helpers.HandleSuccess(c, fiber.StatusOK, "Application updated successfully", application)
}

func WithdrawApplication(c *fiber.Ctx) error {
	actor, err := helpers.ActorID(c)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid or missing auth_id", err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid application id", err)
	}

	if err := service().WithdrawApplication(actor, id); err != nil {
		return helpers.HandleServiceError(c, err)
	}
	return helpers.HandleSuccess(c, fiber.StatusOK, "Job application withdrawn successfully", nil)
}

func DecideApplication(c *fiber.Ctx) error {
	actor, err := helpers.ActorID(c)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid or missing auth_id", err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid application id", err)
	}

	var input struct {
		IsAccepted *bool `json:"is_accepted"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}
	if input.IsAccepted == nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "is_accepted is required", nil)
	}

	application, err := service().Decide(actor, id, *input.IsAccepted)
	if err != nil {
		return helpers.HandleServiceError(c, err)
	}
	return helpers.HandleSuccess(c, fiber.StatusOK, "Application status updated successfully", application)
}

func ListApplications(c *fiber.Ctx) error {
	actor, err := helpers.ActorID(c)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid or missing auth_id", err)
	}

	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid job id", err)
	}

	applications, err := service().ListApplications(actor, jobID)
	if err != nil {
		return helpers.HandleServiceError(c, err)
	}
	return helpers.HandleSuccess(c, fiber.StatusOK, "Applications retrieved successfully", applications)
}

func DownloadCV(c *fiber.Ctx) error {
	actor, err := helpers.ActorID(c)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid or missing auth_id", err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid application id", err)
	}

	cv, err := service().OpenCV(actor, id)
	if err != nil {
		return helpers.HandleServiceError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.SendStream(cv)
}
