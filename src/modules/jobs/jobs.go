package jobs

import (
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/EzIsEzzy/Continue/src/core/database"
	"github.com/EzIsEzzy/Continue/src/core/helpers"
	"github.com/EzIsEzzy/Continue/src/core/storage"
)

// Files is the blob store used for uploaded CVs. main wires it at startup;
// it defaults to local disk so the app runs without any bucket configured.
var Files storage.FileStore = storage.NewDisk("storage")

func service() *Service {
	return NewService(database.DB, Files)
}

func CreateJob(c *fiber.Ctx) error {
	actor, err := helpers.ActorID(c)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid or missing auth_id", err)
	}

	body := new(JobInput)
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}

	job, err := service().Create(actor, *body)
	if err != nil {
		return helpers.HandleServiceError(c, err)
	}
	return helpers.HandleSuccess(c, fiber.StatusCreated, "Job posted successfully", job)
}

func GetJob(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid job id", err)
	}

	job, err := service().Get(id)
	if err != nil {
		return helpers.HandleServiceError(c, err)
	}
	return helpers.HandleSuccess(c, fiber.StatusOK, "Job retrieved successfully", job)
}

func UpdateJob(c *fiber.Ctx) error {
	actor, err := helpers.ActorID(c)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid or missing auth_id", err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid job id", err)
	}

	body := new(JobInput)
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}

	job, err := service().Update(actor, id, *body)
	if err != nil {
		return helpers.HandleServiceError(c, err)
	}
	return helpers.HandleSuccess(c, fiber.StatusOK, "Job updated successfully", job)
}

func DeleteJob(c *fiber.Ctx) error {
	actor, err := helpers.ActorID(c)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid or missing auth_id", err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid job id", err)
	}

	if err := service().Delete(actor, id); err != nil {
		return helpers.HandleServiceError(c, err)
	}
	return helpers.HandleSuccess(c, fiber.StatusOK, "Job deleted successfully", nil)
}

func ListJobs(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	jobs, err := service().List(limit, offset)
	if err != nil {
		return helpers.HandleServiceError(c, err)
	}
	return helpers.HandleSuccess(c, fiber.StatusOK, "Jobs retrieved successfully", jobs)
}

// readUpload pulls the uploaded file into memory, reading one byte past the
// size cap so the service can reject oversized files.
func readUpload(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(io.LimitReader(f, MaxCVSize+1))
}
