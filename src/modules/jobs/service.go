package jobs

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/EzIsEzzy/Continue/src/core/apperr"
	"github.com/EzIsEzzy/Continue/src/core/authz"
	"github.com/EzIsEzzy/Continue/src/core/helpers"
	"github.com/EzIsEzzy/Continue/src/core/models"
	"github.com/EzIsEzzy/Continue/src/core/storage"
)

// Service owns job postings and their applications. Files holds the CV
// blobs; a blob is released exactly when the row pointing at it goes away.
type Service struct {
	db    *gorm.DB
	files storage.FileStore
}

func NewService(db *gorm.DB, files storage.FileStore) *Service {
	return &Service{db: db, files: files}
}

type JobInput struct {
	Title       string   `json:"title" validate:"required,max=255"`
	Description string   `json:"description" validate:"required"`
	Salary      *float64 `json:"salary,omitempty"`
	Location    *string  `json:"location,omitempty" validate:"omitempty,max=255"`
}

func (s *Service) Create(actor uuid.UUID, in JobInput) (*models.Job, error) {
	if err := helpers.Validate(in); err != nil {
		return nil, err
	}

	job := models.Job{
		ID:          uuid.New(),
		PublisherID: actor,
		Title:       in.Title,
		Description: in.Description,
		Salary:      in.Salary,
		Location:    in.Location,
	}
	if err := s.db.Create(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *Service) Get(id uuid.UUID) (*models.Job, error) {
	job := new(models.Job)
	if err := s.db.First(job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return job, nil
}

func (s *Service) Update(actor, id uuid.UUID, in JobInput) (*models.Job, error) {
	job, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(actor, job.PublisherID, authz.Owner); err != nil {
		return nil, err
	}
	if err := helpers.Validate(in); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"title":       in.Title,
		"description": in.Description,
		"salary":      in.Salary,
		"location":    in.Location,
	}
	if err := s.db.Model(job).Updates(updates).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// Delete removes the job posting together with its applications and their
// stored CVs. Blobs are released only after the rows are gone.
func (s *Service) Delete(actor, id uuid.UUID) error {
	job, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := authz.Authorize(actor, job.PublisherID, authz.Owner); err != nil {
		return err
	}

	var cvKeys []string
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.JobApplication{}).Where("job_id = ?", id).Pluck("uploaded_cv", &cvKeys).Error; err != nil {
			return err
		}
		if err := tx.Where("job_id = ?", id).Delete(&models.JobApplication{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Job{}, "id = ?", id).Error
	})
	if err != nil {
		return err
	}

	for _, key := range cvKeys {
		_ = s.files.Delete(key)
	}
	return nil
}

func (s *Service) List(limit, offset int) ([]models.Job, error) {
	var out []models.Job
	err := s.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&out).Error
	return out, err
}
