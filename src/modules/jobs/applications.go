package jobs

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/EzIsEzzy/Continue/src/core/apperr"
	"github.com/EzIsEzzy/Continue/src/core/authz"
	"github.com/EzIsEzzy/Continue/src/core/models"
)

// MaxCVSize caps uploaded CVs at 2MB.
const MaxCVSize = 2 << 20

const cvDir = "cvs"

func validateCV(data []byte) error {
	if len(data) == 0 {
		return apperr.Validation("uploaded_cv", "a CV file is required")
	}
	if len(data) > MaxCVSize {
		return apperr.Validation("uploaded_cv", "file must not exceed 2MB")
	}
	if contentType := http.DetectContentType(data); contentType != "application/pdf" {
		return apperr.Validation("uploaded_cv", "file must be a PDF")
	}
	return nil
}

// Apply submits a candidate's CV for a job. Publishers cannot apply to
// their own postings. The blob is stored before the row is written; if the
// insert fails the fresh blob is removed again.
func (s *Service) Apply(actor, jobID uuid.UUID, cv []byte) (*models.JobApplication, error) {
	job, err := s.Get(jobID)
	if err != nil {
		return nil, err
	}
	if actor == job.PublisherID {
		return nil, apperr.ErrUnauthorized
	}
	if err := validateCV(cv); err != nil {
		return nil, err
	}

	key, err := s.files.Save(cvDir, ".pdf", bytes.NewReader(cv))
	if err != nil {
		return nil, err
	}

	application := models.JobApplication{
		ID:          uuid.New(),
		CandidateID: actor,
		JobID:       jobID,
		UploadedCV:  key,
	}
	if err := s.db.Create(&application).Error; err != nil {
		_ = s.files.Delete(key)
		return nil, err
	}
	return &application, nil
}

// UpdateApplication replaces the application's CV. The old blob stays in
// place until the row points at the new one; on any failure before that the
// old CV remains retrievable.
func (s *Service) UpdateApplication(actor, id uuid.UUID, cv []byte) (*models.JobApplication, error) {
	application, err := s.GetApplication(actor, id)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(actor, application.CandidateID, authz.Owner); err != nil {
		return nil, err
	}
	if err := validateCV(cv); err != nil {
		return nil, err
	}

	newKey, err := s.files.Save(cvDir, ".pdf", bytes.NewReader(cv))
	if err != nil {
		return nil, err
	}

	oldKey := application.UploadedCV
	if err := s.db.Model(application).Update("uploaded_cv", newKey).Error; err != nil {
		_ = s.files.Delete(newKey)
		return nil, err
	}
	application.UploadedCV = newKey

	_ = s.files.Delete(oldKey)
	return application, nil
}

// WithdrawApplication removes the candidate's application and releases the
// stored CV.
func (s *Service) WithdrawApplication(actor, id uuid.UUID) error {
	application, err := s.GetApplication(actor, id)
	if err != nil {
		return err
	}
	if err := authz.Authorize(actor, application.CandidateID, authz.Owner); err != nil {
		return err
	}

	if err := s.db.Delete(&models.JobApplication{}, "id = ?", id).Error; err != nil {
		return err
	}
	return s.files.Delete(application.UploadedCV)
}

// Decide sets the publisher's verdict on an application. Only the publisher
// of the applied-to job may decide.
func (s *Service) Decide(actor, id uuid.UUID, accepted bool) (*models.JobApplication, error) {
	application, err := s.getApplication(id)
	if err != nil {
		return nil, err
	}
	job, err := s.Get(application.JobID)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(actor, job.PublisherID, authz.PublisherOfParent); err != nil {
		return nil, err
	}

	if err := s.db.Model(application).Update("is_accepted", accepted).Error; err != nil {
		return nil, err
	}
	application.IsAccepted = &accepted
	return application, nil
}

// ListApplications returns every application for a job. Reserved for the
// job's publisher.
func (s *Service) ListApplications(actor, jobID uuid.UUID) ([]models.JobApplication, error) {
	job, err := s.Get(jobID)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(actor, job.PublisherID, authz.Owner); err != nil {
		return nil, err
	}

	var out []models.JobApplication
	err = s.db.Where("job_id = ?", jobID).Order("created_at DESC").Find(&out).Error
	return out, err
}

// GetApplication fetches one application, visible to its candidate and to
// the job's publisher.
func (s *Service) GetApplication(actor, id uuid.UUID) (*models.JobApplication, error) {
	application, err := s.getApplication(id)
	if err != nil {
		return nil, err
	}
	if application.CandidateID == actor {
		return application, nil
	}
	job, err := s.Get(application.JobID)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(actor, job.PublisherID, authz.PublisherOfParent); err != nil {
		return nil, err
	}
	return application, nil
}

// OpenCV streams the stored CV of an application, with the same visibility
// as GetApplication.
func (s *Service) OpenCV(actor, id uuid.UUID) (io.ReadCloser, error) {
	application, err := s.GetApplication(actor, id)
	if err != nil {
		return nil, err
	}
	return s.files.Open(application.UploadedCV)
}

func (s *Service) getApplication(id uuid.UUID) (*models.JobApplication, error) {
	application := new(models.JobApplication)
	if err := s.db.First(application, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return application, nil
}
