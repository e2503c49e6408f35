package models

import (
	"time"

	"github.com/google/uuid"
)

// JobApplication links a candidate to a job. UploadedCV is the storage key
// of the candidate's CV blob; the blob lives exactly as long as the row (or
// until a replacement CV supersedes it). IsAccepted is nil while the
// publisher has not decided yet.
type JobApplication struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	CandidateID uuid.UUID `gorm:"column:candidate_id;type:uuid;not null" json:"candidate_id"`
	JobID       uuid.UUID `gorm:"column:job_id;type:uuid;not null" json:"job_id"`
	UploadedCV  string    `gorm:"column:uploaded_cv;type:text;not null" json:"uploaded_cv"`
	IsAccepted  *bool     `gorm:"column:is_accepted" json:"is_accepted,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (JobApplication) TableName() string {
	return "job_applications"
}
