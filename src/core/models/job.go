package models

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	PublisherID uuid.UUID `gorm:"column:publisher_id;type:uuid;not null" json:"publisher_id"`
	Title       string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Description string    `gorm:"column:description;type:text;not null" json:"description"`
	Salary      *float64  `gorm:"column:salary;type:numeric" json:"salary,omitempty"`
	Location    *string   `gorm:"column:location;type:varchar(255)" json:"location,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Job) TableName() string {
	return "jobs"
}
