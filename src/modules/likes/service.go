package likes

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/EzIsEzzy/Continue/src/core/apperr"
	"github.com/EzIsEzzy/Continue/src/core/models"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// LikeInput carries exactly one target reference.
type LikeInput struct {
	PostID    *uuid.UUID `json:"post_id,omitempty"`
	CommentID *uuid.UUID `json:"comment_id,omitempty"`
}

func (in LikeInput) validate() error {
	if (in.PostID == nil) == (in.CommentID == nil) {
		return apperr.Validation("post_id", "exactly one of post_id or comment_id is required")
	}
	return nil
}

// Create stores a like for the actor on the given post or comment. The
// duplicate check runs inside the transaction and is backed by the unique
// indexes, so a concurrent identical request cannot slip a second row in.
func (s *Service) Create(actor uuid.UUID, in LikeInput) (*models.Like, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	like := models.Like{
		ID:        uuid.New(),
		UserID:    actor,
		PostID:    in.PostID,
		CommentID: in.CommentID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if in.PostID != nil {
			if err := tx.Model(&models.Post{}).Where("id = ?", *in.PostID).Count(&count).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Model(&models.Comment{}).Where("id = ?", *in.CommentID).Count(&count).Error; err != nil {
				return err
			}
		}
		if count == 0 {
			return apperr.ErrNotFound
		}

		var existing int64
		if err := s.targetScope(tx, actor, in).Model(&models.Like{}).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return apperr.ErrConflict
		}

		return tx.Create(&like).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, apperr.ErrConflict
	}
	if err != nil {
		return nil, err
	}
	return &like, nil
}

// Delete removes the actor's like on the given target.
func (s *Service) Delete(actor uuid.UUID, in LikeInput) error {
	if err := in.validate(); err != nil {
		return err
	}

	result := s.targetScope(s.db, actor, in).Delete(&models.Like{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (s *Service) targetScope(tx *gorm.DB, actor uuid.UUID, in LikeInput) *gorm.DB {
	q := tx.Where("user_id = ?", actor)
	if in.PostID != nil {
		return q.Where("post_id = ?", *in.PostID)
	}
	return q.Where("comment_id = ?", *in.CommentID)
}

// CountForPost returns the number of likes on a post.
func (s *Service) CountForPost(postID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
