package comments

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/EzIsEzzy/Continue/src/core/apperr"
	"github.com/EzIsEzzy/Continue/src/core/authz"
	"github.com/EzIsEzzy/Continue/src/core/helpers"
	"github.com/EzIsEzzy/Continue/src/core/models"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

type CommentInput struct {
	Content string `json:"content" validate:"required,max=255"`
}

func (s *Service) Create(actor, postID uuid.UUID, in CommentInput) (*models.Comment, error) {
	if err := helpers.Validate(in); err != nil {
		return nil, err
	}

	// The referenced post must exist before anything is written.
	var count int64
	if err := s.db.Model(&models.Post{}).Where("id = ?", postID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, apperr.ErrNotFound
	}

	comment := models.Comment{
		ID:      uuid.New(),
		PostID:  postID,
		UserID:  actor,
		Content: in.Content,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *Service) Get(id uuid.UUID) (*models.Comment, error) {
	comment := new(models.Comment)
	if err := s.db.First(comment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return comment, nil
}

func (s *Service) Update(actor, id uuid.UUID, in CommentInput) (*models.Comment, error) {
	comment, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(actor, comment.UserID, authz.Owner); err != nil {
		return nil, err
	}
	if err := helpers.Validate(in); err != nil {
		return nil, err
	}

	if err := s.db.Model(comment).Update("content", in.Content).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *Service) Delete(actor, id uuid.UUID) error {
	comment, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := authz.Authorize(actor, comment.UserID, authz.Owner); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Comment{}, "id = ?", id).Error
	})
}

func (s *Service) ListByPost(postID uuid.UUID) ([]models.Comment, error) {
	var out []models.Comment
	err := s.db.Where("post_id = ?", postID).Order("created_at ASC").Find(&out).Error
	return out, err
}
