package posts

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/EzIsEzzy/Continue/src/core/apperr"
	"github.com/EzIsEzzy/Continue/src/core/authz"
	"github.com/EzIsEzzy/Continue/src/core/helpers"
	"github.com/EzIsEzzy/Continue/src/core/models"
)

// Service owns post mutations. Every write checks ownership before touching
// the store and runs inside a transaction.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

type PostInput struct {
	Content string `json:"content" validate:"required,max=255"`
}

func (s *Service) Create(actor uuid.UUID, in PostInput) (*models.Post, error) {
	if err := helpers.Validate(in); err != nil {
		return nil, err
	}

	post := models.Post{
		ID:      uuid.New(),
		UserID:  actor,
		Content: in.Content,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *Service) Get(id uuid.UUID) (*models.Post, error) {
	post := new(models.Post)
	if err := s.db.First(post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *Service) Update(actor, id uuid.UUID, in PostInput) (*models.Post, error) {
	post, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(actor, post.UserID, authz.Owner); err != nil {
		return nil, err
	}
	if err := helpers.Validate(in); err != nil {
		return nil, err
	}

	if err := s.db.Model(post).Update("content", in.Content).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes the post together with its comments and every like
// pointing at the post or at one of its comments.
func (s *Service) Delete(actor, id uuid.UUID) error {
	post, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := authz.Authorize(actor, post.UserID, authz.Owner); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		commentIDs := tx.Model(&models.Comment{}).Select("id").Where("post_id = ?", id)
		if err := tx.Where("post_id = ? OR comment_id IN (?)", id, commentIDs).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, "id = ?", id).Error
	})
}

func (s *Service) List(limit, offset int) ([]models.Post, error) {
	var out []models.Post
	err := s.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&out).Error
	return out, err
}
