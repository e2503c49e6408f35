package friends

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/EzIsEzzy/Continue/src/core/apperr"
	"github.com/EzIsEzzy/Continue/src/core/models"
)

// Service enforces the friendship lifecycle: no row, a pending request, an
// accepted friendship. There is at most one row per user pair regardless of
// who asked first.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// FriendshipView is a friendship row annotated with its derived state.
type FriendshipView struct {
	models.Friendship
	Status models.FriendshipStatus `json:"status"`
}

// Request creates a pending friendship from actor to target. A row in
// either direction blocks a second request; the check runs both ways inside
// the transaction so swapping the ids client-side cannot bypass it.
func (s *Service) Request(actor, target uuid.UUID) (*models.Friendship, error) {
	if actor == target {
		return nil, apperr.Validation("friend_id", "cannot add yourself as a friend")
	}

	friendship := models.Friendship{
		ID:       uuid.New(),
		UserID:   actor,
		FriendID: target,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var users int64
		if err := tx.Model(&models.User{}).Where("id = ?", target).Count(&users).Error; err != nil {
			return err
		}
		if users == 0 {
			return apperr.ErrNotFound
		}

		var existing int64
		err := tx.Model(&models.Friendship{}).
			Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
				actor, target, target, actor).
			Count(&existing).Error
		if err != nil {
			return err
		}
		if existing > 0 {
			return apperr.ErrConflict
		}

		return tx.Create(&friendship).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, apperr.ErrConflict
	}
	if err != nil {
		return nil, err
	}
	return &friendship, nil
}

// Accept marks a pending request as accepted. Only the recipient may
// accept, and only while the request is still pending; re-accepting an
// accepted friendship is rejected rather than ignored.
func (s *Service) Accept(actor, id uuid.UUID) (*models.Friendship, error) {
	friendship, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if friendship.FriendID != actor {
		return nil, apperr.ErrUnauthorized
	}
	if friendship.Status() != models.FriendshipPending {
		return nil, apperr.ErrInvalidState
	}

	now := time.Now()
	if err := s.db.Model(friendship).Update("accepted_at", &now).Error; err != nil {
		return nil, err
	}
	friendship.AcceptedAt = &now
	return friendship, nil
}

// Remove deletes the friendship row. Either side may remove it: the
// requester cancels, the recipient declines, and once accepted both can
// unfriend.
func (s *Service) Remove(actor, id uuid.UUID) error {
	friendship, err := s.get(id)
	if err != nil {
		return err
	}
	if !friendship.Involves(actor) {
		return apperr.ErrUnauthorized
	}

	return s.db.Delete(&models.Friendship{}, "id = ?", id).Error
}

// List returns every friendship the actor takes part in, annotated with its
// derived state.
func (s *Service) List(actor uuid.UUID) ([]FriendshipView, error) {
	var rows []models.Friendship
	err := s.db.Where("user_id = ? OR friend_id = ?", actor, actor).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]FriendshipView, 0, len(rows))
	for i := range rows {
		out = append(out, FriendshipView{Friendship: rows[i], Status: rows[i].Status()})
	}
	return out, nil
}

func (s *Service) get(id uuid.UUID) (*models.Friendship, error) {
	friendship := new(models.Friendship)
	if err := s.db.First(friendship, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return friendship, nil
}
