package models

import (
	"time"

	"github.com/google/uuid"
)

// Like targets exactly one of a post or a comment. The composite unique
// indexes guarantee at most one like per (user, target) pair at the store
// level, so a concurrent duplicate insert fails instead of racing past the
// application check.
type Like struct {
	ID        uuid.UUID  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_likes_user_post;uniqueIndex:idx_likes_user_comment" json:"user_id"`
	PostID    *uuid.UUID `gorm:"column:post_id;type:uuid;uniqueIndex:idx_likes_user_post" json:"post_id,omitempty"`
	CommentID *uuid.UUID `gorm:"column:comment_id;type:uuid;uniqueIndex:idx_likes_user_comment" json:"comment_id,omitempty"`
	CreatedAt time.Time  `gorm:"column:created_at;type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}
