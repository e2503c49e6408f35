package feed

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/EzIsEzzy/Continue/src/core/database"
	"github.com/EzIsEzzy/Continue/src/core/helpers"
)

// FeedPost is a post enriched with its author and engagement counts.
type FeedPost struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	Username      string    `json:"username"`
	Content       string    `json:"content"`
	LikesCount    int       `json:"likes_count"`
	CommentsCount int       `json:"comments_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// FetchPosts loads the newest posts with their like and comment counts.
func FetchPosts(db *gorm.DB, limit, offset int) ([]FeedPost, error) {
	var out []FeedPost
	err := db.Raw(`
SELECT p.id,
       p.user_id,
       u.username,
       p.content,
       (SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id) AS likes_count,
       (SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id) AS comments_count,
       p.created_at
FROM posts p
JOIN users u ON u.id = p.user_id
ORDER BY p.created_at DESC
LIMIT ? OFFSET ?`, limit, offset).Scan(&out).Error
	return out, err
}

func FetchFeed(c *fiber.Ctx) error {
	if _, err := helpers.ActorID(c); err != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid or missing auth_id", err)
	}

	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	posts, err := FetchPosts(database.DB, limit, offset)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch feed", err)
	}
	return helpers.HandleSuccess(c, fiber.StatusOK, "Feed retrieved successfully", posts)
}
