package likes

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/EzIsEzzy/Continue/src/core/apperr"
	"github.com/EzIsEzzy/Continue/src/core/database"
	"github.com/EzIsEzzy/Continue/src/core/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedPostAndComment(t *testing.T, db *gorm.DB) (uuid.UUID, uuid.UUID, uuid.UUID) {
	t.Helper()
	author := uuid.New()
	user := models.User{
		ID: author, FirstName: "A", LastName: "B",
		Username: "user-" + author.String(), Email: author.String() + "@example.com", Password: "x",
	}
	require.NoError(t, db.Create(&user).Error)

	post := models.Post{ID: uuid.New(), UserID: author, Content: "post"}
	require.NoError(t, db.Create(&post).Error)
	comment := models.Comment{ID: uuid.New(), PostID: post.ID, UserID: author, Content: "comment"}
	require.NoError(t, db.Create(&comment).Error)

	return author, post.ID, comment.ID
}

func TestCreate_PostLike(t *testing.T) {
	db := setupDB(t)
	s := NewService(db)
	user, postID, _ := seedPostAndComment(t, db)

	like, err := s.Create(user, LikeInput{PostID: &postID})
	require.NoError(t, err)
	require.NotNil(t, like.PostID)
	assert.Equal(t, postID, *like.PostID)
	assert.Nil(t, like.CommentID)
}

func TestCreate_DuplicateIsConflict(t *testing.T) {
	db := setupDB(t)
	s := NewService(db)
	user, postID, commentID := seedPostAndComment(t, db)

	_, err := s.Create(user, LikeInput{PostID: &postID})
	require.NoError(t, err)
	_, err = s.Create(user, LikeInput{PostID: &postID})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	// Exactly one like stored for the pair.
	var count int64
	require.NoError(t, db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// A like on the post does not block a like on one of its comments.
	_, err = s.Create(user, LikeInput{CommentID: &commentID})
	require.NoError(t, err)
	_, err = s.Create(user, LikeInput{CommentID: &commentID})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestCreate_ExactlyOneTarget(t *testing.T) {
	db := setupDB(t)
	s := NewService(db)
	user, postID, commentID := seedPostAndComment(t, db)

	_, err := s.Create(user, LikeInput{})
	_, isValidation := apperr.AsValidation(err)
	assert.True(t, isValidation)

	_, err = s.Create(user, LikeInput{PostID: &postID, CommentID: &commentID})
	_, isValidation = apperr.AsValidation(err)
	assert.True(t, isValidation)
}

func TestCreate_DanglingTarget(t *testing.T) {
	db := setupDB(t)
	s := NewService(db)
	user, _, _ := seedPostAndComment(t, db)

	missing := uuid.New()
	_, err := s.Create(user, LikeInput{PostID: &missing})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = s.Create(user, LikeInput{CommentID: &missing})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDelete_ByTarget(t *testing.T) {
	db := setupDB(t)
	s := NewService(db)
	user, postID, _ := seedPostAndComment(t, db)

	_, err := s.Create(user, LikeInput{PostID: &postID})
	require.NoError(t, err)

	require.NoError(t, s.Delete(user, LikeInput{PostID: &postID}))

	var count int64
	require.NoError(t, db.Model(&models.Like{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDelete_OnlyOwnLike(t *testing.T) {
	db := setupDB(t)
	s := NewService(db)
	user, postID, _ := seedPostAndComment(t, db)
	other := uuid.New()

	_, err := s.Create(user, LikeInput{PostID: &postID})
	require.NoError(t, err)

	// The delete is scoped to the actor's own like; another user's call
	// matches nothing.
	err = s.Delete(other, LikeInput{PostID: &postID})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Like{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCountForPost(t *testing.T) {
	db := setupDB(t)
	s := NewService(db)
	user, postID, _ := seedPostAndComment(t, db)

	count, err := s.CountForPost(postID)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = s.Create(user, LikeInput{PostID: &postID})
	require.NoError(t, err)

	count, err = s.CountForPost(postID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
