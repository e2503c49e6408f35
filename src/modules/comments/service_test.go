package comments

import (
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
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

func createUser(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	id := uuid.New()
	user := models.User{
		ID:        id,
		FirstName: "Test",
		LastName:  "User",
		Username:  "user-" + id.String(),
		Email:     id.String() + "@example.com",
		Password:  "hashed",
	}
	require.NoError(t, db.Create(&user).Error)
	return id
}

func createPost(t *testing.T, db *gorm.DB, author uuid.UUID) uuid.UUID {
	t.Helper()
	post := models.Post{ID: uuid.New(), UserID: author, Content: "a post"}
	require.NoError(t, db.Create(&post).Error)
	return post.ID
}

func TestCreate(t *testing.T) {
	db := setupDB(t)
	s := NewService(db)
	author := createUser(t, db)
	postID := createPost(t, db, author)

	comment, err := s.Create(author, postID, CommentInput{Content: "first!"})
	require.NoError(t, err)
	assert.Equal(t, postID, comment.PostID)
	assert.Equal(t, author, comment.UserID)
}

func TestCreate_DanglingPost(t *testing.T) {
	db := setupDB(t)
	s := NewService(db)
	author := createUser(t, db)

	_, err := s.Create(author, uuid.New(), CommentInput{Content: "orphan"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCreate_ContentTooLong(t *testing.T) {
	db := setupDB(t)
	s := NewService(db)
	author := createUser(t, db)
	postID := createPost(t, db, author)

	_, err := s.Create(author, postID, CommentInput{Content: strings.Repeat("a", 256)})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestUpdate_OnlyAuthor(t *testing.T) {
	db := setupDB(t)
	s := NewService(db)
	author := createUser(t, db)
	other := createUser(t, db)
	postID := createPost(t, db, author)

	comment, err := s.Create(author, postID, CommentInput{Content: "original"})
	require.NoError(t, err)

	_, err = s.Update(other, comment.ID, CommentInput{Content: "hijacked"})
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)

	updated, err := s.Update(author, comment.ID, CommentInput{Content: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)
}

func TestDelete_OnlyAuthor(t *testing.T) {
	db := setupDB(t)
	s := NewService(db)
	author := createUser(t, db)
	other := createUser(t, db)
	postID := createPost(t, db, author)

	comment, err := s.Create(author, postID, CommentInput{Content: "temp"})
	require.NoError(t, err)

	err = s.Delete(other, comment.ID)
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)

	var count int64
	require.NoError(t, db.Model(&models.Comment{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	require.NoError(t, s.Delete(author, comment.ID))
	_, err = s.Get(comment.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDelete_RemovesCommentLikes(t *testing.T) {
	db := setupDB(t)
	s := NewService(db)
	author := createUser(t, db)
	postID := createPost(t, db, author)

	comment, err := s.Create(author, postID, CommentInput{Content: "liked"})
	require.NoError(t, err)
	like := models.Like{ID: uuid.New(), UserID: author, CommentID: &comment.ID}
	require.NoError(t, db.Create(&like).Error)

	require.NoError(t, s.Delete(author, comment.ID))

	var likes int64
	require.NoError(t, db.Model(&models.Like{}).Count(&likes).Error)
	assert.Zero(t, likes)
}

func TestListByPost(t *testing.T) {
	db := setupDB(t)
	s := NewService(db)
	author := createUser(t, db)
	postID := createPost(t, db, author)
	otherPost := createPost(t, db, author)

	_, err := s.Create(author, postID, CommentInput{Content: "one"})
	require.NoError(t, err)
	_, err = s.Create(author, postID, CommentInput{Content: "two"})
	require.NoError(t, err)
	_, err = s.Create(author, otherPost, CommentInput{Content: "elsewhere"})
	require.NoError(t, err)

	comments, err := s.ListByPost(postID)
	require.NoError(t, err)
	assert.Len(t, comments, 2)
}
