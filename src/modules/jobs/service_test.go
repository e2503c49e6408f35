package jobs

import (
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
	"github.com/EzIsEzzy/Continue/src/core/storage"
)

func setupService(t *testing.T) (*Service, *gorm.DB, *storage.Disk) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	files := storage.NewDisk(t.TempDir())
	return NewService(db, files), db, files
}

func createUser(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	id := uuid.New()
	user := models.User{
		ID: id, FirstName: "Test", LastName: "User",
		Username: "user-" + id.String(), Email: id.String() + "@example.com", Password: "x",
	}
	require.NoError(t, db.Create(&user).Error)
	return id
}

func TestCreateJob(t *testing.T) {
	s, db, _ := setupService(t)
	publisher := createUser(t, db)

	salary := 90000.0
	location := "Berlin"
	job, err := s.Create(publisher, JobInput{
		Title:       "Engineer",
		Description: "Build things",
		Salary:      &salary,
		Location:    &location,
	})
	require.NoError(t, err)
	assert.Equal(t, publisher, job.PublisherID)
	require.NotNil(t, job.Salary)
	assert.Equal(t, 90000.0, *job.Salary)
}

func TestCreateJob_OptionalFields(t *testing.T) {
	s, db, _ := setupService(t)
	publisher := createUser(t, db)

	job, err := s.Create(publisher, JobInput{Title: "Engineer", Description: "Build things"})
	require.NoError(t, err)
	assert.Nil(t, job.Salary)
	assert.Nil(t, job.Location)
}

func TestCreateJob_RequiredFields(t *testing.T) {
	s, db, _ := setupService(t)
	publisher := createUser(t, db)

	_, err := s.Create(publisher, JobInput{Title: "Engineer"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	_, err = s.Create(publisher, JobInput{Description: "Build things"})
	require.ErrorAs(t, err, &verrs)
}

func TestUpdateJob_OnlyPublisher(t *testing.T) {
	s, db, _ := setupService(t)
	publisher := createUser(t, db)
	other := createUser(t, db)

	job, err := s.Create(publisher, JobInput{Title: "Engineer", Description: "Build things"})
	require.NoError(t, err)

	_, err = s.Update(other, job.ID, JobInput{Title: "Hijacked", Description: "x"})
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)

	stored, err := s.Get(job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Engineer", stored.Title)

	updated, err := s.Update(publisher, job.ID, JobInput{Title: "Senior Engineer", Description: "Build more"})
	require.NoError(t, err)
	assert.Equal(t, "Senior Engineer", updated.Title)
}

func TestUpdateJob_ClearsOptionalFields(t *testing.T) {
	s, db, _ := setupService(t)
	publisher := createUser(t, db)

	salary := 50000.0
	job, err := s.Create(publisher, JobInput{Title: "Engineer", Description: "d", Salary: &salary})
	require.NoError(t, err)

	_, err = s.Update(publisher, job.ID, JobInput{Title: "Engineer", Description: "d"})
	require.NoError(t, err)

	stored, err := s.Get(job.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Salary)
}

func TestDeleteJob_OnlyPublisher(t *testing.T) {
	s, db, _ := setupService(t)
	publisher := createUser(t, db)
	other := createUser(t, db)

	job, err := s.Create(publisher, JobInput{Title: "Engineer", Description: "d"})
	require.NoError(t, err)

	err = s.Delete(other, job.ID)
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	_, err = s.Get(job.ID)
	require.NoError(t, err)

	require.NoError(t, s.Delete(publisher, job.ID))
	_, err = s.Get(job.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDeleteJob_ReleasesApplicationCVs(t *testing.T) {
	s, db, files := setupService(t)
	publisher := createUser(t, db)
	candidate := createUser(t, db)

	job, err := s.Create(publisher, JobInput{Title: "Engineer", Description: "d"})
	require.NoError(t, err)
	application, err := s.Apply(candidate, job.ID, pdfBytes())
	require.NoError(t, err)

	require.NoError(t, s.Delete(publisher, job.ID))

	var count int64
	require.NoError(t, db.Model(&models.JobApplication{}).Count(&count).Error)
	assert.Zero(t, count)

	_, err = files.Open(application.UploadedCV)
	assert.Error(t, err)
}

func TestListJobs(t *testing.T) {
	s, db, _ := setupService(t)
	publisher := createUser(t, db)

	for _, title := range []string{"One", "Two", "Three"} {
		_, err := s.Create(publisher, JobInput{Title: title, Description: "d"})
		require.NoError(t, err)
	}

	listed, err := s.List(10, 0)
	require.NoError(t, err)
	assert.Len(t, listed, 3)
}
