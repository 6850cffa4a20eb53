package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/inkpost/inkpost/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return db, mock
}

func TestPostRepository_GetByPublicID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM `posts`").
		WithArgs("missing", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByPublicID(context.Background(), "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_GetByPublicID_Found(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db)

	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT (.+) FROM `posts`").
		WithArgs("pid-1", 1).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "public_id", "slug", "title", "author_name", "content", "created_by", "created_at",
		}).AddRow(7, "pid-1", "hello-world", "Hello World", "Alice", "body", 3, created))
	mock.ExpectQuery("SELECT (.+) FROM `post_images`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "position", "url", "alt_text", "caption"}).
			AddRow(1, 7, 0, "/static/a.png", "", ""))

	post, err := repo.GetByPublicID(context.Background(), "pid-1")
	require.NoError(t, err)
	assert.Equal(t, "pid-1", post.PublicID)
	assert.Equal(t, "hello-world", post.Slug)
	assert.Equal(t, uint(3), post.CreatedBy)
	require.Len(t, post.Images, 1)
	assert.Equal(t, "/static/a.png", post.Images[0].URL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_DeleteByPublicID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `posts`").
		WithArgs("pid-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteByPublicID(context.Background(), "pid-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_DeleteByPublicID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `posts`").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.DeleteByPublicID(context.Background(), "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByUsername_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WithArgs("nobody", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
