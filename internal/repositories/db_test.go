package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)
	return gormDB, mock
}

func TestDBSource_LoadOrdersByPosition(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "seed_users" ORDER BY position, id`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "position"}).
			AddRow("1", "ana", "secret", 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "seed_posts" ORDER BY position, id`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "parent_post_id", "content", "n_likes", "position"}).
			AddRow("3", "1", "", "first", 0, 0).
			AddRow("4", "1", "3", "reply", 2, 1))

	data, err := DBSource{DB: db}.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, data.Users, 1)
	assert.Equal(t, "ana", data.Users[0].Username)
	require.Len(t, data.Posts, 2)
	assert.Equal(t, "3", data.Posts[1].ParentPostID)
	assert.Equal(t, 2, data.Posts[1].NLikes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBSource_LoadErrors(t *testing.T) {
	t.Run("users", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "seed_users"`)).
			WillReturnError(errors.New("connection reset"))

		_, err := DBSource{DB: db}.Load(context.Background())
		assert.ErrorContains(t, err, "load users")
		assert.ErrorContains(t, err, "connection reset")
	})

	t.Run("posts", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "seed_users"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "seed_posts"`)).
			WillReturnError(errors.New("relation does not exist"))

		_, err := DBSource{DB: db}.Load(context.Background())
		assert.ErrorContains(t, err, "load posts")
	})
}
