package store

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/rohits-web03/minifeed/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPostsPage_AttachesAuthorAndReplyCount(t *testing.T) {
	s := newTestStore(t, fixtureDataset())

	page := s.GetPostsPage(2, 0)
	require.Len(t, page, 2)

	assert.Equal(t, "5", page[0].ID)
	assert.Equal(t, 2, page[0].NReplies)
	assert.Equal(t, "ben", page[0].User.Username)

	assert.Equal(t, "4", page[1].ID)
	assert.Equal(t, 1, page[1].NReplies)
	assert.Equal(t, "ana", page[1].User.Username)
}

func TestGetPostsPage_Bounds(t *testing.T) {
	s := newTestStore(t, fixtureDataset())

	assert.Empty(t, s.GetPostsPage(5, 3))
	assert.Empty(t, s.GetPostsPage(5, 100))
	assert.Empty(t, s.GetPostsPage(0, 0))
	assert.Len(t, s.GetPostsPage(100, 1), 2)
	assert.Len(t, s.GetPostsPage(-1, -1), 0)
	assert.Len(t, s.GetPostsPage(1, -5), 1)
}

func TestGetPostsPage_ConcatenationReproducesFeed(t *testing.T) {
	faker := gofakeit.New(42)
	from := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	data := fixtureDataset()
	for i := 0; i < 17; i++ {
		data.Posts = append(data.Posts, models.SeedPost{
			ID:          fmt.Sprintf("%d", 100+i),
			UserID:      faker.RandomString([]string{"1", "2"}),
			Content:     faker.Sentence(6),
			PublishDate: faker.DateRange(from, to).Format(time.RFC3339),
		})
	}
	s := newTestStore(t, data)
	full := s.GetPostsPage(s.CountPosts(), 0)
	require.Len(t, full, 20)

	for limit := 1; limit <= 21; limit++ {
		var got []string
		for offset := 0; offset < s.CountPosts(); offset += limit {
			for _, p := range s.GetPostsPage(limit, offset) {
				got = append(got, p.ID)
			}
		}
		want := make([]string, len(full))
		for i, p := range full {
			want[i] = p.ID
		}
		assert.Equal(t, want, got, "limit %d", limit)
	}

	for i := 1; i < len(full); i++ {
		assert.False(t, full[i].PublishDate.After(full[i-1].PublishDate), "feed must be newest first")
	}
}

func TestGetPost_NotFound(t *testing.T) {
	s := newTestStore(t, fixtureDataset())

	_, err := s.GetPost("42")
	assert.ErrorIs(t, err, ErrNotFound)

	// Replies are not top-level posts.
	_, err = s.GetPost("6")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetPost_ReturnsCopy(t *testing.T) {
	s := newTestStore(t, fixtureDataset())
	_, err := s.EditPost("3", "edited")
	require.NoError(t, err)

	post, err := s.GetPost("3")
	require.NoError(t, err)
	post.Content = "tampered"
	*post.EditedDate = post.EditedDate.AddDate(10, 0, 0)

	again, err := s.GetPost("3")
	require.NoError(t, err)
	assert.Equal(t, "edited", again.Content)
	assert.True(t, again.EditedDate.Equal(fixedNow))
}

func TestGetPostWithReplies(t *testing.T) {
	s := newTestStore(t, fixtureDataset())

	detail, err := s.GetPostWithReplies("5")
	require.NoError(t, err)
	assert.Equal(t, "third", detail.Content)
	assert.Equal(t, 2, detail.NReplies)
	assert.Equal(t, "ben", detail.User.Username)

	require.Len(t, detail.Replies, 2)
	assert.Equal(t, "6", detail.Replies[0].ID)
	assert.Equal(t, "ana", detail.Replies[0].User.Username)
	assert.Equal(t, 0, detail.Replies[0].NLikes)
	assert.Equal(t, "7", detail.Replies[1].ID)
	assert.Equal(t, 3, detail.Replies[1].NLikes)
	for _, r := range detail.Replies {
		assert.Zero(t, r.NReplies)
	}

	_, err = s.GetPostWithReplies("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetUserPosts(t *testing.T) {
	s := newTestStore(t, fixtureDataset())

	n, err := s.GetUserPostCount("ana")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	posts, err := s.GetUserPosts("ana", 10, 0)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "4", posts[0].ID)
	assert.Equal(t, 1, posts[0].NReplies)
	assert.Equal(t, "3", posts[1].ID)
	assert.Equal(t, 0, posts[1].NReplies)

	posts, err = s.GetUserPosts("ana", 1, 1)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "3", posts[0].ID)

	posts, err = s.GetUserPosts("ana", 10, 5)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestGetUserPosts_UnknownUsername(t *testing.T) {
	s := newTestStore(t, fixtureDataset())

	_, err := s.GetUserPostCount("ghost")
	assert.ErrorIs(t, err, ErrNotFound)

	posts, err := s.GetUserPosts("ghost", 10, 0)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, posts)
}

func TestGetUserByUsername(t *testing.T) {
	s := newTestStore(t, fixtureDataset())

	u, ok := s.GetUserByUsername("ana")
	require.True(t, ok)
	assert.Equal(t, "1", u.ID)
	assert.Equal(t, "Silva", u.Surname)

	_, ok = s.GetUserByUsername("ghost")
	assert.False(t, ok)
}

func TestUserViews_NeverExposeCredentials(t *testing.T) {
	s := newTestStore(t, fixtureDataset())

	detail, err := s.GetPostWithReplies("5")
	require.NoError(t, err)
	views := []any{s.ListUsers(), s.ListUsersMinimal(), s.GetPostsPage(10, 0), detail}
	for _, v := range views {
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		assert.NotContains(t, string(raw), "password")
		assert.NotContains(t, string(raw), "secret")
		assert.NotContains(t, string(raw), "hunter2")
	}
}

func TestListUsersMinimal(t *testing.T) {
	s := newTestStore(t, fixtureDataset())

	users := s.ListUsersMinimal()
	require.Len(t, users, 2)
	assert.Equal(t, models.UserMinimal{
		ID:         "2",
		Username:   "ben",
		Name:       "Ben",
		Surname:    "Stone",
		ProfileImg: "https://example.com/ben.png",
	}, users[1])
	assert.Len(t, s.ListUsers(), 2)
}
