package store

import (
	"fmt"

	"github.com/rohits-web03/minifeed/internal/models"
)

// ListUsers returns every user without credentials.
func (s *Store) ListUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, len(s.users))
	for i, u := range s.users {
		users[i] = u.User
	}
	return users
}

func (s *Store) ListUsersMinimal() []models.UserMinimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.UserMinimal, len(s.users))
	for i, u := range s.users {
		users[i] = u.Minimal()
	}
	return users
}

// CountPosts returns the number of top-level posts.
func (s *Store) CountPosts() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts)
}

// GetPostsPage returns up to limit posts starting at offset, newest first.
// An offset past the end yields an empty page.
func (s *Store) GetPostsPage(limit, offset int) []models.PostWithUser {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start, end := pageBounds(len(s.posts), limit, offset)
	counts := s.replyCounts()
	page := make([]models.PostWithUser, 0, end-start)
	for _, p := range s.posts[start:end] {
		page = append(page, s.withUser(p, counts[p.ID]))
	}
	return page
}

func (s *Store) GetPost(id string) (models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.postIndex(id)
	if i < 0 {
		return models.Post{}, fmt.Errorf("post %q: %w", id, ErrNotFound)
	}
	return s.posts[i].Clone(), nil
}

// GetPostWithReplies returns a post with its author and its whole thread,
// oldest reply first.
func (s *Store) GetPostWithReplies(id string) (models.PostWithReplies, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.postIndex(id)
	if i < 0 {
		return models.PostWithReplies{}, fmt.Errorf("post %q: %w", id, ErrNotFound)
	}
	replies := s.repliesFor(id)
	return models.PostWithReplies{
		PostWithUser: s.withUser(s.posts[i], len(replies)),
		Replies:      replies,
	}, nil
}

// GetUserPostCount returns how many top-level posts username has published.
func (s *Store) GetUserPostCount(username string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, err := s.userNamed(username)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, p := range s.posts {
		if p.UserID == u.ID {
			n++
		}
	}
	return n, nil
}

// GetUserPosts pages through the posts of username, newest first.
func (s *Store) GetUserPosts(username string, limit, offset int) ([]models.PostWithUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, err := s.userNamed(username)
	if err != nil {
		return nil, err
	}
	var owned []models.Post
	for _, p := range s.posts {
		if p.UserID == u.ID {
			owned = append(owned, p)
		}
	}

	start, end := pageBounds(len(owned), limit, offset)
	counts := s.replyCounts()
	page := make([]models.PostWithUser, 0, end-start)
	for _, p := range owned[start:end] {
		page = append(page, models.PostWithUser{
			Post:     p.Clone(),
			NReplies: counts[p.ID],
			User:     u.User,
		})
	}
	return page, nil
}

// GetUserByUsername returns the profile of username. The boolean is false
// when no such user exists.
func (s *Store) GetUserByUsername(username string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.userByName[username]
	if !ok {
		return models.User{}, false
	}
	return s.users[i].User, true
}

// GetRepliesForPost returns the thread under postID, oldest first. Unknown
// posts have no replies.
func (s *Store) GetRepliesForPost(postID string) []models.ReplyWithUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.repliesFor(postID)
}

func (s *Store) repliesFor(postID string) []models.ReplyWithUser {
	thread := []models.ReplyWithUser{}
	for _, r := range s.replies {
		if r.ParentPostID != postID {
			continue
		}
		var author models.UserMinimal
		if i, ok := s.userByID[r.UserID]; ok {
			author = s.users[i].Minimal()
		}
		thread = append(thread, models.ReplyWithUser{
			Reply:    r.Clone(),
			NReplies: 0,
			User:     author,
		})
	}
	return thread
}

func (s *Store) withUser(p models.Post, nReplies int) models.PostWithUser {
	var author models.User
	if i, ok := s.userByID[p.UserID]; ok {
		author = s.users[i].User
	}
	return models.PostWithUser{Post: p.Clone(), NReplies: nReplies, User: author}
}

func (s *Store) replyCounts() map[string]int {
	counts := make(map[string]int)
	for _, r := range s.replies {
		counts[r.ParentPostID]++
	}
	return counts
}

func (s *Store) postIndex(id string) int {
	for i := range s.posts {
		if s.posts[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) userNamed(username string) (userRecord, error) {
	i, ok := s.userByName[username]
	if !ok {
		return userRecord{}, fmt.Errorf("user %q: %w", username, ErrNotFound)
	}
	return s.users[i], nil
}

func pageBounds(n, limit, offset int) (int, int) {
	limit = max(limit, 0)
	offset = min(max(offset, 0), n)
	if limit > n-offset {
		return offset, n
	}
	return offset, offset + limit
}
