package store

import (
	"fmt"
	"slices"

	"github.com/rohits-web03/minifeed/internal/models"
)

// UploadPathPrefix is where attached post images are served from.
const UploadPathPrefix = "/uploads/posts/"

// CreatePost publishes content as userID. The new post goes to the head of
// the feed and takes the next ID of the space shared with replies.
func (s *Store) CreatePost(userID, content string) (models.Post, error) {
	if content == "" {
		return models.Post{}, fmt.Errorf("%w: content is required", ErrValidation)
	}
	if userID == "" {
		return models.Post{}, fmt.Errorf("%w: user id is required", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.userByID[userID]; !ok {
		return models.Post{}, fmt.Errorf("user %q: %w", userID, ErrNotFound)
	}
	id, err := s.nextID()
	if err != nil {
		return models.Post{}, err
	}
	post := models.Post{
		ID:          id,
		UserID:      userID,
		Content:     content,
		PublishDate: s.now(),
	}
	s.posts = slices.Insert(s.posts, 0, post)

	s.logger.Debug("post created", "post_id", post.ID, "user_id", userID)
	return post.Clone(), nil
}

// EditPost replaces the content of a post and stamps its edit date.
func (s *Store) EditPost(id, content string) (models.Post, error) {
	if content == "" {
		return models.Post{}, fmt.Errorf("%w: content is required", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.postIndex(id)
	if i < 0 {
		return models.Post{}, fmt.Errorf("post %q: %w", id, ErrNotFound)
	}
	edited := s.now()
	s.posts[i].Content = content
	s.posts[i].EditedDate = &edited

	s.logger.Debug("post edited", "post_id", id)
	return s.posts[i].Clone(), nil
}

// DeletePost removes a post together with every reply under it and returns
// the image URL the post had.
func (s *Store) DeletePost(id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.postIndex(id)
	if i < 0 {
		return "", fmt.Errorf("post %q: %w", id, ErrNotFound)
	}
	imageURL := s.posts[i].ImageURL
	s.posts = slices.Delete(s.posts, i, i+1)

	before := len(s.replies)
	s.replies = slices.DeleteFunc(s.replies, func(r models.Reply) bool {
		return r.ParentPostID == id
	})

	s.logger.Debug("post deleted", "post_id", id, "replies_removed", before-len(s.replies))
	return imageURL, nil
}

// CreateReply appends a reply to the thread of parentPostID.
func (s *Store) CreateReply(parentPostID, userID, content string) (models.Reply, error) {
	switch {
	case content == "":
		return models.Reply{}, fmt.Errorf("%w: content is required", ErrValidation)
	case userID == "":
		return models.Reply{}, fmt.Errorf("%w: user id is required", ErrValidation)
	case parentPostID == "":
		return models.Reply{}, fmt.Errorf("%w: parent post id is required", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.postIndex(parentPostID) < 0 {
		return models.Reply{}, fmt.Errorf("post %q: %w", parentPostID, ErrNotFound)
	}
	if _, ok := s.userByID[userID]; !ok {
		return models.Reply{}, fmt.Errorf("user %q: %w", userID, ErrNotFound)
	}
	id, err := s.nextID()
	if err != nil {
		return models.Reply{}, err
	}
	reply := models.Reply{
		Post: models.Post{
			ID:          id,
			UserID:      userID,
			Content:     content,
			PublishDate: s.now(),
		},
		ParentPostID: parentPostID,
	}
	s.replies = append(s.replies, reply)

	s.logger.Debug("reply created", "reply_id", reply.ID, "post_id", parentPostID, "user_id", userID)
	return reply.Clone(), nil
}

// AttachImage points the post's image at the uploaded file. It also returns
// the image URL it replaced, which is empty when there was none.
func (s *Store) AttachImage(postID, filename string) (models.Post, string, error) {
	if filename == "" {
		return models.Post{}, "", fmt.Errorf("%w: filename is required", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.postIndex(postID)
	if i < 0 {
		return models.Post{}, "", fmt.Errorf("post %q: %w", postID, ErrNotFound)
	}
	previous := s.posts[i].ImageURL
	s.posts[i].ImageURL = UploadPathPrefix + filename
	return s.posts[i].Clone(), previous, nil
}

// DetachImage clears the post's image and returns the URL it had, which is
// empty when there was none.
func (s *Store) DetachImage(postID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.postIndex(postID)
	if i < 0 {
		return "", fmt.Errorf("post %q: %w", postID, ErrNotFound)
	}
	previous := s.posts[i].ImageURL
	s.posts[i].ImageURL = ""
	return previous, nil
}
