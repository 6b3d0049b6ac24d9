// Package store holds the feed's users, posts and replies in memory and owns
// every read and write against them.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/rohits-web03/minifeed/internal/models"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

// Source supplies the initial users and posts.
type Source interface {
	Load(ctx context.Context) (models.Dataset, error)
}

type userRecord struct {
	models.User
	passwordHash []byte
}

// Store is safe for concurrent use. Mutations hold the write lock for their
// whole duration, so a cascade delete or an ID allocation is never observed
// half-done.
type Store struct {
	mu sync.RWMutex

	users      []userRecord
	userByID   map[string]int
	userByName map[string]int

	// posts is ordered by publish date, newest first.
	posts []models.Post
	// replies is ordered by creation, oldest first.
	replies []models.Reply

	// lastID is the highest numeric post or reply ID ever held.
	lastID int64

	now        func() time.Time
	bcryptCost int
	logger     *slog.Logger
}

type Option func(*Store)

// WithClock overrides the time source used for publish and edit dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithBcryptCost sets the cost used to hash plaintext seed passwords.
func WithBcryptCost(cost int) Option {
	return func(s *Store) { s.bcryptCost = cost }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// New loads the seed data from src and returns a ready store. Any problem with
// the seed data is reported as ErrInitialization and no store is returned.
func New(ctx context.Context, src Source, opts ...Option) (*Store, error) {
	s := &Store{
		userByID:   make(map[string]int),
		userByName: make(map[string]int),
		now:        time.Now,
		bcryptCost: bcrypt.DefaultCost,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if src == nil {
		return nil, fmt.Errorf("%w: no seed source configured", ErrInitialization)
	}

	data, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitialization, err)
	}
	if err := s.loadUsers(ctx, data.Users); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitialization, err)
	}
	if err := s.loadPosts(data.Posts); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitialization, err)
	}

	s.logger.Info("feed store loaded",
		"users", len(s.users),
		"posts", len(s.posts),
		"replies", len(s.replies),
		"last_id", s.lastID,
	)
	return s, nil
}

func (s *Store) loadUsers(ctx context.Context, seed []models.SeedUser) error {
	s.users = make([]userRecord, len(seed))
	for i, raw := range seed {
		if raw.ID == "" || raw.Username == "" {
			return fmt.Errorf("user at index %d has no id or username", i)
		}
		if _, dup := s.userByID[raw.ID]; dup {
			return fmt.Errorf("duplicate user id %q", raw.ID)
		}
		if _, dup := s.userByName[raw.Username]; dup {
			return fmt.Errorf("duplicate username %q", raw.Username)
		}

		var registered time.Time
		if raw.RegistrationDate != "" {
			t, err := parseDate(raw.RegistrationDate)
			if err != nil {
				return fmt.Errorf("user %q: registrationDate: %w", raw.ID, err)
			}
			registered = t
		}

		s.users[i] = userRecord{User: models.User{
			ID:               raw.ID,
			Username:         raw.Username,
			Name:             raw.Name,
			Surname:          raw.Surname,
			ProfileImg:       raw.ProfileImg,
			RegistrationDate: registered,
		}}
		s.userByID[raw.ID] = i
		s.userByName[raw.Username] = i
	}

	// Hash seed passwords in parallel, one goroutine per core.
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, raw := range seed {
		g.Go(func() error {
			hash, err := hashPassword(raw.Password, s.bcryptCost)
			if err != nil {
				return fmt.Errorf("user %q: %w", raw.ID, err)
			}
			s.users[i].passwordHash = hash
			return nil
		})
	}
	return g.Wait()
}

func (s *Store) loadPosts(seed []models.SeedPost) error {
	seen := make(map[string]struct{}, len(seed))
	topLevel := make(map[string]struct{}, len(seed))
	var replies []models.Reply

	for i, raw := range seed {
		if raw.ID == "" {
			return fmt.Errorf("post at index %d has no id", i)
		}
		if _, dup := seen[raw.ID]; dup {
			return fmt.Errorf("duplicate post id %q", raw.ID)
		}
		seen[raw.ID] = struct{}{}
		if _, ok := s.userByID[raw.UserID]; !ok {
			return fmt.Errorf("post %q references unknown user %q", raw.ID, raw.UserID)
		}

		published, err := parseDate(raw.PublishDate)
		if err != nil {
			return fmt.Errorf("post %q: publishDate: %w", raw.ID, err)
		}
		post := models.Post{
			ID:          raw.ID,
			UserID:      raw.UserID,
			Content:     raw.Content,
			PublishDate: published,
			ImageURL:    ProxyImageURL(raw.ImageURL),
		}
		if raw.EditedDate != "" {
			edited, err := parseDate(raw.EditedDate)
			if err != nil {
				return fmt.Errorf("post %q: editedDate: %w", raw.ID, err)
			}
			post.EditedDate = &edited
		}

		if n, ok := numericID(raw.ID); ok && n > s.lastID {
			s.lastID = n
		}

		if raw.ParentPostID == "" {
			s.posts = append(s.posts, post)
			topLevel[raw.ID] = struct{}{}
			continue
		}
		replies = append(replies, models.Reply{
			Post:         post,
			ParentPostID: raw.ParentPostID,
			NLikes:       raw.NLikes,
		})
	}

	for _, r := range replies {
		if _, ok := topLevel[r.ParentPostID]; !ok {
			return fmt.Errorf("reply %q references unknown post %q", r.ID, r.ParentPostID)
		}
	}
	s.replies = replies

	slices.SortStableFunc(s.posts, func(a, b models.Post) int {
		return b.PublishDate.Compare(a.PublishDate)
	})
	return nil
}

// nextID allocates the next ID of the space shared by posts and replies.
// Callers must hold the write lock.
func (s *Store) nextID() (string, error) {
	if s.lastID == math.MaxInt64 {
		return "", ErrIDsExhausted
	}
	s.lastID++
	return strconv.FormatInt(s.lastID, 10), nil
}
