package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rohits-web03/minifeed/internal/models"
	"golang.org/x/sync/errgroup"
)

const (
	postsFile = "posts.json"
	usersFile = "users.json"
)

var ErrDataDirNotFound = errors.New("cannot find data directory")

// JSONSource reads users.json and posts.json from a directory.
type JSONSource struct {
	Dir string
}

// FindDataDir returns dir when set. Otherwise it looks for posts.json under
// ./data and then ./src/data relative to the working directory.
func FindDataDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for _, candidate := range []string{
		filepath.Join(cwd, "data"),
		filepath.Join(cwd, "src", "data"),
	} {
		if _, err := os.Stat(filepath.Join(candidate, postsFile)); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: make sure %s exists in either ./data/ or ./src/data/", ErrDataDirNotFound, postsFile)
}

func (s JSONSource) Load(ctx context.Context) (models.Dataset, error) {
	var data models.Dataset

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return readJSON(ctx, filepath.Join(s.Dir, postsFile), &data.Posts)
	})
	g.Go(func() error {
		return readJSON(ctx, filepath.Join(s.Dir, usersFile), &data.Users)
	})
	if err := g.Wait(); err != nil {
		return models.Dataset{}, err
	}
	return data, nil
}

func readJSON(ctx context.Context, path string, dst any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
