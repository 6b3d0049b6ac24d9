package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

var (
	// ErrInvalidImagePath is returned when id, width or height is not a plain
	// decimal number within range.
	ErrInvalidImagePath = errors.New("invalid picsum image path")

	// ErrUpstreamNotFound is returned when picsum has no image for the id.
	ErrUpstreamNotFound = errors.New("image not found upstream")

	// ErrUpstreamTimeout is returned when the upstream request exceeds its deadline.
	ErrUpstreamTimeout = errors.New("upstream request timed out")

	// ErrUpstreamFailed covers every other upstream failure.
	ErrUpstreamFailed = errors.New("failed to fetch image upstream")

	// ErrImageTooLarge is returned when the upstream body exceeds the size limit.
	ErrImageTooLarge = errors.New("upstream image exceeds size limit")
)

const (
	defaultMaxImageBytes = 10 << 20
	maxDimension         = 5000
)

type Image struct {
	ContentType string
	Body        []byte
}

// PicsumProxy fetches picsum.photos images on behalf of clients and keeps
// the most recently used ones in memory.
type PicsumProxy struct {
	baseURL      string
	client       *http.Client
	cache        *lru.Cache[string, Image]
	maxSizeBytes int64
}

func NewPicsumProxy(baseURL string, cacheSize int, timeout time.Duration) (*PicsumProxy, error) {
	if cacheSize <= 0 {
		cacheSize = 1
	}
	cache, err := lru.New[string, Image](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create image cache: %w", err)
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse picsum base url: %w", err)
	}
	return &PicsumProxy{
		baseURL:      strings.TrimRight(baseURL, "/"),
		client:       &http.Client{Timeout: timeout},
		cache:        cache,
		maxSizeBytes: defaultMaxImageBytes,
	}, nil
}

// Fetch returns the image for id at width x height, from cache when possible.
func (p *PicsumProxy) Fetch(ctx context.Context, id, width, height string) (Image, error) {
	for _, part := range []string{id, width, height} {
		if !validSegment(part) {
			return Image{}, fmt.Errorf("%w: %q", ErrInvalidImagePath, part)
		}
	}

	key := id + "/" + width + "/" + height
	if img, ok := p.cache.Get(key); ok {
		return img, nil
	}

	img, err := p.download(ctx, fmt.Sprintf("%s/id/%s/%s/%s", p.baseURL, id, width, height))
	if err != nil {
		return Image{}, err
	}
	p.cache.Add(key, img)
	return img, nil
}

// Cached reports how many images are currently held.
func (p *PicsumProxy) Cached() int {
	return p.cache.Len()
}

func (p *PicsumProxy) download(ctx context.Context, target string) (Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return Image{}, fmt.Errorf("%w: %v", ErrUpstreamFailed, err)
	}
	req.Header.Set("User-Agent", "minifeed-proxy/1.0")

	resp, err := p.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return Image{}, fmt.Errorf("%w: %v", ErrUpstreamTimeout, ctx.Err())
		}
		if te, ok := err.(interface{ Timeout() bool }); ok && te.Timeout() {
			return Image{}, fmt.Errorf("%w: request timed out", ErrUpstreamTimeout)
		}
		return Image{}, fmt.Errorf("%w: %v", ErrUpstreamFailed, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return Image{}, ErrUpstreamNotFound
	default:
		return Image{}, fmt.Errorf("%w: unexpected status code %d", ErrUpstreamFailed, resp.StatusCode)
	}

	if resp.ContentLength > p.maxSizeBytes {
		return Image{}, fmt.Errorf("%w: content length %d", ErrImageTooLarge, resp.ContentLength)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, p.maxSizeBytes+1))
	if err != nil {
		return Image{}, fmt.Errorf("%w: read body: %v", ErrUpstreamFailed, err)
	}
	if int64(len(body)) > p.maxSizeBytes {
		return Image{}, ErrImageTooLarge
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(body)
	}
	return Image{ContentType: contentType, Body: body}, nil
}

func validSegment(s string) bool {
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= maxDimension && strconv.Itoa(n) == s
}
