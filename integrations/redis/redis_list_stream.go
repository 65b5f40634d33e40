package redis

import (
	"context"
	"fmt"
	"github.com/redis/go-redis/v9"
	"github.com/shpandrak/shpancursor/cursor"
)

const defaultPageSize = 100

// ListClient is the part of a redis client a list stream uses. *redis.Client, *redis.ClusterClient and
// *redis.Ring all implement it.
type ListClient interface {
	LLen(ctx context.Context, key string) *redis.IntCmd
	LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
}

type ListStreamOption func(*listNavigator)

// WithPageSize sets how many elements are fetched by a single LRANGE
func WithPageSize(pageSize int) ListStreamOption {
	return func(n *listNavigator) {
		n.pageSize = pageSize
	}
}

// ListStream is a stream over the elements of a redis list, fetched page by page as the cursor reaches them.
// The length is read when the stream is created and on Refresh, so elements pushed in between are not visible.
type ListStream struct {
	cursor.Stream[string]
	nav *listNavigator
}

// StreamRedisList creates a stream over the list stored at key.
// A failure to fetch a page ends navigation in the direction of that page and is reported by Err.
func StreamRedisList(ctx context.Context, client ListClient, key string, options ...ListStreamOption) (ListStream, error) {
	nav := &listNavigator{
		ctx:      ctx,
		client:   client,
		key:      key,
		pageSize: defaultPageSize,
	}
	for _, option := range options {
		option(nav)
	}
	if nav.pageSize <= 0 {
		return ListStream{}, cursor.NewValidationError("pageSize", nav.pageSize, "must be positive")
	}
	if err := nav.readLength(); err != nil {
		return ListStream{}, err
	}
	return ListStream{Stream: cursor.NewStream[string](nav), nav: nav}, nil
}

// Refresh re-reads the list length and drops fetched pages. The cursor keeps its slot unless the list shrank
// below it, in which case it is moved to the end.
func (s ListStream) Refresh() error {
	s.nav.pages = nil
	s.nav.err = nil
	return s.nav.readLength()
}

// Len returns the list length as of creation or the last Refresh
func (s ListStream) Len() int {
	return s.nav.length
}

type listNavigator struct {
	ctx      context.Context
	client   ListClient
	key      string
	pageSize int

	length int
	pos    int
	pages  map[int][]string
	err    error
}

func (n *listNavigator) readLength() error {
	length, err := n.client.LLen(n.ctx, n.key).Result()
	if err != nil {
		return fmt.Errorf("failed reading length of redis list %s: %w", n.key, err)
	}
	n.length = int(length)
	if n.pos > n.length {
		n.pos = n.length
	}
	return nil
}

// available makes sure the element at index i is fetched, returning false if it does not exist or cannot be read
func (n *listNavigator) available(i int) bool {
	if n.err != nil || i < 0 || i >= n.length {
		return false
	}
	page := i / n.pageSize
	items, ok := n.pages[page]
	if !ok {
		start := int64(page * n.pageSize)
		fetched, err := n.client.LRange(n.ctx, n.key, start, start+int64(n.pageSize)-1).Result()
		if err != nil {
			n.err = fmt.Errorf("failed reading redis list %s at %d: %w", n.key, start, err)
			return false
		}
		if n.pages == nil {
			n.pages = make(map[int][]string)
		}
		n.pages[page] = fetched
		items = fetched
	}
	if i%n.pageSize >= len(items) {
		// The list was trimmed since its length was read
		n.length = page*n.pageSize + len(items)
		return false
	}
	return true
}

func (n *listNavigator) at(i int) string {
	return n.pages[i/n.pageSize][i%n.pageSize]
}

func (n *listNavigator) AtBeginning() bool {
	for n.pos > 0 {
		if n.available(n.pos - 1) {
			return false
		}
		if n.err != nil || n.pos <= n.length {
			return true
		}
		// Trimmed below the cursor
		n.pos = n.length
	}
	return true
}

func (n *listNavigator) AtEnd() bool {
	return !n.available(n.pos)
}

func (n *listNavigator) Forward() string {
	n.pos++
	return n.at(n.pos - 1)
}

func (n *listNavigator) Backward() string {
	n.pos--
	return n.at(n.pos)
}

func (n *listNavigator) Current() string {
	return n.at(n.pos - 1)
}

func (n *listNavigator) Peek() string {
	return n.at(n.pos)
}

func (n *listNavigator) SetToBegin() {
	n.pos = 0
}

func (n *listNavigator) SetToEnd() {
	n.pos = n.length
}

func (n *listNavigator) Err() error {
	return n.err
}
