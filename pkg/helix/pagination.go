package helix

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
)

// Paginated is implemented by listing requests that accept a forward
// pagination cursor. SetCursor is the only mutation a request value permits
// after construction.
type Paginated interface {
	SetCursor(Cursor)
}

// NextPage advances req to the cursor carried by env. It returns false, and
// leaves req untouched, when the envelope carried no cursor (the listing is
// exhausted). The caller decides whether to re-execute the request; nothing
// is fetched here.
func NextPage[T any](req Paginated, env *Envelope[T]) bool {
	cursor := env.Pagination.Cursor
	if cursor == "" {
		return false
	}
	req.SetCursor(cursor)
	return true
}

// PagedRequest is a GET listing request that supports cursor pagination.
type PagedRequest interface {
	RequestGet
	Paginated
}

// Paginator fetches successive pages of one listing on demand. Each Next
// call performs exactly one fetch; pages of a single listing are strictly
// sequential because each cursor comes from the previous envelope.
type Paginator[T any] struct {
	client *Client
	req    PagedRequest
	done   bool
	pages  int

	maxPages int
	logger   *log.Logger
}

// PaginatorOption configures a Paginator.
type PaginatorOption func(*paginatorConfig)

type paginatorConfig struct {
	maxPages int
	logger   *log.Logger
}

// WithMaxPages caps the number of pages Next will fetch. Zero means no cap.
func WithMaxPages(n int) PaginatorOption {
	return func(cfg *paginatorConfig) {
		cfg.maxPages = n
	}
}

// WithPaginatorLogger sets the logger for per-page progress logging.
func WithPaginatorLogger(l *log.Logger) PaginatorOption {
	return func(cfg *paginatorConfig) {
		cfg.logger = l
	}
}

// NewPaginator creates a Paginator over the given listing request. The
// request's cursor field is advanced in place between fetches; every other
// field keeps the value it was built with.
func NewPaginator[T any](c *Client, req PagedRequest, opts ...PaginatorOption) *Paginator[T] {
	var cfg paginatorConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Paginator[T]{
		client:   c,
		req:      req,
		maxPages: cfg.maxPages,
		logger:   cfg.logger,
	}
}

// More reports whether another page may exist and the page cap has not been
// reached. It is true before the first fetch.
func (p *Paginator[T]) More() bool {
	if p.done {
		return false
	}
	return p.maxPages == 0 || p.pages < p.maxPages
}

// Next fetches the next page. Calling Next after More reports false returns
// an error without fetching.
func (p *Paginator[T]) Next(ctx context.Context) (*Envelope[T], error) {
	if !p.More() {
		return nil, fmt.Errorf("no more pages (fetched %d)", p.pages)
	}

	env, err := Get[T](ctx, p.client, p.req)
	if err != nil {
		return nil, fmt.Errorf("fetching page %d: %w", p.pages+1, err)
	}
	p.pages++

	if !NextPage(p.req, env) {
		p.done = true
	}

	if p.logger != nil {
		p.logger.Debug("fetched page",
			"endpoint", p.req.Path(),
			"page", p.pages,
			"records", len(env.Data),
			"more", !p.done,
		)
	}

	return env, nil
}

// Pages returns the number of pages fetched so far.
func (p *Paginator[T]) Pages() int {
	return p.pages
}
