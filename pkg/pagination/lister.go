package pagination

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/SupernaviX/blockfrost-go/pkg/logging"
)

// DefaultPageSize is the Blockfrost default page size.
const DefaultPageSize = 100

// PageFunc fetches a single page of items. It is called with strictly
// increasing page numbers and a fixed count.
type PageFunc[T any] func(ctx context.Context, page, count int) ([]T, error)

// Lister lazily walks a paged endpoint one page per advancement. It keeps
// exactly one request in flight, preserves strict page ordering, and stops
// on the first empty page or error. A Lister is not safe for concurrent
// use; restart by constructing a new one.
type Lister[T any] struct {
	fetch    PageFunc[T]
	page     int
	pageSize int
	current  []T
	err      error
	done     bool
	logger   zerolog.Logger
}

// Option configures a Lister.
type Option func(*options)

type options struct {
	startPage int
	pageSize  int
}

// WithStartPage starts the sequence at the given page instead of page 1.
func WithStartPage(page int) Option {
	return func(o *options) {
		o.startPage = page
	}
}

// WithPageSize fixes the page size for the whole sequence. It cannot be
// changed afterwards.
func WithPageSize(size int) Option {
	return func(o *options) {
		o.pageSize = size
	}
}

// NewLister creates a Lister over the given page fetcher.
func NewLister[T any](fetch PageFunc[T], opts ...Option) *Lister[T] {
	o := options{
		startPage: 1,
		pageSize:  DefaultPageSize,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Lister[T]{
		fetch:    fetch,
		page:     o.startPage,
		pageSize: o.pageSize,
		logger:   logging.NewLogger("blockfrost-lister"),
	}
}

// Next advances to the next page. It returns true when a non-empty page is
// available via Page. It returns false once the sequence is over, either
// cleanly (empty page, Err returns nil) or on the first error (Err returns
// it). After returning false no further request is ever issued.
func (l *Lister[T]) Next(ctx context.Context) bool {
	if l.done {
		return false
	}

	items, err := l.fetch(ctx, l.page, l.pageSize)
	if err != nil {
		l.logger.Debug().Int("page", l.page).Err(err).Msg("Page fetch failed, ending sequence")
		l.err = err
		l.current = nil
		l.done = true
		return false
	}

	if len(items) == 0 {
		// Empty page is the end of data, not a failure.
		l.logger.Debug().Int("page", l.page).Msg("Empty page, sequence exhausted")
		l.current = nil
		l.done = true
		return false
	}

	l.current = items
	l.page++
	return true
}

// Page returns the page fetched by the last successful Next call.
func (l *Lister[T]) Page() []T {
	return l.current
}

// Err returns the error that terminated the sequence, if any. It is
// delivered exactly once per Lister: a failed Lister stays failed.
func (l *Lister[T]) Err() error {
	return l.err
}

// Items returns an item-flattening view of the remaining sequence. The
// underlying Lister must not be advanced independently afterwards.
func (l *Lister[T]) Items() *ItemLister[T] {
	return &ItemLister[T]{pages: l}
}

// ItemLister yields the items of a Lister one at a time, buffering the
// current page between fetches.
type ItemLister[T any] struct {
	pages   *Lister[T]
	buffer  []T
	current T
}

// Next advances to the next item, fetching the next page only when the
// buffered one is drained.
func (it *ItemLister[T]) Next(ctx context.Context) bool {
	if len(it.buffer) == 0 {
		if !it.pages.Next(ctx) {
			return false
		}
		it.buffer = it.pages.Page()
	}
	it.current = it.buffer[0]
	it.buffer = it.buffer[1:]
	return true
}

// Item returns the item yielded by the last successful Next call.
func (it *ItemLister[T]) Item() T {
	return it.current
}

// Err returns the error that terminated the sequence, if any.
func (it *ItemLister[T]) Err() error {
	return it.pages.Err()
}
