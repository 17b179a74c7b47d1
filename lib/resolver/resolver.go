// Package resolver resolves a logical image family (an ownership scope plus
// an anchored name pattern) to the single most recently created image in an
// external catalog.
package resolver

import (
	"context"

	"github.com/samber/lo"
)

// Catalog lists the machine images visible to an owner scope. Owner
// filtering is the backend's contract: server-side where the provider
// supports it, client-side otherwise.
type Catalog interface {
	ListImages(ctx context.Context, owner Owner) ([]Image, error)
}

// Resolver selects one concrete image per query.
type Resolver interface {
	Resolve(ctx context.Context, q Query) (*Image, error)
}

type resolver struct {
	catalog Catalog
}

// NewResolver creates a resolver backed by the given catalog. The resolver
// holds no state; every Resolve call re-queries the catalog, and concurrent
// calls need no coordination.
func NewResolver(catalog Catalog) Resolver {
	return &resolver{catalog: catalog}
}

// Resolve returns the matching image with the greatest creation time.
// Images created at the same instant are ordered by lexicographically
// smallest ID, so the result is stable for identical catalog contents
// regardless of the order the provider returns records in.
//
// Failures are ErrInvalidPattern, ErrNotFound, or a *ProviderError wrapping
// the catalog's own error. No retries, no fallbacks.
func (r *resolver) Resolve(ctx context.Context, q Query) (*Image, error) {
	re, err := compileAnchored(q.NamePattern)
	if err != nil {
		return nil, err
	}

	images, err := r.catalog.ListImages(ctx, q.Owner)
	if err != nil {
		return nil, &ProviderError{Err: err}
	}

	matches := lo.Filter(images, func(img Image, _ int) bool {
		return re.MatchString(img.Name)
	})
	if len(matches) == 0 {
		return nil, ErrNotFound
	}

	best := lo.MaxBy(matches, moreRecent)
	return &best, nil
}

func moreRecent(a, b Image) bool {
	if a.CreatedAt.Equal(b.CreatedAt) {
		return a.ID < b.ID
	}
	return a.CreatedAt.After(b.CreatedAt)
}
