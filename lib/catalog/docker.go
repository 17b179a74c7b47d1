package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"

	"github.com/clusterkit/imgresolve/lib/resolver"
)

// ImageLister is the slice of the Docker client used by this backend.
type ImageLister interface {
	ImageList(ctx context.Context, options image.ListOptions) ([]image.Summary, error)
}

// Docker lists images held by a local Docker daemon. A daemon is a single
// namespace, so the "self" scope lists everything; any other owner value is
// matched against the image label "owner".
type Docker struct {
	client ImageLister
}

// NewDocker creates a Docker-backed catalog.
func NewDocker(client ImageLister) *Docker {
	return &Docker{client: client}
}

// ListImages returns one record per repo tag. Untagged images have no name
// to match and are skipped. CreatedAt comes from the daemon's Unix
// creation timestamp.
func (c *Docker) ListImages(ctx context.Context, owner resolver.Owner) ([]resolver.Image, error) {
	opts := image.ListOptions{}
	if owner != resolver.OwnerSelf {
		opts.Filters = filters.NewArgs(filters.Arg("label", "owner="+string(owner)))
	}

	summaries, err := c.client.ImageList(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}

	var images []resolver.Image
	for _, s := range summaries {
		for _, tag := range s.RepoTags {
			images = append(images, resolver.Image{
				ID:        s.ID,
				Name:      tag,
				Owner:     string(owner),
				CreatedAt: time.Unix(s.Created, 0),
			})
		}
	}

	return images, nil
}

var _ resolver.Catalog = (*Docker)(nil)
