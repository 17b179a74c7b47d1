package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/docker/docker/api/types/image"
	"github.com/stretchr/testify/require"

	"github.com/clusterkit/imgresolve/lib/resolver"
)

type fakeDocker struct {
	summaries []image.Summary
	err       error

	lastOptions image.ListOptions
}

func (f *fakeDocker) ImageList(ctx context.Context, options image.ListOptions) ([]image.Summary, error) {
	f.lastOptions = options
	if f.err != nil {
		return nil, f.err
	}
	return f.summaries, nil
}

func TestDockerListImagesExpandsTags(t *testing.T) {
	created := time.Date(2024, 2, 10, 8, 30, 0, 0, time.UTC)
	client := &fakeDocker{summaries: []image.Summary{
		{
			ID:       "sha256:aaa",
			RepoTags: []string{"bastion:2024-01", "bastion:latest"},
			Created:  created.Unix(),
		},
		{
			ID:       "sha256:bbb",
			RepoTags: nil, // dangling image, nothing to match
			Created:  created.Unix(),
		},
	}}

	images, err := NewDocker(client).ListImages(context.Background(), resolver.OwnerSelf)
	require.NoError(t, err)
	require.Len(t, images, 2)
	require.Equal(t, "bastion:2024-01", images[0].Name)
	require.Equal(t, "bastion:latest", images[1].Name)
	require.Equal(t, "sha256:aaa", images[0].ID)
	require.True(t, images[0].CreatedAt.Equal(created))
	require.False(t, client.lastOptions.Filters.Len() > 0)
}

func TestDockerListImagesScopesNonSelfOwnerByLabel(t *testing.T) {
	client := &fakeDocker{}

	_, err := NewDocker(client).ListImages(context.Background(), resolver.Owner("team-infra"))
	require.NoError(t, err)
	require.Equal(t, []string{"owner=team-infra"}, client.lastOptions.Filters.Get("label"))
}

func TestDockerListImagesPropagatesQueryError(t *testing.T) {
	cause := errors.New("cannot connect to the Docker daemon")
	client := &fakeDocker{err: cause}

	_, err := NewDocker(client).ListImages(context.Background(), resolver.OwnerSelf)
	require.ErrorIs(t, err, cause)
}
