package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"

	"github.com/clusterkit/imgresolve/lib/resolver"
)

// EC2API is the slice of the EC2 client used by this backend. The concrete
// *ec2.Client satisfies it, and it is exactly the shape the SDK paginator
// drives.
type EC2API interface {
	DescribeImages(ctx context.Context, params *ec2.DescribeImagesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeImagesOutput, error)
}

// EC2 lists AMIs visible to an owner scope. Credentials, region, and
// endpoint come with the injected client.
type EC2 struct {
	client EC2API
}

// NewEC2 creates an EC2-backed catalog.
func NewEC2(client EC2API) *EC2 {
	return &EC2{client: client}
}

// ListImages returns every AMI owned by the given scope ("self" or an
// account ID), following pagination. Records the provider returns without a
// name or creation date cannot be matched or ordered and are skipped.
func (c *EC2) ListImages(ctx context.Context, owner resolver.Owner) ([]resolver.Image, error) {
	paginator := ec2.NewDescribeImagesPaginator(c.client, &ec2.DescribeImagesInput{
		Owners: []string{string(owner)},
	})

	var images []resolver.Image
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("describe images: %w", err)
		}

		for _, img := range page.Images {
			if img.Name == nil || img.CreationDate == nil {
				continue
			}
			created, err := time.Parse(time.RFC3339, aws.ToString(img.CreationDate))
			if err != nil {
				return nil, fmt.Errorf("parse creation date of %s: %w", aws.ToString(img.ImageId), err)
			}
			images = append(images, resolver.Image{
				ID:        aws.ToString(img.ImageId),
				Name:      aws.ToString(img.Name),
				Owner:     aws.ToString(img.OwnerId),
				CreatedAt: created,
			})
		}
	}

	return images, nil
}

var _ resolver.Catalog = (*EC2)(nil)
