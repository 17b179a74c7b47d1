package resolver

import "time"

// Owner identifies whose images are visible to a catalog query.
type Owner string

// OwnerSelf scopes a query to images owned by the calling account.
const OwnerSelf Owner = "self"

// Query names one logical image family.
type Query struct {
	Owner       Owner
	NamePattern string // regular expression, anchored at the start of the image name
}

// Image is a single catalog record. Records are immutable once returned.
type Image struct {
	ID        string
	Name      string
	Owner     string
	CreatedAt time.Time
}
