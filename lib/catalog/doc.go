// Package catalog implements the resolver's Catalog port for concrete image
// providers: AWS EC2 AMIs and a local Docker daemon.
package catalog
