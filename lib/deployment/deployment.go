// Package deployment loads deployment files: one YAML document per
// deployment naming the image families the provisioning engine will be
// parameterized with.
package deployment

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ghodss/yaml"
)

var (
	ErrNotFound = errors.New("deployment not found")
	ErrInvalid  = errors.New("invalid deployment")
)

// ImageSpec names one image family: who owns the candidate images and the
// anchored pattern their names must match.
type ImageSpec struct {
	Owner       string `json:"owner,omitempty"`
	NamePattern string `json:"namePattern"`
}

// Deployment is the parsed content of deployments/<name>.yaml.
type Deployment struct {
	Name   string               `json:"name"`
	Images map[string]ImageSpec `json:"images"`
}

// Load reads and validates <dir>/<name>.yaml. A family with no owner
// defaults to "self".
func Load(dir, name string) (*Deployment, error) {
	path := filepath.Join(dir, name+".yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read deployment: %w", err)
	}

	var d Deployment
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse deployment %s: %w", path, err)
	}

	if len(d.Images) == 0 {
		return nil, fmt.Errorf("%w: %s declares no image families", ErrInvalid, path)
	}
	for family, spec := range d.Images {
		if spec.NamePattern == "" {
			return nil, fmt.Errorf("%w: image family %q has no namePattern", ErrInvalid, family)
		}
		if spec.Owner == "" {
			spec.Owner = "self"
			d.Images[family] = spec
		}
	}
	if d.Name == "" {
		d.Name = name
	}

	return &d, nil
}

// List returns the names of every deployment under dir, sorted.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read deployments dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names, nil
}

// Families returns the deployment's image family names, sorted, so callers
// resolve in a stable order.
func (d *Deployment) Families() []string {
	families := make([]string, 0, len(d.Images))
	for family := range d.Images {
		families = append(families, family)
	}
	sort.Strings(families)
	return families
}
