package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog declares the vendor spec tables for one session: where each
// table comes from, which columns matter when comparing that vendor, which
// vendor is the replacement line, and the single field used to rank
// survivors.
type Catalog struct {
	// RankField breaks ties among viable candidates: minimum wins.
	RankField string `yaml:"rank_field"`
	// Target names the vendor whose models are recommended.
	Target  string         `yaml:"target"`
	Vendors []VendorConfig `yaml:"vendors"`
}

type VendorConfig struct {
	Name string `yaml:"name"`
	// Source is a local file path or an http(s) URL; .csv, .xls and
	// .xlsx are supported.
	Source string `yaml:"source"`
	// HeaderRow is 1-based; 0 means the first row.
	HeaderRow int `yaml:"header_row"`
	// CompareFields may be empty for the target vendor, in which case
	// the union of all source vendors' fields applies.
	CompareFields []string `yaml:"compare_fields"`
}

func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog config: %w", err)
	}
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) Validate() error {
	if c.RankField == "" {
		return fmt.Errorf("catalog: rank_field is required")
	}
	if c.Target == "" {
		return fmt.Errorf("catalog: target is required")
	}
	seen := make(map[string]bool, len(c.Vendors))
	target := false
	for _, v := range c.Vendors {
		if v.Name == "" {
			return fmt.Errorf("catalog: vendor without a name")
		}
		if v.Source == "" {
			return fmt.Errorf("catalog: vendor %q without a source", v.Name)
		}
		if seen[v.Name] {
			return fmt.Errorf("catalog: duplicate vendor %q", v.Name)
		}
		seen[v.Name] = true
		if v.Name == c.Target {
			target = true
		}
	}
	if !target {
		return fmt.Errorf("catalog: target %q is not among vendors", c.Target)
	}
	return nil
}
