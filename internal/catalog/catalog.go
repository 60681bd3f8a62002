// Package catalog loads the vendor spec tables once per session and keeps
// them immutable for every comparison that follows.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/rajeesh668/firewall-comparison-tool/internal/compare/model"
	"github.com/rajeesh668/firewall-comparison-tool/internal/compare/service"
	"github.com/rajeesh668/firewall-comparison-tool/internal/config"
	"github.com/rajeesh668/firewall-comparison-tool/internal/fileio"
)

// ModelColumn is the one column every vendor table must have. A table
// without it is a catalog configuration error, not a data problem, and
// load fails loudly.
const ModelColumn = "Model"

// Vendor is one product line: its normalized spec table plus the field
// set that matters when comparing this vendor's models against targets.
type Vendor struct {
	Name          string
	CompareFields []string
	Table         model.Table
}

// Find returns the first row with the given model id.
func (v *Vendor) Find(modelID string) (*model.Record, bool) {
	for i := range v.Table.Rows {
		if v.Table.Rows[i].Model == modelID {
			return &v.Table.Rows[i], true
		}
	}
	return nil, false
}

// Models lists the model ids in table order.
func (v *Vendor) Models() []string {
	out := make([]string, 0, len(v.Table.Rows))
	for _, r := range v.Table.Rows {
		out = append(out, r.Model)
	}
	return out
}

// Catalog holds every loaded vendor. Read-only after Load; comparisons
// never mutate it, so no locking is needed.
type Catalog struct {
	rankField string
	target    *Vendor
	sources   []*Vendor
	byName    map[string]*Vendor
}

func (c *Catalog) RankField() string { return c.rankField }

// Target is the vendor whose models get recommended.
func (c *Catalog) Target() *Vendor { return c.target }

// Sources lists the selectable source vendors in configured order,
// excluding the target.
func (c *Catalog) Sources() []*Vendor { return c.sources }

// Vendor looks up any configured vendor, target included.
func (c *Catalog) Vendor(name string) (*Vendor, bool) {
	v, ok := c.byName[name]
	return v, ok
}

// Source looks up a source vendor; the target is not a valid source.
func (c *Catalog) Source(name string) (*Vendor, bool) {
	v, ok := c.byName[name]
	if !ok || v == c.target {
		return nil, false
	}
	return v, true
}

// Load fetches and parses every configured vendor table concurrently,
// joins, then normalizes. The returned catalog is complete and stable
// before the first comparison can run.
func Load(ctx context.Context, cfg *config.Catalog, logger zerolog.Logger) (*Catalog, error) {
	tables := make([]model.Table, len(cfg.Vendors))
	errs := make([]error, len(cfg.Vendors))

	var wg sync.WaitGroup
	for i, vc := range cfg.Vendors {
		wg.Add(1)
		go func(i int, vc config.VendorConfig) {
			defer wg.Done()
			t, err := loadTable(ctx, vc, logger)
			if err != nil {
				errs[i] = fmt.Errorf("vendor %s: %w", vc.Name, err)
				return
			}
			tables[i] = t
		}(i, vc)
	}
	wg.Wait()
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	c := &Catalog{
		rankField: cfg.RankField,
		byName:    make(map[string]*Vendor, len(cfg.Vendors)),
	}
	var union []string
	seen := make(map[string]bool)
	for i, vc := range cfg.Vendors {
		v := &Vendor{Name: vc.Name, CompareFields: vc.CompareFields, Table: tables[i]}
		c.byName[v.Name] = v
		if v.Name == cfg.Target {
			c.target = v
			continue
		}
		c.sources = append(c.sources, v)
		for _, f := range vc.CompareFields {
			if !seen[f] {
				seen[f] = true
				union = append(union, f)
			}
		}
	}

	if c.target == nil {
		return nil, fmt.Errorf("catalog: target %q is not among vendors", cfg.Target)
	}

	// The target must be comparable on every field any source vendor
	// uses; when its own field set is empty it inherits the union.
	if len(c.target.CompareFields) == 0 {
		c.target.CompareFields = union
	}

	for _, v := range c.sources {
		service.Normalize(&v.Table, v.CompareFields)
	}
	service.Normalize(&c.target.Table, c.target.CompareFields)

	for _, v := range c.byName {
		logger.Info().
			Str("vendor", v.Name).
			Int("models", len(v.Table.Rows)).
			Strs("fields", v.CompareFields).
			Msg("vendor table loaded")
	}
	return c, nil
}

func loadTable(ctx context.Context, vc config.VendorConfig, logger zerolog.Logger) (model.Table, error) {
	r, name, err := openSource(ctx, vc.Source)
	if err != nil {
		return model.Table{}, err
	}
	defer r.Close()

	rows, err := fileio.ReadTable(r, name, vc.HeaderRow)
	if err != nil {
		return model.Table{}, err
	}
	return buildTable(vc.Name, rows, logger)
}

// openSource treats http(s) sources as remote files, everything else as a
// local path. The filename decides which parser runs.
func openSource(ctx context.Context, source string) (io.ReadCloser, string, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		u, err := url.Parse(source)
		if err != nil {
			return nil, "", fmt.Errorf("bad source url: %w", err)
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, "", err
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, "", err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, "", fmt.Errorf("fetch %s: %s", source, resp.Status)
		}
		return resp.Body, path.Base(u.Path), nil
	}
	f, err := os.Open(source)
	if err != nil {
		return nil, "", err
	}
	return f, source, nil
}

// buildTable converts parsed rows into an ordered spec table. Rows with a
// blank model cell are dropped; duplicate ids stay in the table (first
// occurrence wins on lookup) but get a warning.
func buildTable(vendor string, rows []map[string]string, logger zerolog.Logger) (model.Table, error) {
	t := model.Table{Vendor: vendor}
	if len(rows) == 0 {
		return t, nil
	}
	if _, ok := rows[0][ModelColumn]; !ok {
		return t, fmt.Errorf("table has no %q column", ModelColumn)
	}

	ids := make(map[string]bool, len(rows))
	for _, rec := range rows {
		id := strings.TrimSpace(rec[ModelColumn])
		if id == "" {
			continue
		}
		if ids[id] {
			logger.Warn().Str("vendor", vendor).Str("model", id).Msg("duplicate model id, first occurrence wins")
		}
		ids[id] = true
		t.Rows = append(t.Rows, model.Record{Model: id, Raw: rec})
	}
	return t, nil
}
