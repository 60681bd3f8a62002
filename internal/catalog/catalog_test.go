package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajeesh668/firewall-comparison-tool/internal/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func testCatalogConfig(t *testing.T) *config.Catalog {
	dir := t.TempDir()
	fortinet := writeFile(t, dir, "fortinet.csv",
		"Model,Firewall Throughput (Gbps),IPS Throughput (Gbps)\n"+
			"FG-70F,10 / 10 / 6,1.4\n"+
			",5,0.5\n"+ // blank model id: dropped
			"FG-100F,20,2.6\n")
	sophos := writeFile(t, dir, "sophos.csv",
		"Model,Firewall Throughput (Gbps),IPS Throughput (Gbps)\n"+
			"XGS88,18.5,1.3\n"+
			"XGS108,24,3\n")
	return &config.Catalog{
		RankField: "Firewall Throughput (Gbps)",
		Target:    "Sophos",
		Vendors: []config.VendorConfig{
			{
				Name:   "Fortinet",
				Source: fortinet,
				CompareFields: []string{
					"Firewall Throughput (Gbps)",
					"IPS Throughput (Gbps)",
				},
			},
			{Name: "Sophos", Source: sophos},
		},
	}
}

func TestLoad(t *testing.T) {
	cat, err := Load(context.Background(), testCatalogConfig(t), zerolog.Nop())
	require.NoError(t, err)

	require.Len(t, cat.Sources(), 1)
	fortinet := cat.Sources()[0]
	assert.Equal(t, "Fortinet", fortinet.Name)
	assert.Equal(t, []string{"FG-70F", "FG-100F"}, fortinet.Models(), "blank ids dropped, order kept")

	// slash string already normalized at load time
	rec, ok := fortinet.Find("FG-70F")
	require.True(t, ok)
	v := rec.Spec("Firewall Throughput (Gbps)")
	require.True(t, v.Known)
	assert.Equal(t, 10.0, v.Num)

	// target inherits the union of source field sets
	target := cat.Target()
	assert.Equal(t, fortinet.CompareFields, target.CompareFields)
	xgs, ok := target.Find("XGS88")
	require.True(t, ok)
	assert.Equal(t, 18.5, xgs.Spec("Firewall Throughput (Gbps)").Num)

	_, ok = cat.Source("Sophos")
	assert.False(t, ok, "the target is not a valid source")
	_, ok = cat.Vendor("Sophos")
	assert.True(t, ok)
}

func TestLoad_MissingModelColumn(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.csv", "Name,Throughput\nbox,10\n")
	cfg := &config.Catalog{
		RankField: "Throughput",
		Target:    "V",
		Vendors:   []config.VendorConfig{{Name: "V", Source: bad}},
	}
	_, err := Load(context.Background(), cfg, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Model"`)
}

func TestLoad_EmptyTableTolerated(t *testing.T) {
	dir := t.TempDir()
	empty := writeFile(t, dir, "empty.csv", "")
	src := writeFile(t, dir, "src.csv", "Model,FW\nA,1\n")
	cfg := &config.Catalog{
		RankField: "FW",
		Target:    "T",
		Vendors: []config.VendorConfig{
			{Name: "S", Source: src, CompareFields: []string{"FW"}},
			{Name: "T", Source: empty},
		},
	}
	cat, err := Load(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.Empty(t, cat.Target().Table.Rows)
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "table.txt", "Model\nA\n")
	cfg := &config.Catalog{
		RankField: "FW",
		Target:    "V",
		Vendors:   []config.VendorConfig{{Name: "V", Source: bad}},
	}
	_, err := Load(context.Background(), cfg, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported table format")
}
