package service

import (
	"regexp"
	"strconv"

	"github.com/rajeesh668/firewall-comparison-tool/internal/compare/model"
)

// Datasheets write tiered figures as slash strings ("39 / 39 / 26.5");
// we take the most optimistic tier. Positive decimal literals only, no
// sign, no exponent.
var reNumber = regexp.MustCompile(`\d+\.?\d*`)

// ExtractMax pulls every decimal number out of s and returns the largest.
// ok is false when s contains no number at all.
func ExtractMax(s string) (float64, bool) {
	var best float64
	ok := false
	for _, m := range reNumber.FindAllString(s, -1) {
		n, err := strconv.ParseFloat(m, 64)
		if err != nil {
			continue
		}
		if !ok || n > best {
			best, ok = n, true
		}
	}
	return best, ok
}

// NormalizeValue turns one raw cell into a comparable Value.
func NormalizeValue(raw string) model.Value {
	if n, ok := ExtractMax(raw); ok {
		return model.KnownValue(n)
	}
	return model.Value{}
}

// Normalize fills Specs for every field of the comparison set that exists
// as a column in the table. Columns the table does not have are skipped,
// no column is invented. Unparseable cells degrade to unknown per row.
// Runs once per table per session; running it again is safe but wasteful.
func Normalize(t *model.Table, comparisonFields []string) {
	for i := range t.Rows {
		row := &t.Rows[i]
		if row.Specs == nil {
			row.Specs = make(map[string]model.Value, len(comparisonFields))
		}
		for _, f := range comparisonFields {
			raw, ok := row.Raw[f]
			if !ok {
				continue
			}
			row.Specs[f] = NormalizeValue(raw)
		}
	}
}
